// Package yieldcurve implements the Nelson–Siegel term-structure model.
//
// The model expresses the yield at maturity tau as a combination of three
// factor loadings controlled by a decay parameter lambda:
//
//	y(tau) = beta0 + beta1*g(tau) + beta2*(g(tau) - exp(-lambda*tau))
//	g(tau) = (1 - exp(-lambda*tau)) / (lambda*tau)
//
// # Evaluation
//
// Evaluate a curve at given maturities:
//
//	yields, err := yieldcurve.NelsonSiegel(tau, 4.0, -2.0, 1.5, 0.6)
//
// or get the raw loadings matrix for regression work:
//
//	loadings, err := yieldcurve.Loadings(tau, 0.6)
//
// # Calibration
//
// Fit calibrates all four parameters to observed (maturity, yield) pairs
// by profiling lambda with a Nelder–Mead search and solving for the betas
// by least squares at each candidate lambda:
//
//	fit, err := yieldcurve.Fit(tau, observed)
//
// Maturities must be strictly positive and lambda nonzero; lambda*tau = 0
// makes the g loading's denominator vanish and is rejected as a domain
// error.
package yieldcurve
