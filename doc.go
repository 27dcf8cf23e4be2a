// Package goquant provides standalone numerical routines for quantitative
// finance and statistics.
//
// GoQuant is a small Go package collecting independent simulation and
// density routines: Gaussian-mixture density evaluation, Brownian motion
// and Brownian-bridge simulation, a Lévy–Ciesielski wavelet construction of
// Brownian motion, fractional Brownian motion via Cholesky factorization of
// a Hurst covariance kernel, and the Nelson–Siegel yield-curve model. Each
// routine is a pure function of its inputs (and an explicitly passed random
// source); there is no shared state between them.
//
// # Features
//
//   - Fractional Brownian motion with a Gauss-hypergeometric covariance
//     kernel and Cholesky path generation
//   - Standard Brownian motion and Brownian bridges
//   - Lévy–Ciesielski (Schauder wavelet) Brownian construction
//   - Univariate and multivariate Gaussian-mixture densities
//   - Nelson–Siegel curve evaluation, factor loadings, and calibration
//
// # Quick Start
//
// Simulate fractional Brownian motion:
//
//	src := rand.NewSource(42)
//	grid, paths, err := stochastic.SimulateFBM(1.0, 0.7, 250, 1000, src)
//
// Evaluate a Gaussian mixture density:
//
//	pdf, err := mixture.PDF(x, []float64{0.4, 0.6}, means, variances)
//
// Calibrate a Nelson–Siegel curve to observed yields:
//
//	fit, err := yieldcurve.Fit(maturities, yields)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - stochastic: Brownian, Brownian bridge, Lévy–Ciesielski, and
//     fractional Brownian motion simulators
//   - mixture: Gaussian mixture density evaluation
//   - yieldcurve: Nelson–Siegel model and calibration
//   - specfunc: the Gauss hypergeometric function used by the fBm kernel
//
// # Randomness
//
// Simulators take a rand.Source (golang.org/x/exp/rand). Passing the same
// source state produces bit-identical output; passing nil uses a private
// time-seeded source. There is no process-global seeding.
//
// # References
//
//   - Lévy, P. (1953). Random functions: general theory with special
//     reference to Laplacian random functions
//   - Nelson, C.R., & Siegel, A.F. (1987). Parsimonious modeling of yield
//     curves
//   - Abramowitz, M., & Stegun, I.A. (1964). Handbook of Mathematical
//     Functions, §15.3
package goquant
