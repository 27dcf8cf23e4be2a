package yieldcurve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NelsonSiegel evaluates the Nelson–Siegel yield curve at each maturity in
// tau:
//
//	y(tau) = beta0 + beta1*g + beta2*(g - exp(-lambda*tau))
//
// with g = (1 - exp(-lambda*tau)) / (lambda*tau). Maturities must be
// strictly positive and lambda nonzero, otherwise the g denominator
// vanishes.
func NelsonSiegel(tau []float64, beta0, beta1, beta2, lambda float64) ([]float64, error) {
	loadings, err := Loadings(tau, lambda)
	if err != nil {
		return nil, err
	}
	beta := mat.NewVecDense(3, []float64{beta0, beta1, beta2})
	yields := mat.NewVecDense(len(tau), nil)
	yields.MulVec(loadings, beta)
	return yields.RawVector().Data, nil
}

// Loadings returns the len(tau) x 3 Nelson–Siegel factor-loading matrix.
// Column 0 is the level loading (all ones), column 1 the slope loading g,
// and column 2 the curvature loading g - exp(-lambda*tau).
func Loadings(tau []float64, lambda float64) (*mat.Dense, error) {
	if err := validateDomain(tau, lambda); err != nil {
		return nil, err
	}
	loadings := mat.NewDense(len(tau), 3, nil)
	for i, t := range tau {
		decay := math.Exp(-lambda * t)
		g := (1 - decay) / (lambda * t)
		loadings.Set(i, 0, 1)
		loadings.Set(i, 1, g)
		loadings.Set(i, 2, g-decay)
	}
	return loadings, nil
}

func validateDomain(tau []float64, lambda float64) error {
	if len(tau) == 0 {
		return errors.New("yieldcurve: at least one maturity is required")
	}
	if lambda == 0 || math.IsNaN(lambda) {
		return errors.New("yieldcurve: lambda must be nonzero")
	}
	for i, t := range tau {
		if t <= 0 || math.IsNaN(t) {
			return fmt.Errorf("yieldcurve: maturity %d must be positive, got %v", i, t)
		}
	}
	return nil
}
