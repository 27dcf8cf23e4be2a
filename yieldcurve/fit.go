package yieldcurve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// FitResult holds calibrated Nelson–Siegel parameters and the goodness of
// fit against the observed yields.
type FitResult struct {
	Beta0    float64
	Beta1    float64
	Beta2    float64
	Lambda   float64
	RSquared float64
}

// Fit calibrates the Nelson–Siegel model to observed (maturity, yield)
// pairs.
//
// Lambda is profiled with a Nelder–Mead search over log(lambda); for each
// candidate the betas are the least-squares solution against the loadings
// matrix. At least four observations are required (the model has four
// parameters).
func Fit(tau, yields []float64) (*FitResult, error) {
	if len(tau) != len(yields) {
		return nil, fmt.Errorf("yieldcurve: got %d maturities and %d yields", len(tau), len(yields))
	}
	if len(tau) < 4 {
		return nil, errors.New("yieldcurve: at least 4 observations are required")
	}
	if err := validateDomain(tau, 1); err != nil {
		return nil, err
	}

	obs := mat.NewVecDense(len(yields), yields)
	objective := func(p []float64) float64 {
		lambda := math.Exp(p[0])
		loadings, err := Loadings(tau, lambda)
		if err != nil {
			return math.Inf(1)
		}
		var beta mat.VecDense
		if err := beta.SolveVec(loadings, obs); err != nil {
			return math.Inf(1)
		}
		var fitted mat.VecDense
		fitted.MulVec(loadings, &beta)
		sse := 0.0
		for i := 0; i < obs.Len(); i++ {
			r := fitted.AtVec(i) - obs.AtVec(i)
			sse += r * r
		}
		return sse
	}

	// The slope/curvature loadings decay on the 1/lambda scale, so the
	// mean maturity gives a reasonable starting point.
	init := []float64{math.Log(1 / stat.Mean(tau, nil))}
	problem := optimize.Problem{Func: objective}
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("yieldcurve: lambda search failed: %w", err)
	}

	lambda := math.Exp(result.X[0])
	loadings, err := Loadings(tau, lambda)
	if err != nil {
		return nil, err
	}
	var beta mat.VecDense
	if err := beta.SolveVec(loadings, obs); err != nil {
		return nil, fmt.Errorf("yieldcurve: beta regression failed: %w", err)
	}

	var fitted mat.VecDense
	fitted.MulVec(loadings, &beta)
	return &FitResult{
		Beta0:    beta.AtVec(0),
		Beta1:    beta.AtVec(1),
		Beta2:    beta.AtVec(2),
		Lambda:   lambda,
		RSquared: stat.RSquaredFrom(fitted.RawVector().Data, yields, nil),
	}, nil
}
