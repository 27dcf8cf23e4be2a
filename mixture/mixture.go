// Package mixture evaluates Gaussian mixture probability densities.
package mixture

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// weightTol bounds the allowed deviation of the component weights from
// summing to one. An exact comparison would reject valid inputs whose sum
// carries floating-point accumulation error (ten weights of 0.1, say).
const weightTol = 1e-9

// PDF evaluates a univariate Gaussian mixture density at each point of x.
//
// The mixture has one component per weight, with the corresponding mean
// and variance. Weights must sum to 1 within a small tolerance, means and
// variances must have one entry per component, and variances must be
// positive; violations are reported as errors before any computation.
func PDF(x, weights, means, variances []float64) ([]float64, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	n := len(weights)
	if len(means) != n {
		return nil, fmt.Errorf("mixture: got %d means for %d components", len(means), n)
	}
	if len(variances) != n {
		return nil, fmt.Errorf("mixture: got %d variances for %d components", len(variances), n)
	}
	for i, v := range variances {
		if v <= 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("mixture: variance of component %d must be positive, got %v", i, v)
		}
	}

	pdf := make([]float64, len(x))
	for i := 0; i < n; i++ {
		component := distuv.Normal{Mu: means[i], Sigma: math.Sqrt(variances[i])}
		for j, xj := range x {
			pdf[j] += weights[i] * component.Prob(xj)
		}
	}
	return pdf, nil
}

// PDFMultivariate evaluates a multivariate Gaussian mixture density at each
// row of points.
//
// points is an nSamples x dim matrix, means an nComponents x dim matrix,
// and covariances holds one dim x dim symmetric matrix per component. Each
// covariance must be positive definite.
func PDFMultivariate(points *mat.Dense, weights []float64, means *mat.Dense, covariances []*mat.SymDense) ([]float64, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	n := len(weights)

	nSamples, dim := points.Dims()
	mRows, mCols := means.Dims()
	if mRows != n {
		return nil, fmt.Errorf("mixture: got %d mean rows for %d components", mRows, n)
	}
	if mCols != dim {
		return nil, fmt.Errorf("mixture: means have dimension %d, points have %d", mCols, dim)
	}
	if len(covariances) != n {
		return nil, fmt.Errorf("mixture: got %d covariances for %d components", len(covariances), n)
	}
	for i, cov := range covariances {
		if r := cov.SymmetricDim(); r != dim {
			return nil, fmt.Errorf("mixture: covariance %d is %dx%d, want %dx%d", i, r, r, dim, dim)
		}
	}

	components := make([]*distmv.Normal, n)
	for i := range components {
		normal, ok := distmv.NewNormal(mat.Row(nil, i, means), covariances[i], nil)
		if !ok {
			return nil, fmt.Errorf("mixture: covariance of component %d is not positive definite", i)
		}
		components[i] = normal
	}

	pdf := make([]float64, nSamples)
	row := make([]float64, dim)
	for j := 0; j < nSamples; j++ {
		mat.Row(row, j, points)
		for i, component := range components {
			pdf[j] += weights[i] * component.Prob(row)
		}
	}
	return pdf, nil
}

func validateWeights(weights []float64) error {
	if len(weights) == 0 {
		return errors.New("mixture: at least one component is required")
	}
	if sum := floats.Sum(weights); math.Abs(sum-1) > weightTol {
		return fmt.Errorf("mixture: weights must sum to 1, got %v", sum)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("mixture: weight of component %d must be non-negative, got %v", i, w)
		}
	}
	return nil
}
