package stochastic

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/goquant/specfunc"
)

// ErrNotPositiveDefinite is returned when the fractional Brownian
// covariance matrix cannot be Cholesky factorized. This can happen for
// Hurst values very close to 0 or 1, or for grids fine enough that the
// matrix is numerically singular.
var ErrNotPositiveDefinite = errors.New("stochastic: covariance matrix is not positive definite")

// FBMCovariance evaluates the covariance of Lévy's fractional Brownian
// motion at times u and v for Hurst parameter hurst in (0, 1):
//
//	Cov(W_u^H, W_v^H) = lo^(H+1/2) * hi^(H-1/2)
//	                    * 2F1(1, 1/2-H; 3/2+H; lo/hi) * 2H/(H+1/2)
//
// with lo = min(u, v) and hi = max(u, v). The covariance is 0 whenever
// u or v is 0 (including u = v = 0, which is never computed through the
// 0/0 ratio). On the diagonal it reduces to u^(2H), and for H = 1/2 to
// min(u, v), the standard Brownian covariance.
func FBMCovariance(u, v, hurst float64) float64 {
	if u == 0 || v == 0 {
		return 0
	}
	lo, hi := math.Min(u, v), math.Max(u, v)
	f := specfunc.Hyp2F1(1, 0.5-hurst, 1.5+hurst, lo/hi)
	return math.Pow(lo, hurst+0.5) * math.Pow(hi, hurst-0.5) * f * 2 * hurst / (hurst + 0.5)
}

// SimulateFBM simulates fractional Brownian motion paths on [0, horizon]
// by Cholesky factorization of the Hurst covariance matrix.
//
// The covariance matrix of the process at the nSteps interior grid points
// is built with FBMCovariance and factorized; the lower-triangular factor
// is multiplied by an nSteps x nPaths matrix of i.i.d. standard normal
// variates and a zero first row is prepended.
//
// It returns the uniform time grid of nSteps+1 points and the
// (nSteps+1) x nPaths path matrix. If the covariance matrix is not
// positive definite the error is ErrNotPositiveDefinite.
func SimulateFBM(horizon, hurst float64, nSteps, nPaths int, src rand.Source) ([]float64, *mat.Dense, error) {
	if err := validateGrid(horizon, nSteps, nPaths); err != nil {
		return nil, nil, err
	}
	if hurst <= 0 || hurst >= 1 || math.IsNaN(hurst) {
		return nil, nil, errors.New("stochastic: hurst parameter must be in (0, 1)")
	}

	grid := make([]float64, nSteps+1)
	floats.Span(grid, 0, horizon)
	interior := grid[1:]

	cov := mat.NewSymDense(nSteps, nil)
	for i := 0; i < nSteps; i++ {
		for j := i; j < nSteps; j++ {
			cov.SetSym(i, j, FBMCovariance(interior[i], interior[j], hurst))
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(cov) {
		return nil, nil, ErrNotPositiveDefinite
	}
	var lower mat.TriDense
	chol.LTo(&lower)

	normal := stdNormal(src)
	variates := mat.NewDense(nSteps, nPaths, nil)
	for i := 0; i < nSteps; i++ {
		for j := 0; j < nPaths; j++ {
			variates.Set(i, j, normal.Rand())
		}
	}

	var correlated mat.Dense
	correlated.Mul(&lower, variates)

	// Row 0 stays zero: the process starts at 0 by definition.
	paths := mat.NewDense(nSteps+1, nPaths, nil)
	paths.Slice(1, nSteps+1, 0, nPaths).(*mat.Dense).Copy(&correlated)
	return grid, paths, nil
}
