package stochastic

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SimulateBrownianMotion simulates standard Brownian motion paths on
// [0, horizon] as cumulative sums of sqrt(dt)-scaled standard normal
// increments.
//
// It returns the uniform time grid of nSteps+1 points and a
// (nSteps+1) x nPaths path matrix whose first row is all zeros. Each
// column is an independent path.
func SimulateBrownianMotion(horizon float64, nSteps, nPaths int, src rand.Source) ([]float64, *mat.Dense, error) {
	if err := validateGrid(horizon, nSteps, nPaths); err != nil {
		return nil, nil, err
	}

	grid := make([]float64, nSteps+1)
	floats.Span(grid, 0, horizon)

	normal := stdNormal(src)
	sqrtDt := math.Sqrt(horizon / float64(nSteps))

	// Row 0 stays zero: B_0 = 0.
	paths := mat.NewDense(nSteps+1, nPaths, nil)
	for i := 1; i <= nSteps; i++ {
		for j := 0; j < nPaths; j++ {
			paths.Set(i, j, paths.At(i-1, j)+sqrtDt*normal.Rand())
		}
	}
	return grid, paths, nil
}

// SimulateBrownianBridge simulates Brownian bridge paths from a at time t0
// to b at time t1.
//
// A standard Brownian motion is simulated over the interval and the linear
// drift (t-t0)/(t1-t0) * (B_T - (b-a)) is subtracted, pinning the first
// row to a and the last row to b (up to floating-point roundoff).
func SimulateBrownianBridge(a, b, t0, t1 float64, nSteps, nPaths int, src rand.Source) ([]float64, *mat.Dense, error) {
	if t1 <= t0 {
		return nil, nil, errors.New("stochastic: bridge requires t1 > t0")
	}
	span := t1 - t0
	if err := validateGrid(span, nSteps, nPaths); err != nil {
		return nil, nil, err
	}

	grid := make([]float64, nSteps+1)
	floats.Span(grid, t0, t1)

	normal := stdNormal(src)
	sqrtDt := math.Sqrt(span / float64(nSteps))

	paths := mat.NewDense(nSteps+1, nPaths, nil)
	for i := 1; i <= nSteps; i++ {
		for j := 0; j < nPaths; j++ {
			paths.Set(i, j, paths.At(i-1, j)+sqrtDt*normal.Rand())
		}
	}

	// Pin both endpoints: subtract the drift toward the terminal value
	// and shift the whole path to start at a.
	for j := 0; j < nPaths; j++ {
		terminal := paths.At(nSteps, j)
		for i := 0; i <= nSteps; i++ {
			frac := (grid[i] - t0) / span
			paths.Set(i, j, paths.At(i, j)-frac*(terminal-(b-a))+a)
		}
	}
	return grid, paths, nil
}

func validateGrid(horizon float64, nSteps, nPaths int) error {
	if horizon <= 0 || math.IsNaN(horizon) || math.IsInf(horizon, 0) {
		return errors.New("stochastic: horizon must be positive and finite")
	}
	if nSteps < 1 {
		return errors.New("stochastic: nSteps must be at least 1")
	}
	if nPaths < 1 {
		return errors.New("stochastic: nPaths must be at least 1")
	}
	return nil
}
