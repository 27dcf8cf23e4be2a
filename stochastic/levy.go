package stochastic

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// LevyCiesielski builds a single Brownian motion path on [0, 1] by the
// Lévy–Ciesielski construction, evaluated at the given times:
//
//	W(t) = xi_0 * t + sum_{n=1}^{maxLevel} sum_{k=1}^{2^(n-1)} xi_{n,k} * S_{n,k}(t)
//
// where the S_{n,k} are Schauder tent functions (integrated Haar wavelets)
// and the xi are i.i.d. standard normal coefficients. The series is
// truncated at maxLevel; maxLevel = 0 keeps only the linear xi_0*t term.
//
// All times must lie in [0, 1]. The coefficients are drawn from src in a
// fixed order (level-major, then position), so the output is deterministic
// for a given source state.
func LevyCiesielski(times []float64, maxLevel int, src rand.Source) ([]float64, error) {
	if err := validateLevy(times, maxLevel); err != nil {
		return nil, err
	}
	normal := stdNormal(src)
	return levyPath(times, maxLevel, normal.Rand), nil
}

// SimulateLevyPaths builds nPaths independent Lévy–Ciesielski paths
// evaluated at the given times, returned as a len(times) x nPaths matrix
// with each column one path. Unlike the other simulators the time grid is
// caller-supplied, so no zero row is prepended; including t = 0 in times
// yields an exactly-zero row there.
func SimulateLevyPaths(times []float64, maxLevel, nPaths int, src rand.Source) (*mat.Dense, error) {
	if err := validateLevy(times, maxLevel); err != nil {
		return nil, err
	}
	if nPaths < 1 {
		return nil, errors.New("stochastic: nPaths must be at least 1")
	}
	normal := stdNormal(src)
	paths := mat.NewDense(len(times), nPaths, nil)
	for j := 0; j < nPaths; j++ {
		paths.SetCol(j, levyPath(times, maxLevel, normal.Rand))
	}
	return paths, nil
}

func levyPath(times []float64, maxLevel int, draw func() float64) []float64 {
	vals := make([]float64, len(times))
	xi0 := draw()
	for i, t := range times {
		vals[i] = xi0 * t
	}
	for n := 1; n <= maxLevel; n++ {
		// 2^(n-1) tents at level n, each supported on a dyadic interval
		// of width 2/2^n with peak 2^(-(n+1)/2).
		count := 1 << (n - 1)
		width := 1 / float64(int(1)<<n)
		peak := math.Exp2(-(float64(n) + 1) / 2)
		for k := 0; k < count; k++ {
			xi := draw()
			center := (2*float64(k) + 1) * width
			for i, t := range times {
				if d := width - math.Abs(t-center); d > 0 {
					vals[i] += xi * peak * d / width
				}
			}
		}
	}
	return vals
}

func validateLevy(times []float64, maxLevel int) error {
	if len(times) == 0 {
		return errors.New("stochastic: times must not be empty")
	}
	if maxLevel < 0 {
		return errors.New("stochastic: maxLevel must be non-negative")
	}
	for _, t := range times {
		if t < 0 || t > 1 || math.IsNaN(t) {
			return errors.New("stochastic: times must lie in [0, 1]")
		}
	}
	return nil
}
