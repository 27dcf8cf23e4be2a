// Package specfunc provides special functions used by the stochastic
// simulators.
package specfunc

import "math"

const (
	// hypTol is the relative convergence tolerance of the power series.
	hypTol = 1e-15
	// hypCrossover is the argument above which the defining series is
	// traded for the 1-x linear transformation.
	hypCrossover = 0.8
	// hypMaxIter caps the series length. The cap is generous because the
	// degenerate branch (c-a-b near an integer) stays on the direct
	// series even for arguments close to 1.
	hypMaxIter = 200000
	// hypDegenerate is the distance of c-a-b from an integer below which
	// the linear transformation loses too many digits to cancellation.
	hypDegenerate = 1e-5
)

// Hyp2F1 computes the Gauss hypergeometric function 2F1(a, b; c; x) for
// arguments x in [0, 1].
//
// The defining power series is used for small x. Near x = 1 the series
// converges too slowly, so the linear transformation in 1-x (Abramowitz &
// Stegun 15.3.6) is applied instead; when c-a-b is close to an integer
// that transformation degenerates and the direct series is kept with a
// higher iteration cap. At x = 1 the Gauss summation theorem gives the
// value in closed form (it requires c-a-b > 0; otherwise the function
// diverges and +Inf is returned).
//
// Returns NaN for x outside [0, 1] or when c is a nonpositive integer.
func Hyp2F1(a, b, c, x float64) float64 {
	if x < 0 || x > 1 || math.IsNaN(x) {
		return math.NaN()
	}
	if c <= 0 && c == math.Trunc(c) {
		return math.NaN()
	}
	if a == 0 || b == 0 || x == 0 {
		return 1
	}

	s := c - a - b
	if x == 1 {
		if s <= 0 {
			return math.Inf(1)
		}
		// Gauss summation: Gamma(c)Gamma(c-a-b) / (Gamma(c-a)Gamma(c-b)).
		return gammaRatio(c, s, c-a, c-b)
	}
	if x < hypCrossover {
		return hypSeries(a, b, c, x)
	}
	if math.Abs(s-math.Round(s)) < hypDegenerate {
		return hypSeries(a, b, c, x)
	}

	// A&S 15.3.6: two series in y = 1-x, both converging quickly here.
	y := 1 - x
	t1 := gammaRatio(c, s, c-a, c-b) * hypSeries(a, b, 1-s, y)
	t2 := gammaRatio(c, -s, a, b) * math.Pow(y, s) * hypSeries(c-a, c-b, 1+s, y)
	return t1 + t2
}

// hypSeries sums the defining series sum_k (a)_k (b)_k / ((c)_k k!) x^k.
func hypSeries(a, b, c, x float64) float64 {
	term := 1.0
	sum := 1.0
	for k := 0; k < hypMaxIter; k++ {
		fk := float64(k)
		term *= (a + fk) * (b + fk) / ((c + fk) * (fk + 1)) * x
		sum += term
		if math.Abs(term) <= hypTol*math.Abs(sum) {
			break
		}
	}
	return sum
}

// gammaRatio computes Gamma(p)Gamma(q) / (Gamma(r)Gamma(s)) through
// log-gamma, tracking signs so negative non-integer arguments are valid.
func gammaRatio(p, q, r, s float64) float64 {
	lp, sp := math.Lgamma(p)
	lq, sq := math.Lgamma(q)
	lr, sr := math.Lgamma(r)
	ls, ss := math.Lgamma(s)
	return float64(sp*sq*sr*ss) * math.Exp(lp+lq-lr-ls)
}
