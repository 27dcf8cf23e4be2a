// Package stochastic provides simulators for Brownian-type stochastic
// processes.
//
// All simulators share the same output layout: a uniform time grid of
// n_steps+1 points and a path ensemble as a *mat.Dense whose rows are time
// points (row 0 is the deterministic start value) and whose columns are
// independent sample paths.
//
// # Randomness
//
// Every simulator takes a rand.Source from golang.org/x/exp/rand. Passing
// the same source state yields bit-identical output, which is the intended
// way to get reproducible simulations:
//
//	grid, paths, err := stochastic.SimulateBrownianMotion(1.0, 100, 5, rand.NewSource(42))
//
// Passing a nil source uses a private time-seeded source. There is no
// process-global generator: concurrent simulations should each own their
// own source.
//
// # Fractional Brownian motion
//
// SimulateFBM generates paths of Lévy's fractional Brownian motion by
// Cholesky factorization of the Hurst covariance kernel:
//
//	Cov(W_u^H, W_v^H) = 2H * Integral_0^min(u,v) (u-s)^(H-1/2) (v-s)^(H-1/2) ds
//
// which has the closed form implemented by FBMCovariance in terms of the
// Gauss hypergeometric function. The factorization can fail for Hurst
// values very close to 0 or 1 or for ill-conditioned grids; that surfaces
// as ErrNotPositiveDefinite.
//
// # Lévy–Ciesielski construction
//
// LevyCiesielski builds a Brownian path on [0, 1] as a Schauder wavelet
// series with independent standard-normal coefficients, truncated at a
// maximum level.
package stochastic
