package stochastic

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestSimulateBrownianMotionReproducible(t *testing.T) {
	grid1, paths1, err := SimulateBrownianMotion(1.0, 100, 5, rand.NewSource(42))
	if err != nil {
		t.Fatalf("SimulateBrownianMotion: %v", err)
	}
	grid2, paths2, err := SimulateBrownianMotion(1.0, 100, 5, rand.NewSource(42))
	if err != nil {
		t.Fatalf("SimulateBrownianMotion: %v", err)
	}

	if !mat.Equal(paths1, paths2) {
		t.Error("same seed should produce bit-identical path matrices")
	}
	for i := range grid1 {
		if grid1[i] != grid2[i] {
			t.Fatalf("grids differ at %d: %v vs %v", i, grid1[i], grid2[i])
		}
	}
}

func TestSimulateBrownianMotionShape(t *testing.T) {
	grid, paths, err := SimulateBrownianMotion(2.0, 50, 7, rand.NewSource(1))
	if err != nil {
		t.Fatalf("SimulateBrownianMotion: %v", err)
	}

	if len(grid) != 51 {
		t.Errorf("expected 51 grid points, got %d", len(grid))
	}
	if grid[0] != 0 || grid[50] != 2.0 {
		t.Errorf("grid endpoints should be 0 and 2, got %v and %v", grid[0], grid[50])
	}

	r, c := paths.Dims()
	if r != 51 || c != 7 {
		t.Errorf("expected 51x7 path matrix, got %dx%d", r, c)
	}
	for j := 0; j < c; j++ {
		if paths.At(0, j) != 0 {
			t.Errorf("path %d does not start at 0: %v", j, paths.At(0, j))
		}
	}
}

func TestSimulateBrownianMotionTerminalVariance(t *testing.T) {
	// Var(B_T) = T. Fixed seed, so the check is deterministic.
	horizon := 2.0
	_, paths, err := SimulateBrownianMotion(horizon, 100, 4000, rand.NewSource(7))
	if err != nil {
		t.Fatalf("SimulateBrownianMotion: %v", err)
	}
	terminal := mat.Row(nil, 100, paths)
	v := stat.Variance(terminal, nil)
	if math.Abs(v-horizon) > 0.15*horizon {
		t.Errorf("terminal variance %v too far from %v", v, horizon)
	}
}

func TestSimulateBrownianMotionValidation(t *testing.T) {
	cases := []struct {
		name    string
		horizon float64
		nSteps  int
		nPaths  int
	}{
		{"zero horizon", 0, 10, 1},
		{"negative horizon", -1, 10, 1},
		{"zero steps", 1, 0, 1},
		{"zero paths", 1, 10, 0},
	}
	for _, tc := range cases {
		if _, _, err := SimulateBrownianMotion(tc.horizon, tc.nSteps, tc.nPaths, nil); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSimulateBrownianBridgePinned(t *testing.T) {
	// A zero-to-zero bridge must have its first and last rows identically
	// zero regardless of seed.
	for _, seed := range []uint64{1, 42, 1234} {
		_, paths, err := SimulateBrownianBridge(0, 0, 0, 1, 64, 10, rand.NewSource(seed))
		if err != nil {
			t.Fatalf("SimulateBrownianBridge: %v", err)
		}
		r, c := paths.Dims()
		for j := 0; j < c; j++ {
			if math.Abs(paths.At(0, j)) > 1e-12 {
				t.Errorf("seed %d path %d: start %v, want 0", seed, j, paths.At(0, j))
			}
			if math.Abs(paths.At(r-1, j)) > 1e-12 {
				t.Errorf("seed %d path %d: end %v, want 0", seed, j, paths.At(r-1, j))
			}
		}
	}
}

func TestSimulateBrownianBridgeEndpoints(t *testing.T) {
	a, b := 2.0, 5.0
	grid, paths, err := SimulateBrownianBridge(a, b, 1.0, 3.0, 32, 4, rand.NewSource(9))
	if err != nil {
		t.Fatalf("SimulateBrownianBridge: %v", err)
	}
	if grid[0] != 1.0 || grid[32] != 3.0 {
		t.Errorf("grid endpoints should be 1 and 3, got %v and %v", grid[0], grid[32])
	}
	for j := 0; j < 4; j++ {
		if math.Abs(paths.At(0, j)-a) > 1e-12 {
			t.Errorf("path %d starts at %v, want %v", j, paths.At(0, j), a)
		}
		if math.Abs(paths.At(32, j)-b) > 1e-12 {
			t.Errorf("path %d ends at %v, want %v", j, paths.At(32, j), b)
		}
	}
}

func TestSimulateBrownianBridgeValidation(t *testing.T) {
	if _, _, err := SimulateBrownianBridge(0, 1, 2, 2, 10, 1, nil); err == nil {
		t.Error("t1 == t0 should be rejected")
	}
	if _, _, err := SimulateBrownianBridge(0, 1, 3, 2, 10, 1, nil); err == nil {
		t.Error("t1 < t0 should be rejected")
	}
}
