package mixture

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestPDFIntegratesToOne(t *testing.T) {
	weights := []float64{0.3, 0.5, 0.2}
	means := []float64{-2, 0, 3}
	variances := []float64{0.5, 1, 2}

	n := 20001
	x := make([]float64, n)
	floats.Span(x, -20, 20)

	pdf, err := PDF(x, weights, means, variances)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}

	for i, p := range pdf {
		if p < 0 {
			t.Fatalf("density negative at x=%v: %v", x[i], p)
		}
	}
	if mass := integrate.Trapezoidal(x, pdf); math.Abs(mass-1) > 1e-6 {
		t.Errorf("density integrates to %v, want 1", mass)
	}
}

func TestPDFSingleComponent(t *testing.T) {
	// One component with weight 1 is just a normal density.
	x := []float64{-1, 0, 0.5, 2}
	pdf, err := PDF(x, []float64{1}, []float64{0.5}, []float64{2})
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	want := distuv.Normal{Mu: 0.5, Sigma: math.Sqrt(2)}
	for i, xi := range x {
		if math.Abs(pdf[i]-want.Prob(xi)) > 1e-14 {
			t.Errorf("pdf(%v) = %v, want %v", xi, pdf[i], want.Prob(xi))
		}
	}
}

func TestPDFWeightValidation(t *testing.T) {
	x := []float64{0}
	if _, err := PDF(x, []float64{0.3, 0.3}, []float64{0, 1}, []float64{1, 1}); err == nil {
		t.Error("weights summing to 0.6 should be rejected")
	}
	if _, err := PDF(x, nil, nil, nil); err == nil {
		t.Error("empty mixture should be rejected")
	}
	if _, err := PDF(x, []float64{1.5, -0.5}, []float64{0, 1}, []float64{1, 1}); err == nil {
		t.Error("negative weight should be rejected")
	}
	// Accumulated roundoff must pass the tolerance-based check.
	weights := make([]float64, 10)
	means := make([]float64, 10)
	variances := make([]float64, 10)
	for i := range weights {
		weights[i] = 0.1
		variances[i] = 1
	}
	if _, err := PDF(x, weights, means, variances); err != nil {
		t.Errorf("ten weights of 0.1 should be accepted: %v", err)
	}
}

func TestPDFShapeValidation(t *testing.T) {
	x := []float64{0}
	if _, err := PDF(x, []float64{0.5, 0.5}, []float64{0}, []float64{1, 1}); err == nil {
		t.Error("mismatched means length should be rejected")
	}
	if _, err := PDF(x, []float64{0.5, 0.5}, []float64{0, 1}, []float64{1}); err == nil {
		t.Error("mismatched variances length should be rejected")
	}
	if _, err := PDF(x, []float64{0.5, 0.5}, []float64{0, 1}, []float64{1, -1}); err == nil {
		t.Error("non-positive variance should be rejected")
	}
}

func TestPDFMultivariate(t *testing.T) {
	// A single standard bivariate component: density at the origin is
	// 1/(2*pi).
	points := mat.NewDense(2, 2, []float64{
		0, 0,
		1, 1,
	})
	means := mat.NewDense(1, 2, []float64{0, 0})
	covs := []*mat.SymDense{mat.NewSymDense(2, []float64{1, 0, 0, 1})}

	pdf, err := PDFMultivariate(points, []float64{1}, means, covs)
	if err != nil {
		t.Fatalf("PDFMultivariate: %v", err)
	}
	if want := 1 / (2 * math.Pi); math.Abs(pdf[0]-want) > 1e-12 {
		t.Errorf("pdf(0,0) = %v, want %v", pdf[0], want)
	}
	if want := math.Exp(-1) / (2 * math.Pi); math.Abs(pdf[1]-want) > 1e-12 {
		t.Errorf("pdf(1,1) = %v, want %v", pdf[1], want)
	}
}

func TestPDFMultivariateValidation(t *testing.T) {
	points := mat.NewDense(1, 2, []float64{0, 0})
	means := mat.NewDense(1, 2, []float64{0, 0})
	eye := mat.NewSymDense(2, []float64{1, 0, 0, 1})

	if _, err := PDFMultivariate(points, []float64{0.7}, means, []*mat.SymDense{eye}); err == nil {
		t.Error("weights summing to 0.7 should be rejected")
	}
	if _, err := PDFMultivariate(points, []float64{0.5, 0.5}, means, []*mat.SymDense{eye, eye}); err == nil {
		t.Error("mean row count mismatch should be rejected")
	}
	if _, err := PDFMultivariate(points, []float64{1}, means, nil); err == nil {
		t.Error("missing covariances should be rejected")
	}
	if _, err := PDFMultivariate(points, []float64{1}, means, []*mat.SymDense{mat.NewSymDense(3, nil)}); err == nil {
		t.Error("covariance dimension mismatch should be rejected")
	}
	notPD := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	if _, err := PDFMultivariate(points, []float64{1}, means, []*mat.SymDense{notPD}); err == nil {
		t.Error("non-positive-definite covariance should be rejected")
	}
}
