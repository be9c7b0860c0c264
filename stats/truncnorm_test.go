package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// TestTruncNormLogPdf tests the truncated normal log density against
// direct computation
func TestTruncNormLogPdf(t *testing.T) {
	const threshold float64 = 0.00001

	a, b := -1.0, 2.0
	loc, scale := 0.5, 1.5
	std := distuv.Normal{Mu: 0, Sigma: 1}

	for _, x := range []float64{-0.5, 0.5, 1.0, 3.0} {
		z := (x - loc) / scale
		expected := std.LogProb(z) - math.Log(scale) -
			math.Log(std.CDF(b)-std.CDF(a))

		logPdf, err := TruncNorm.Logpdf(
			scalarTensor(x),
			scalarTensor(a),
			scalarTensor(b),
			scalarTensor(loc),
			scalarTensor(scale),
		)
		if err != nil {
			t.Fatal(err)
		}
		if out := logPdf.Data().(float64); math.Abs(out-expected) >
			threshold {
			t.Errorf("expected: %v received: %v for x: %v", expected,
				out, x)
		}
	}
}

// TestTruncNormLogPdfVector tests elementwise evaluation with vector
// bounds
func TestTruncNormLogPdfVector(t *testing.T) {
	const threshold float64 = 0.00001

	xs := []float64{0.0, 1.0}
	as := []float64{-1.0, -2.0}
	bs := []float64{1.0, 2.0}
	std := distuv.Normal{Mu: 0, Sigma: 1}

	logPdf, err := TruncNorm.Logpdf(
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			append([]float64{}, xs...))),
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			append([]float64{}, as...))),
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			append([]float64{}, bs...))),
		scalarTensor(0),
		scalarTensor(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !logPdf.Shape().Eq(tensor.Shape{2}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{2},
			logPdf.Shape())
	}

	out := logPdf.Data().([]float64)
	for i := range xs {
		expected := std.LogProb(xs[i]) -
			math.Log(std.CDF(bs[i])-std.CDF(as[i]))
		if math.Abs(out[i]-expected) > threshold {
			t.Errorf("expected: %v received: %v for x: %v", expected,
				out[i], xs[i])
		}
	}
}
