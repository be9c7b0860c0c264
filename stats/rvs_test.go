package stats

import (
	"math"
	"testing"

	"gorgonia.org/tensor"
)

// TestRvsScalarShape tests that scalar parameters produce a vector
// of draws
func TestRvsScalarShape(t *testing.T) {
	samples, err := Norm.Rvs(25, scalarTensor(0), scalarTensor(1))
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{25}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{25},
			samples.Shape())
	}
}

// TestRvsVectorShape tests that vector parameters produce a matrix
// of draws with one column per parameter element
func TestRvsVectorShape(t *testing.T) {
	locs := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{-100, 0, 100}),
	)
	scales := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{1, 1, 1}),
	)

	samples, err := Norm.Rvs(50, locs, scales)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{50, 3}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{50, 3},
			samples.Shape())
	}

	// Column i must stay near its own location
	expected := []float64{-100, 0, 100}
	out := samples.Data().([]float64)
	for i := 0; i < 50; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(out[i*3+j]-expected[j]) > 8 {
				t.Errorf("draw (%v, %v) too far from location %v: %v", i,
					j, expected[j], out[i*3+j])
			}
		}
	}
}

// TestRvsMatrixParam tests that parameters above rank 1 are rejected
func TestRvsMatrixParam(t *testing.T) {
	locs := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{0, 0, 0, 0}),
	)
	if _, err := Norm.Rvs(5, locs, scalarTensor(1)); err == nil {
		t.Error("expected an error for a rank 2 parameter")
	}
}

// TestBernoulliRvs tests that Bernoulli draws live on {0, 1}
func TestBernoulliRvs(t *testing.T) {
	samples, err := Bernoulli.Rvs(100, scalarTensor(0.4))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range samples.Data().([]float64) {
		if x != 0 && x != 1 {
			t.Errorf("expected a draw on {0, 1} received: %v", x)
		}
	}
}

// TestUniformRvs tests that uniform draws respect the location and
// width convention
func TestUniformRvs(t *testing.T) {
	samples, err := Uniform.Rvs(100, scalarTensor(5), scalarTensor(2))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range samples.Data().([]float64) {
		if x < 5 || x > 7 {
			t.Errorf("expected a draw on [5, 7] received: %v", x)
		}
	}
}

// TestGeomRvs tests that geometric draws are positive integers
func TestGeomRvs(t *testing.T) {
	samples, err := Geom.Rvs(100, scalarTensor(0.3))
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range samples.Data().([]float64) {
		if x < 1 || x != math.Trunc(x) {
			t.Errorf("expected a positive integer draw received: %v", x)
		}
	}
}

// TestGeomVariate tests the geometric inversion sampler over the
// whole uniform range
func TestGeomVariate(t *testing.T) {
	// The bottom of the uniform range must map to the first trial,
	// not below the support
	if x := geomVariate(0.3, 0); x != 1 {
		t.Errorf("expected 1 received: %v", x)
	}
	if x := geomVariate(1, 0.5); x != 1 {
		t.Errorf("expected 1 received: %v", x)
	}

	// Inversion is non-decreasing in u
	prev := 0.0
	for _, u := range []float64{0, 0.1, 0.5, 0.9, 0.99, 0.9999} {
		x := geomVariate(0.2, u)
		if x < 1 || x != math.Trunc(x) {
			t.Errorf("expected a positive integer draw received: %v", x)
		}
		if x < prev {
			t.Errorf("expected a non-decreasing draw received: %v "+
				"after %v", x, prev)
		}
		prev = x
	}
}

// TestInverseGammaRvsClamp tests that inverse gamma draws are
// clamped to a finite range
func TestInverseGammaRvsClamp(t *testing.T) {
	// A tiny shape makes over- and underflow draws likely
	samples, err := Invgamma.Rvs(1000, scalarTensor(0.01),
		scalarTensor(1))
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range samples.Data().([]float64) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Errorf("expected a finite draw received: %v", x)
		}
		if x < 1e-10 || x > 1e10 {
			t.Errorf("expected a draw on [1e-10, 1e10] received: %v", x)
		}
	}
}

// TestDirichletRvs tests the two-level shape rule for Dirichlet
// draws
func TestDirichletRvs(t *testing.T) {
	const threshold float64 = 0.000001

	alpha := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{1, 2, 3}),
	)
	samples, err := Dirichlet.Rvs(10, alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{10, 3}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{10, 3},
			samples.Shape())
	}

	out := samples.Data().([]float64)
	for i := 0; i < 10; i++ {
		total := out[i*3] + out[i*3+1] + out[i*3+2]
		if math.Abs(total-1) > threshold {
			t.Errorf("expected row %v to sum to 1 received: %v", i, total)
		}
	}

	batched := tensor.New(
		tensor.WithShape(2, 3),
		tensor.WithBacking([]float64{1, 1, 1, 5, 5, 5}),
	)
	samples, err = Dirichlet.Rvs(4, batched)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{4, 2, 3}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{4, 2, 3},
			samples.Shape())
	}
}

// TestMultinomialRvs tests that multinomial draws sum to the trial
// count
func TestMultinomialRvs(t *testing.T) {
	p := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{0.2, 0.3, 0.5}),
	)
	samples, err := Multinomial.Rvs(10, scalarTensor(20), p)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{10, 3}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{10, 3},
			samples.Shape())
	}

	out := samples.Data().([]float64)
	for i := 0; i < 10; i++ {
		total := out[i*3] + out[i*3+1] + out[i*3+2]
		if total != 20 {
			t.Errorf("expected row %v to sum to 20 received: %v", i, total)
		}
	}
}

// TestMultivariateNormalRvs tests the two-level shape rule for
// multivariate normal draws
func TestMultivariateNormalRvs(t *testing.T) {
	mean := tensor.New(
		tensor.WithShape(2),
		tensor.WithBacking([]float64{0, 100}),
	)
	cov := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{1, 0, 0, 1}),
	)

	samples, err := MultivariateNormal.Rvs(20, mean, cov)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{20, 2}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{20, 2},
			samples.Shape())
	}

	out := samples.Data().([]float64)
	for i := 0; i < 20; i++ {
		if math.Abs(out[i*2]) > 8 {
			t.Errorf("draw %v too far from mean 0: %v", i, out[i*2])
		}
		if math.Abs(out[i*2+1]-100) > 8 {
			t.Errorf("draw %v too far from mean 100: %v", i, out[i*2+1])
		}
	}

	means := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{0, 0, 10, 10}),
	)
	covs := tensor.New(
		tensor.WithShape(2, 2, 2),
		tensor.WithBacking([]float64{1, 0, 0, 1, 1, 0, 0, 1}),
	)
	samples, err = MultivariateNormal.Rvs(5, means, covs)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{5, 2, 2}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{5, 2, 2},
			samples.Shape())
	}
}

// TestTruncNormRvs tests that truncated normal draws respect the
// truncation interval
func TestTruncNormRvs(t *testing.T) {
	samples, err := TruncNorm.Rvs(
		100,
		scalarTensor(-1),
		scalarTensor(2),
		scalarTensor(10),
		scalarTensor(3),
	)
	if err != nil {
		t.Fatal(err)
	}

	// Draws live on [loc + a*scale, loc + b*scale]
	for _, x := range samples.Data().([]float64) {
		if x < 7 || x > 16 {
			t.Errorf("expected a draw on [7, 16] received: %v", x)
		}
	}
}
