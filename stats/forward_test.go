package stats

import (
	"errors"
	"math"
	"testing"

	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// TestForwarding tests that adapter calls agree with direct backend
// invocation
func TestForwarding(t *testing.T) {
	const threshold float64 = 0.000001

	loc := tensor.New(tensor.FromScalar(1.5))
	scale := tensor.New(tensor.FromScalar(2.0))
	x := tensor.New(tensor.FromScalar(0.25))

	backend, err := distribution.NewNormal(loc, scale)
	if err != nil {
		t.Fatal(err)
	}

	expected, err := backend.LogProb(x)
	if err != nil {
		t.Fatal(err)
	}
	logProb, err := Normal.LogProb(x, loc, scale)
	if err != nil {
		t.Fatal(err)
	}
	if out := logProb.Data().(float64); math.Abs(
		out-expected.Data().(float64)) > threshold {
		t.Errorf("expected: %v received: %v", expected.Data(), out)
	}

	expected, err = backend.Entropy()
	if err != nil {
		t.Fatal(err)
	}
	entropy, err := Normal.Entropy(loc, scale)
	if err != nil {
		t.Fatal(err)
	}
	if out := entropy.Data().(float64); math.Abs(
		out-expected.Data().(float64)) > threshold {
		t.Errorf("expected: %v received: %v", expected.Data(), out)
	}

	// The density aliases all reach the same backend method
	logPdf, err := Normal.Logpdf(x, loc, scale)
	if err != nil {
		t.Fatal(err)
	}
	if out := logPdf.Data().(float64); math.Abs(
		out-logProb.Data().(float64)) > threshold {
		t.Errorf("expected: %v received: %v", logProb.Data(), out)
	}
}

// TestForwardingShapes tests the shape methods of a batched adapter
func TestForwardingShapes(t *testing.T) {
	alpha := tensor.New(
		tensor.WithShape(2, 3),
		tensor.WithBacking([]float64{1, 2, 3, 4, 5, 6}),
	)

	batch, err := Dirichlet.BatchShape(alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !batch.Eq(tensor.Shape{2}) {
		t.Errorf("expected batch shape %v received: %v", tensor.Shape{2},
			batch)
	}

	event, err := Dirichlet.GetEventShape(alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !event.Eq(tensor.Shape{3}) {
		t.Errorf("expected event shape %v received: %v", tensor.Shape{3},
			event)
	}

	samples, err := Dirichlet.SampleN(4, uint64(13), alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{4, 2, 3}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{4, 2, 3},
			samples.Shape())
	}

	samples, err = Dirichlet.Sample(tensor.Shape{4, 5}, uint64(13), alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{4, 5, 2, 3}) {
		t.Errorf("expected shape %v received: %v",
			tensor.Shape{4, 5, 2, 3}, samples.Shape())
	}
}

// TestSampleSeed tests that the seed passes through to the backing
// distribution
func TestSampleSeed(t *testing.T) {
	loc := tensor.New(tensor.FromScalar(0.0))
	scale := tensor.New(tensor.FromScalar(1.0))

	first, err := Normal.SampleN(6, uint64(21), loc, scale)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Normal.SampleN(6, uint64(21), loc, scale)
	if err != nil {
		t.Fatal(err)
	}

	a := first.Data().([]float64)
	b := second.Data().([]float64)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("expected equal draws for equal seeds, received: "+
				"%v and %v", a[i], b[i])
		}
	}
}

// TestNoBackend tests that distributions without a backing
// distribution signal ErrNotImplemented for forwarded methods
func TestNoBackend(t *testing.T) {
	n := tensor.New(tensor.FromScalar(3.0))
	p := tensor.New(tensor.WithShape(2), tensor.WithBacking(
		[]float64{0.5, 0.5}))

	if _, err := Multinomial.Mean(n, p); !errors.Is(err,
		ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}
	if _, err := Binom.Sample(tensor.Shape{3}, uint64(7), n,
		p); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}
	if _, err := Poisson.Cdf(n, n); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}

	// The base sampler is likewise unavailable
	if _, err := Categorical.Rvs(3, p); !errors.Is(err,
		ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}
}

// TestUnsupportedStatistic tests that backend errors propagate
// through the adapter
func TestUnsupportedStatistic(t *testing.T) {
	a := tensor.New(tensor.FromScalar(0.0))
	b := tensor.New(tensor.FromScalar(1.0))

	if _, err := Uniform.Mode(a, b); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}
}
