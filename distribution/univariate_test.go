package distribution

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// TestNormalLogProbScalar tests the LogProb and Cdf methods of the
// normal distribution with scalar parameters. All tests are
// completely randomized
func TestNormalLogProbScalar(t *testing.T) {
	const threshold float64 = 0.00001
	const tests int = 30
	rand.Seed(time.Now().UnixNano())

	for i := 0; i < tests; i++ {
		mean := (rand.Float64() - 0.5) * 2
		stddev := math.Exp(rand.Float64()) * 2
		target := distuv.Normal{Mu: mean, Sigma: stddev}

		n, err := NewNormal(
			tensor.New(tensor.FromScalar(mean)),
			tensor.New(tensor.FromScalar(stddev)),
		)
		if err != nil {
			t.Fatal(err)
		}

		x := target.Rand()
		logProb, err := n.LogProb(tensor.New(tensor.FromScalar(x)))
		if err != nil {
			t.Fatal(err)
		}
		if out := logProb.Data().(float64); math.Abs(
			out-target.LogProb(x)) > threshold {
			t.Errorf("expected: %v received: %v for x: %v",
				target.LogProb(x), out, x)
		}

		cdf, err := n.Cdf(tensor.New(tensor.FromScalar(x)))
		if err != nil {
			t.Fatal(err)
		}
		if out := cdf.Data().(float64); math.Abs(out-target.CDF(x)) >
			threshold {
			t.Errorf("expected: %v received: %v for x: %v", target.CDF(x),
				out, x)
		}
	}
}

// TestNormalBatch tests that a vector-parameterized normal broadcasts
// a batch of samples against its batch shape
func TestNormalBatch(t *testing.T) {
	const threshold float64 = 0.000001

	means := []float64{1, 1, 1}
	stddevs := []float64{1, 1, 1}
	n, err := NewNormal(
		tensor.New(tensor.WithShape(3), tensor.WithBacking(means)),
		tensor.New(tensor.WithShape(3), tensor.WithBacking(stddevs)),
	)
	if err != nil {
		t.Fatal(err)
	}

	if !n.BatchShape().Eq(tensor.Shape{3}) {
		t.Errorf("expected batch shape %v received: %v", tensor.Shape{3},
			n.BatchShape())
	}
	if !n.EventShape().Eq(tensor.Shape{}) {
		t.Errorf("expected empty event shape received: %v", n.EventShape())
	}

	samples := []float64{0, 1, 2, 3, 4, 5}
	prob, err := n.Prob(tensor.New(
		tensor.WithShape(2, 3),
		tensor.WithBacking(samples),
	))
	if err != nil {
		t.Fatal(err)
	}

	expected := []float64{
		0.24197072451914337, 0.3989422804014327, 0.24197072451914337,
		0.05399096651318806, 0.0044318484119380075, 0.00013383022576488534,
	}
	out := prob.Data().([]float64)
	for j := range out {
		if math.Abs(out[j]-expected[j]) > threshold {
			t.Errorf("expected: %v, received: %v, x: %v", expected[j],
				out[j], samples[j])
		}
	}

	// A value which does not broadcast against the batch shape is an
	// error
	if _, err := n.Prob(tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{0, 1, 2, 3}),
	)); err == nil {
		t.Error("expected an error for a shape-incompatible value")
	}
}

// TestGammaAgainstGonum tests the gamma distribution's forwarded
// methods against direct gonum invocation
func TestGammaAgainstGonum(t *testing.T) {
	const threshold float64 = 0.000001
	const tests int = 20
	rand.Seed(time.Now().UnixNano())

	for i := 0; i < tests; i++ {
		alpha := rand.Float64()*5 + 0.1
		beta := rand.Float64()*3 + 0.1
		target := distuv.Gamma{Alpha: alpha, Beta: beta}

		g, err := NewGamma(
			tensor.New(tensor.FromScalar(alpha)),
			tensor.New(tensor.FromScalar(beta)),
		)
		if err != nil {
			t.Fatal(err)
		}

		x := rand.Float64()*10 + 0.01
		logProb, err := g.LogProb(tensor.New(tensor.FromScalar(x)))
		if err != nil {
			t.Fatal(err)
		}
		if out := logProb.Data().(float64); math.Abs(
			out-target.LogProb(x)) > threshold {
			t.Errorf("expected: %v received: %v for x: %v",
				target.LogProb(x), out, x)
		}

		mean, err := g.Mean()
		if err != nil {
			t.Fatal(err)
		}
		if out := mean.Data().(float64); math.Abs(out-target.Mean()) >
			threshold {
			t.Errorf("expected mean: %v received: %v", target.Mean(), out)
		}

		variance, err := g.Variance()
		if err != nil {
			t.Fatal(err)
		}
		if out := variance.Data().(float64); math.Abs(
			out-target.Variance()) > threshold {
			t.Errorf("expected variance: %v received: %v",
				target.Variance(), out)
		}
	}
}

// TestUnivariateNotImplemented tests that unsupported statistics
// signal ErrNotImplemented
func TestUnivariateNotImplemented(t *testing.T) {
	u, err := NewUniform(
		tensor.New(tensor.FromScalar(0.0)),
		tensor.New(tensor.FromScalar(1.0)),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := u.Mode(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}

	s, err := NewStudentT(
		tensor.New(tensor.FromScalar(3.0)),
		tensor.New(tensor.FromScalar(0.0)),
		tensor.New(tensor.FromScalar(1.0)),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Entropy(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented received: %v", err)
	}
}

// TestUnivariateSampleShape tests the shape convention of Sample and
// SampleN
func TestUnivariateSampleShape(t *testing.T) {
	n, err := NewNormal(
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			[]float64{0, 10})),
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			[]float64{1, 1})),
	)
	if err != nil {
		t.Fatal(err)
	}

	samples, err := n.Sample(tensor.Shape{3, 4}, uint64(11))
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{3, 4, 2}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{3, 4, 2},
			samples.Shape())
	}

	samples, err = n.SampleN(5, uint64(11))
	if err != nil {
		t.Fatal(err)
	}
	if !samples.Shape().Eq(tensor.Shape{5, 2}) {
		t.Errorf("expected shape %v received: %v", tensor.Shape{5, 2},
			samples.Shape())
	}

	// The two batch elements are far apart, so draws must stay near
	// their own mean
	out := samples.Data().([]float64)
	for i := 0; i < 5; i++ {
		if math.Abs(out[2*i]) > 6 {
			t.Errorf("draw %v too far from mean 0: %v", i, out[2*i])
		}
		if math.Abs(out[2*i+1]-10) > 6 {
			t.Errorf("draw %v too far from mean 10: %v", i, out[2*i+1])
		}
	}
}

// TestCategorical tests the categorical distribution against direct
// computation
func TestCategorical(t *testing.T) {
	const threshold float64 = 0.000001

	probs := []float64{0.2, 0.5, 0.3}
	c, err := NewCategorical(tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking(probs),
	))
	if err != nil {
		t.Fatal(err)
	}

	logProb, err := c.LogProb(tensor.New(tensor.FromScalar(1.0)))
	if err != nil {
		t.Fatal(err)
	}
	if out := logProb.Data().(float64); math.Abs(out-math.Log(0.5)) >
		threshold {
		t.Errorf("expected: %v received: %v", math.Log(0.5), out)
	}

	mode, err := c.Mode()
	if err != nil {
		t.Fatal(err)
	}
	if out := mode.Data().(float64); out != 1 {
		t.Errorf("expected mode 1 received: %v", out)
	}

	entropy, err := c.Entropy()
	if err != nil {
		t.Fatal(err)
	}
	expected := 0.0
	for _, p := range probs {
		expected -= p * math.Log(p)
	}
	if out := entropy.Data().(float64); math.Abs(out-expected) > threshold {
		t.Errorf("expected entropy: %v received: %v", expected, out)
	}
}
