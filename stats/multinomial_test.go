package stats

import (
	"math"
	"testing"

	"gorgonia.org/tensor"
)

// TestMultinomialLogPmf tests the multinomial log mass against
// direct computation
func TestMultinomialLogPmf(t *testing.T) {
	const threshold float64 = 0.00001

	x := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{2, 1, 1}),
	)
	p := tensor.New(
		tensor.WithShape(3),
		tensor.WithBacking([]float64{0.5, 0.3, 0.2}),
	)

	// 4! / (2! 1! 1!) = 12
	expected := math.Log(12 * math.Pow(0.5, 2) * 0.3 * 0.2)

	logPmf, err := Multinomial.Logpmf(x, scalarTensor(4), p)
	if err != nil {
		t.Fatal(err)
	}
	if out := logPmf.Data().(float64); math.Abs(out-expected) >
		threshold {
		t.Errorf("expected: %v received: %v", expected, out)
	}
}

// TestMultinomialLogPmfReduce tests that the bucket axis is reduced
// away for batched count vectors
func TestMultinomialLogPmfReduce(t *testing.T) {
	const threshold float64 = 0.00001

	x := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{3, 0, 1, 2}),
	)
	p := tensor.New(
		tensor.WithShape(2),
		tensor.WithBacking([]float64{0.5, 0.5}),
	)

	logPmf, err := Multinomial.Logpmf(x, scalarTensor(3), p)
	if err != nil {
		t.Fatal(err)
	}
	if !logPmf.Shape().Eq(tensor.Shape{2}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{2},
			logPmf.Shape())
	}

	expected := []float64{
		math.Log(math.Pow(0.5, 3)),
		math.Log(3 * math.Pow(0.5, 3)),
	}
	out := logPmf.Data().([]float64)
	for i := range expected {
		if math.Abs(out[i]-expected[i]) > threshold {
			t.Errorf("expected: %v received: %v", expected[i], out[i])
		}
	}
}

// TestMultinomialEntropy tests the exact entropy against brute force
// over the support
func TestMultinomialEntropy(t *testing.T) {
	const threshold float64 = 0.0001

	n := 3
	p := []float64{0.5, 0.5}

	// Brute force over (x, n - x)
	expected := 0.0
	for x := 0; x <= n; x++ {
		lg1, _ := math.Lgamma(float64(n) + 1)
		lg2, _ := math.Lgamma(float64(x) + 1)
		lg3, _ := math.Lgamma(float64(n-x) + 1)
		lp := lg1 - lg2 - lg3 + float64(x)*math.Log(p[0]) +
			float64(n-x)*math.Log(p[1])
		expected -= math.Exp(lp) * lp
	}

	entropy, err := Multinomial.Entropy(
		scalarTensor(float64(n)),
		tensor.New(tensor.WithShape(2), tensor.WithBacking(
			append([]float64{}, p...))),
	)
	if err != nil {
		t.Fatal(err)
	}
	if out := entropy.Data().(float64); math.Abs(out-expected) >
		threshold {
		t.Errorf("expected: %v received: %v", expected, out)
	}
}

// TestMultinomialEntropyBatch tests batched entropy computation
func TestMultinomialEntropyBatch(t *testing.T) {
	const threshold float64 = 0.0001

	n := tensor.New(
		tensor.WithShape(2),
		tensor.WithBacking([]float64{2, 2}),
	)
	p := tensor.New(
		tensor.WithShape(2, 2),
		tensor.WithBacking([]float64{0.5, 0.5, 0.5, 0.5}),
	)

	entropy, err := Multinomial.Entropy(n, p)
	if err != nil {
		t.Fatal(err)
	}
	if !entropy.Shape().Eq(tensor.Shape{2}) {
		t.Fatalf("expected shape %v received: %v", tensor.Shape{2},
			entropy.Shape())
	}

	// Fair coin, two flips: mass (1/4, 1/2, 1/4)
	expected := -2*0.25*math.Log(0.25) - 0.5*math.Log(0.5)
	out := entropy.Data().([]float64)
	for i := range out {
		if math.Abs(out[i]-expected) > threshold {
			t.Errorf("expected: %v received: %v", expected, out[i])
		}
	}
}
