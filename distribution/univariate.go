package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

// kernel is the scalar view of one batch element of a univariate
// distribution. Optional operations are nil when the distribution
// does not support them.
type kernel struct {
	logProb  func(x float64) float64
	cdf      func(x float64) float64
	rand     func() float64
	entropy  func() float64
	mean     func() float64
	variance func() float64
	stdDev   func() float64
	mode     func() float64
}

// univariate implements Distribution for scalar-event distributions.
// The maker function returns the kernel of batch element i, wired to
// src for sampling; src may be nil for operations that do not sample.
type univariate struct {
	name  string
	batch tensor.Shape
	n     int
	maker func(i int, src rand.Source) kernel
}

func newUnivariate(name string, batch tensor.Shape,
	maker func(i int, src rand.Source) kernel) *univariate {
	return &univariate{
		name:  name,
		batch: batch.Clone(),
		n:     prodInts(batch),
		maker: maker,
	}
}

func (u *univariate) BatchShape() tensor.Shape { return u.batch.Clone() }

func (u *univariate) EventShape() tensor.Shape { return tensor.Shape{} }

// each evaluates f on every element of value with the batch kernel it
// broadcasts against. The value must have the batch shape, possibly
// with extra leading sample dimensions.
func (u *univariate) each(method string, value *tensor.Dense,
	f func(k kernel, x float64) float64) (*tensor.Dense, error) {
	if value == nil {
		return nil, fmt.Errorf("%v: %v: nil value", u.name, method)
	}

	vals, err := float64s(value)
	if err != nil {
		return nil, fmt.Errorf("%v: %v: %v", u.name, method, err)
	}

	vs := value.Shape()
	if len(u.batch) > 0 {
		if len(vs) < len(u.batch) ||
			!tensor.Shape(vs[len(vs)-len(u.batch):]).Eq(u.batch) {
			return nil, fmt.Errorf("%v: %v: expected value shape to match "+
				"batch shape %v at all dimensions except sample dimensions "+
				"but got %v", u.name, method, u.batch, vs)
		}
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = f(u.maker(i%u.n, nil), v)
	}

	return newDense(vs.Clone(), out), nil
}

func (u *univariate) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	return u.each("logProb", value, func(k kernel, x float64) float64 {
		return k.logProb(x)
	})
}

func (u *univariate) Prob(value *tensor.Dense) (*tensor.Dense, error) {
	return u.each("prob", value, func(k kernel, x float64) float64 {
		return math.Exp(k.logProb(x))
	})
}

func (u *univariate) Cdf(value *tensor.Dense) (*tensor.Dense, error) {
	if u.maker(0, nil).cdf == nil {
		return nil, notImplemented(u.name, "cdf")
	}

	return u.each("cdf", value, func(k kernel, x float64) float64 {
		return k.cdf(x)
	})
}

func (u *univariate) LogCdf(value *tensor.Dense) (*tensor.Dense, error) {
	if u.maker(0, nil).cdf == nil {
		return nil, notImplemented(u.name, "logCdf")
	}

	return u.each("logCdf", value, func(k kernel, x float64) float64 {
		return math.Log(k.cdf(x))
	})
}

// stat computes a per-batch-element scalar statistic, returning a
// tensor with the batch shape.
func (u *univariate) stat(method string,
	sel func(k kernel) func() float64) (*tensor.Dense, error) {
	if sel(u.maker(0, nil)) == nil {
		return nil, notImplemented(u.name, method)
	}

	out := make([]float64, u.n)
	for i := range out {
		out[i] = sel(u.maker(i, nil))()
	}

	return newDense(u.batch.Clone(), out), nil
}

func (u *univariate) Entropy() (*tensor.Dense, error) {
	return u.stat("entropy", func(k kernel) func() float64 { return k.entropy })
}

func (u *univariate) Mean() (*tensor.Dense, error) {
	return u.stat("mean", func(k kernel) func() float64 { return k.mean })
}

func (u *univariate) Variance() (*tensor.Dense, error) {
	return u.stat("variance", func(k kernel) func() float64 {
		return k.variance
	})
}

func (u *univariate) StdDev() (*tensor.Dense, error) {
	return u.stat("stdDev", func(k kernel) func() float64 { return k.stdDev })
}

func (u *univariate) Mode() (*tensor.Dense, error) {
	return u.stat("mode", func(k kernel) func() float64 { return k.mode })
}

func (u *univariate) Sample(sampleShape tensor.Shape,
	seed uint64) (*tensor.Dense, error) {
	src := rand.NewSource(seed)

	samples := prodInts(sampleShape)
	if samples < 1 {
		return nil, fmt.Errorf("%v: sample: expected a positive number of "+
			"samples but got shape %v", u.name, sampleShape)
	}

	// All batch elements draw from a single seeded source
	kernels := make([]kernel, u.n)
	for i := range kernels {
		kernels[i] = u.maker(i, src)
	}

	out := make([]float64, samples*u.n)
	for s := 0; s < samples; s++ {
		for i := 0; i < u.n; i++ {
			out[s*u.n+i] = kernels[i].rand()
		}
	}

	outShape := append(sampleShape.Clone(), u.batch...)
	return newDense(outShape, out), nil
}

func (u *univariate) SampleN(n int, seed uint64) (*tensor.Dense, error) {
	return u.Sample(tensor.Shape{n}, seed)
}
