package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// mvKernel is the vector view of one batch element of a multivariate
// distribution. Optional operations are nil when the distribution
// does not support them.
type mvKernel struct {
	logProb func(x []float64) float64
	rand    func() []float64
	entropy func() float64
	mean    func() []float64
	mode    func() []float64
}

// multivariate implements Distribution for vector-event
// distributions. Parameters either describe a single distribution or
// carry one extra leading batch dimension holding n element-wise
// distributions.
type multivariate struct {
	name    string
	n       int
	batched bool
	event   int
	maker   func(i int, src rand.Source) mvKernel
}

func (m *multivariate) BatchShape() tensor.Shape {
	if m.batched {
		return tensor.Shape{m.n}
	}
	return tensor.Shape{}
}

func (m *multivariate) EventShape() tensor.Shape {
	return tensor.Shape{m.event}
}

// rows splits value into rows of the event length and checks that the
// row count broadcasts against the batch.
func (m *multivariate) rows(method string,
	value *tensor.Dense) ([][]float64, error) {
	if value == nil {
		return nil, fmt.Errorf("%v: %v: nil value", m.name, method)
	}

	vs := value.Shape()
	if len(vs) < 1 || vs[len(vs)-1] != m.event {
		return nil, fmt.Errorf("%v: %v: expected value shape to end with "+
			"event shape %v but got %v", m.name, method, m.EventShape(), vs)
	}

	vals, err := float64s(value)
	if err != nil {
		return nil, fmt.Errorf("%v: %v: %v", m.name, method, err)
	}

	numRows := len(vals) / m.event
	if numRows%m.n != 0 {
		return nil, fmt.Errorf("%v: %v: expected value shape to be "+
			"compatible with batch shape %v but got %v", m.name, method,
			m.BatchShape(), vs)
	}

	out := make([][]float64, numRows)
	for r := range out {
		out[r] = vals[r*m.event : (r+1)*m.event]
	}

	return out, nil
}

func (m *multivariate) LogProb(value *tensor.Dense) (*tensor.Dense, error) {
	rows, err := m.rows("logProb", value)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(rows))
	for r, row := range rows {
		out[r] = m.maker(r%m.n, nil).logProb(row)
	}

	vs := value.Shape()
	return newDense(vs[:len(vs)-1].Clone(), out), nil
}

func (m *multivariate) Prob(value *tensor.Dense) (*tensor.Dense, error) {
	rows, err := m.rows("prob", value)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(rows))
	for r, row := range rows {
		out[r] = math.Exp(m.maker(r%m.n, nil).logProb(row))
	}

	vs := value.Shape()
	return newDense(vs[:len(vs)-1].Clone(), out), nil
}

func (m *multivariate) LogCdf(*tensor.Dense) (*tensor.Dense, error) {
	return nil, notImplemented(m.name, "logCdf")
}

func (m *multivariate) Cdf(*tensor.Dense) (*tensor.Dense, error) {
	return nil, notImplemented(m.name, "cdf")
}

func (m *multivariate) Entropy() (*tensor.Dense, error) {
	if m.maker(0, nil).entropy == nil {
		return nil, notImplemented(m.name, "entropy")
	}

	out := make([]float64, m.n)
	for i := range out {
		out[i] = m.maker(i, nil).entropy()
	}

	return newDense(m.BatchShape(), out), nil
}

// vectorStat computes a per-batch-element vector statistic, returning
// a tensor with shape batch shape + event shape.
func (m *multivariate) vectorStat(method string,
	sel func(k mvKernel) func() []float64) (*tensor.Dense, error) {
	if sel(m.maker(0, nil)) == nil {
		return nil, notImplemented(m.name, method)
	}

	out := make([]float64, 0, m.n*m.event)
	for i := 0; i < m.n; i++ {
		out = append(out, sel(m.maker(i, nil))()...)
	}

	outShape := append(m.BatchShape(), m.event)
	return newDense(outShape, out), nil
}

func (m *multivariate) Mean() (*tensor.Dense, error) {
	return m.vectorStat("mean", func(k mvKernel) func() []float64 {
		return k.mean
	})
}

func (m *multivariate) Mode() (*tensor.Dense, error) {
	return m.vectorStat("mode", func(k mvKernel) func() []float64 {
		return k.mode
	})
}

func (m *multivariate) Variance() (*tensor.Dense, error) {
	return nil, notImplemented(m.name, "variance")
}

func (m *multivariate) StdDev() (*tensor.Dense, error) {
	return nil, notImplemented(m.name, "stdDev")
}

func (m *multivariate) Sample(sampleShape tensor.Shape,
	seed uint64) (*tensor.Dense, error) {
	src := rand.NewSource(seed)

	samples := prodInts(sampleShape)
	if samples < 1 {
		return nil, fmt.Errorf("%v: sample: expected a positive number of "+
			"samples but got shape %v", m.name, sampleShape)
	}

	kernels := make([]mvKernel, m.n)
	for i := range kernels {
		kernels[i] = m.maker(i, src)
	}

	out := make([]float64, 0, samples*m.n*m.event)
	for s := 0; s < samples; s++ {
		for i := 0; i < m.n; i++ {
			out = append(out, kernels[i].rand()...)
		}
	}

	outShape := append(sampleShape.Clone(), m.BatchShape()...)
	outShape = append(outShape, m.event)
	return newDense(outShape, out), nil
}

func (m *multivariate) SampleN(n int, seed uint64) (*tensor.Dense, error) {
	return m.Sample(tensor.Shape{n}, seed)
}

// RandMultinomial draws category counts for n trials over the event
// probabilities p by repeated binomial thinning. The counts sum to n.
func RandMultinomial(n int, p []float64, src rand.Source) []float64 {
	counts := make([]float64, len(p))

	remaining := n
	rest := 1.0
	for i := 0; i < len(p)-1; i++ {
		if remaining == 0 {
			break
		}

		prob := p[i] / rest
		if prob > 1 {
			prob = 1
		}
		b := distuv.Binomial{N: float64(remaining), P: prob, Src: src}
		c := b.Rand()

		counts[i] = c
		remaining -= int(c)
		rest -= p[i]
	}
	counts[len(p)-1] = float64(remaining)

	return counts
}
