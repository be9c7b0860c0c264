package stats

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward"
	"github.com/anhtu/edward/distribution"
)

// Multinomial is the multinomial distribution over counts of n
// outcomes falling into k buckets with probabilities p. It has no
// backing distribution, so only Rvs, the mass functions, and Entropy
// are available.
var Multinomial = multinomialDist{Dist{name: "multinomial"}}

type multinomialDist struct {
	Dist
}

// Rvs draws size count vectors. A length k probability vector with a
// scalar n gives a (size, k) matrix. A (b, k) probability matrix
// with a length b count vector gives a (size, b, k) batch of draws.
func (m multinomialDist) Rvs(size int, n, p *tensor.Dense) (
	*tensor.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%v: size must be positive but got %v",
			m.name, size)
	}

	counts, err := floats64(m.name, n)
	if err != nil {
		return nil, err
	}
	probs, err := floats64(m.name, p)
	if err != nil {
		return nil, err
	}

	switch p.Dims() {
	case 1:
		k := p.Shape()[0]
		out := make([]float64, size*k)
		for s := 0; s < size; s++ {
			draw := distribution.RandMultinomial(int(counts[0]), probs,
				source)
			copy(out[s*k:(s+1)*k], draw)
		}
		return shaped(tensor.Shape{size, k}, out), nil

	case 2:
		b, k := p.Shape()[0], p.Shape()[1]
		if len(counts) != b && len(counts) != 1 {
			return nil, fmt.Errorf("%v: expected %d counts but got %d",
				m.name, b, len(counts))
		}

		out := make([]float64, size*b*k)
		for s := 0; s < size; s++ {
			for i := 0; i < b; i++ {
				draw := distribution.RandMultinomial(
					int(broadcast(counts, i)),
					probs[i*k:(i+1)*k],
					source,
				)
				copy(out[(s*b+i)*k:(s*b+i+1)*k], draw)
			}
		}
		return shaped(tensor.Shape{size, b, k}, out), nil

	default:
		return nil, fmt.Errorf("%v: p must have rank 1 or 2 but has "+
			"rank %d", m.name, p.Dims())
	}
}

// LogPmf computes the log mass of the count vectors in x, where the
// last axis of x is the bucket axis. n holds the total count for
// each count vector and broadcasts against the leading axes of x, as
// does p when given as a single probability vector. The result drops
// the bucket axis.
func (m multinomialDist) LogPmf(x, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	if x == nil || x.Dims() == 0 {
		return nil, fmt.Errorf("%v: x must have at least rank 1", m.name)
	}

	k := x.Shape()[x.Dims()-1]
	rows := prodInts(x.Shape()[:x.Dims()-1])

	counts, err := floats64(m.name, n)
	if err != nil {
		return nil, err
	}
	if len(counts) != 1 && len(counts) != rows {
		return nil, fmt.Errorf("%v: expected 1 or %d counts but got %d",
			m.name, rows, len(counts))
	}

	probs, err := floats64(m.name, p)
	if err != nil {
		return nil, err
	}
	if len(probs) != k && len(probs) != rows*k {
		return nil, fmt.Errorf("%v: expected %d or %d probabilities but "+
			"got %d", m.name, k, rows*k, len(probs))
	}

	if x.Dtype() == tensor.Float32 {
		xs, err := floats32(m.name, x)
		if err != nil {
			return nil, err
		}

		out := make([]float32, rows)
		for i := 0; i < rows; i++ {
			lp := lgamma32(float32(broadcast(counts, i)) + 1)
			for j := 0; j < k; j++ {
				count := xs[i*k+j]
				prob := probs[j]
				if len(probs) == rows*k {
					prob = probs[i*k+j]
				}
				lp += -lgamma32(count+1) +
					count*math32.Log(float32(prob))
			}
			out[i] = lp
		}
		return shaped32(x.Shape()[:x.Dims()-1].Clone(), out), nil
	}

	xs, err := floats64(m.name, x)
	if err != nil {
		return nil, err
	}

	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		lp := lgamma(broadcast(counts, i) + 1)
		for j := 0; j < k; j++ {
			count := xs[i*k+j]
			prob := probs[j]
			if len(probs) == rows*k {
				prob = probs[i*k+j]
			}
			lp += -lgamma(count+1) + count*math.Log(prob)
		}
		out[i] = lp
	}
	return shaped(x.Shape()[:x.Dims()-1].Clone(), out), nil
}

// Logpmf is LogPmf
func (m multinomialDist) Logpmf(x, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	return m.LogPmf(x, n, p)
}

// Pmf computes the mass of the count vectors in x
func (m multinomialDist) Pmf(x, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	logPmf, err := m.LogPmf(x, n, p)
	if err != nil {
		return nil, err
	}
	return expOf(m.name, logPmf)
}

// Entropy computes the exact entropy by enumerating every length k
// count vector summing to n and reducing the mass function over the
// whole support. The support grows combinatorially in n and k, so
// this is only tractable for small problems. A vector n with a
// matrix p computes one entropy per batch element.
func (m multinomialDist) Entropy(n, p *tensor.Dense) (*tensor.Dense,
	error) {
	counts, err := floats64(m.name, n)
	if err != nil {
		return nil, err
	}
	probs, err := floats64(m.name, p)
	if err != nil {
		return nil, err
	}

	switch p.Dims() {
	case 1:
		if len(counts) != 1 {
			return nil, fmt.Errorf("%v: expected a scalar count but got "+
				"%d counts", m.name, len(counts))
		}

		ent, err := multinomialEntropy(int(counts[0]), probs)
		if err != nil {
			return nil, fmt.Errorf("%v: %v", m.name, err)
		}
		return tensor.New(tensor.FromScalar(ent)), nil

	case 2:
		b, k := p.Shape()[0], p.Shape()[1]
		if len(counts) != b {
			return nil, fmt.Errorf("%v: expected %d counts but got %d",
				m.name, b, len(counts))
		}

		out := make([]float64, b)
		for i := 0; i < b; i++ {
			out[i], err = multinomialEntropy(int(counts[i]),
				probs[i*k:(i+1)*k])
			if err != nil {
				return nil, fmt.Errorf("%v: %v", m.name, err)
			}
		}
		return shaped(tensor.Shape{b}, out), nil

	default:
		return nil, fmt.Errorf("%v: p must have rank 1 or 2 but has "+
			"rank %d", m.name, p.Dims())
	}
}

// multinomialEntropy evaluates -sum exp(lp) * lp over the support
// with a throwaway expression graph
func multinomialEntropy(n int, p []float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("n must be non-negative but got %v", n)
	}

	support := compositions(n, len(p))
	rows := len(support) / len(p)

	g := G.NewGraph()
	x := G.NewMatrix(
		g,
		tensor.Float64,
		G.WithShape(rows, len(p)),
		G.WithValue(tensor.New(
			tensor.WithShape(rows, len(p)),
			tensor.WithBacking(support),
		)),
		G.WithName("support"),
	)
	logProbs := G.NewVector(
		g,
		tensor.Float64,
		G.WithShape(len(p)),
		G.WithValue(tensor.New(
			tensor.WithShape(len(p)),
			tensor.WithBacking(logs(p)),
		)),
		G.WithName("logProbs"),
	)
	one := G.NewConstant(1.0)

	xPlusOne, err := G.Add(x, one)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	lgammaX, err := edward.Lgamma(xPlusOne)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	sumLgammaX, err := G.Sum(lgammaX, 1)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}

	// Matrix-vector product computes the per-row sum of x * log(p)
	crossTerm, err := G.Mul(x, logProbs)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}

	lgammaN := lgamma(float64(n) + 1)
	logPmf, err := G.Sub(crossTerm, sumLgammaX)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	logPmf, err = G.Add(logPmf, G.NewConstant(lgammaN))
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}

	pmf, err := G.Exp(logPmf)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	weighted, err := G.HadamardProd(pmf, logPmf)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	total, err := G.Sum(weighted)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}
	entropy, err := G.Neg(total)
	if err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}

	var out G.Value
	G.Read(entropy, &out)

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		return 0, fmt.Errorf("entropy: %v", err)
	}

	return out.Data().(float64), nil
}

// compositions lists every vector of k non-negative integers summing
// to n, flattened row-major
func compositions(n, k int) []float64 {
	if k == 1 {
		return []float64{float64(n)}
	}

	var out []float64
	for i := 0; i <= n; i++ {
		for _, rest := range chunks(compositions(n-i, k-1), k-1) {
			out = append(out, float64(i))
			out = append(out, rest...)
		}
	}
	return out
}

func chunks(flat []float64, size int) [][]float64 {
	out := make([][]float64, 0, len(flat)/size)
	for i := 0; i+size <= len(flat); i += size {
		out = append(out, flat[i:i+size])
	}
	return out
}

func logs(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, elem := range p {
		out[i] = math.Log(elem)
	}
	return out
}
