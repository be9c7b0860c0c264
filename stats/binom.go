package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// Binom is the binomial distribution, parameterized by a number of
// trials n and a success probability p. It has no backing
// distribution, so only Rvs and the mass functions are available.
var Binom = binomDist{Dist{name: "binom"}}

type binomDist struct {
	Dist
}

// Rvs draws size variates. n and p may be scalars or vectors.
func (b binomDist) Rvs(size int, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(b.name, size, []*tensor.Dense{n, p},
		func(p []float64) float64 {
			return distuv.Binomial{N: p[0], P: p[1], Src: source}.Rand()
		})
}

// LogPmf computes the log mass of x counts out of n trials with
// success probability p. n and p broadcast against x.
func (b binomDist) LogPmf(x, n, p *tensor.Dense) (*tensor.Dense, error) {
	return apply(b.name, x, []*tensor.Dense{n, p},
		func(x float64, p []float64) float64 {
			return lgamma(p[0]+1) - lgamma(x+1) - lgamma(p[0]-x+1) +
				x*math.Log(p[1]) + (p[0]-x)*math.Log(1-p[1])
		},
		func(x float32, p []float32) float32 {
			return lgamma32(p[0]+1) - lgamma32(x+1) - lgamma32(p[0]-x+1) +
				x*math32.Log(p[1]) + (p[0]-x)*math32.Log(1-p[1])
		})
}

// Logpmf is LogPmf
func (b binomDist) Logpmf(x, n, p *tensor.Dense) (*tensor.Dense, error) {
	return b.LogPmf(x, n, p)
}

// Pmf computes the mass of x counts out of n trials with success
// probability p
func (b binomDist) Pmf(x, n, p *tensor.Dense) (*tensor.Dense, error) {
	logPmf, err := b.LogPmf(x, n, p)
	if err != nil {
		return nil, err
	}
	return expOf(b.name, logPmf)
}
