package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NBinom is the negative binomial distribution over the number of
// failures before the n'th success, parameterized by n and a success
// probability p. It has no backing distribution, so only Rvs and the
// mass functions are available.
var NBinom = nbinomDist{Dist{name: "nbinom"}}

type nbinomDist struct {
	Dist
}

// Rvs draws size variates as a gamma-Poisson mixture. n and p may be
// scalars or vectors.
func (nb nbinomDist) Rvs(size int, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(nb.name, size, []*tensor.Dense{n, p},
		func(p []float64) float64 {
			lambda := distuv.Gamma{
				Alpha: p[0],
				Beta:  p[1] / (1 - p[1]),
				Src:   source,
			}.Rand()
			return distuv.Poisson{Lambda: lambda, Src: source}.Rand()
		})
}

// LogPmf computes the log mass of x failures before the n'th success
// with probability p. n and p broadcast against x.
func (nb nbinomDist) LogPmf(x, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	return apply(nb.name, x, []*tensor.Dense{n, p},
		func(x float64, p []float64) float64 {
			return lgamma(x+p[0]) - lgamma(x+1) - lgamma(p[0]) +
				p[0]*math.Log(p[1]) + x*math.Log(1-p[1])
		},
		func(x float32, p []float32) float32 {
			return lgamma32(x+p[0]) - lgamma32(x+1) - lgamma32(p[0]) +
				p[0]*math32.Log(p[1]) + x*math32.Log(1-p[1])
		})
}

// Logpmf is LogPmf
func (nb nbinomDist) Logpmf(x, n, p *tensor.Dense) (*tensor.Dense,
	error) {
	return nb.LogPmf(x, n, p)
}

// Pmf computes the mass of x failures before the n'th success with
// probability p
func (nb nbinomDist) Pmf(x, n, p *tensor.Dense) (*tensor.Dense, error) {
	logPmf, err := nb.LogPmf(x, n, p)
	if err != nil {
		return nil, err
	}
	return expOf(nb.name, logPmf)
}
