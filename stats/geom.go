package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gorgonia.org/tensor"
)

// Geom is the geometric distribution over the number of trials until
// the first success, parameterized by a success probability p. It
// has no backing distribution, so only Rvs and the mass functions
// are available.
var Geom = geomDist{Dist{name: "geom"}}

type geomDist struct {
	Dist
}

// Rvs draws size variates by inversion. p may be a scalar or a
// vector.
func (g geomDist) Rvs(size int, p *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(g.name, size, []*tensor.Dense{p},
		func(p []float64) float64 {
			return geomVariate(p[0], rng.Float64())
		})
}

// geomVariate inverts the geometric cumulative distribution at
// u in [0, 1). u = 0 would invert to 0, below the support, so draws
// are clamped to at least one trial.
func geomVariate(p, u float64) float64 {
	if p >= 1 {
		return 1
	}

	x := math.Ceil(math.Log(1-u) / math.Log(1-p))
	if x < 1 {
		return 1
	}
	return x
}

// LogPmf computes the log mass of needing x trials for the first
// success with probability p. p broadcasts against x.
func (g geomDist) LogPmf(x, p *tensor.Dense) (*tensor.Dense, error) {
	return apply(g.name, x, []*tensor.Dense{p},
		func(x float64, p []float64) float64 {
			return (x-1)*math.Log(1-p[0]) + math.Log(p[0])
		},
		func(x float32, p []float32) float32 {
			return (x-1)*math32.Log(1-p[0]) + math32.Log(p[0])
		})
}

// Logpmf is LogPmf
func (g geomDist) Logpmf(x, p *tensor.Dense) (*tensor.Dense, error) {
	return g.LogPmf(x, p)
}

// Pmf computes the mass of needing x trials for the first success
// with probability p
func (g geomDist) Pmf(x, p *tensor.Dense) (*tensor.Dense, error) {
	logPmf, err := g.LogPmf(x, p)
	if err != nil {
		return nil, err
	}
	return expOf(g.name, logPmf)
}
