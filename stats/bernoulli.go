package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Bernoulli is the Bernoulli distribution, parameterized by a
// success probability p.
var Bernoulli = bernoulliDist{Dist{
	name: "bernoulli",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("bernoulli", 1, params); err != nil {
			return nil, err
		}
		return distribution.NewBernoulli(params[0])
	},
}}

type bernoulliDist struct {
	Dist
}

// Rvs draws size variates. p may be a scalar or a vector.
func (b bernoulliDist) Rvs(size int, p *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(b.name, size, []*tensor.Dense{p},
		func(p []float64) float64 {
			return distuv.Bernoulli{P: p[0], Src: source}.Rand()
		})
}
