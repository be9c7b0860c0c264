package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Gamma is the gamma distribution. The backing distribution is
// parameterized by a shape alpha and a rate beta, while Rvs follows
// the shape and scale convention.
var Gamma = gammaDist{Dist{
	name: "gamma",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("gamma", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewGamma(params[0], params[1])
	},
}}

type gammaDist struct {
	Dist
}

// Rvs draws size variates with shape a and the given scale, the
// reciprocal of the rate. a and scale may be scalars or vectors.
func (g gammaDist) Rvs(size int, a, scale *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(g.name, size, []*tensor.Dense{a, scale},
		func(p []float64) float64 {
			return distuv.Gamma{
				Alpha: p[0],
				Beta:  1 / p[1],
				Src:   source,
			}.Rand()
		})
}
