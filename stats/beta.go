package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Beta is the beta distribution, parameterized by two positive shape
// parameters a and b.
var Beta = betaDist{Dist{
	name: "beta",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("beta", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewBeta(params[0], params[1])
	},
}}

type betaDist struct {
	Dist
}

// Rvs draws size variates. a and b may be scalars or vectors.
func (b betaDist) Rvs(size int, a, bShape *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(b.name, size, []*tensor.Dense{a, bShape},
		func(p []float64) float64 {
			return distuv.Beta{Alpha: p[0], Beta: p[1], Src: source}.Rand()
		})
}
