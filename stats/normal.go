package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Normal is the normal distribution, parameterized by a location loc
// and a scale.
var Normal = normalDist{Dist{
	name: "normal",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("normal", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewNormal(params[0], params[1])
	},
}}

// Norm is Normal
var Norm = Normal

type normalDist struct {
	Dist
}

// Rvs draws size variates. loc and scale may be scalars or vectors.
func (n normalDist) Rvs(size int, loc, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(n.name, size, []*tensor.Dense{loc, scale},
		func(p []float64) float64 {
			return distuv.Normal{Mu: p[0], Sigma: p[1], Src: source}.Rand()
		})
}
