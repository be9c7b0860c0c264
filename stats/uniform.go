package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Uniform is the continuous uniform distribution. The backing
// distribution is parameterized by its boundaries a and b, while Rvs
// follows the location and width convention.
var Uniform = uniformDist{Dist{
	name: "uniform",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("uniform", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewUniform(params[0], params[1])
	},
}}

type uniformDist struct {
	Dist
}

// Rvs draws size variates uniform on [loc, loc+scale). loc and scale
// may be scalars or vectors.
func (u uniformDist) Rvs(size int, loc, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(u.name, size, []*tensor.Dense{loc, scale},
		func(p []float64) float64 {
			return distuv.Uniform{
				Min: p[0],
				Max: p[0] + p[1],
				Src: source,
			}.Rand()
		})
}
