package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// InverseGamma is the inverse gamma distribution in the shape and
// scale parameterization
var InverseGamma = inverseGammaDist{Dist{
	name: "inverse gamma",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("inverse gamma", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewInverseGamma(params[0], params[1])
	},
}}

// Invgamma is InverseGamma
var Invgamma = InverseGamma

type inverseGammaDist struct {
	Dist
}

// Rvs draws size variates with shape a and the given scale, as the
// reciprocal of a gamma draw. a and scale may be scalars or vectors.
// Draws are clamped away from zero and infinity so that downstream
// densities stay finite.
func (i inverseGammaDist) Rvs(size int, a, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(i.name, size, []*tensor.Dense{a, scale},
		func(p []float64) float64 {
			x := 1 / distuv.Gamma{
				Alpha: p[0],
				Beta:  p[1],
				Src:   source,
			}.Rand()

			if x < 1e-10 {
				return 0.1
			}
			if x > 1e10 {
				return 1.0
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 1.0
			}
			return x
		})
}
