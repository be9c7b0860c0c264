package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Exponential is the exponential distribution. The backing
// distribution is parameterized by a rate lam, while Rvs follows the
// scale convention.
var Exponential = exponentialDist{Dist{
	name: "exponential",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("exponential", 1, params); err != nil {
			return nil, err
		}
		return distribution.NewExponential(params[0])
	},
}}

// Expon is Exponential
var Expon = Exponential

type exponentialDist struct {
	Dist
}

// Rvs draws size variates with the given scale, the reciprocal of
// the rate. scale may be a scalar or a vector.
func (e exponentialDist) Rvs(size int, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(e.name, size, []*tensor.Dense{scale},
		func(p []float64) float64 {
			return distuv.Exponential{Rate: 1 / p[0], Src: source}.Rand()
		})
}
