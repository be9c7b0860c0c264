package stats

import (
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Laplace is the Laplace distribution, parameterized by a location
// loc and a scale
var Laplace = Dist{
	name: "laplace",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("laplace", 2, params); err != nil {
			return nil, err
		}
		return distribution.NewLaplace(params[0], params[1])
	},
}
