package stats

import (
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Categorical is the categorical distribution, parameterized by a
// probability vector or a batch of probability vectors
var Categorical = Dist{
	name: "categorical",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("categorical", 1, params); err != nil {
			return nil, err
		}
		return distribution.NewCategorical(params[0])
	},
}
