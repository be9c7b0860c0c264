package stats

import (
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// DirichletMultinomial is the Dirichlet-multinomial compound
// distribution, parameterized by a trial count n and a vector of
// positive concentrations alpha
var DirichletMultinomial = Dist{
	name: "dirichlet multinomial",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("dirichlet multinomial", 2,
			params); err != nil {
			return nil, err
		}
		return distribution.NewDirichletMultinomial(params[0], params[1])
	},
}
