package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// StudentT is the Student's t distribution, parameterized by its
// degrees of freedom df, a location loc, and a scale
var StudentT = studentTDist{Dist{
	name: "student t",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("student t", 3, params); err != nil {
			return nil, err
		}
		return distribution.NewStudentT(params[0], params[1], params[2])
	},
}}

// T is StudentT
var T = StudentT

type studentTDist struct {
	Dist
}

// Rvs draws size variates. df, loc, and scale may be scalars or
// vectors.
func (s studentTDist) Rvs(size int, df, loc, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(s.name, size, []*tensor.Dense{df, loc, scale},
		func(p []float64) float64 {
			return distuv.StudentsT{
				Mu:    p[1],
				Sigma: p[2],
				Nu:    p[0],
				Src:   source,
			}.Rand()
		})
}
