package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// Dirichlet is the Dirichlet distribution, parameterized by a vector
// of positive concentrations alpha, or a matrix holding one
// concentration vector per batch element
var Dirichlet = dirichletDist{Dist{
	name: "dirichlet",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("dirichlet", 1, params); err != nil {
			return nil, err
		}
		return distribution.NewDirichlet(params[0])
	},
}}

type dirichletDist struct {
	Dist
}

// Rvs draws size variates. A length k concentration vector gives a
// (size, k) matrix. A (b, k) concentration matrix gives a
// (size, b, k) batch of draws.
func (d dirichletDist) Rvs(size int, alpha *tensor.Dense) (
	*tensor.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%v: size must be positive but got %v",
			d.name, size)
	}

	data, err := floats64(d.name, alpha)
	if err != nil {
		return nil, err
	}

	switch alpha.Dims() {
	case 1:
		k := alpha.Shape()[0]
		dist := distmv.NewDirichlet(data, source)
		out := make([]float64, size*k)
		for s := 0; s < size; s++ {
			dist.Rand(out[s*k : (s+1)*k])
		}
		return shaped(tensor.Shape{size, k}, out), nil

	case 2:
		b, k := alpha.Shape()[0], alpha.Shape()[1]
		dists := make([]*distmv.Dirichlet, b)
		for i := 0; i < b; i++ {
			row := append([]float64{}, data[i*k:(i+1)*k]...)
			dists[i] = distmv.NewDirichlet(row, source)
		}

		// Sample axis leads, then batch, then the event dimension
		out := make([]float64, size*b*k)
		for s := 0; s < size; s++ {
			for i := 0; i < b; i++ {
				at := (s*b + i) * k
				dists[i].Rand(out[at : at+k])
			}
		}
		return shaped(tensor.Shape{size, b, k}, out), nil

	default:
		return nil, fmt.Errorf("%v: alpha must have rank 1 or 2 but has "+
			"rank %d", d.name, alpha.Dims())
	}
}
