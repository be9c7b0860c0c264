package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"
)

// NewDirichletMultinomial returns a Dirichlet-Multinomial compound
// distribution with n trials and concentration alpha. n must be a
// scalar when alpha is a vector, and a vector with one element per
// row when alpha is a matrix of concentration vectors.
func NewDirichletMultinomial(n, alpha *tensor.Dense) (Distribution, error) {
	if n == nil || alpha == nil {
		return nil, fmt.Errorf("newDirichletMultinomial: nil parameter")
	}
	if n.Dtype() != tensor.Float64 || alpha.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("newDirichletMultinomial: only Float64 "+
			"parameters are supported but got %v and %v", n.Dtype(),
			alpha.Dtype())
	}
	if alpha.Dims() < 1 || alpha.Dims() > 2 {
		return nil, fmt.Errorf("newDirichletMultinomial: expected alpha to "+
			"be a vector or matrix but got shape %v", alpha.Shape())
	}
	if n.Dims() != alpha.Dims()-1 {
		return nil, fmt.Errorf("newDirichletMultinomial: expected n to "+
			"have one less dimension than alpha but got shapes %v and %v",
			n.Shape(), alpha.Shape())
	}

	ns, err := float64s(n)
	if err != nil {
		return nil, fmt.Errorf("newDirichletMultinomial: %v", err)
	}
	as, err := float64s(alpha)
	if err != nil {
		return nil, fmt.Errorf("newDirichletMultinomial: %v", err)
	}

	k := alpha.Shape()[alpha.Dims()-1]
	batch := 1
	if alpha.Dims() == 2 {
		batch = alpha.Shape()[0]
	}
	if len(ns) != batch {
		return nil, fmt.Errorf("newDirichletMultinomial: expected one "+
			"count per concentration vector but got %d counts for %d "+
			"vectors", len(ns), batch)
	}

	maker := func(i int, src rand.Source) mvKernel {
		count := ns[i]
		row := as[i*k : (i+1)*k]
		return mvKernel{
			logProb: func(x []float64) float64 {
				return dirichletMultinomialLogProb(count, row, x)
			},
			rand: func() []float64 {
				d := distmv.NewDirichlet(append([]float64(nil), row...), src)
				return RandMultinomial(int(count), d.Rand(nil), src)
			},
			mean: func() []float64 {
				a0 := sum(row)
				out := make([]float64, len(row))
				for j, a := range row {
					out[j] = count * a / a0
				}
				return out
			},
		}
	}

	return &multivariate{
		name:    "dirichletMultinomial",
		n:       batch,
		batched: alpha.Dims() == 2,
		event:   k,
		maker:   maker,
	}, nil
}

func dirichletMultinomialLogProb(n float64, alpha, x []float64) float64 {
	a0 := sum(alpha)

	lgA0, _ := math.Lgamma(a0)
	lgNA0, _ := math.Lgamma(n + a0)
	lgN1, _ := math.Lgamma(n + 1)
	out := lgA0 - lgNA0 + lgN1

	for j, a := range alpha {
		lgXA, _ := math.Lgamma(x[j] + a)
		lgA, _ := math.Lgamma(a)
		lgX1, _ := math.Lgamma(x[j] + 1)
		out += lgXA - lgA - lgX1
	}

	return out
}
