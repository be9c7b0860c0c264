package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"
)

// NewDirichlet returns a Dirichlet distribution with concentration
// alpha, which may be a vector, or a matrix holding one concentration
// vector per batch element.
func NewDirichlet(alpha *tensor.Dense) (Distribution, error) {
	if err := checkParams("newDirichlet", alpha); err != nil {
		return nil, err
	}
	if alpha.Dims() < 1 || alpha.Dims() > 2 {
		return nil, fmt.Errorf("newDirichlet: expected alpha to be a "+
			"vector or matrix but got shape %v", alpha.Shape())
	}

	as, err := float64s(alpha)
	if err != nil {
		return nil, fmt.Errorf("newDirichlet: %v", err)
	}

	k := alpha.Shape()[alpha.Dims()-1]
	n := 1
	if alpha.Dims() == 2 {
		n = alpha.Shape()[0]
	}

	maker := func(i int, src rand.Source) mvKernel {
		row := as[i*k : (i+1)*k]
		d := distmv.NewDirichlet(append([]float64(nil), row...), src)
		return mvKernel{
			logProb: d.LogProb,
			rand:    func() []float64 { return d.Rand(nil) },
			entropy: func() float64 { return dirichletEntropy(row) },
			mean: func() []float64 {
				a0 := sum(row)
				out := make([]float64, len(row))
				for j, a := range row {
					out[j] = a / a0
				}
				return out
			},
			mode: func() []float64 {
				a0 := sum(row)
				out := make([]float64, len(row))
				for j, a := range row {
					if a <= 1 {
						out[j] = math.NaN()
						continue
					}
					out[j] = (a - 1) / (a0 - float64(len(row)))
				}
				return out
			},
		}
	}

	return &multivariate{
		name:    "dirichlet",
		n:       n,
		batched: alpha.Dims() == 2,
		event:   k,
		maker:   maker,
	}, nil
}

func sum(xs []float64) float64 {
	out := 0.0
	for _, x := range xs {
		out += x
	}
	return out
}

func dirichletEntropy(alpha []float64) float64 {
	a0 := sum(alpha)
	k := float64(len(alpha))

	// log of the multivariate beta function
	lbeta := 0.0
	for _, a := range alpha {
		lg, _ := math.Lgamma(a)
		lbeta += lg
	}
	lgA0, _ := math.Lgamma(a0)
	lbeta -= lgA0

	out := lbeta + (a0-k)*mathext.Digamma(a0)
	for _, a := range alpha {
		out -= (a - 1) * mathext.Digamma(a)
	}
	return out
}
