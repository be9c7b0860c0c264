package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewCategorical returns a categorical distribution over the indices
// {0, ..., k-1} with the given event probabilities. probs may be a
// vector of k probabilities, or a matrix holding one probability
// vector per row, in which case the number of rows is the batch
// shape.
func NewCategorical(probs *tensor.Dense) (Distribution, error) {
	if err := checkParams("newCategorical", probs); err != nil {
		return nil, err
	}
	if probs.Dims() < 1 || probs.Dims() > 2 {
		return nil, fmt.Errorf("newCategorical: expected probs to be a "+
			"vector or matrix but got shape %v", probs.Shape())
	}

	ps, err := float64s(probs)
	if err != nil {
		return nil, fmt.Errorf("newCategorical: %v", err)
	}

	k := probs.Shape()[probs.Dims()-1]
	batch := tensor.Shape{}
	if probs.Dims() == 2 {
		batch = tensor.Shape{probs.Shape()[0]}
	}

	maker := func(i int, src rand.Source) kernel {
		row := ps[i*k : (i+1)*k]
		weights := append([]float64(nil), row...)
		d := distuv.NewCategorical(weights, src)
		return kernel{
			logProb: d.LogProb,
			cdf:     d.CDF,
			rand:    d.Rand,
			entropy: func() float64 {
				out := 0.0
				for _, p := range row {
					if p > 0 {
						out -= p * math.Log(p)
					}
				}
				return out
			},
			mean: func() float64 {
				out := 0.0
				for j, p := range row {
					out += float64(j) * p
				}
				return out
			},
			variance: func() float64 { return categoricalVariance(row) },
			stdDev: func() float64 {
				return math.Sqrt(categoricalVariance(row))
			},
			mode: func() float64 {
				argmax := 0
				for j, p := range row {
					if p > row[argmax] {
						argmax = j
					}
				}
				return float64(argmax)
			},
		}
	}

	return newUnivariate("categorical", batch, maker), nil
}

func categoricalVariance(probs []float64) float64 {
	mean, sq := 0.0, 0.0
	for j, p := range probs {
		mean += float64(j) * p
		sq += float64(j) * float64(j) * p
	}
	return sq - mean*mean
}
