package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewBernoulli returns a Bernoulli distribution with success
// probability p.
func NewBernoulli(p *tensor.Dense) (Distribution, error) {
	if err := checkParams("newBernoulli", p); err != nil {
		return nil, err
	}

	ps, err := float64s(p)
	if err != nil {
		return nil, fmt.Errorf("newBernoulli: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Bernoulli{P: ps[i], Src: src}
		return kernel{
			logProb:  d.LogProb,
			cdf:      d.CDF,
			rand:     d.Rand,
			entropy:  d.Entropy,
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
			mode: func() float64 {
				if d.P > 0.5 {
					return 1
				}
				return 0
			},
		}
	}

	return newUnivariate("bernoulli", p.Shape(), maker), nil
}
