package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewExponential returns an exponential distribution with rate lam.
func NewExponential(lam *tensor.Dense) (Distribution, error) {
	if err := checkParams("newExponential", lam); err != nil {
		return nil, err
	}

	lams, err := float64s(lam)
	if err != nil {
		return nil, fmt.Errorf("newExponential: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Exponential{Rate: lams[i], Src: src}
		return kernel{
			logProb:  d.LogProb,
			cdf:      d.CDF,
			rand:     d.Rand,
			entropy:  d.Entropy,
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
			mode:     func() float64 { return 0 },
		}
	}

	return newUnivariate("exponential", lam.Shape(), maker), nil
}
