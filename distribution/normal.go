package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewNormal returns a univariate normal distribution with the given
// mean and standard deviation. The parameter shapes constitute the
// batch shape.
func NewNormal(mu, sigma *tensor.Dense) (Distribution, error) {
	if err := checkParams("newNormal", mu, sigma); err != nil {
		return nil, err
	}

	mus, err := float64s(mu)
	if err != nil {
		return nil, fmt.Errorf("newNormal: %v", err)
	}
	sigmas, err := float64s(sigma)
	if err != nil {
		return nil, fmt.Errorf("newNormal: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Normal{Mu: mus[i], Sigma: sigmas[i], Src: src}
		return kernel{
			logProb:  d.LogProb,
			cdf:      d.CDF,
			rand:     d.Rand,
			entropy:  d.Entropy,
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
			mode:     func() float64 { return d.Mu },
		}
	}

	return newUnivariate("normal", mu.Shape(), maker), nil
}
