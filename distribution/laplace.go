package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewLaplace returns a Laplace distribution with the given location
// and scale.
func NewLaplace(loc, scale *tensor.Dense) (Distribution, error) {
	if err := checkParams("newLaplace", loc, scale); err != nil {
		return nil, err
	}

	locs, err := float64s(loc)
	if err != nil {
		return nil, fmt.Errorf("newLaplace: %v", err)
	}
	scales, err := float64s(scale)
	if err != nil {
		return nil, fmt.Errorf("newLaplace: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Laplace{Mu: locs[i], Scale: scales[i], Src: src}
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

	return newUnivariate("laplace", loc.Shape(), maker), nil
}
