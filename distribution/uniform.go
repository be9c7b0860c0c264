package distribution

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewUniform returns a continuous uniform distribution on [a, b].
func NewUniform(a, b *tensor.Dense) (Distribution, error) {
	if err := checkParams("newUniform", a, b); err != nil {
		return nil, err
	}

	as, err := float64s(a)
	if err != nil {
		return nil, fmt.Errorf("newUniform: %v", err)
	}
	bs, err := float64s(b)
	if err != nil {
		return nil, fmt.Errorf("newUniform: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Uniform{Min: as[i], Max: bs[i], Src: src}
		return kernel{
			logProb:  d.LogProb,
			cdf:      d.CDF,
			rand:     d.Rand,
			entropy:  d.Entropy,
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
		}
	}

	return newUnivariate("uniform", a.Shape(), maker), nil
}
