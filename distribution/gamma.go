package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewGamma returns a Gamma distribution with shape a and rate b.
func NewGamma(a, b *tensor.Dense) (Distribution, error) {
	if err := checkParams("newGamma", a, b); err != nil {
		return nil, err
	}

	as, err := float64s(a)
	if err != nil {
		return nil, fmt.Errorf("newGamma: %v", err)
	}
	bs, err := float64s(b)
	if err != nil {
		return nil, fmt.Errorf("newGamma: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Gamma{Alpha: as[i], Beta: bs[i], Src: src}
		return kernel{
			logProb: d.LogProb,
			cdf:     d.CDF,
			rand:    d.Rand,
			entropy: func() float64 {
				lg, _ := math.Lgamma(d.Alpha)
				return d.Alpha - math.Log(d.Beta) + lg +
					(1-d.Alpha)*mathext.Digamma(d.Alpha)
			},
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
			mode: func() float64 {
				if d.Alpha < 1 {
					return math.NaN()
				}
				return (d.Alpha - 1) / d.Beta
			},
		}
	}

	return newUnivariate("gamma", a.Shape(), maker), nil
}
