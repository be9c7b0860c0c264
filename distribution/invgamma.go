package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewInverseGamma returns an inverse-Gamma distribution with shape a
// and scale b.
func NewInverseGamma(a, b *tensor.Dense) (Distribution, error) {
	if err := checkParams("newInverseGamma", a, b); err != nil {
		return nil, err
	}

	as, err := float64s(a)
	if err != nil {
		return nil, fmt.Errorf("newInverseGamma: %v", err)
	}
	bs, err := float64s(b)
	if err != nil {
		return nil, fmt.Errorf("newInverseGamma: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.InverseGamma{Alpha: as[i], Beta: bs[i], Src: src}
		return kernel{
			logProb: d.LogProb,
			cdf:     d.CDF,
			rand:    d.Rand,
			mean: func() float64 {
				if d.Alpha <= 1 {
					return math.NaN()
				}
				return d.Beta / (d.Alpha - 1)
			},
			variance: func() float64 {
				if d.Alpha <= 2 {
					return math.NaN()
				}
				return d.Beta * d.Beta /
					((d.Alpha - 1) * (d.Alpha - 1) * (d.Alpha - 2))
			},
			stdDev: func() float64 {
				if d.Alpha <= 2 {
					return math.NaN()
				}
				return d.Beta / (d.Alpha - 1) / math.Sqrt(d.Alpha-2)
			},
			mode: func() float64 { return d.Beta / (d.Alpha + 1) },
		}
	}

	return newUnivariate("inverseGamma", a.Shape(), maker), nil
}
