package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewBeta returns a Beta distribution with concentration parameters
// a and b.
func NewBeta(a, b *tensor.Dense) (Distribution, error) {
	if err := checkParams("newBeta", a, b); err != nil {
		return nil, err
	}

	as, err := float64s(a)
	if err != nil {
		return nil, fmt.Errorf("newBeta: %v", err)
	}
	bs, err := float64s(b)
	if err != nil {
		return nil, fmt.Errorf("newBeta: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.Beta{Alpha: as[i], Beta: bs[i], Src: src}
		return kernel{
			logProb:  d.LogProb,
			cdf:      d.CDF,
			rand:     d.Rand,
			entropy:  func() float64 { return betaEntropy(d.Alpha, d.Beta) },
			mean:     d.Mean,
			variance: d.Variance,
			stdDev:   d.StdDev,
			mode: func() float64 {
				if d.Alpha <= 1 || d.Beta <= 1 {
					return math.NaN()
				}
				return (d.Alpha - 1) / (d.Alpha + d.Beta - 2)
			},
		}
	}

	return newUnivariate("beta", a.Shape(), maker), nil
}

func betaEntropy(a, b float64) float64 {
	return mathext.Lbeta(a, b) - (a-1)*mathext.Digamma(a) -
		(b-1)*mathext.Digamma(b) + (a+b-2)*mathext.Digamma(a+b)
}
