package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// Poisson is the Poisson distribution, parameterized by a positive
// mean mu. It has no backing distribution, so only Rvs and the mass
// functions are available.
var Poisson = poissonDist{Dist{name: "poisson"}}

type poissonDist struct {
	Dist
}

// Rvs draws size variates. mu may be a scalar or a vector.
func (po poissonDist) Rvs(size int, mu *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(po.name, size, []*tensor.Dense{mu},
		func(p []float64) float64 {
			return distuv.Poisson{Lambda: p[0], Src: source}.Rand()
		})
}

// LogPmf computes the log mass of x events with mean mu. mu
// broadcasts against x.
func (po poissonDist) LogPmf(x, mu *tensor.Dense) (*tensor.Dense,
	error) {
	return apply(po.name, x, []*tensor.Dense{mu},
		func(x float64, p []float64) float64 {
			return x*math.Log(p[0]) - p[0] - lgamma(x+1)
		},
		func(x float32, p []float32) float32 {
			return x*math32.Log(p[0]) - p[0] - lgamma32(x+1)
		})
}

// Logpmf is LogPmf
func (po poissonDist) Logpmf(x, mu *tensor.Dense) (*tensor.Dense,
	error) {
	return po.LogPmf(x, mu)
}

// Pmf computes the mass of x events with mean mu
func (po poissonDist) Pmf(x, mu *tensor.Dense) (*tensor.Dense, error) {
	logPmf, err := po.LogPmf(x, mu)
	if err != nil {
		return nil, err
	}
	return expOf(po.name, logPmf)
}
