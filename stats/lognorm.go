package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// LogNorm is the log normal distribution with zero log mean,
// parameterized by a log standard deviation s. It has no backing
// distribution, so only Rvs and the density functions are available.
var LogNorm = logNormDist{Dist{name: "lognorm"}}

type logNormDist struct {
	Dist
}

// Rvs draws size variates. s may be a scalar or a vector.
func (l logNormDist) Rvs(size int, s *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(l.name, size, []*tensor.Dense{s},
		func(p []float64) float64 {
			return distuv.LogNormal{Mu: 0, Sigma: p[0], Src: source}.Rand()
		})
}

// LogPdf computes the log density of x with log standard deviation
// s. s broadcasts against x.
func (l logNormDist) LogPdf(x, s *tensor.Dense) (*tensor.Dense, error) {
	return apply(l.name, x, []*tensor.Dense{s},
		func(x float64, p []float64) float64 {
			logX := math.Log(x)
			return -0.5*math.Log(2*math.Pi) - math.Log(p[0]) - logX -
				0.5*(logX/p[0])*(logX/p[0])
		},
		func(x float32, p []float32) float32 {
			logX := math32.Log(x)
			return -0.5*math32.Log(2*math32.Pi) - math32.Log(p[0]) -
				logX - 0.5*(logX/p[0])*(logX/p[0])
		})
}

// Logpdf is LogPdf
func (l logNormDist) Logpdf(x, s *tensor.Dense) (*tensor.Dense, error) {
	return l.LogPdf(x, s)
}

// Pdf computes the density of x with log standard deviation s
func (l logNormDist) Pdf(x, s *tensor.Dense) (*tensor.Dense, error) {
	logPdf, err := l.LogPdf(x, s)
	if err != nil {
		return nil, err
	}
	return expOf(l.name, logPdf)
}
