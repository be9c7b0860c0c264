package stats

import (
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// Chi2 is the chi-squared distribution, parameterized by its degrees
// of freedom df. It has no backing distribution, so only Rvs and the
// density functions are available.
var Chi2 = chi2Dist{Dist{name: "chi2"}}

type chi2Dist struct {
	Dist
}

// Rvs draws size variates. df may be a scalar or a vector.
func (c chi2Dist) Rvs(size int, df *tensor.Dense) (*tensor.Dense,
	error) {
	return rvs(c.name, size, []*tensor.Dense{df},
		func(p []float64) float64 {
			return distuv.ChiSquared{K: p[0], Src: source}.Rand()
		})
}

// LogPdf computes the log density of x with df degrees of freedom.
// df broadcasts against x.
func (c chi2Dist) LogPdf(x, df *tensor.Dense) (*tensor.Dense, error) {
	return apply(c.name, x, []*tensor.Dense{df},
		func(x float64, p []float64) float64 {
			half := p[0] / 2
			return (half-1)*math.Log(x) - x/2 - half*math.Ln2 -
				lgamma(half)
		},
		func(x float32, p []float32) float32 {
			half := p[0] / 2
			return (half-1)*math32.Log(x) - x/2 -
				half*float32(math.Ln2) - lgamma32(half)
		})
}

// Logpdf is LogPdf
func (c chi2Dist) Logpdf(x, df *tensor.Dense) (*tensor.Dense, error) {
	return c.LogPdf(x, df)
}

// Pdf computes the density of x with df degrees of freedom
func (c chi2Dist) Pdf(x, df *tensor.Dense) (*tensor.Dense, error) {
	logPdf, err := c.LogPdf(x, df)
	if err != nil {
		return nil, err
	}
	return expOf(c.name, logPdf)
}
