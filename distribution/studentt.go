package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/tensor"
)

// NewStudentT returns a Student's t distribution with df degrees of
// freedom, location loc and scale scale.
func NewStudentT(df, loc, scale *tensor.Dense) (Distribution, error) {
	if err := checkParams("newStudentT", df, loc, scale); err != nil {
		return nil, err
	}

	dfs, err := float64s(df)
	if err != nil {
		return nil, fmt.Errorf("newStudentT: %v", err)
	}
	locs, err := float64s(loc)
	if err != nil {
		return nil, fmt.Errorf("newStudentT: %v", err)
	}
	scales, err := float64s(scale)
	if err != nil {
		return nil, fmt.Errorf("newStudentT: %v", err)
	}

	maker := func(i int, src rand.Source) kernel {
		d := distuv.StudentsT{
			Mu:    locs[i],
			Sigma: scales[i],
			Nu:    dfs[i],
			Src:   src,
		}
		return kernel{
			logProb: d.LogProb,
			cdf:     d.CDF,
			rand:    d.Rand,
			mean: func() float64 {
				if d.Nu <= 1 {
					return math.NaN()
				}
				return d.Mu
			},
			variance: func() float64 { return studentTVariance(d) },
			stdDev: func() float64 {
				return math.Sqrt(studentTVariance(d))
			},
			mode: func() float64 { return d.Mu },
		}
	}

	return newUnivariate("studentT", df.Shape(), maker), nil
}

func studentTVariance(d distuv.StudentsT) float64 {
	switch {
	case d.Nu > 2:
		return d.Sigma * d.Sigma * d.Nu / (d.Nu - 2)
	case d.Nu > 1:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}
