package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// MultivariateNormalDiag is the multivariate normal distribution
// with a diagonal covariance matrix, parameterized by a mean vector
// and a vector of standard deviations
var MultivariateNormalDiag = Dist{
	name: "multivariate normal diag",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("multivariate normal diag", 2,
			params); err != nil {
			return nil, err
		}
		return distribution.NewMultivariateNormalDiag(params[0], params[1])
	},
}

// MultivariateNormalCholesky is the multivariate normal distribution
// parameterized by a mean vector and the lower Cholesky factor of
// its covariance matrix
var MultivariateNormalCholesky = Dist{
	name: "multivariate normal cholesky",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("multivariate normal cholesky", 2,
			params); err != nil {
			return nil, err
		}
		return distribution.NewMultivariateNormalCholesky(params[0],
			params[1])
	},
}

// MultivariateNormalFull is the multivariate normal distribution
// parameterized by a mean vector and a full covariance matrix
var MultivariateNormalFull = multivariateNormalFullDist{Dist{
	name: "multivariate normal full",
	factory: func(params ...*tensor.Dense) (distribution.Distribution,
		error) {
		if err := paramCount("multivariate normal full", 2,
			params); err != nil {
			return nil, err
		}
		return distribution.NewMultivariateNormalFull(params[0], params[1])
	},
}}

// MultivariateNormal is MultivariateNormalFull
var MultivariateNormal = MultivariateNormalFull

type multivariateNormalFullDist struct {
	Dist
}

// Rvs draws size variates. A length k mean with a (k, k) covariance
// gives a (size, k) matrix. A (b, k) mean matrix with a (b, k, k)
// covariance gives a (size, b, k) batch of draws.
func (m multivariateNormalFullDist) Rvs(size int, mean,
	cov *tensor.Dense) (*tensor.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%v: size must be positive but got %v",
			m.name, size)
	}

	means, err := floats64(m.name, mean)
	if err != nil {
		return nil, err
	}
	covs, err := floats64(m.name, cov)
	if err != nil {
		return nil, err
	}

	switch mean.Dims() {
	case 1:
		k := mean.Shape()[0]
		if cov.Dims() != 2 || cov.Shape()[0] != k || cov.Shape()[1] != k {
			return nil, fmt.Errorf("%v: expected a (%d, %d) covariance "+
				"but got shape %v", m.name, k, k, cov.Shape())
		}

		dist, ok := distmv.NewNormal(means, mat.NewSymDense(k, covs),
			source)
		if !ok {
			return nil, fmt.Errorf("%v: covariance matrix is not "+
				"positive definite", m.name)
		}

		out := make([]float64, size*k)
		for s := 0; s < size; s++ {
			dist.Rand(out[s*k : (s+1)*k])
		}
		return shaped(tensor.Shape{size, k}, out), nil

	case 2:
		b, k := mean.Shape()[0], mean.Shape()[1]
		if cov.Dims() != 3 || cov.Shape()[0] != b ||
			cov.Shape()[1] != k || cov.Shape()[2] != k {
			return nil, fmt.Errorf("%v: expected a (%d, %d, %d) "+
				"covariance but got shape %v", m.name, b, k, k,
				cov.Shape())
		}

		dists := make([]*distmv.Normal, b)
		for i := 0; i < b; i++ {
			sigma := mat.NewSymDense(k,
				append([]float64{}, covs[i*k*k:(i+1)*k*k]...))
			dist, ok := distmv.NewNormal(means[i*k:(i+1)*k], sigma, source)
			if !ok {
				return nil, fmt.Errorf("%v: covariance matrix %d is not "+
					"positive definite", m.name, i)
			}
			dists[i] = dist
		}

		// Sample axis leads, then batch, then the event dimension
		out := make([]float64, size*b*k)
		for s := 0; s < size; s++ {
			for i := 0; i < b; i++ {
				at := (s*b + i) * k
				dists[i].Rand(out[at : at+k])
			}
		}
		return shaped(tensor.Shape{size, b, k}, out), nil

	default:
		return nil, fmt.Errorf("%v: mean must have rank 1 or 2 but has "+
			"rank %d", m.name, mean.Dims())
	}
}
