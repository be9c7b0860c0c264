package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"
)

// NewMultivariateNormalDiag returns a multivariate normal
// distribution with mean mu and a diagonal covariance given by the
// element-wise square of diagStdev. mu and diagStdev may be vectors,
// or matrices holding one parameter vector per batch element.
func NewMultivariateNormalDiag(mu, diagStdev *tensor.Dense) (Distribution,
	error) {
	if err := checkParams("newMultivariateNormalDiag", mu,
		diagStdev); err != nil {
		return nil, err
	}
	if mu.Dims() < 1 || mu.Dims() > 2 {
		return nil, fmt.Errorf("newMultivariateNormalDiag: expected mu to "+
			"be a vector or matrix but got shape %v", mu.Shape())
	}

	stds, err := float64s(diagStdev)
	if err != nil {
		return nil, fmt.Errorf("newMultivariateNormalDiag: %v", err)
	}

	k := mu.Shape()[mu.Dims()-1]
	symAt := func(i int) *mat.SymDense {
		sym := mat.NewSymDense(k, nil)
		for j := 0; j < k; j++ {
			std := stds[i*k+j]
			sym.SetSym(j, j, std*std)
		}
		return sym
	}

	return newMultivariateNormal("newMultivariateNormalDiag", mu, symAt)
}

// NewMultivariateNormalCholesky returns a multivariate normal
// distribution with mean mu and covariance L Lᵀ, where L is a lower
// triangular Cholesky factor. chol must have one more dimension than
// mu, with each factor of shape k x k for an event length of k.
func NewMultivariateNormalCholesky(mu, chol *tensor.Dense) (Distribution,
	error) {
	ls, err := covRows("newMultivariateNormalCholesky", mu, chol)
	if err != nil {
		return nil, err
	}

	k := mu.Shape()[mu.Dims()-1]
	symAt := func(i int) *mat.SymDense {
		l := ls[i]
		sym := mat.NewSymDense(k, nil)
		for r := 0; r < k; r++ {
			for c := r; c < k; c++ {
				// (L Lᵀ)[r][c] sums over the common columns of rows
				// r and c
				out := 0.0
				for m := 0; m <= r; m++ {
					out += l[r*k+m] * l[c*k+m]
				}
				sym.SetSym(r, c, out)
			}
		}
		return sym
	}

	return newMultivariateNormal("newMultivariateNormalCholesky", mu, symAt)
}

// NewMultivariateNormalFull returns a multivariate normal
// distribution with mean mu and covariance sigma. sigma must have one
// more dimension than mu, with each covariance matrix of shape k x k
// for an event length of k.
func NewMultivariateNormalFull(mu, sigma *tensor.Dense) (Distribution,
	error) {
	covs, err := covRows("newMultivariateNormalFull", mu, sigma)
	if err != nil {
		return nil, err
	}

	k := mu.Shape()[mu.Dims()-1]
	symAt := func(i int) *mat.SymDense {
		cov := covs[i]
		sym := mat.NewSymDense(k, nil)
		for r := 0; r < k; r++ {
			for c := r; c < k; c++ {
				sym.SetSym(r, c, cov[r*k+c])
			}
		}
		return sym
	}

	return newMultivariateNormal("newMultivariateNormalFull", mu, symAt)
}

// covRows validates a batch of k x k parameter matrices against mu
// and returns them as flat rows.
func covRows(op string, mu, cov *tensor.Dense) ([][]float64, error) {
	if err := checkParams(op, mu); err != nil {
		return nil, err
	}
	if err := checkParams(op, cov); err != nil {
		return nil, err
	}
	if mu.Dims() < 1 || mu.Dims() > 2 {
		return nil, fmt.Errorf("%v: expected mu to be a vector or matrix "+
			"but got shape %v", op, mu.Shape())
	}
	if cov.Dims() != mu.Dims()+1 {
		return nil, fmt.Errorf("%v: expected the covariance parameter to "+
			"have one more dimension than mu but got shapes %v and %v", op,
			mu.Shape(), cov.Shape())
	}

	k := mu.Shape()[mu.Dims()-1]
	cs := cov.Shape()
	if cs[len(cs)-1] != k || cs[len(cs)-2] != k {
		return nil, fmt.Errorf("%v: expected covariance matrices of shape "+
			"(%d, %d) but got %v", op, k, k, cs)
	}

	n := 1
	if mu.Dims() == 2 {
		n = mu.Shape()[0]
		if cs[0] != n {
			return nil, fmt.Errorf("%v: expected %d covariance matrices "+
				"but got %d", op, n, cs[0])
		}
	}

	vals, err := float64s(cov)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", op, err)
	}

	out := make([][]float64, n)
	for i := range out {
		out[i] = vals[i*k*k : (i+1)*k*k]
	}

	return out, nil
}

func newMultivariateNormal(op string, mu *tensor.Dense,
	symAt func(i int) *mat.SymDense) (Distribution, error) {
	mus, err := float64s(mu)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", op, err)
	}
	if mu.Dims() < 1 || mu.Dims() > 2 {
		return nil, fmt.Errorf("%v: expected mu to be a vector or matrix "+
			"but got shape %v", op, mu.Shape())
	}

	k := mu.Shape()[mu.Dims()-1]
	n := 1
	if mu.Dims() == 2 {
		n = mu.Shape()[0]
	}

	// Validate the covariance matrices once, up front
	logDets := make([]float64, n)
	for i := 0; i < n; i++ {
		var chol mat.Cholesky
		if !chol.Factorize(symAt(i)) {
			return nil, fmt.Errorf("%v: covariance matrix %d is not "+
				"positive definite", op, i)
		}
		logDets[i] = chol.LogDet()
	}

	maker := func(i int, src rand.Source) mvKernel {
		muRow := mus[i*k : (i+1)*k]
		d, _ := distmv.NewNormal(muRow, symAt(i), src)
		return mvKernel{
			logProb: d.LogProb,
			rand:    func() []float64 { return d.Rand(nil) },
			entropy: func() float64 {
				return 0.5*float64(k)*(1+math.Log(2*math.Pi)) +
					0.5*logDets[i]
			},
			mean: func() []float64 {
				return append([]float64(nil), muRow...)
			},
			mode: func() []float64 {
				return append([]float64(nil), muRow...)
			},
		}
	}

	return &multivariate{
		name:    "multivariateNormal",
		n:       n,
		batched: mu.Dims() == 2,
		event:   k,
		maker:   maker,
	}, nil
}
