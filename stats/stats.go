// Package stats provides a uniform interface over probability
// distributions. Each distribution is exposed as a package-level
// value, for example:
//
//	samples, err := stats.Norm.Rvs(10, loc, scale)
//	density, err := stats.Norm.Logpdf(x, loc, scale)
//
// Distributions constructed from a backend factory forward their
// shape, sampling, and density methods to the backing
// distribution.Distribution. Distributions with no backend implement
// their log densities in closed form and signal ErrNotImplemented
// for everything else.
//
// Rvs always draws with gonum samplers, whether or not the
// distribution has a backend. Parameters may be scalars, in which
// case Rvs returns a vector of length size, or vectors of length k,
// in which case Rvs returns a (size, k) matrix whose columns each
// follow the corresponding parameter element.
package stats

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"

	"github.com/anhtu/edward/distribution"
)

// ErrNotImplemented is signalled when a method is not available for
// a distribution, either because the distribution has no backend or
// because the backing distribution does not support the statistic.
var ErrNotImplemented = distribution.ErrNotImplemented

// source seeds all sampling in this package. Tests may swap it for a
// fixed seed.
var source rand.Source = rand.NewSource(uint64(time.Now().UnixNano()))

// rng draws the uniform variates behind inversion samplers
var rng *rand.Rand = rand.New(source)

// Factory constructs a backing distribution from parameter tensors
type Factory func(params ...*tensor.Dense) (distribution.Distribution,
	error)

// Dist is a stateless distribution adapter. A Dist with a factory
// forwards its methods to the distribution the factory constructs; a
// Dist without one supports only the methods its concrete type
// overrides.
type Dist struct {
	name    string
	factory Factory
}

func (d Dist) instantiate(params ...*tensor.Dense) (
	distribution.Distribution, error) {
	if d.factory == nil {
		return nil, notImplemented(d.name)
	}

	dist, err := d.factory(params...)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", d.name, err)
	}
	return dist, nil
}

// BatchShape returns the batch shape induced by params
func (d Dist) BatchShape(params ...*tensor.Dense) (tensor.Shape, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.BatchShape(), nil
}

// GetBatchShape returns the batch shape induced by params
func (d Dist) GetBatchShape(params ...*tensor.Dense) (tensor.Shape,
	error) {
	return d.BatchShape(params...)
}

// EventShape returns the event shape induced by params
func (d Dist) EventShape(params ...*tensor.Dense) (tensor.Shape, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.EventShape(), nil
}

// GetEventShape returns the event shape induced by params
func (d Dist) GetEventShape(params ...*tensor.Dense) (tensor.Shape,
	error) {
	return d.EventShape(params...)
}

// Sample draws a sampleShape worth of samples from the distribution
// induced by params, seeding the backing distribution with seed
func (d Dist) Sample(sampleShape tensor.Shape, seed uint64,
	params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Sample(sampleShape, seed)
}

// SampleN draws n samples from the distribution induced by params,
// seeding the backing distribution with seed
func (d Dist) SampleN(n int, seed uint64, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.SampleN(n, seed)
}

// LogProb computes the log density or log mass of value under the
// distribution induced by params
func (d Dist) LogProb(value *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.LogProb(value)
}

// Prob computes the density or mass of value under the distribution
// induced by params
func (d Dist) Prob(value *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Prob(value)
}

// LogCdf computes the log cumulative distribution function at value
func (d Dist) LogCdf(value *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.LogCdf(value)
}

// Cdf computes the cumulative distribution function at value
func (d Dist) Cdf(value *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Cdf(value)
}

// Entropy computes the entropy of the distribution induced by params
func (d Dist) Entropy(params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Entropy()
}

// Mean computes the mean of the distribution induced by params
func (d Dist) Mean(params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Mean()
}

// Variance computes the variance of the distribution induced by
// params
func (d Dist) Variance(params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Variance()
}

// Std computes the standard deviation of the distribution induced by
// params
func (d Dist) Std(params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.StdDev()
}

// Mode computes the mode of the distribution induced by params
func (d Dist) Mode(params ...*tensor.Dense) (*tensor.Dense, error) {
	dist, err := d.instantiate(params...)
	if err != nil {
		return nil, err
	}
	return dist.Mode()
}

// LogPdf computes the log density of x under the distribution
// induced by params
func (d Dist) LogPdf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.LogProb(x, params...)
}

// Pdf computes the density of x under the distribution induced by
// params
func (d Dist) Pdf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.Prob(x, params...)
}

// LogPmf computes the log mass of x under the distribution induced
// by params
func (d Dist) LogPmf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.LogProb(x, params...)
}

// Pmf computes the mass of x under the distribution induced by
// params
func (d Dist) Pmf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.Prob(x, params...)
}

// Logpdf is LogPdf
func (d Dist) Logpdf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.LogPdf(x, params...)
}

// Logpmf is LogPmf
func (d Dist) Logpmf(x *tensor.Dense, params ...*tensor.Dense) (
	*tensor.Dense, error) {
	return d.LogPmf(x, params...)
}

// Rvs draws size samples. Concrete distributions shadow this method
// with their own sampler.
func (d Dist) Rvs(size int, params ...*tensor.Dense) (*tensor.Dense,
	error) {
	return nil, notImplemented(d.name)
}

func notImplemented(name string) error {
	return fmt.Errorf("%v: %w", name, ErrNotImplemented)
}
