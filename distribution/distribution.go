// Package distribution provides probability distributions over dense
// tensors.
//
// A distribution is constructed from parameter tensors whose shape is
// the distribution's batch shape: each element of the parameter
// tensors defines a separate distribution element-wise. For example, a
// Normal with
//
//		mean   := [m_1, m_2, ..., m_N]
//		stddev := [s_1, s_2, ..., s_N]
//
// holds the distributions [𝒩(m_1, s_1), ..., 𝒩(m_N, s_N)]. Values
// passed to a method must have the batch shape, possibly with extra
// leading sample dimensions, in which case the method runs on every
// sample. Multivariate distributions additionally carry a trailing
// event dimension.
//
// Only tensor.Float64 parameters are supported.
package distribution

import (
	"errors"

	"gorgonia.org/tensor"
)

// ErrNotImplemented is returned by any operation a concrete
// distribution does not support.
var ErrNotImplemented = errors.New("not implemented")

// Distribution is a probability distribution over dense tensors. Not
// every concrete distribution supports every method; unsupported
// methods return an error wrapping ErrNotImplemented.
type Distribution interface {
	// BatchShape returns the shape of the parameter tensors, which
	// is the number of element-wise distributions stored by the
	// receiver
	BatchShape() tensor.Shape

	// EventShape returns the shape of a single draw from one
	// element-wise distribution. It is empty for scalar
	// distributions
	EventShape() tensor.Shape

	// Sample draws sampleShape independent values from each
	// element-wise distribution. The result has shape
	// sampleShape + batch shape + event shape
	Sample(sampleShape tensor.Shape, seed uint64) (*tensor.Dense, error)

	// SampleN is Sample with a sample shape of (n,)
	SampleN(n int, seed uint64) (*tensor.Dense, error)

	// LogProb returns the log of the probability density or mass
	// of value. The shape of value must be compatible with the
	// shape of the distribution
	LogProb(value *tensor.Dense) (*tensor.Dense, error)

	// Prob returns the probability density or mass of value
	Prob(value *tensor.Dense) (*tensor.Dense, error)

	// LogCdf returns the log of the cumulative distribution
	// function at value
	LogCdf(value *tensor.Dense) (*tensor.Dense, error)

	// Cdf returns the cumulative distribution function at value
	Cdf(value *tensor.Dense) (*tensor.Dense, error)

	Entropy() (*tensor.Dense, error)
	Mean() (*tensor.Dense, error)
	Variance() (*tensor.Dense, error)
	StdDev() (*tensor.Dense, error)
	Mode() (*tensor.Dense, error)
}
