package stats

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"gorgonia.org/tensor"
)

// expOf exponentiates t elementwise, preserving shape and dtype
func expOf(op string, t *tensor.Dense) (*tensor.Dense, error) {
	switch data := t.Data().(type) {
	case float64:
		return tensor.New(tensor.FromScalar(math.Exp(data))), nil
	case []float64:
		out := make([]float64, len(data))
		for i, elem := range data {
			out[i] = math.Exp(elem)
		}
		return shaped(t.Shape().Clone(), out), nil
	case float32:
		return tensor.New(tensor.FromScalar(math32.Exp(data))), nil
	case []float32:
		out := make([]float32, len(data))
		for i, elem := range data {
			out[i] = math32.Exp(elem)
		}
		return shaped32(t.Shape().Clone(), out), nil
	default:
		return nil, fmt.Errorf("%v: tensor must have dtype Float64 or "+
			"Float32 but got %v", op, t.Dtype())
	}
}

func prodInts(shape []int) int {
	total := 1
	for _, elem := range shape {
		total *= elem
	}
	return total
}

// lgamma is math.Lgamma without the sign return
func lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// lgamma32 is math32.Lgamma without the sign return
func lgamma32(x float32) float32 {
	lg, _ := math32.Lgamma(x)
	return lg
}

// paramCount validates the number of parameters handed to a factory
func paramCount(op string, n int, params []*tensor.Dense) error {
	if len(params) != n {
		return fmt.Errorf("%v: expected %d parameters but got %d", op, n,
			len(params))
	}
	return nil
}

// floats64 returns the elements of t as a float64 slice, converting
// from Float32 if needed
func floats64(op string, t *tensor.Dense) ([]float64, error) {
	if t == nil {
		return nil, fmt.Errorf("%v: nil tensor", op)
	}

	switch data := t.Data().(type) {
	case float64:
		return []float64{data}, nil
	case []float64:
		return data, nil
	case float32:
		return []float64{float64(data)}, nil
	case []float32:
		out := make([]float64, len(data))
		for i, elem := range data {
			out[i] = float64(elem)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%v: tensor must have dtype Float64 or "+
			"Float32 but got %v", op, t.Dtype())
	}
}

// floats32 returns the elements of t as a float32 slice, converting
// from Float64 if needed
func floats32(op string, t *tensor.Dense) ([]float32, error) {
	if t == nil {
		return nil, fmt.Errorf("%v: nil tensor", op)
	}

	switch data := t.Data().(type) {
	case float32:
		return []float32{data}, nil
	case []float32:
		return data, nil
	case float64:
		return []float32{float32(data)}, nil
	case []float64:
		out := make([]float32, len(data))
		for i, elem := range data {
			out[i] = float32(elem)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%v: tensor must have dtype Float64 or "+
			"Float32 but got %v", op, t.Dtype())
	}
}

// scalar returns the single element of t. Wider parameter tensors
// use their first element, matching the behaviour of drawing with
// the leading parameter set.
func scalar(op string, t *tensor.Dense) (float64, error) {
	data, err := floats64(op, t)
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, fmt.Errorf("%v: empty parameter tensor", op)
	}
	return data[0], nil
}

// shaped wraps backing in a dense tensor of the given shape. An
// empty shape produces a scalar tensor.
func shaped(shape tensor.Shape, backing []float64) *tensor.Dense {
	if len(shape) == 0 {
		return tensor.New(tensor.FromScalar(backing[0]))
	}
	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(backing),
	)
}

func shaped32(shape tensor.Shape, backing []float32) *tensor.Dense {
	if len(shape) == 0 {
		return tensor.New(tensor.FromScalar(backing[0]))
	}
	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(backing),
	)
}

// apply evaluates a pointwise density formula over x, broadcasting
// each parameter against x. A parameter must be a scalar or have the
// same number of elements as x. The computation follows the dtype of
// x, so Float32 inputs run entirely in 32-bit arithmetic.
func apply(op string, x *tensor.Dense, params []*tensor.Dense,
	f64 func(x float64, p []float64) float64,
	f32 func(x float32, p []float32) float32) (*tensor.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("%v: nil value tensor", op)
	}

	if x.Dtype() == tensor.Float32 {
		xs, err := floats32(op, x)
		if err != nil {
			return nil, err
		}

		ps := make([][]float32, len(params))
		for i, param := range params {
			ps[i], err = floats32(op, param)
			if err != nil {
				return nil, err
			}
			if len(ps[i]) != 1 && len(ps[i]) != len(xs) {
				return nil, fmt.Errorf("%v: parameter %d has %d elements "+
					"but the value has %d", op, i, len(ps[i]), len(xs))
			}
		}

		out := make([]float32, len(xs))
		buf := make([]float32, len(params))
		for i, elem := range xs {
			for j := range ps {
				buf[j] = broadcast32(ps[j], i)
			}
			out[i] = f32(elem, buf)
		}
		return shaped32(x.Shape().Clone(), out), nil
	}

	xs, err := floats64(op, x)
	if err != nil {
		return nil, err
	}

	ps := make([][]float64, len(params))
	for i, param := range params {
		ps[i], err = floats64(op, param)
		if err != nil {
			return nil, err
		}
		if len(ps[i]) != 1 && len(ps[i]) != len(xs) {
			return nil, fmt.Errorf("%v: parameter %d has %d elements "+
				"but the value has %d", op, i, len(ps[i]), len(xs))
		}
	}

	out := make([]float64, len(xs))
	buf := make([]float64, len(params))
	for i, elem := range xs {
		for j := range ps {
			buf[j] = broadcast(ps[j], i)
		}
		out[i] = f64(elem, buf)
	}
	return shaped(x.Shape().Clone(), out), nil
}

func broadcast(p []float64, i int) float64 {
	if len(p) == 1 {
		return p[0]
	}
	return p[i]
}

func broadcast32(p []float32, i int) float32 {
	if len(p) == 1 {
		return p[0]
	}
	return p[i]
}

// rvs draws size variates, broadcasting the parameters.
// Scalar parameters give a vector of length size. One-dimensional
// parameters of length k give a (size, k) matrix whose column i
// follows the i'th parameter elements. Higher-rank parameters are
// not supported.
func rvs(op string, size int, params []*tensor.Dense,
	sample func(p []float64) float64) (*tensor.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%v: size must be positive but got %v", op,
			size)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("%v: no parameters given", op)
	}

	ps := make([][]float64, len(params))
	k := 1
	for i, param := range params {
		if param != nil && param.Dims() > 1 {
			return nil, fmt.Errorf("%v: parameter %d has rank %d but "+
				"sampling supports only scalar and vector parameters",
				op, i, param.Dims())
		}

		var err error
		ps[i], err = floats64(op, param)
		if err != nil {
			return nil, err
		}
		if len(ps[i]) > 1 {
			if k > 1 && len(ps[i]) != k {
				return nil, fmt.Errorf("%v: parameter %d has %d elements "+
					"but an earlier parameter has %d", op, i, len(ps[i]), k)
			}
			k = len(ps[i])
		}
	}

	buf := make([]float64, len(params))
	if k == 1 && params[0].Dims() == 0 {
		for j := range ps {
			buf[j] = ps[j][0]
		}
		out := make([]float64, size)
		for i := range out {
			out[i] = sample(buf)
		}
		return shaped(tensor.Shape{size}, out), nil
	}

	// Vector parameters: draw each column separately, then lay the
	// draws out row-major as a (size, k) matrix
	out := make([]float64, size*k)
	for i := 0; i < k; i++ {
		for j := range ps {
			buf[j] = broadcast(ps[j], i)
		}
		for n := 0; n < size; n++ {
			out[n*k+i] = sample(buf)
		}
	}
	return shaped(tensor.Shape{size, k}, out), nil
}
