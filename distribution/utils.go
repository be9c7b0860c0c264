package distribution

import (
	"fmt"

	"gorgonia.org/tensor"
)

// newDense returns a dense tensor of the given shape backed by
// backing. An empty shape produces a scalar tensor.
func newDense(shape tensor.Shape, backing []float64) *tensor.Dense {
	if len(shape) == 0 {
		return tensor.New(tensor.FromScalar(backing[0]))
	}

	return tensor.New(
		tensor.WithShape(shape...),
		tensor.WithBacking(backing),
	)
}

// float64s returns the elements of t as a flat slice. Scalar tensors
// produce a slice of one element.
func float64s(t *tensor.Dense) ([]float64, error) {
	switch data := t.Data().(type) {
	case float64:
		return []float64{data}, nil

	case []float64:
		return data, nil

	default:
		return nil, fmt.Errorf("expected float64 backing but got %T", data)
	}
}

// checkParams ensures all parameter tensors share a shape and have
// dtype tensor.Float64
func checkParams(op string, params ...*tensor.Dense) error {
	for i, p := range params {
		if p == nil {
			return fmt.Errorf("%v: nil parameter", op)
		}
		if p.Dtype() != tensor.Float64 {
			return fmt.Errorf("%v: data type %v unsupported", op, p.Dtype())
		}
		if i > 0 && !p.Shape().Eq(params[0].Shape()) {
			return fmt.Errorf("%v: expected parameters to have the same "+
				"shape but got %v and %v", op, params[0].Shape(), p.Shape())
		}
	}

	return nil
}

// prodInts returns the product of ints, where an empty slice has
// product 1
func prodInts(ints []int) int {
	out := 1
	for _, i := range ints {
		out *= i
	}
	return out
}

func notImplemented(name, method string) error {
	return fmt.Errorf("%v: %v: %w", name, method, ErrNotImplemented)
}
