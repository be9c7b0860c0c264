package edward

import (
	"fmt"
	"hash"
	"math"

	"github.com/chewxy/hm"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mathext"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// lgammaOp is the element-wise log-gamma function. Unlike math.Lgamma,
// only the value of log|Γ(x)| is tracked; the sign is dropped.
type lgammaOp struct{}

func newLgammaOp() G.Op {
	return &lgammaOp{}
}

func (l *lgammaOp) Arity() int {
	return 1
}

func (l *lgammaOp) Type() hm.Type {
	// All pointwise unary operations have this type:
	// op :: (Arithable a) => a -> a
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (l *lgammaOp) Do(values ...G.Value) (G.Value, error) {
	err := l.checkInputs(values...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	if values[0] == nil {
		return nil, fmt.Errorf("do: no input")
	}

	// Compute lgamma based on type, overwriting the input
	return computeLgamma(values[0])
}

func (l *lgammaOp) ReturnsPtr() bool { return true }

func (l *lgammaOp) CallsExtern() bool { return false }

func (l *lgammaOp) OverwritesInput() int { return 0 }

// String returns the string representation of the struct
func (l *lgammaOp) String() string {
	return "Lgamma"
}

// InferShape returns the output shape as a function of the inputs
func (l *lgammaOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

// WriteHash writes the hash of the receiver to a hash struct
func (l *lgammaOp) WriteHash(h hash.Hash) { fmt.Fprintf(h, "Lgamma()") }

// Hashcode returns the hash code of the receiver
func (l *lgammaOp) Hashcode() uint32 { return SimpleHash(l) }

func (l *lgammaOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	diffOp := &lgammaDiffOp{}
	nodes := make(G.Nodes, 1)

	nodes[0], err = G.ApplyOp(diffOp, inputs[0], grad)

	return nodes, err
}

func (l *lgammaOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("lgamma operator only supports one input, got %d "+
			"instead", inputs))
	}
	return []bool{true}
}

// checkInputs returns an error if the input to this Op is invalid
func (l *lgammaOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(l, len(inputs)); err != nil {
		return err
	}

	_, okF64 := inputs[0].(*G.F64)
	_, okF32 := inputs[0].(*G.F32)
	_, okTensor := inputs[0].(tensor.Tensor)

	if !(okF64 || okF32 || okTensor) {
		return fmt.Errorf("expected input to be a tensor, got %T", inputs[0])
	}

	return nil
}

// lgammaDiffOp is the derivative of the lgamma operation, which is the
// digamma function scaled by the incoming gradient
type lgammaDiffOp struct{}

func (l *lgammaDiffOp) Arity() int { return 2 }

func (l *lgammaDiffOp) ReturnsPtr() bool { return true }

func (l *lgammaDiffOp) CallsExtern() bool { return false }

func (l *lgammaDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, l.String()) }

func (l *lgammaDiffOp) Hashcode() uint32 { return SimpleHash(l) }

func (l *lgammaDiffOp) String() string { return "LgammaDiff()" }

func (l *lgammaDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(l, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (l *lgammaDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (l *lgammaDiffOp) OverwritesInput() int { return -1 }

// checkInputs returns an error if the input to this Op is invalid
func (l *lgammaDiffOp) checkInputs(inputs ...G.Value) error {
	if err := CheckArity(l, len(inputs)); err != nil {
		return err
	}

	_, okTensor := inputs[0].(tensor.Tensor)
	_, okGrad := inputs[1].(tensor.Tensor)

	if !(okTensor || okGrad) {
		return fmt.Errorf("expected input to be a tensor, got %T", inputs[0])
	}

	return nil
}

func (l *lgammaDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	err := l.checkInputs(inputs...)
	if err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	x := inputs[0].(tensor.Tensor)
	grad := inputs[1].(tensor.Tensor)

	var ret *tensor.Dense
	switch x.Dtype() {
	case tensor.Float64:
		ret = l.f64Kernel(x.Shape().Clone(), x, grad)

	case tensor.Float32:
		ret = l.f32Kernel(x.Shape().Clone(), x, grad)
	}

	return ret, nil
}

func (l *lgammaDiffOp) f64Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float64)
	grad := gradData.Data().([]float64)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		ret.Set(i, grad[i]*mathext.Digamma(elem))
	}

	return ret
}

func (l *lgammaDiffOp) f32Kernel(shape tensor.Shape, inputData,
	gradData tensor.Tensor) *tensor.Dense {
	x := inputData.Data().([]float32)
	grad := gradData.Data().([]float32)

	ret := tensor.New(
		tensor.WithShape(shape...),
		tensor.Of(inputData.Dtype()),
	)

	for i, elem := range x {
		ret.Set(i, grad[i]*float32(mathext.Digamma(float64(elem))))
	}

	return ret
}

// f32Lgamma computes the lgamma on a float32 input value
func f32Lgamma(val float32) float32 {
	lg, _ := math32.Lgamma(val)
	return lg
}

// f64Lgamma computes the lgamma on a float64 input value
func f64Lgamma(val float64) float64 {
	lg, _ := math.Lgamma(val)
	return lg
}

// computeLgamma computes the element-wise lgamma on a value
func computeLgamma(value G.Value) (G.Value, error) {
	// Compute lgamma based on type, overwriting the input
	switch v := value.(type) {
	case *G.F64:
		*v = *G.NewF64(f64Lgamma(float64(*v)))
		return v, nil

	case *G.F32:
		*v = *G.NewF32(f32Lgamma(float32(*v)))
		return v, nil

	case tensor.Tensor:
		if len(v.Shape()) == 0 {
			return nil, fmt.Errorf("do: cannot compute lgamma on empty tensor")
		}

		iter := v.Iterator()
		_, err := iter.Start()
		if err != nil {
			return nil, fmt.Errorf("do: could not start iterator on tensor")
		}

		// Go through each element of the tensor and lgamma it in place
		for !iter.Done() {
			// Get the coordinates of the element to lgamma
			coords := iter.Coord()

			// Lgamma the element in place
			err := lgammaTensorAt(v, coords)
			if err != nil {
				return nil, fmt.Errorf("do: %v", err)
			}

			// Step the iterator
			_, _, err = iter.NextValid()
			if err != nil {
				return nil, fmt.Errorf("do: could not step iterator")
			}

		}
		// Lgamma the last element of the tensor
		coords := iter.Coord()
		lgammaTensorAt(v, coords)

	default:
		return nil, fmt.Errorf("do: unable to compute lgamma on type %T", v)
	}

	return value, nil
}

// lgammaTensorAt computes in-place the lgamma of tensor v at coords
func lgammaTensorAt(v tensor.Tensor, coords []int) error {
	// Get the value at the next coordinates
	val, err := v.At(coords...)
	if err != nil {
		return fmt.Errorf("lgammaTensorAt: could not access element "+
			"at %v", coords)
	}

	// Lgamma the value
	if v.Dtype() == tensor.Float64 {
		val = f64Lgamma(val.(float64))
	} else if v.Dtype() == tensor.Float32 {
		val = f32Lgamma(val.(float32))
	}

	// Set the value
	err = v.SetAt(val, coords...)
	if err != nil {
		return fmt.Errorf("lgammaTensorAt: could not set element "+
			"at %v", coords)

	}
	return nil
}
