// Package edward provides extended operations for Gorgonia
package edward

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// Lgamma computes the element-wise log of the absolute value of the
// gamma function
func Lgamma(x *G.Node) (*G.Node, error) {
	op := newLgammaOp()

	return G.ApplyOp(op, x)
}

// Lbinom computes the element-wise log of the binomial coefficient
// C(n, k), with n and k given as floating point nodes
func Lbinom(n, k *G.Node) (*G.Node, error) {
	var one *G.Node
	switch n.Dtype() {
	case G.Float64:
		one = G.NewScalar(
			n.Graph(),
			G.Float64,
			G.WithValue(1.0),
		)

	case G.Float32:
		one = G.NewScalar(
			n.Graph(),
			G.Float32,
			G.WithValue(float32(1.0)),
		)

	default:
		return nil, fmt.Errorf("lbinom: dtype %v not supported", n.Dtype())
	}

	lgN, err := Lgamma(G.Must(G.Add(n, one)))
	if err != nil {
		return nil, fmt.Errorf("lbinom: %v", err)
	}

	lgK, err := Lgamma(G.Must(G.Add(k, one)))
	if err != nil {
		return nil, fmt.Errorf("lbinom: %v", err)
	}

	lgNK, err := Lgamma(G.Must(G.Add(G.Must(G.Sub(n, k)), one)))
	if err != nil {
		return nil, fmt.Errorf("lbinom: %v", err)
	}

	out, err := G.Sub(lgN, lgK)
	if err != nil {
		return nil, fmt.Errorf("lbinom: %v", err)
	}

	return G.Sub(out, lgNK)
}
