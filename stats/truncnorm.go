package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// TruncNorm is the truncated normal distribution, parameterized by
// standardized truncation bounds a and b, a location loc, and a
// scale. It has no backing distribution, so only Rvs and the density
// functions are available.
var TruncNorm = truncNormDist{Dist{name: "truncnorm"}}

type truncNormDist struct {
	Dist
}

// stdNormal computes the truncation probabilities and quantiles
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Rvs draws size variates by inverting the standard normal
// cumulative distribution over the truncated interval. All
// parameters may be scalars or vectors.
func (t truncNormDist) Rvs(size int, a, b, loc, scale *tensor.Dense) (
	*tensor.Dense, error) {
	return rvs(t.name, size, []*tensor.Dense{a, b, loc, scale},
		func(p []float64) float64 {
			lo := stdNormal.CDF(p[0])
			hi := stdNormal.CDF(p[1])
			u := lo + rng.Float64()*(hi-lo)
			return p[2] + p[3]*stdNormal.Quantile(u)
		})
}

// LogPdf computes the log density of x truncated to the
// standardized interval (a, b). All parameters broadcast against x.
// The normalizing probabilities come from the standard normal
// cumulative distribution, and the density itself is evaluated with
// a throwaway expression graph. There is no error checking if x is
// outside the truncation interval.
func (t truncNormDist) LogPdf(x, a, b, loc,
	scale *tensor.Dense) (*tensor.Dense, error) {
	xs, err := floats64(t.name, x)
	if err != nil {
		return nil, err
	}

	params := make([][]float64, 4)
	for i, param := range []*tensor.Dense{a, b, loc, scale} {
		params[i], err = floats64(t.name, param)
		if err != nil {
			return nil, err
		}
		if len(params[i]) != 1 && len(params[i]) != len(xs) {
			return nil, fmt.Errorf("%v: parameter %d has %d elements "+
				"but the value has %d", t.name, i, len(params[i]),
				len(xs))
		}
	}

	locs := make([]float64, len(xs))
	scales := make([]float64, len(xs))
	norms := make([]float64, len(xs))
	for i := range xs {
		locs[i] = broadcast(params[2], i)
		scales[i] = broadcast(params[3], i)
		norms[i] = math.Log(stdNormal.CDF(broadcast(params[1], i)) -
			stdNormal.CDF(broadcast(params[0], i)))
	}

	out, err := truncNormLogPdf(xs, locs, scales, norms)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", t.name, err)
	}

	if x.Dtype() == tensor.Float32 {
		out32 := make([]float32, len(out))
		for i, elem := range out {
			out32[i] = float32(elem)
		}
		return shaped32(x.Shape().Clone(), out32), nil
	}
	return shaped(x.Shape().Clone(), out), nil
}

// Logpdf is LogPdf
func (t truncNormDist) Logpdf(x, a, b, loc,
	scale *tensor.Dense) (*tensor.Dense, error) {
	return t.LogPdf(x, a, b, loc, scale)
}

// Pdf computes the density of x truncated to the standardized
// interval (a, b)
func (t truncNormDist) Pdf(x, a, b, loc, scale *tensor.Dense) (
	*tensor.Dense, error) {
	logPdf, err := t.LogPdf(x, a, b, loc, scale)
	if err != nil {
		return nil, err
	}
	return expOf(t.name, logPdf)
}

// truncNormLogPdf evaluates
// -log(scale) + logpdf((x - loc) / scale) - norms elementwise over
// equal-length slices
func truncNormLogPdf(xs, locs, scales, norms []float64) ([]float64,
	error) {
	g := G.NewGraph()
	xN := newVec(g, "x", xs)
	locN := newVec(g, "loc", locs)
	scaleN := newVec(g, "scale", scales)
	normN := newVec(g, "norm", norms)

	centered, err := G.Sub(xN, locN)
	if err != nil {
		return nil, err
	}
	z, err := G.HadamardDiv(centered, scaleN)
	if err != nil {
		return nil, err
	}
	zsq, err := G.Square(z)
	if err != nil {
		return nil, err
	}
	halfZsq, err := G.Mul(zsq, G.NewConstant(0.5))
	if err != nil {
		return nil, err
	}
	logScale, err := G.Log(scaleN)
	if err != nil {
		return nil, err
	}

	res, err := G.Sub(G.NewConstant(-0.5*math.Log(2*math.Pi)), logScale)
	if err != nil {
		return nil, err
	}
	res, err = G.Sub(res, halfZsq)
	if err != nil {
		return nil, err
	}
	res, err = G.Sub(res, normN)
	if err != nil {
		return nil, err
	}

	var out G.Value
	G.Read(res, &out)

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		return nil, err
	}

	switch data := out.Data().(type) {
	case float64:
		return []float64{data}, nil
	case []float64:
		return data, nil
	default:
		return nil, fmt.Errorf("unexpected result type %T", data)
	}
}

func newVec(g *G.ExprGraph, name string, data []float64) *G.Node {
	return G.NewVector(
		g,
		tensor.Float64,
		G.WithShape(len(data)),
		G.WithName(name),
		G.WithValue(tensor.New(
			tensor.WithShape(len(data)),
			tensor.WithBacking(data),
		)),
	)
}
