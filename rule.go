// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quad

// Float is the set of floating-point types a rule can be emitted as.
// Rule construction always runs in float64 internally; the type
// parameter only controls the precision of the final nodes and weights.
type Float interface {
	~float32 | ~float64
}

// Rule holds the nodes and weights of a quadrature rule over the
// reference interval [-1, 1].
//
// Nodes and Weights always have equal length, with positional
// correspondence: Weights[i] belongs to Nodes[i]. Nodes are strictly
// ascending, the rule is symmetric about zero, and the weights sum to 2
// (the length of the interval) up to floating-point rounding.
//
// A Rule is a plain value: generators return a fresh one on every call
// and never retain or mutate it afterwards, so rules may be shared
// freely between goroutines.
type Rule[F Float] struct {
	Nodes   []F
	Weights []F
}

// Integrate approximates the integral of f over [-1, 1] by evaluating
// it at every node and accumulating the weighted sum in float64,
// regardless of F.
//
// Callers with a different integration domain must change variables to
// [-1, 1] themselves; see the package documentation for the affine
// case.
func (r Rule[F]) Integrate(f func(F) F) F {
	var sum float64
	for i, x := range r.Nodes {
		sum += float64(f(x)) * float64(r.Weights[i])
	}
	return F(sum)
}

// newRule narrows a pair of float64 sequences to the requested output
// precision. This is the only point where precision is lost; everything
// upstream of it is float64.
func newRule[F Float](nodes, weights []float64) Rule[F] {
	return Rule[F]{Nodes: narrow[F](nodes), Weights: narrow[F](weights)}
}

func narrow[F Float](src []float64) []F {
	dst := make([]F, len(src))
	for i, v := range src {
		dst[i] = F(v)
	}
	return dst
}
