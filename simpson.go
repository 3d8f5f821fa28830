// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quad

import "fmt"

// Composite Newton-Cotes rules. Unlike the Gaussian families these use
// equally spaced nodes, trading accuracy per evaluation for simple node
// placement and unbounded rule sizes.

// CompositeSimpson computes the nodes and weights of a composite
// Simpson quadrature rule with n evaluations over the interval [-1, 1].
//
// The interval is split into (n-1)/2 sub-intervals with overlapping
// endpoints, and a 3-point Simpson rule is applied to each. The result
// is exact for piecewise polynomials of degree three or less over the
// sub-intervals.
//
// n must be odd and at least 3, or CompositeSimpson fails with
// ErrInvalidCount.
func CompositeSimpson[F Float](n int) (Rule[F], error) {
	if n%2 != 1 || n < 3 {
		return Rule[F]{}, fmt.Errorf("quad: CompositeSimpson(%d): n must be odd and >= 3: %w", n, ErrInvalidCount)
	}
	nodes, weights := compositeSimpson(n)
	return newRule[F](nodes, weights), nil
}

// compositeSimpson does the float64 work for CompositeSimpson; n has
// been validated.
func compositeSimpson(n int) (nodes, weights []float64) {
	nodes = make([]float64, n)
	weights = make([]float64, n)

	// k sub-intervals, each spanning two node spacings h. The boundary
	// nodes between neighboring sub-intervals are shared, so their
	// single-interval weights add up.
	k := (n - 1) / 2
	h := 2 / float64(2*k)
	base := h * (1.0 / 3.0)

	for j := 0; j < n; j++ {
		nodes[j] = -1 + float64(j)*h
		switch {
		case j == 0 || j == n-1:
			weights[j] = base
		case j%2 == 1:
			weights[j] = 4 * base
		default:
			weights[j] = 2 * base
		}
	}
	// Pin the right endpoint; accumulating j*h can round past 1.
	nodes[n-1] = 1

	return nodes, weights
}

// CompositeSimpson38 computes the nodes and weights of a composite
// Simpson 3/8 quadrature rule with n evaluations over the interval
// [-1, 1].
//
// The interval is split into (n-1)/3 sub-intervals with overlapping
// endpoints, and a 4-point Simpson 3/8 rule is applied to each. Like
// CompositeSimpson, the result is exact for piecewise polynomials of
// degree three or less; the wider sub-intervals mainly change the
// constant factor of the error.
//
// n must be of the form 3k+1 with k >= 1 (so n >= 4), or
// CompositeSimpson38 fails with ErrInvalidCount.
func CompositeSimpson38[F Float](n int) (Rule[F], error) {
	if (n-1)%3 != 0 || n < 4 {
		return Rule[F]{}, fmt.Errorf("quad: CompositeSimpson38(%d): n must be of the form 3k+1 and >= 4: %w", n, ErrInvalidCount)
	}
	nodes, weights := compositeSimpson38(n)
	return newRule[F](nodes, weights), nil
}

// compositeSimpson38 does the float64 work for CompositeSimpson38; n
// has been validated.
func compositeSimpson38(n int) (nodes, weights []float64) {
	nodes = make([]float64, n)
	weights = make([]float64, n)

	// k sub-intervals, each spanning three node spacings h.
	k := (n - 1) / 3
	h := 2 / float64(3*k)
	base := h * (3.0 / 8.0)

	for j := 0; j < n; j++ {
		nodes[j] = -1 + float64(j)*h
		switch {
		case j == 0 || j == n-1:
			weights[j] = base
		case j%3 == 0:
			weights[j] = 2 * base
		default:
			weights[j] = 3 * base
		}
	}
	// Pin the right endpoint; accumulating j*h can round past 1.
	nodes[n-1] = 1

	return nodes, weights
}
