// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package legendre evaluates Legendre polynomials and their derivatives.
//
// The Legendre polynomials P_l are orthogonal on [-1, 1] and underpin
// Gaussian quadrature: the nodes of an n-point Gauss-Legendre rule are
// the roots of P_n, and the interior nodes of a Gauss-Lobatto rule are
// the roots of P'_n. Package quad performs its Newton root refinement
// against the evaluators in this package.
//
// All evaluation uses Bonnet's three-term recurrence
//
//	k * P_k(x) = (2k-1) * x * P_{k-1}(x) - (k-1) * P_{k-2}(x)
//
// in float64. The recurrence is numerically stable on [-1, 1] for any
// degree a quadrature rule realistically requests.
package legendre

import "fmt"

// P returns the value of the Legendre polynomial of degree l at x.
//
// l must be non-negative; P panics otherwise, since a negative degree
// is a programming error rather than a data-dependent condition.
func P(l int, x float64) float64 {
	if l < 0 {
		panic(fmt.Sprintf("legendre: P called with negative degree %d", l))
	}
	switch l {
	case 0:
		return 1
	case 1:
		return x
	}
	p0, p1 := 1.0, x
	for k := 2; k <= l; k++ {
		p0, p1 = p1, (float64(2*k-1)*x*p1-float64(k-1)*p0)/float64(k)
	}
	return p1
}

// PD returns the value and first derivative of the Legendre polynomial
// of degree l at x.
//
// The derivative is advanced alongside the value using
//
//	P'_k(x) = P'_{k-2}(x) + (2k-1) * P_{k-1}(x)
//
// which, unlike the closed form l/(x^2-1) * (x*P_l - P_{l-1}), stays
// finite at the interval endpoints x = -1 and x = 1.
//
// l must be non-negative; PD panics otherwise.
func PD(l int, x float64) (p, dp float64) {
	if l < 0 {
		panic(fmt.Sprintf("legendre: PD called with negative degree %d", l))
	}
	switch l {
	case 0:
		return 1, 0
	case 1:
		return x, 1
	}
	p0, p1 := 1.0, x
	d0, d1 := 0.0, 1.0
	for k := 2; k <= l; k++ {
		c := float64(2*k - 1)
		pk := (c*x*p1 - float64(k-1)*p0) / float64(k)
		dk := d0 + c*p1
		p0, p1 = p1, pk
		d0, d1 = d1, dk
	}
	return p1, d1
}

// PDDiff returns the value and first derivative of the difference
// polynomial P_{l+1} - P_{l-1} at x.
//
// The difference polynomial equals -(2l+1)/(l(l+1)) * (1-x^2) * P'_l,
// so it shares its interior roots with P'_l and evaluates through the
// same recurrence as P; Gauss-Lobatto construction refines interior
// nodes against it. The derivative follows from the identity
// P'_{l+1} - P'_{l-1} = (2l+1) * P_l.
//
// l must be at least 1; PDDiff panics otherwise.
func PDDiff(l int, x float64) (p, dp float64) {
	if l < 1 {
		panic(fmt.Sprintf("legendre: PDDiff called with degree %d, need >= 1", l))
	}
	p0, p1 := 1.0, x
	for k := 2; k <= l; k++ {
		p0, p1 = p1, (float64(2*k-1)*x*p1-float64(k-1)*p0)/float64(k)
	}
	// p0 = P_{l-1}, p1 = P_l; one more step yields P_{l+1}.
	next := (float64(2*l+1)*x*p1 - float64(l)*p0) / float64(l+1)
	return next - p0, float64(2*l+1) * p1
}
