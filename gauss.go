// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quad

import (
	"fmt"
	"math"

	"github.com/gogpu/quad/legendre"
)

// Gauss-Legendre and Gauss-Lobatto rule construction.
//
// Both families place their nodes at roots of Legendre polynomials (or
// of their derivatives), located by Newton's method in float64. The two
// generators share one refinement loop and differ only in the initial
// guess, the polynomial evaluated, and the weight formula.

const (
	// maxNewtonSteps caps the Newton refinement of a single node. The
	// iteration converges quadratically from the initial guesses used
	// below, so exhausting the cap means the requested degree is far
	// outside the numerically useful range.
	maxNewtonSteps = 20

	// epsilon is the float64 machine epsilon, 2^-52.
	epsilon = 0x1p-52
)

// findRoot refines the initial guess x0 with Newton's method. eval must
// return the value and first derivative of the target polynomial at a
// point. Iteration stops once the step shrinks to a few ulps of the
// current iterate: |step| <= 4*|x|*epsilon. The criterion cannot fire
// for a root at exactly zero, so callers place such nodes in closed
// form instead of iterating toward them.
//
// Returns the refined root, the number of steps taken, and whether the
// iteration converged within maxNewtonSteps.
func findRoot(x0 float64, eval func(x float64) (value, derivative float64)) (float64, int, bool) {
	x := x0
	for step := 1; step <= maxNewtonSteps; step++ {
		v, d := eval(x)
		dx := v / d
		x -= dx
		if math.Abs(dx) <= 4*math.Abs(x)*epsilon {
			return x, step, true
		}
	}
	return x, maxNewtonSteps, false
}

// refineRoot runs findRoot on one node of an n-point rule of the named
// family. An exhausted iteration budget becomes a Warn and an error
// wrapping ErrNoConvergence that names the family and the failing root
// index.
func refineRoot(family string, n, i int, x0 float64, eval func(x float64) (value, derivative float64)) (float64, int, error) {
	x, steps, ok := findRoot(x0, eval)
	if !ok {
		Logger().Warn("quad: node refinement did not converge",
			"family", family, "n", n, "root", i, "guess", x0)
		return 0, steps, fmt.Errorf("quad: %s(%d): root %d: %w", family, n, i, ErrNoConvergence)
	}
	return x, steps, nil
}

// GaussLegendre computes the nodes and weights of an n-point
// Gauss-Legendre quadrature rule (often called simply "Gaussian
// quadrature") over the interval [-1, 1].
//
// Gauss-Legendre quadrature maximizes the degree of exactly integrable
// polynomials, reaching degree 2n-1 from n evaluations. All nodes are
// strictly interior to the interval; use GaussLobatto when the
// endpoints must be part of the evaluation set.
//
// The construction is numerically well-behaved until about n=200 and
// then becomes progressively less accurate. Going much higher is rarely
// a good idea; a composite rule is the better tool for large n.
//
// n must be at least 1, or GaussLegendre fails with ErrInvalidCount.
func GaussLegendre[F Float](n int) (Rule[F], error) {
	if n < 1 {
		return Rule[F]{}, fmt.Errorf("quad: GaussLegendre(%d): n must be >= 1: %w", n, ErrInvalidCount)
	}
	nodes, weights, err := gaussLegendre(n)
	if err != nil {
		return Rule[F]{}, err
	}
	return newRule[F](nodes, weights), nil
}

// gaussLegendre does the float64 work for GaussLegendre; n has been
// validated.
func gaussLegendre(n int) (nodes, weights []float64, err error) {
	nodes = make([]float64, n)
	weights = make([]float64, n)

	// m is the zero-based degree: the nodes are the roots of P_{m+1}.
	m := n - 1

	// Closed forms for the two smallest rules. The Newton setup below
	// degenerates for them, and the exact values are cheap.
	switch m {
	case 0:
		nodes[0] = 0
		weights[0] = 2
		return nodes, weights, nil
	case 1:
		nodes[1] = math.Sqrt(1.0 / 3.0)
		nodes[0] = -nodes[1]
		weights[0] = 1
		weights[1] = 1
		return nodes, weights, nil
	}

	// Only the negative half of the roots is located explicitly; the
	// rule is symmetric, so the positive half is its mirror image.
	steps := 0
	for i := 0; i < (m+1)/2; i++ {
		// Initial guess from the corresponding Chebyshev node.
		x0 := -math.Cos(float64(2*i+1) / float64(2*m+2) * math.Pi)

		x, taken, err := refineRoot("GaussLegendre", n, i, x0, func(x float64) (float64, float64) {
			return legendre.PD(m+1, x)
		})
		if err != nil {
			return nil, nil, err
		}
		steps += taken

		_, d := legendre.PD(m+1, x)
		w := 2 / ((1 - x*x) * d * d)

		nodes[i] = x
		nodes[m-i] = -x
		weights[i] = w
		weights[m-i] = w

		// Legendre roots are strictly increasing; anything else means
		// the refinement landed on the wrong root.
		if i > 0 && x <= nodes[i-1] {
			panic(fmt.Sprintf("quad: internal error: GaussLegendre(%d) roots out of order at index %d", n, i))
		}
	}

	// Odd-sized rules have a node exactly at zero, where the relative
	// convergence test above cannot fire; its weight has a closed form.
	if m%2 == 0 {
		_, d := legendre.PD(m+1, 0)
		nodes[m/2] = 0
		weights[m/2] = 2 / (d * d)
	}

	Logger().Debug("quad: generated Gauss-Legendre rule", "n", n, "newton_steps", steps)
	return nodes, weights, nil
}

// GaussLobatto computes the nodes and weights of an n-point
// Gauss-Lobatto quadrature rule over the interval [-1, 1].
//
// Gauss-Lobatto quadrature is preferable to Gauss-Legendre quadrature
// whenever the endpoints of the integration domain should explicitly be
// included. It maximizes the degree of exactly integrable polynomials
// subject to that constraint, reaching degree 2n-3 from n evaluations.
//
// Like GaussLegendre, the construction is numerically well-behaved
// until about n=200.
//
// n must be at least 2, or GaussLobatto fails with ErrInvalidCount.
func GaussLobatto[F Float](n int) (Rule[F], error) {
	if n < 2 {
		return Rule[F]{}, fmt.Errorf("quad: GaussLobatto(%d): n must be >= 2: %w", n, ErrInvalidCount)
	}
	nodes, weights, err := gaussLobatto(n)
	if err != nil {
		return Rule[F]{}, err
	}
	return newRule[F](nodes, weights), nil
}

// gaussLobatto does the float64 work for GaussLobatto; n has been
// validated.
func gaussLobatto(n int) (nodes, weights []float64, err error) {
	nodes = make([]float64, n)
	weights = make([]float64, n)

	// m is the zero-based degree. The endpoints are pinned analytically
	// and the interior nodes are the roots of P'_m.
	m := n - 1

	nodes[0] = -1
	nodes[m] = 1
	weights[0] = 2 / float64(m*(m+1))
	weights[m] = weights[0]

	steps := 0
	for i := 1; i < (m+1)/2; i++ {
		// Parter's asymptotic approximation of the i-th root of P'_m.
		// See "On the Legendre-Gauss-Lobatto Points and Weights",
		// S. V. Parter, Journal of Scientific Computing 14(4), 1999.
		fi := float64(i) + 0.25
		x0 := -math.Cos(fi*math.Pi/float64(m) - 3/(8*float64(m)*math.Pi*fi))

		// The roots of P'_m are shared by P_{m+1} - P_{m-1}, which is
		// nicer to evaluate, so the refinement targets the difference
		// polynomial.
		x, taken, err := refineRoot("GaussLobatto", n, i, x0, func(x float64) (float64, float64) {
			return legendre.PDDiff(m, x)
		})
		if err != nil {
			return nil, nil, err
		}
		steps += taken

		l := legendre.P(m, x)
		w := 2 / (float64(m*(m+1)) * l * l)

		nodes[i] = x
		nodes[m-i] = -x
		weights[i] = w
		weights[m-i] = w

		if x <= nodes[i-1] {
			panic(fmt.Sprintf("quad: internal error: GaussLobatto(%d) roots out of order at index %d", n, i))
		}
	}

	if m%2 == 0 {
		l := legendre.P(m, 0)
		nodes[m/2] = 0
		weights[m/2] = 2 / (float64(m*(m+1)) * l * l)
	}

	Logger().Debug("quad: generated Gauss-Lobatto rule", "n", n, "newton_steps", steps)
	return nodes, weights, nil
}
