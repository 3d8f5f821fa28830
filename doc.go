// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package quad computes nodes and weights of classical quadrature rules
// for numerical integration over the interval [-1, 1].
//
// # Overview
//
// quad is a pure Go library that constructs four families of quadrature
// rules: Gauss-Legendre, Gauss-Lobatto, composite Simpson, and composite
// Simpson 3/8. A rule is a set of evaluation points (nodes) with matching
// weights; the weighted sum of function values at the nodes approximates
// the integral of the function over [-1, 1].
//
// # Quick Start
//
//	import "github.com/gogpu/quad"
//
//	// Build a 7-point Gauss-Legendre rule over [-1, 1].
//	r, err := quad.GaussLegendre[float64](7)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Integrate a function with it.
//	v := r.Integrate(math.Exp)
//
// # Rule Families
//
// The four families trade accuracy per evaluation against node placement
// constraints:
//   - [GaussLegendre]: highest accuracy, exact for polynomials of degree
//     2n-1; all nodes strictly inside the interval.
//   - [GaussLobatto]: exact for degree 2n-3; both endpoints are nodes,
//     which some applications require.
//   - [CompositeSimpson]: equally spaced nodes, exact for piecewise
//     cubics; works with arbitrarily large odd n.
//   - [CompositeSimpson38]: the 4-point Newton-Cotes variant of the
//     above, for evaluation counts of the form 3k+1.
//
// # Other Intervals
//
// Rules are constructed for [-1, 1]. To integrate over [a, b], rescale
// the nodes and weights affinely:
//
//	c, hw := (a+b)/2, (b-a)/2
//	for i := range r.Nodes {
//		r.Nodes[i] = c + hw*r.Nodes[i]
//		r.Weights[i] *= hw
//	}
//
// # Precision
//
// Rule construction always runs in float64 internally; the type
// parameter only selects the precision of the returned slices. Requesting
// a float32 rule narrows the final values without losing accuracy in the
// intermediate arithmetic.
//
// # Logging
//
// By default quad produces no log output. Call [SetLogger] with a
// [log/slog.Logger] to receive construction diagnostics.
package quad

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
