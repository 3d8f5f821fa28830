// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quad

import "errors"

// ErrInvalidCount reports an evaluation count that violates the
// requested rule family's precondition: too small, wrong parity for
// CompositeSimpson, or wrong divisibility for CompositeSimpson38. It is
// detected before any computation, so no partial rule is ever produced.
//
// Errors returned by the generators wrap ErrInvalidCount together with
// the family name, the offending n, and the precondition; match with
// errors.Is.
var ErrInvalidCount = errors.New("quad: invalid evaluation count")

// ErrNoConvergence reports that the Newton refinement of a quadrature
// node did not converge within its iteration budget. This is expected
// only well above the documented stable range of the Gauss rules
// (roughly n = 200); callers needing larger n should switch to a
// composite rule instead of retrying.
//
// Errors wrapping ErrNoConvergence identify the requested n and the
// index of the failing root; match with errors.Is.
var ErrNoConvergence = errors.New("quad: Newton iteration did not converge")
