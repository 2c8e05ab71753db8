// Package indices enumerates multi-index sets for polynomial truncation
// schemes.
//
// A multi-index is a tuple of non-negative integer exponents, one per
// stochastic dimension, identifying the monomial q0^e0*q1^e1*...*qD^eD.
// The package generates every tuple whose truncation norm falls inside a
// requested band and returns them in a fixed canonical order:
//
//   - [Generate]: scalar lower and upper bounds on the truncation norm
//   - [GenerateBounded]: per-dimension lower bounds ("band" bases)
//   - [Compare]: the canonical ordering as a pure function
//
// The canonical order sorts by total degree first and breaks ties by
// reverse-lexicographic comparison, so Generate(1, 2, 2, 1) yields
// (1,0), (0,1), (2,0), (1,1), (0,2). Downstream packages pair basis
// polynomials with quadrature and regression data positionally, so this
// order is a contract, not a display choice.
//
// The cross-truncation exponent p generalizes the total-degree simplex to
// an Lp ball: p=1 keeps sum(e_i) <= stop, p<1 gives sparse hyperbolic
// sets, and p=+Inf keeps the full tensor grid max(e_i) <= stop.
package indices
