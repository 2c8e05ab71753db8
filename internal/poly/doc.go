// Package poly implements exact multivariate polynomials over float64
// coefficients.
//
// A [Polynomial] is a mapping from exponent tuples to coefficient
// arrays. Every coefficient is an array of a fixed length shared across
// the whole polynomial; a scalar polynomial is the length-1 case, and
// scalar/array operands broadcast against each other the way numeric
// array libraries do. Dimension identity is an explicit integer index
// fixed at construction: the variable of dimension i renders as qi.
//
// The package provides:
//
//   - construction: [NewFromTerms], [Constant], [ConstantArray], [Variable]
//   - algebra: [Add], [Sub], [Mul], [Div], Scale, Pow
//   - evaluation: full ([Polynomial.Eval]), partial
//     ([Polynomial.EvalPartial], which lowers the dimension count), and
//     polynomial substitution ([Polynomial.Compose])
//   - [Expansion]: an ordered sequence of polynomials treated as a unit
//
// Terms are stored pruned of zero coefficients and sorted in the
// canonical order of the indices package (total degree, then
// reverse-lexicographic), so equality is structural and printing is
// deterministic. Polynomials are immutable; every operation allocates a
// fresh result, which keeps independent computations safe to run
// concurrently.
package poly
