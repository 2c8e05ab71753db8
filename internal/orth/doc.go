// Package orth constructs polynomial bases orthogonal under a
// probability distribution, using the moment-based three-term
// recurrence (Stieltjes procedure).
//
// The pipeline per stochastic dimension:
//
//  1. raw moments m_0..m_{2n+1} from a dist.MomentProvider
//  2. recurrence coefficients {alpha_k}, {beta_k} via the Chebyshev
//     sigma-table derivation ([Coefficients]), carried out in big.Float
//     because the moment problem is severely ill-conditioned
//  3. univariate polynomials P_{k+1} = (x - alpha_k)P_k - beta_k P_{k-1}
//     ([Univariate])
//
// [Orthogonal] runs the per-dimension pipelines concurrently and
// multiplies the univariate polynomials together along the canonical
// multi-index set, which assumes independence across dimensions;
// dependent joints must be decorrelated by the caller first. Results are
// deterministic: the fan-out writes into indexed slots and the
// combination order is fixed by the indices package.
//
// A moment sequence whose Hankel structure is not positive definite
// surfaces as ErrNumericalInstability with the dimension and order
// attempted, so callers can retry at a reduced order.
package orth
