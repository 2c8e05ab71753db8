// Package dist supplies raw statistical moments to the orthogonalization
// machinery.
//
// The [MomentProvider] interface is the boundary contract: given a
// dimension index and a maximum order it returns the raw moments
// E[X^0]..E[X^k] of that dimension's marginal distribution. Moments are
// arbitrary-precision big.Float values because the downstream
// recurrence-coefficient derivation amplifies rounding in the moment
// sequence; closed-form providers compute them exactly to the working
// precision.
//
// Univariate providers with closed-form moments: [Normal], [Uniform],
// [Exponential], [Gamma], [Lognormal], [Beta]. [Empirical] estimates
// moments from a sample. [Join] composes univariate marginals into an
// independent multivariate provider.
package dist
