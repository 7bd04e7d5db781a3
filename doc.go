// Package lsp converts between Linear Predictive Coding (LPC) filter
// coefficients and Line Spectral Pair (LSP) frequencies.
//
// An LPC analysis filter A(z) of even order factors into a symmetric and an
// antisymmetric polynomial:
//
//	A(z) = 0.5 * [P(z)*(1 + z^-1) + Q(z)*(1 - z^-1)]
//
// After deflating the trivial roots at z = -1 and z = 1, the remaining roots
// of P and Q all lie on the unit circle and interlace. Their angular
// positions are the LSP frequencies, a representation of the same filter
// that tolerates quantization far better than the raw coefficients do.
//
// [LpcToLsp] locates those roots with a coarse grid search over the
// x = cos(w) domain followed by bisection, evaluating the half-order
// polynomials in Chebyshev form. [LspToLpc] inverts the transform by
// clocking a unit impulse through cascaded second-order sections built from
// the LSP values. Both directions are pure functions of their inputs and
// are safe to call concurrently; scratch memory is pooled internally.
//
// The package intentionally stops at the transform pair. LSP quantization,
// minimum-separation or ordering repair, and frame handling belong to the
// enclosing codec.
package lsp
