package lsp

import "math"

// LspToLpc converts LSP frequencies back into LPC coefficients.
//
// lsp holds order LSP frequencies in radians; order must be even and >= 2.
// The order+1 LPC coefficients are written to dst, with dst[0] == 1 as the
// unity-gain term. The reconstruction always succeeds for a well-formed
// input shape: it clocks a unit impulse through order/2 cascaded
// second-order sections of the form 1 - 2x*z^-1 + z^-2, one section pair
// per LSP pair, for order+1 steps. The outputs of those steps are the
// impulse response of A(z), which is exactly the coefficient vector.
func LspToLpc(dst, lsp []float64) error {
	order := len(lsp)
	if order < 2 {
		return ErrShortOrder
	}
	if order%2 != 0 {
		return ErrOddOrder
	}
	if len(dst) < order+1 {
		return ErrLengthMismatch
	}

	half := order / 2

	scratch, buf := getScratch(3*order + 2)
	defer putScratch(buf)

	xf := scratch[:order:order]

	// Cascade delay state: four slots per section plus two trailing slots
	// for the (1 +/- z^-1) factors deflated out of P and Q. The pooled
	// buffer may hold stale data, so zeroing it is an explicit step.
	wp := scratch[order:]
	for i := range wp {
		wp[i] = 0.0
	}

	// Back to the x = cos(w) domain; the sections are parameterized on x.
	for i, w := range lsp {
		xf[i] = math.Cos(w)
	}

	xin1, xin2 := 1.0, 1.0

	for j := 0; j <= order; j++ {
		for i := range half {
			n1 := i * 4

			xout1 := xin1 - 2*xf[2*i]*wp[n1] + wp[n1+1]
			xout2 := xin2 - 2*xf[2*i+1]*wp[n1+2] + wp[n1+3]

			wp[n1+1] = wp[n1]
			wp[n1+3] = wp[n1+2]
			wp[n1] = xin1
			wp[n1+2] = xin2

			xin1 = xout1
			xin2 = xout2
		}

		tail := 4 * half
		xout1 := xin1 + wp[tail]
		xout2 := xin2 - wp[tail+1]

		dst[j] = 0.5 * (xout1 + xout2)

		wp[tail] = xin1
		wp[tail+1] = xin2

		// Only the very first step feeds the impulse; after it the
		// cascade input stays silent.
		xin1 = 0.0
		xin2 = 0.0
	}

	return nil
}
