package lsp

// decompose derives the deflated half-order polynomials P'(z) and Q'(z)
// from the LPC vector a (length order+1, a[0] == 1) and writes their
// coefficients into p and q (length order/2+1 each).
//
// P(z) = A(z) + z^-(order+1) A(z^-1) is symmetric with a root at z = -1,
// Q(z) is the antisymmetric counterpart with a root at z = 1. Dividing
// those trivial roots out gives the recurrences below; the remaining roots
// of both polynomials lie on the unit circle and interlace.
func decompose(p, q, a []float64, order int) {
	m := order / 2

	p[0] = 1.0
	q[0] = 1.0

	for i := 1; i <= m; i++ {
		p[i] = a[i] + a[order+1-i] - p[i-1]
		q[i] = a[i] - a[order+1-i] + q[i-1]
	}

	// All coefficients except the last are doubled so that the Chebyshev
	// series of each polynomial evaluates P'(e^jw) on the x = cos(w) axis.
	for i := range m {
		p[i] *= 2.0
		q[i] *= 2.0
	}
}
