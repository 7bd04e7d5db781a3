package lsp

import "math"

// LpcToLsp converts LPC coefficients into LSP frequencies.
//
// lpc holds order+1 coefficients with lpc[0] == 1 (unity gain); order must
// be even and >= 2. The LSP frequencies are written to dst[:order] in
// radians, strictly increasing in (0, pi), alternating between roots of
// the symmetric polynomial P' (even indices) and the antisymmetric Q'
// (odd indices).
//
// The return value is the number of roots actually found. For a stable
// (minimum-phase) filter it equals order. An ill-conditioned coefficient
// vector can exhaust the grid search early; the count is then smaller,
// dst entries at and beyond it are meaningless, and the caller must fall
// back (reuse the previous frame's LSPs, or reject the frame). An
// incomplete root set is not an error.
func LpcToLsp(dst, lpc []float64, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return 0, err
		}
	}

	order := len(lpc) - 1
	if order < 2 {
		return 0, ErrShortOrder
	}
	if order%2 != 0 {
		return 0, ErrOddOrder
	}
	if len(dst) < order {
		return 0, ErrLengthMismatch
	}

	m := order / 2

	scratch, buf := getScratch(2 * (m + 1))
	defer putScratch(buf)

	p := scratch[: m+1 : m+1]
	q := scratch[m+1:]
	decompose(p, q, lpc, order)

	roots := searchRoots(dst[:order], p, q, cfg.bisections, cfg.gridDelta)

	// Convert the found roots from the x = cos(w) domain to radians. The
	// clamp guards acos against rounding just outside [-1, 1].
	for i := range roots {
		x := dst[i]
		if x > 1.0 {
			x = 1.0
		} else if x < -1.0 {
			x = -1.0
		}

		dst[i] = math.Acos(x)
	}

	return roots, nil
}

// searchRoots locates the interlaced roots of p and q on [-1, 1] and
// stores them, still in the x domain, in dst. It walks a coarse grid from
// x = 1 downward; each time the active polynomial changes sign across a
// grid step the bracket is refined by nb bisections.
//
// The roots of P' and Q' strictly interlace, so the search never restarts:
// each alternation resumes from the previously found root. If the grid
// reaches -1 without a bracket, no further alternation can succeed either
// and the search stops, returning the count found so far.
func searchRoots(dst, p, q []float64, nb int, delta float64) int {
	roots := 0
	xl, xr := 1.0, 0.0

	for j := range dst {
		pt := p
		if j%2 == 1 {
			pt = q
		}

		psuml := chebEval(pt, xl)
		found := false

		for xr >= -1.0 {
			xr = xl - delta

			psumr := chebEval(pt, xr)
			if psumr*psuml < 0.0 || psumr == 0.0 {
				dst[j] = bisect(pt, xl, xr, psuml, nb)

				// Resume the next alternation from the refined root.
				xl = dst[j]
				xr = xl
				roots++
				found = true

				break
			}

			psuml = psumr
			xl = xr
		}

		if !found {
			return roots
		}
	}

	return roots
}

// bisect halves the sign-change bracket [xr, xl] nb+1 times, keeping the
// half that preserves the sign change, and returns the final midpoint.
func bisect(pt []float64, xl, xr, psuml float64, nb int) float64 {
	xm := 0.0

	for k := 0; k <= nb; k++ {
		xm = 0.5 * (xl + xr)

		psumm := chebEval(pt, xm)
		if psumm*psuml > 0.0 {
			psuml = psumm
			xl = xm
		} else {
			xr = xm
		}
	}

	return xm
}
