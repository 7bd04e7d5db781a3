package lsp

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// minEnvelopePower floors |A(e^jw)|^2 before inversion so that a
// coefficient vector with a zero exactly on the sampled grid yields a
// large finite peak instead of +Inf.
const minEnvelopePower = 1e-12

// Envelope computes the power spectral envelope 1/|A(e^jw)|^2 of the
// all-pole filter described by lpc (order+1 coefficients, lpc[0] == 1)
// on the first fftSize/2+1 bins of an fftSize-point DFT.
//
// This is the diagnostic companion of the transform pair: formant peaks of
// the envelope sit at the pole angles, bracketed by the LSP frequencies
// [LpcToLsp] extracts. fftSize must be a power of two and at least
// len(lpc).
func Envelope(lpc []float64, fftSize int) ([]float64, error) {
	if len(lpc) == 0 {
		return nil, fmt.Errorf("lsp: envelope requires a non-empty coefficient vector")
	}
	if fftSize < len(lpc) {
		return nil, fmt.Errorf("lsp: envelope fftSize %d shorter than coefficient vector %d", fftSize, len(lpc))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("lsp: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range lpc {
		padded[i] = complex(v, 0)
	}

	dft := make([]complex128, fftSize)
	if err := plan.Forward(dft, padded); err != nil {
		return nil, fmt.Errorf("lsp: envelope FFT failed: %w", err)
	}

	bins := fftSize/2 + 1

	scratch, buf := getScratch(2 * bins)
	defer putScratch(buf)

	re := scratch[:bins:bins]
	im := scratch[bins:]

	for i := range bins {
		re[i] = real(dft[i])
		im[i] = imag(dft[i])
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)

	for i, pw := range out {
		if pw < minEnvelopePower {
			pw = minEnvelopePower
		}

		out[i] = 1.0 / pw
	}

	return out, nil
}
