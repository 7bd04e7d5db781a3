package testutil

import "math"

// PolePair describes a conjugate pole pair of an all-pole filter by its
// radius and angle (radians). Radii below 1 give a stable filter; angles
// near typical formant positions give speech-like test spectra.
type PolePair struct {
	Radius float64
	Angle  float64
}

// LPCFromPolePairs builds a deterministic LPC coefficient vector whose
// analysis polynomial A(z) has exactly the given conjugate pole pairs.
// Each pair contributes a quadratic factor 1 - 2r*cos(theta)*z^-1 + r^2*z^-2;
// the factors are convolved in order. The result has length 2*len(pairs)+1
// with the leading unity-gain term at index 0.
func LPCFromPolePairs(pairs []PolePair) []float64 {
	a := []float64{1.0}
	for _, p := range pairs {
		quad := [3]float64{1.0, -2.0 * p.Radius * math.Cos(p.Angle), p.Radius * p.Radius}
		out := make([]float64, len(a)+2)
		for i, ai := range a {
			for k, qk := range quad {
				out[i+k] += ai * qk
			}
		}
		a = out
	}
	return a
}
