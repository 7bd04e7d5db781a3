package lsp

import (
	"math"
	"testing"
)

func TestChebEval_ConstantSeries(t *testing.T) {
	// A single coefficient is the T_0 term: the value must not depend on x.
	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		got := chebEval([]float64{3.25}, x)
		if got != 3.25 {
			t.Fatalf("chebEval(const, %v) = %v, want 3.25", x, got)
		}
	}
}

func TestChebEval_LinearSeries(t *testing.T) {
	// Two coefficients: coef[1]*T_0 + coef[0]*T_1 = coef[1] + coef[0]*x.
	coef := []float64{2.0, -0.5}

	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		want := coef[1] + coef[0]*x

		got := chebEval(coef, x)
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("chebEval(linear, %v) = %v, want %v", x, got, want)
		}
	}
}

func TestChebEval_QuadraticSeries(t *testing.T) {
	// Three coefficients against the explicit basis T0=1, T1=x, T2=2x^2-1.
	coef := []float64{1.5, -2.0, 0.75}

	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		want := coef[2] + coef[1]*x + coef[0]*(2*x*x-1)

		got := chebEval(coef, x)
		if math.Abs(got-want) > 1e-15 {
			t.Fatalf("chebEval(quadratic, %v) = %v, want %v", x, got, want)
		}
	}
}

func TestChebEval_MatchesDirectRecurrence(t *testing.T) {
	// Longer series against a straightforward T-array evaluation.
	coef := []float64{0.3, -1.2, 2.4, 0.9, -0.7, 1.1}
	m := len(coef) - 1

	for _, x := range []float64{-0.95, -0.3, 0.12, 0.77, 0.99} {
		T := make([]float64, m+1)
		T[0] = 1
		T[1] = x
		for i := 2; i <= m; i++ {
			T[i] = 2*x*T[i-1] - T[i-2]
		}

		want := 0.0
		for i := 0; i <= m; i++ {
			want += coef[m-i] * T[i]
		}

		got := chebEval(coef, x)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("chebEval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestDecompose_KnownVector(t *testing.T) {
	// Order-4 vector worked through the recurrence by hand:
	// P'[i] = a[i] + a[5-i] - P'[i-1], Q'[i] = a[i] - a[5-i] + Q'[i-1],
	// then all but the last entry doubled.
	a := []float64{1.0, 0.0, 0.0, 0.0, 10.0}

	p := make([]float64, 3)
	q := make([]float64, 3)
	decompose(p, q, a, 4)

	wantP := []float64{2, 18, -9}
	wantQ := []float64{2, -18, -9}

	for i := range wantP {
		if p[i] != wantP[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], wantP[i])
		}
		if q[i] != wantQ[i] {
			t.Errorf("q[%d] = %v, want %v", i, q[i], wantQ[i])
		}
	}
}

func TestDecompose_UnityLeadingTerms(t *testing.T) {
	a := []float64{1.0, -0.5, 0.3, -0.1, 0.25}

	p := make([]float64, 3)
	q := make([]float64, 3)
	decompose(p, q, a, 4)

	// Before doubling both polynomials start at 1; after it, at 2.
	if p[0] != 2.0 || q[0] != 2.0 {
		t.Fatalf("leading terms = %v, %v, want 2, 2", p[0], q[0])
	}
}
