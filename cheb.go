package lsp

// chebEval evaluates a half-order polynomial expressed in the Chebyshev
// basis at x:
//
//	sum_{i=0..m} coef[m-i] * T_i(x)
//
// where m = len(coef)-1 and T_0 = 1, T_1 = x, T_i = 2x*T_{i-1} - T_{i-2}.
// The recurrence is carried in three scalars, so the evaluation allocates
// nothing and needs no scratch.
func chebEval(coef []float64, x float64) float64 {
	m := len(coef) - 1
	sum := coef[m]

	if m == 0 {
		return sum
	}

	tPrev, tCur := 1.0, x
	sum += coef[m-1] * x

	for i := 2; i <= m; i++ {
		tNext := 2*x*tCur - tPrev
		sum += coef[m-i] * tNext
		tPrev, tCur = tCur, tNext
	}

	return sum
}
