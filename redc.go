package montmath

// redcIncomplete is the core of Montgomery REDC on the double-width input
// u = uHi*R + uLo. It requires uHi < n, odd n, and invN = n^-1 mod R, and
// returns tHi together with whether the high-half subtraction borrowed. The
// reduced value u*R^-1 mod n equals tHi when borrow is false and tHi+n
// otherwise.
//
// The low halves of u and m*n always match, so the low subtraction cancels
// exactly and contributes no borrow of its own.
func redcIncomplete[T Uint](uHi, uLo, n, invN T) (tHi T, borrow bool) {
	m := uLo * invN
	mnHi, _ := multiplyWide(m, n)
	return uHi - mnHi, uHi < mnHi
}

// redcStandard completes REDC to a canonical result in [0, n).
func redcStandard[T Uint](uHi, uLo, n, invN T) T {
	tHi, borrow := redcIncomplete(uHi, uLo, n, invN)
	return condSelect(borrow, tHi+n, tHi)
}

// redcStandardLowUops is redcStandard with the masked correction.
func redcStandardLowUops[T Uint](uHi, uLo, n, invN T) T {
	tHi, borrow := redcIncomplete(uHi, uLo, n, invN)
	return tHi + n&(0-b2u[T](borrow))
}

// redcQuarter performs REDC for quarter-range moduli (n < R/4): the +n
// correction is applied unconditionally, leaving the result in (0, 2n).
// Zero is represented as n in this range, never as 0.
func redcQuarter[T Uint](uHi, uLo, n, invN T) T {
	tHi, _ := redcIncomplete(uHi, uLo, n, invN)
	return tHi + n
}
