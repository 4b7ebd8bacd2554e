package montmath

// redcIncomplete128 mirrors redcIncomplete for the double-width type:
// uHi < n, odd n, invN = n^-1 mod 2^128.
func redcIncomplete128(uHi, uLo, n, invN Uint128) (tHi Uint128, borrow bool) {
	m := uLo.Mul(invN)
	mnHi, _ := m.MulWide(n)
	return uHi.Sub(mnHi), uHi.Less(mnHi)
}

// redcStandard128 completes REDC to a canonical result in [0, n).
func redcStandard128(uHi, uLo, n, invN Uint128) Uint128 {
	tHi, borrow := redcIncomplete128(uHi, uLo, n, invN)
	return condSelect128(borrow, tHi.Add(n), tHi)
}

// redcStandardLowUops128 is redcStandard128 with the masked correction.
func redcStandardLowUops128(uHi, uLo, n, invN Uint128) Uint128 {
	tHi, borrow := redcIncomplete128(uHi, uLo, n, invN)
	return tHi.Add(n.And(mask128(borrow)))
}

// redcQuarter128 applies the +n correction unconditionally, leaving the
// result in (0, 2n) for quarter-range moduli.
func redcQuarter128(uHi, uLo, n, invN Uint128) Uint128 {
	tHi, _ := redcIncomplete128(uHi, uLo, n, invN)
	return tHi.Add(n)
}
