package montmath

// inverseModR128 returns n^-1 mod 2^128 for odd n. The 64-bit inverse of
// the low limb is exact mod 2^64; one Newton step x*(2 - n*x) doubles that
// to the full width.
func inverseModR128(n Uint128) Uint128 {
	x := Uint128{0, inverseModR(n.Lo)}
	return x.Mul(Uint128{0, 2}.Sub(n.Mul(x)))
}

// rModN128 returns 2^128 mod n for 1 < n < 2^128.
func rModN128(n Uint128) Uint128 {
	return Uint128{}.Sub(n).Mod(n)
}

// rSquaredModN128 returns (2^128)^2 mod n for odd n. Four modular doublings
// lift R mod n to 2^4*R; Montgomery squarings then double the exponent of
// two until it reaches the width, at which point the value is 2^128*R = R^2.
func rSquaredModN128(rmod, n, invN Uint128) Uint128 {
	t := rmod
	for i := 0; i < 4; i++ {
		t = modularAdd128(t, t, n)
	}
	for i := 4; i < 128; i *= 2 {
		hi, lo := t.MulWide(t)
		t = redcStandard128(hi, lo, n, invN)
	}
	return t
}
