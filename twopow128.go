package montmath

// montyOps128 mirrors montyOps for the double-width forms.
type montyOps128 interface {
	modmulOps128
	twoPowLimited(e int) MontgomeryValue128
	rTimesTwoPowLimited(e int) MontgomeryValue128
	montvalueR() MontgomeryValue128
}

// montTwoPow128 is the fixed-window base-2 exponentiation over a 128-bit
// exponent: 8-bit windows, each resolved by a single shift-and-REDC lookup.
func montTwoPow128[F montyOps128](f F, exponent Uint128) MontgomeryValue128 {
	if exponent.Hi == 0 && exponent.Lo <= 128 {
		return f.twoPowLimited(int(exponent.Lo))
	}

	const p = 8 // log2(128) + 1
	total := uint(exponent.BitLen())
	rem := total % p
	if rem == 0 {
		rem = p
	}
	shift := total - rem

	result := twoPowWindow128(f, exponent.Rsh(shift).Lo&(1<<rem-1))
	for shift > 0 {
		shift -= p
		for i := 0; i < p; i++ {
			result = f.Square(result)
		}
		if v := exponent.Rsh(shift).Lo & (1<<p - 1); v != 0 {
			result = f.Multiply(result, twoPowWindow128(f, v))
		}
	}
	return result
}

// twoPowWindow128 returns 2^v mod n for a window value v < 256.
func twoPowWindow128[F montyOps128](f F, v uint64) MontgomeryValue128 {
	if v >= 128 {
		return f.rTimesTwoPowLimited(int(v - 128))
	}
	return f.twoPowLimited(int(v))
}

// montTwoPowArray128 computes 2^e mod n for every 128-bit exponent on one
// shared chain of squarings of mont(2^128).
func montTwoPowArray128[F montyOps128](f F, exponents []Uint128) []MontgomeryValue128 {
	result := make([]MontgomeryValue128, len(exponents))
	var max Uint128
	for i, e := range exponents {
		result[i] = f.twoPowLimited(int(e.Lo & 127))
		if max.Less(e) {
			max = e
		}
	}

	one := f.One().MontgomeryValue128
	base := f.montvalueR()
	for bit := uint(7); bit < uint(max.BitLen()); bit++ {
		for i, e := range exponents {
			m := selectValue128(e.Bit(bit) == 1, base, one)
			result[i] = f.Multiply(result[i], m)
		}
		base = f.Square(base)
	}
	return result
}
