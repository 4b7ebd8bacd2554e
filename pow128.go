package montmath

// modmulOps128 mirrors modmulOps for the double-width forms.
type modmulOps128 interface {
	Multiply(x, y MontgomeryValue128) MontgomeryValue128
	Square(x MontgomeryValue128) MontgomeryValue128
	One() CanonicalValue128
}

// montPow128 is the select-on-bit binary ladder over a 128-bit exponent.
func montPow128[F modmulOps128](f F, base MontgomeryValue128, exponent Uint128) MontgomeryValue128 {
	one := Uint128{0, 1}
	result := selectValue128(exponent.Lo&1 == 1, base, f.One().MontgomeryValue128)
	for one.Less(exponent) {
		exponent = exponent.Rsh(1)
		base = f.Square(base)
		result = selectValue128(exponent.Lo&1 == 1, f.Multiply(result, base), result)
	}
	return result
}

// montPowArray128 runs one ladder over many bases sharing a 128-bit
// exponent, squaring all lanes together.
func montPowArray128[F modmulOps128](f F, bases []MontgomeryValue128, exponent Uint128) []MontgomeryValue128 {
	one := f.One().MontgomeryValue128
	result := make([]MontgomeryValue128, len(bases))
	b := make([]MontgomeryValue128, len(bases))
	for i, x := range bases {
		b[i] = x
		result[i] = selectValue128(exponent.Lo&1 == 1, x, one)
	}
	for e := exponent; (Uint128{0, 1}).Less(e); {
		e = e.Rsh(1)
		for i := range b {
			b[i] = f.Square(b[i])
		}
		if e.Lo&1 == 1 {
			for i := range result {
				result[i] = f.Multiply(result[i], b[i])
			}
		}
	}
	return result
}
