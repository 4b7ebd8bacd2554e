package montmath

// modmulOps is the slice of a form the exponentiation ladders need. Using it
// as a type parameter constraint rather than an interface value keeps every
// form's ladder monomorphized, with no dynamic dispatch on the hot path.
type modmulOps[T Uint] interface {
	Multiply(x, y MontgomeryValue[T]) MontgomeryValue[T]
	Square(x MontgomeryValue[T]) MontgomeryValue[T]
	One() CanonicalValue[T]
}

// montPow is the right-to-left binary ladder shared by every form. The
// running result is updated through a select on the exponent bit, so the
// sequence of multiplies does not depend on the bit values.
func montPow[T Uint, F modmulOps[T]](f F, base MontgomeryValue[T], exponent uint64) MontgomeryValue[T] {
	result := selectValue(exponent&1 == 1, base, f.One().MontgomeryValue)
	for exponent > 1 {
		exponent >>= 1
		base = f.Square(base)
		result = selectValue(exponent&1 == 1, f.Multiply(result, base), result)
	}
	return result
}

// montPowArray runs one ladder over many bases sharing a single exponent.
// Grouping the squarings of all lanes together lets them overlap in the
// pipeline, which is the whole point of the array form.
func montPowArray[T Uint, F modmulOps[T]](f F, bases []MontgomeryValue[T], exponent uint64) []MontgomeryValue[T] {
	one := f.One().MontgomeryValue
	result := make([]MontgomeryValue[T], len(bases))
	b := make([]MontgomeryValue[T], len(bases))
	for i, x := range bases {
		b[i] = x
		result[i] = selectValue(exponent&1 == 1, x, one)
	}
	for e := exponent; e > 1; {
		e >>= 1
		for i := range b {
			b[i] = f.Square(b[i])
		}
		if e&1 == 1 {
			for i := range result {
				result[i] = f.Multiply(result[i], b[i])
			}
		}
	}
	return result
}
