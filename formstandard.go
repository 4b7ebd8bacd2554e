package montmath

// StandardForm wraps plain modular arithmetic in the same API as the
// Montgomery forms, so generic callers can fall back to it when the modulus
// is even or simply unknown in advance. Any modulus above 0 works; values
// are their own representatives and stay canonical.
type StandardForm[T Uint] struct {
	n T // modulus
	r T // 2^bits mod n, stands in for the Montgomery R constants
}

// NewStandardForm returns a standard-arithmetic form for any nonzero
// modulus.
func NewStandardForm[T Uint](modulus T) StandardForm[T] {
	if modulus == 0 {
		panic("montmath: modulus must be nonzero")
	}
	return StandardForm[T]{n: modulus, r: (0 - modulus) % modulus}
}

// MaxModulus returns the largest modulus the form accepts.
func (StandardForm[T]) MaxModulus() T { return ^T(0) }

// Modulus returns the modulus the form was constructed with.
func (f StandardForm[T]) Modulus() T { return f.n }

// ConvertIn reduces a into the form. a does not need to be reduced.
func (f StandardForm[T]) ConvertIn(a T) MontgomeryValue[T] {
	return MontgomeryValue[T]{a % f.n}
}

// convertInExtended reduces the double-width value hi*R + lo.
func (f StandardForm[T]) convertInExtended(hi, lo T) MontgomeryValue[T] {
	h := ModularMul(hi%f.n, f.r, f.n)
	return MontgomeryValue[T]{ModularAdd(h, lo%f.n, f.n)}
}

// ConvertOut returns the residue x stands for.
func (f StandardForm[T]) ConvertOut(x MontgomeryValue[T]) T { return x.v }

// GetCanonical returns x as a canonical value; standard values already are.
func (f StandardForm[T]) GetCanonical(x MontgomeryValue[T]) CanonicalValue[T] {
	return CanonicalValue[T]{x}
}

// GetFusing prepares a canonical value for FMAdd/FMSub.
func (f StandardForm[T]) GetFusing(x CanonicalValue[T]) FusingValue[T] {
	return FusingValue[T]{x.v}
}

// One returns the residue 1 (or 0 when the modulus is 1).
func (f StandardForm[T]) One() CanonicalValue[T] {
	return CanonicalValue[T]{MontgomeryValue[T]{1 % f.n}}
}

// Zero returns the residue 0.
func (f StandardForm[T]) Zero() CanonicalValue[T] {
	return CanonicalValue[T]{}
}

// NegativeOne returns the residue n-1 (0 when the modulus is 1).
func (f StandardForm[T]) NegativeOne() CanonicalValue[T] {
	return CanonicalValue[T]{MontgomeryValue[T]{ModularSub(0, 1%f.n, f.n)}}
}

// Negate returns -x mod n.
func (f StandardForm[T]) Negate(x MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(0, x.v, f.n)}
}

// Add returns x+y mod n.
func (f StandardForm[T]) Add(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularAdd(x.v, y.v, f.n)}
}

// AddLowUops is Add with the masked correction sequence.
func (f StandardForm[T]) AddLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularAddLowUops(x.v, y.v, f.n)}
}

// Subtract returns x-y mod n.
func (f StandardForm[T]) Subtract(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(x.v, y.v, f.n)}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (f StandardForm[T]) SubtractLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSubLowUops(x.v, y.v, f.n)}
}

// UnorderedSubtract returns either x-y or y-x mod n.
func (f StandardForm[T]) UnorderedSubtract(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{AbsDiff(x.v, y.v)}
}

// TwoTimes returns 2*x mod n.
func (f StandardForm[T]) TwoTimes(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Add(x, x)
}

// Multiply returns x*y mod n.
func (f StandardForm[T]) Multiply(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularMul(x.v, y.v, f.n)}
}

// MultiplyIsZero returns x*y mod n and whether the product is zero.
func (f StandardForm[T]) MultiplyIsZero(x, y MontgomeryValue[T]) (MontgomeryValue[T], bool) {
	p := f.Multiply(x, y)
	return p, p.v == 0
}

// Square returns x*x mod n.
func (f StandardForm[T]) Square(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Multiply(x, x)
}

// FMAdd returns x*y + f mod n.
func (f StandardForm[T]) FMAdd(x, y MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	p := f.Multiply(x, y)
	return MontgomeryValue[T]{ModularAdd(p.v, fv.v, f.n)}
}

// FMSub returns x*y - f mod n.
func (f StandardForm[T]) FMSub(x, y MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	p := f.Multiply(x, y)
	return MontgomeryValue[T]{ModularSub(p.v, fv.v, f.n)}
}

// FusedSquareAdd returns x*x + f mod n.
func (f StandardForm[T]) FusedSquareAdd(x MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.FMAdd(x, x, fv)
}

// FusedSquareSub returns x*x - f mod n.
func (f StandardForm[T]) FusedSquareSub(x MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.FMSub(x, x, fv)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n. The division multiplies by
// the inverse of 2^e, which exists only for odd moduli; it panics when the
// modulus is even and e > 0.
func (f StandardForm[T]) DivideBySmallPowerOfTwo(x MontgomeryValue[T], e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	if e < 0 || e > w {
		panic("montmath: power of two exponent out of range")
	}
	inv := ModularInverse(f.twoPowLimited(e).v, f.n)
	if inv == 0 && e > 0 && f.n > 1 {
		panic("montmath: modulus must be odd to divide by a power of two")
	}
	if e == 0 {
		return x
	}
	return MontgomeryValue[T]{ModularMul(x.v, inv, f.n)}
}

// Inverse returns the multiplicative inverse of x mod n, or the zero value
// when none exists.
func (f StandardForm[T]) Inverse(x MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularInverse(x.v, f.n)}
}

// Remainder reduces a plain integer into [0, n).
func (f StandardForm[T]) Remainder(a T) T { return a % f.n }

// GCDWithModulus evaluates gcd(x, n) through the supplied gcd function.
func (f StandardForm[T]) GCDWithModulus(x MontgomeryValue[T], gcd func(a, b T) T) T {
	return gcd(x.v, f.n)
}

// twoPowLimited returns 2^e mod n for 0 <= e <= bits(T).
func (f StandardForm[T]) twoPowLimited(e int) MontgomeryValue[T] {
	if e >= bitsOf[T]() {
		return MontgomeryValue[T]{f.r}
	}
	return MontgomeryValue[T]{T(1) << e % f.n}
}

// rTimesTwoPowLimited returns 2^(bits+e) mod n for 0 <= e <= bits(T).
func (f StandardForm[T]) rTimesTwoPowLimited(e int) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularMul(f.r, f.twoPowLimited(e).v, f.n)}
}

// montvalueR returns 2^bits mod n.
func (f StandardForm[T]) montvalueR() MontgomeryValue[T] {
	return MontgomeryValue[T]{f.r}
}

// Pow returns base^exponent mod n.
func (f StandardForm[T]) Pow(base MontgomeryValue[T], exponent uint64) MontgomeryValue[T] {
	return montPow(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f StandardForm[T]) PowArray(bases []MontgomeryValue[T], exponent uint64) []MontgomeryValue[T] {
	return montPowArray(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n. The shared window walk applies unchanged:
// the per-window factors are plain powers of two here.
func (f StandardForm[T]) TwoPow(exponent uint64) MontgomeryValue[T] {
	return montTwoPow[T](f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f StandardForm[T]) TwoPowArray(exponents []uint64) []MontgomeryValue[T] {
	return montTwoPowArray[T](f, exponents)
}
