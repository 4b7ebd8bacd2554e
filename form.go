package montmath

// montyCommon carries the modulus-derived constants and every operation
// whose implementation is identical for the canonical-range forms (Form and
// HalfForm). The structs embedding it add their range checks and the few ops
// where their tighter modulus bound buys a cheaper sequence.
type montyCommon[T Uint] struct {
	n   T // modulus
	inv T // n^-1 mod 2^bits
	r   T // R mod n, the Montgomery form of 1
	r2  T // R^2 mod n, the Montgomery form of R
	r3  T // R^3 mod n, feeds the high windows of two-pow
}

func newMontyCommon[T Uint](modulus T) montyCommon[T] {
	if modulus&1 == 0 {
		panic("montmath: modulus must be odd")
	}
	if modulus <= 1 {
		panic("montmath: modulus must exceed 1")
	}
	inv := inverseModR(modulus)
	r := rModN(modulus)
	r2 := rSquaredModN(r, modulus)
	hi, lo := multiplyWide(r2, r2)
	r3 := redcStandard(hi, lo, modulus, inv)
	return montyCommon[T]{n: modulus, inv: inv, r: r, r2: r2, r3: r3}
}

// Modulus returns the modulus the form was constructed with.
func (c montyCommon[T]) Modulus() T { return c.n }

// ConvertIn maps a into Montgomery form. a does not need to be reduced.
func (c montyCommon[T]) ConvertIn(a T) MontgomeryValue[T] {
	hi, lo := multiplyWide(a, c.r2)
	return MontgomeryValue[T]{redcStandard(hi, lo, c.n, c.inv)}
}

// convertInExtended maps the double-width value hi*R + lo into Montgomery
// form, one REDC per half.
func (c montyCommon[T]) convertInExtended(hi, lo T) MontgomeryValue[T] {
	h1, l1 := multiplyWide(hi, c.r3)
	h2, l2 := multiplyWide(lo, c.r2)
	a := redcStandard(h1, l1, c.n, c.inv)
	b := redcStandard(h2, l2, c.n, c.inv)
	return MontgomeryValue[T]{ModularAdd(a, b, c.n)}
}

// ConvertOut maps x back to the plain integer residue in [0, n).
func (c montyCommon[T]) ConvertOut(x MontgomeryValue[T]) T {
	return redcStandard(0, x.v, c.n, c.inv)
}

// GetCanonical returns x as a canonical value. Values of the canonical-range
// forms already are canonical, so this is a retype.
func (c montyCommon[T]) GetCanonical(x MontgomeryValue[T]) CanonicalValue[T] {
	return CanonicalValue[T]{x}
}

// GetFusing prepares a canonical value for use as an FMAdd/FMSub addend.
func (c montyCommon[T]) GetFusing(x CanonicalValue[T]) FusingValue[T] {
	return FusingValue[T]{x.v}
}

// One returns the Montgomery form of 1, which is R mod n.
func (c montyCommon[T]) One() CanonicalValue[T] {
	return CanonicalValue[T]{MontgomeryValue[T]{c.r}}
}

// Zero returns the Montgomery form of 0.
func (c montyCommon[T]) Zero() CanonicalValue[T] {
	return CanonicalValue[T]{}
}

// NegativeOne returns the Montgomery form of n-1.
func (c montyCommon[T]) NegativeOne() CanonicalValue[T] {
	return CanonicalValue[T]{MontgomeryValue[T]{c.n - c.r}}
}

// Negate returns -x mod n.
func (c montyCommon[T]) Negate(x MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(0, x.v, c.n)}
}

// Subtract returns x-y mod n.
func (c montyCommon[T]) Subtract(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(x.v, y.v, c.n)}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (c montyCommon[T]) SubtractLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSubLowUops(x.v, y.v, c.n)}
}

// UnorderedSubtract returns either x-y or y-x mod n, whichever needs no
// reduction. Useful when the caller squares the result or otherwise does not
// care about the sign.
func (c montyCommon[T]) UnorderedSubtract(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{AbsDiff(x.v, y.v)}
}

// Multiply returns x*y mod n.
func (c montyCommon[T]) Multiply(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	hi, lo := multiplyWide(x.v, y.v)
	return MontgomeryValue[T]{redcStandard(hi, lo, c.n, c.inv)}
}

// MultiplyIsZero returns x*y mod n along with whether the product is the
// zero residue, tested for free on the reduced result.
func (c montyCommon[T]) MultiplyIsZero(x, y MontgomeryValue[T]) (MontgomeryValue[T], bool) {
	p := c.Multiply(x, y)
	return p, p.v == 0
}

// Square returns x*x mod n.
func (c montyCommon[T]) Square(x MontgomeryValue[T]) MontgomeryValue[T] {
	return c.Multiply(x, x)
}

// FMAdd returns x*y + f mod n.
func (c montyCommon[T]) FMAdd(x, y MontgomeryValue[T], f FusingValue[T]) MontgomeryValue[T] {
	p := c.Multiply(x, y)
	return MontgomeryValue[T]{ModularAdd(p.v, f.v, c.n)}
}

// FMSub returns x*y - f mod n.
func (c montyCommon[T]) FMSub(x, y MontgomeryValue[T], f FusingValue[T]) MontgomeryValue[T] {
	p := c.Multiply(x, y)
	return MontgomeryValue[T]{ModularSub(p.v, f.v, c.n)}
}

// FusedSquareAdd returns x*x + f mod n.
func (c montyCommon[T]) FusedSquareAdd(x MontgomeryValue[T], f FusingValue[T]) MontgomeryValue[T] {
	return c.FMAdd(x, x, f)
}

// FusedSquareSub returns x*x - f mod n.
func (c montyCommon[T]) FusedSquareSub(x MontgomeryValue[T], f FusingValue[T]) MontgomeryValue[T] {
	return c.FMSub(x, x, f)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n, exact in the ring because n
// is odd. e must be in [0, bits(T)]; a single REDC of x shifted up by
// bits-e performs the division.
func (c montyCommon[T]) DivideBySmallPowerOfTwo(x MontgomeryValue[T], e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	if e < 0 || e > w {
		panic("montmath: power of two exponent out of range")
	}
	return MontgomeryValue[T]{redcStandard(x.v>>e, x.v<<(w-e), c.n, c.inv)}
}

// Inverse returns the multiplicative inverse of x mod n, or the zero value
// when x shares a factor with n. Two REDCs peel the Montgomery factor down
// to a*R^-1, whose plain inverse is already back in Montgomery form.
func (c montyCommon[T]) Inverse(x MontgomeryValue[T]) MontgomeryValue[T] {
	t := redcStandard(0, x.v, c.n, c.inv)
	t = redcStandard(0, t, c.n, c.inv)
	return MontgomeryValue[T]{ModularInverse(t, c.n)}
}

// Remainder reduces a plain integer into [0, n) without converting it into
// Montgomery form.
func (c montyCommon[T]) Remainder(a T) T { return a % c.n }

// GCDWithModulus evaluates gcd(x, n) through the supplied gcd function. Any
// Montgomery representative of x works, since R shares no factor with n.
func (c montyCommon[T]) GCDWithModulus(x MontgomeryValue[T], gcd func(a, b T) T) T {
	return gcd(x.v, c.n)
}

// twoPowLimited returns the Montgomery form of 2^e for 0 <= e <= bits(T),
// as a single REDC of r2 shifted up by e.
func (c montyCommon[T]) twoPowLimited(e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	return MontgomeryValue[T]{redcStandard(c.r2>>(w-e), c.r2<<e, c.n, c.inv)}
}

// rTimesTwoPowLimited returns the Montgomery form of 2^(bits+e) for
// 0 <= e <= bits(T), the same shift-and-REDC applied to r3.
func (c montyCommon[T]) rTimesTwoPowLimited(e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	return MontgomeryValue[T]{redcStandard(c.r3>>(w-e), c.r3<<e, c.n, c.inv)}
}

// montvalueR returns the Montgomery form of R, which is r2 itself.
func (c montyCommon[T]) montvalueR() MontgomeryValue[T] {
	return MontgomeryValue[T]{c.r2}
}

// magicValue returns R^3 mod n.
func (c montyCommon[T]) magicValue() MontgomeryValue[T] {
	return MontgomeryValue[T]{c.r3}
}

// Form is the full-range Montgomery form: it accepts any odd modulus
// 1 < n <= MaxModulus, at the cost of the overflow-safe addition sequence.
// All values it produces are canonical. A Form is immutable and safe for
// concurrent use.
type Form[T Uint] struct {
	montyCommon[T]
}

// NewForm returns a Montgomery form for an odd modulus above 1. It panics if
// the modulus is even or too small.
func NewForm[T Uint](modulus T) Form[T] {
	return Form[T]{newMontyCommon(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, R-1.
func (Form[T]) MaxModulus() T { return ^T(0) }

// Add returns x+y mod n.
func (f Form[T]) Add(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularAdd(x.v, y.v, f.n)}
}

// AddLowUops is Add with the masked correction sequence.
func (f Form[T]) AddLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularAddLowUops(x.v, y.v, f.n)}
}

// TwoTimes returns 2*x mod n.
func (f Form[T]) TwoTimes(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Add(x, x)
}

// Pow returns base^exponent mod n.
func (f Form[T]) Pow(base MontgomeryValue[T], exponent uint64) MontgomeryValue[T] {
	return montPow(f, base, exponent)
}

// PowArray raises every base to the same exponent, interleaving the ladders
// so the squarings of all lanes overlap.
func (f Form[T]) PowArray(bases []MontgomeryValue[T], exponent uint64) []MontgomeryValue[T] {
	return montPowArray(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f Form[T]) TwoPow(exponent uint64) MontgomeryValue[T] {
	return montTwoPow[T](f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e, sharing one
// square-and-multiply schedule across the lanes.
func (f Form[T]) TwoPowArray(exponents []uint64) []MontgomeryValue[T] {
	return montTwoPowArray[T](f, exponents)
}
