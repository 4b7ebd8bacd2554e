package montmath

// QuarterForm is the Montgomery form for odd moduli below R/4. Values live
// in [0, 2n) and REDC results skip the final conditional entirely: the +n
// correction is unconditional, so the multiply hot path has no select at
// all. GetCanonical performs the deferred reduction when a caller needs the
// unique representative.
type QuarterForm[T Uint] struct {
	montyCommon[T]
}

// NewQuarterForm returns a quarter-range Montgomery form. It panics if the
// modulus is even, too small, or at least R/4.
func NewQuarterForm[T Uint](modulus T) QuarterForm[T] {
	if modulus > ^T(0)>>2 {
		panic("montmath: modulus too large for QuarterForm")
	}
	return QuarterForm[T]{newMontyCommon(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, R/4 - 1.
func (QuarterForm[T]) MaxModulus() T { return ^T(0) >> 2 }

// ConvertIn maps a into Montgomery form; the result lies in (0, 2n).
func (f QuarterForm[T]) ConvertIn(a T) MontgomeryValue[T] {
	hi, lo := multiplyWide(a, f.r2)
	return MontgomeryValue[T]{redcQuarter(hi, lo, f.n, f.inv)}
}

// GetCanonical reduces x into [0, n).
func (f QuarterForm[T]) GetCanonical(x MontgomeryValue[T]) CanonicalValue[T] {
	v := condSelect(x.v >= f.n, x.v-f.n, x.v)
	return CanonicalValue[T]{MontgomeryValue[T]{v}}
}

// Add returns x+y mod n, kept in [0, 2n). Since 2n < R/2 the values behave
// like reduced inputs under the modulus 2n.
func (f QuarterForm[T]) Add(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	t := x.v + y.v
	n2 := f.n + f.n
	return MontgomeryValue[T]{condSelect(t >= n2, t-n2, t)}
}

// AddLowUops is Add with the masked correction sequence.
func (f QuarterForm[T]) AddLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	t := x.v + y.v
	n2 := f.n + f.n
	return MontgomeryValue[T]{t - n2&(0-b2u[T](t >= n2))}
}

// Subtract returns x-y mod n, kept in [0, 2n).
func (f QuarterForm[T]) Subtract(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(x.v, y.v, f.n+f.n)}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (f QuarterForm[T]) SubtractLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSubLowUops(x.v, y.v, f.n+f.n)}
}

// Negate returns -x mod n, kept in [0, 2n).
func (f QuarterForm[T]) Negate(x MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{ModularSub(0, x.v, f.n+f.n)}
}

// TwoTimes returns 2*x mod n, kept in [0, 2n).
func (f QuarterForm[T]) TwoTimes(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Add(x, x)
}

// Multiply returns x*y mod n in (0, 2n). Inputs below 2n with n < R/4 keep
// the product under n*R, so the REDC precondition holds.
func (f QuarterForm[T]) Multiply(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	hi, lo := multiplyWide(x.v, y.v)
	return MontgomeryValue[T]{redcQuarter(hi, lo, f.n, f.inv)}
}

// MultiplyIsZero returns x*y mod n along with whether the product is the
// zero residue. In (0, 2n) the zero residue is represented by exactly n.
func (f QuarterForm[T]) MultiplyIsZero(x, y MontgomeryValue[T]) (MontgomeryValue[T], bool) {
	p := f.Multiply(x, y)
	return p, p.v == f.n
}

// Square returns x*x mod n in (0, 2n).
func (f QuarterForm[T]) Square(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Multiply(x, x)
}

// FMAdd returns x*y + f mod n, kept in [0, 2n).
func (f QuarterForm[T]) FMAdd(x, y MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.Add(f.Multiply(x, y), MontgomeryValue[T]{fv.v})
}

// FMSub returns x*y - f mod n, kept in [0, 2n).
func (f QuarterForm[T]) FMSub(x, y MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.Subtract(f.Multiply(x, y), MontgomeryValue[T]{fv.v})
}

// FusedSquareAdd returns x*x + f mod n.
func (f QuarterForm[T]) FusedSquareAdd(x MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.FMAdd(x, x, fv)
}

// FusedSquareSub returns x*x - f mod n.
func (f QuarterForm[T]) FusedSquareSub(x MontgomeryValue[T], fv FusingValue[T]) MontgomeryValue[T] {
	return f.FMSub(x, x, fv)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n for e in [0, bits(T)]. The
// value is reduced below n first so the REDC precondition holds for e = 0.
func (f QuarterForm[T]) DivideBySmallPowerOfTwo(x MontgomeryValue[T], e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	if e < 0 || e > w {
		panic("montmath: power of two exponent out of range")
	}
	v := condSelect(x.v >= f.n, x.v-f.n, x.v)
	return MontgomeryValue[T]{redcQuarter(v>>e, v<<(w-e), f.n, f.inv)}
}

// twoPowLimited returns the Montgomery form of 2^e for 0 <= e <= bits(T),
// in (0, 2n).
func (f QuarterForm[T]) twoPowLimited(e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	return MontgomeryValue[T]{redcQuarter(f.r2>>(w-e), f.r2<<e, f.n, f.inv)}
}

// rTimesTwoPowLimited returns the Montgomery form of 2^(bits+e), in (0, 2n).
func (f QuarterForm[T]) rTimesTwoPowLimited(e int) MontgomeryValue[T] {
	w := bitsOf[T]()
	return MontgomeryValue[T]{redcQuarter(f.r3>>(w-e), f.r3<<e, f.n, f.inv)}
}

// Pow returns base^exponent mod n.
func (f QuarterForm[T]) Pow(base MontgomeryValue[T], exponent uint64) MontgomeryValue[T] {
	return montPow(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f QuarterForm[T]) PowArray(bases []MontgomeryValue[T], exponent uint64) []MontgomeryValue[T] {
	return montPowArray(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f QuarterForm[T]) TwoPow(exponent uint64) MontgomeryValue[T] {
	return montTwoPow[T](f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f QuarterForm[T]) TwoPowArray(exponents []uint64) []MontgomeryValue[T] {
	return montTwoPowArray[T](f, exponents)
}
