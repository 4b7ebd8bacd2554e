package montmath

// QuarterForm128 is the 128-bit Montgomery form for odd moduli below 2^126.
// Values live in [0, 2n) and the REDC correction is unconditional, exactly
// as in QuarterForm.
type QuarterForm128 struct {
	montyCommon128
}

// NewQuarterForm128 returns a quarter-range 128-bit Montgomery form.
func NewQuarterForm128(modulus Uint128) QuarterForm128 {
	if (QuarterForm128{}).MaxModulus().Less(modulus) {
		panic("montmath: modulus too large for QuarterForm128")
	}
	return QuarterForm128{newMontyCommon128(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, 2^126 - 1.
func (QuarterForm128) MaxModulus() Uint128 {
	return Uint128{^uint64(0) >> 2, ^uint64(0)}
}

// ConvertIn maps a into Montgomery form; the result lies in (0, 2n).
func (f QuarterForm128) ConvertIn(a Uint128) MontgomeryValue128 {
	hi, lo := a.MulWide(f.r2)
	return MontgomeryValue128{redcQuarter128(hi, lo, f.n, f.inv)}
}

// GetCanonical reduces x into [0, n).
func (f QuarterForm128) GetCanonical(x MontgomeryValue128) CanonicalValue128 {
	v := condSelect128(x.v.Less(f.n), x.v, x.v.Sub(f.n))
	return CanonicalValue128{MontgomeryValue128{v}}
}

// Add returns x+y mod n, kept in [0, 2n).
func (f QuarterForm128) Add(x, y MontgomeryValue128) MontgomeryValue128 {
	t := x.v.Add(y.v)
	n2 := f.n.Add(f.n)
	return MontgomeryValue128{condSelect128(t.Less(n2), t, t.Sub(n2))}
}

// AddLowUops is Add with the masked correction sequence.
func (f QuarterForm128) AddLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	t := x.v.Add(y.v)
	n2 := f.n.Add(f.n)
	return MontgomeryValue128{t.Sub(n2.And(mask128(!t.Less(n2))))}
}

// Subtract returns x-y mod n, kept in [0, 2n).
func (f QuarterForm128) Subtract(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(x.v, y.v, f.n.Add(f.n))}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (f QuarterForm128) SubtractLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSubLowUops128(x.v, y.v, f.n.Add(f.n))}
}

// Negate returns -x mod n, kept in [0, 2n).
func (f QuarterForm128) Negate(x MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(Uint128{}, x.v, f.n.Add(f.n))}
}

// TwoTimes returns 2*x mod n, kept in [0, 2n).
func (f QuarterForm128) TwoTimes(x MontgomeryValue128) MontgomeryValue128 {
	return f.Add(x, x)
}

// Multiply returns x*y mod n in (0, 2n).
func (f QuarterForm128) Multiply(x, y MontgomeryValue128) MontgomeryValue128 {
	hi, lo := x.v.MulWide(y.v)
	return MontgomeryValue128{redcQuarter128(hi, lo, f.n, f.inv)}
}

// MultiplyIsZero returns x*y mod n along with whether the product is the
// zero residue, which this range represents as exactly n.
func (f QuarterForm128) MultiplyIsZero(x, y MontgomeryValue128) (MontgomeryValue128, bool) {
	p := f.Multiply(x, y)
	return p, p.v == f.n
}

// Square returns x*x mod n in (0, 2n).
func (f QuarterForm128) Square(x MontgomeryValue128) MontgomeryValue128 {
	return f.Multiply(x, x)
}

// FMAdd returns x*y + f mod n, kept in [0, 2n).
func (f QuarterForm128) FMAdd(x, y MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.Add(f.Multiply(x, y), MontgomeryValue128{fv.v})
}

// FMSub returns x*y - f mod n, kept in [0, 2n).
func (f QuarterForm128) FMSub(x, y MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.Subtract(f.Multiply(x, y), MontgomeryValue128{fv.v})
}

// FusedSquareAdd returns x*x + f mod n.
func (f QuarterForm128) FusedSquareAdd(x MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.FMAdd(x, x, fv)
}

// FusedSquareSub returns x*x - f mod n.
func (f QuarterForm128) FusedSquareSub(x MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.FMSub(x, x, fv)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n for e in [0, 128].
func (f QuarterForm128) DivideBySmallPowerOfTwo(x MontgomeryValue128, e int) MontgomeryValue128 {
	if e < 0 || e > 128 {
		panic("montmath: power of two exponent out of range")
	}
	v := condSelect128(x.v.Less(f.n), x.v, x.v.Sub(f.n))
	return MontgomeryValue128{redcQuarter128(v.Rsh(uint(e)), v.Lsh(uint(128-e)), f.n, f.inv)}
}

// twoPowLimited returns the Montgomery form of 2^e for 0 <= e <= 128, in
// (0, 2n).
func (f QuarterForm128) twoPowLimited(e int) MontgomeryValue128 {
	uHi := f.r2.Rsh(uint(128 - e))
	uLo := f.r2.Lsh(uint(e))
	return MontgomeryValue128{redcQuarter128(uHi, uLo, f.n, f.inv)}
}

// rTimesTwoPowLimited returns the Montgomery form of 2^(128+e), in (0, 2n).
func (f QuarterForm128) rTimesTwoPowLimited(e int) MontgomeryValue128 {
	uHi := f.r3.Rsh(uint(128 - e))
	uLo := f.r3.Lsh(uint(e))
	return MontgomeryValue128{redcQuarter128(uHi, uLo, f.n, f.inv)}
}

// Pow returns base^exponent mod n.
func (f QuarterForm128) Pow(base MontgomeryValue128, exponent Uint128) MontgomeryValue128 {
	return montPow128(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f QuarterForm128) PowArray(bases []MontgomeryValue128, exponent Uint128) []MontgomeryValue128 {
	return montPowArray128(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f QuarterForm128) TwoPow(exponent Uint128) MontgomeryValue128 {
	return montTwoPow128(f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f QuarterForm128) TwoPowArray(exponents []Uint128) []MontgomeryValue128 {
	return montTwoPowArray128(f, exponents)
}
