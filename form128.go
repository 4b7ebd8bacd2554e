package montmath

// MontgomeryValue128 is the 128-bit counterpart of MontgomeryValue.
type MontgomeryValue128 struct {
	v Uint128
}

// CanonicalValue128 is a MontgomeryValue128 known to be reduced into [0, n).
type CanonicalValue128 struct {
	MontgomeryValue128
}

// FusingValue128 is a canonical 128-bit value prepared for FMAdd/FMSub.
type FusingValue128 struct {
	v Uint128
}

func selectValue128(c bool, a, b MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{condSelect128(c, a.v, b.v)}
}

// montyCommon128 mirrors montyCommon for the double-width type.
type montyCommon128 struct {
	n   Uint128
	inv Uint128
	r   Uint128
	r2  Uint128
	r3  Uint128
}

func newMontyCommon128(modulus Uint128) montyCommon128 {
	if modulus.Lo&1 == 0 {
		panic("montmath: modulus must be odd")
	}
	if modulus.Hi == 0 && modulus.Lo <= 1 {
		panic("montmath: modulus must exceed 1")
	}
	inv := inverseModR128(modulus)
	r := rModN128(modulus)
	r2 := rSquaredModN128(r, modulus, inv)
	hi, lo := r2.MulWide(r2)
	r3 := redcStandard128(hi, lo, modulus, inv)
	return montyCommon128{n: modulus, inv: inv, r: r, r2: r2, r3: r3}
}

// Modulus returns the modulus the form was constructed with.
func (c montyCommon128) Modulus() Uint128 { return c.n }

// ConvertIn maps a into Montgomery form. a does not need to be reduced.
func (c montyCommon128) ConvertIn(a Uint128) MontgomeryValue128 {
	hi, lo := a.MulWide(c.r2)
	return MontgomeryValue128{redcStandard128(hi, lo, c.n, c.inv)}
}

// convertInExtended maps the 256-bit value hi*2^128 + lo into Montgomery
// form.
func (c montyCommon128) convertInExtended(hi, lo Uint128) MontgomeryValue128 {
	h1, l1 := hi.MulWide(c.r3)
	h2, l2 := lo.MulWide(c.r2)
	a := redcStandard128(h1, l1, c.n, c.inv)
	b := redcStandard128(h2, l2, c.n, c.inv)
	return MontgomeryValue128{modularAdd128(a, b, c.n)}
}

// ConvertOut maps x back to the plain integer residue in [0, n).
func (c montyCommon128) ConvertOut(x MontgomeryValue128) Uint128 {
	return redcStandard128(Uint128{}, x.v, c.n, c.inv)
}

// GetCanonical returns x as a canonical value.
func (c montyCommon128) GetCanonical(x MontgomeryValue128) CanonicalValue128 {
	return CanonicalValue128{x}
}

// GetFusing prepares a canonical value for use as an FMAdd/FMSub addend.
func (c montyCommon128) GetFusing(x CanonicalValue128) FusingValue128 {
	return FusingValue128{x.v}
}

// One returns the Montgomery form of 1.
func (c montyCommon128) One() CanonicalValue128 {
	return CanonicalValue128{MontgomeryValue128{c.r}}
}

// Zero returns the Montgomery form of 0.
func (c montyCommon128) Zero() CanonicalValue128 {
	return CanonicalValue128{}
}

// NegativeOne returns the Montgomery form of n-1.
func (c montyCommon128) NegativeOne() CanonicalValue128 {
	return CanonicalValue128{MontgomeryValue128{c.n.Sub(c.r)}}
}

// Negate returns -x mod n.
func (c montyCommon128) Negate(x MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(Uint128{}, x.v, c.n)}
}

// Subtract returns x-y mod n.
func (c montyCommon128) Subtract(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(x.v, y.v, c.n)}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (c montyCommon128) SubtractLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSubLowUops128(x.v, y.v, c.n)}
}

// UnorderedSubtract returns either x-y or y-x mod n.
func (c montyCommon128) UnorderedSubtract(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{absDiff128(x.v, y.v)}
}

// Multiply returns x*y mod n.
func (c montyCommon128) Multiply(x, y MontgomeryValue128) MontgomeryValue128 {
	hi, lo := x.v.MulWide(y.v)
	return MontgomeryValue128{redcStandard128(hi, lo, c.n, c.inv)}
}

// MultiplyIsZero returns x*y mod n and whether the product is zero.
func (c montyCommon128) MultiplyIsZero(x, y MontgomeryValue128) (MontgomeryValue128, bool) {
	p := c.Multiply(x, y)
	return p, p.v.IsZero()
}

// Square returns x*x mod n.
func (c montyCommon128) Square(x MontgomeryValue128) MontgomeryValue128 {
	return c.Multiply(x, x)
}

// FMAdd returns x*y + f mod n.
func (c montyCommon128) FMAdd(x, y MontgomeryValue128, f FusingValue128) MontgomeryValue128 {
	p := c.Multiply(x, y)
	return MontgomeryValue128{modularAdd128(p.v, f.v, c.n)}
}

// FMSub returns x*y - f mod n.
func (c montyCommon128) FMSub(x, y MontgomeryValue128, f FusingValue128) MontgomeryValue128 {
	p := c.Multiply(x, y)
	return MontgomeryValue128{modularSub128(p.v, f.v, c.n)}
}

// FusedSquareAdd returns x*x + f mod n.
func (c montyCommon128) FusedSquareAdd(x MontgomeryValue128, f FusingValue128) MontgomeryValue128 {
	return c.FMAdd(x, x, f)
}

// FusedSquareSub returns x*x - f mod n.
func (c montyCommon128) FusedSquareSub(x MontgomeryValue128, f FusingValue128) MontgomeryValue128 {
	return c.FMSub(x, x, f)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n for e in [0, 128].
func (c montyCommon128) DivideBySmallPowerOfTwo(x MontgomeryValue128, e int) MontgomeryValue128 {
	if e < 0 || e > 128 {
		panic("montmath: power of two exponent out of range")
	}
	uHi := x.v.Rsh(uint(e))
	uLo := x.v.Lsh(uint(128 - e))
	return MontgomeryValue128{redcStandard128(uHi, uLo, c.n, c.inv)}
}

// Inverse returns the multiplicative inverse of x mod n, or the zero value
// when x shares a factor with n.
func (c montyCommon128) Inverse(x MontgomeryValue128) MontgomeryValue128 {
	t := redcStandard128(Uint128{}, x.v, c.n, c.inv)
	t = redcStandard128(Uint128{}, t, c.n, c.inv)
	return MontgomeryValue128{modularInverse128(t, c.n)}
}

// Remainder reduces a plain integer into [0, n).
func (c montyCommon128) Remainder(a Uint128) Uint128 { return a.Mod(c.n) }

// GCDWithModulus evaluates gcd(x, n) through the supplied gcd function.
func (c montyCommon128) GCDWithModulus(x MontgomeryValue128, gcd func(a, b Uint128) Uint128) Uint128 {
	return gcd(x.v, c.n)
}

// twoPowLimited returns the Montgomery form of 2^e for 0 <= e <= 128.
func (c montyCommon128) twoPowLimited(e int) MontgomeryValue128 {
	uHi := c.r2.Rsh(uint(128 - e))
	uLo := c.r2.Lsh(uint(e))
	return MontgomeryValue128{redcStandard128(uHi, uLo, c.n, c.inv)}
}

// rTimesTwoPowLimited returns the Montgomery form of 2^(128+e).
func (c montyCommon128) rTimesTwoPowLimited(e int) MontgomeryValue128 {
	uHi := c.r3.Rsh(uint(128 - e))
	uLo := c.r3.Lsh(uint(e))
	return MontgomeryValue128{redcStandard128(uHi, uLo, c.n, c.inv)}
}

// montvalueR returns the Montgomery form of 2^128, which is r2 itself.
func (c montyCommon128) montvalueR() MontgomeryValue128 {
	return MontgomeryValue128{c.r2}
}

// magicValue returns (2^128)^3 mod n.
func (c montyCommon128) magicValue() MontgomeryValue128 {
	return MontgomeryValue128{c.r3}
}

// Form128 is the full-range Montgomery form over Uint128: any odd modulus
// above 1. All values it produces are canonical; the form is immutable and
// safe for concurrent use.
type Form128 struct {
	montyCommon128
}

// NewForm128 returns a Montgomery form for an odd 128-bit modulus above 1.
func NewForm128(modulus Uint128) Form128 {
	return Form128{newMontyCommon128(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, 2^128 - 1.
func (Form128) MaxModulus() Uint128 { return Uint128{^uint64(0), ^uint64(0)} }

// Add returns x+y mod n.
func (f Form128) Add(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularAdd128(x.v, y.v, f.n)}
}

// AddLowUops is Add with the masked correction sequence.
func (f Form128) AddLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularAddLowUops128(x.v, y.v, f.n)}
}

// TwoTimes returns 2*x mod n.
func (f Form128) TwoTimes(x MontgomeryValue128) MontgomeryValue128 {
	return f.Add(x, x)
}

// Pow returns base^exponent mod n.
func (f Form128) Pow(base MontgomeryValue128, exponent Uint128) MontgomeryValue128 {
	return montPow128(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f Form128) PowArray(bases []MontgomeryValue128, exponent Uint128) []MontgomeryValue128 {
	return montPowArray128(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f Form128) TwoPow(exponent Uint128) MontgomeryValue128 {
	return montTwoPow128(f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f Form128) TwoPowArray(exponents []Uint128) []MontgomeryValue128 {
	return montTwoPowArray128(f, exponents)
}
