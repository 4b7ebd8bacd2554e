package montmath

// StandardForm128 wraps plain 128-bit modular arithmetic in the Montgomery
// API. Any nonzero modulus works; the multiply runs a full 256-by-128
// reduction, so prefer the Montgomery forms whenever the modulus is odd.
type StandardForm128 struct {
	n Uint128
	r Uint128 // 2^128 mod n
}

// NewStandardForm128 returns a standard-arithmetic form for any nonzero
// 128-bit modulus.
func NewStandardForm128(modulus Uint128) StandardForm128 {
	if modulus.IsZero() {
		panic("montmath: modulus must be nonzero")
	}
	return StandardForm128{n: modulus, r: rModN128(modulus)}
}

// MaxModulus returns the largest modulus the form accepts.
func (StandardForm128) MaxModulus() Uint128 { return Uint128{^uint64(0), ^uint64(0)} }

// Modulus returns the modulus the form was constructed with.
func (f StandardForm128) Modulus() Uint128 { return f.n }

// ConvertIn reduces a into the form.
func (f StandardForm128) ConvertIn(a Uint128) MontgomeryValue128 {
	return MontgomeryValue128{a.Mod(f.n)}
}

// convertInExtended reduces the 256-bit value hi*2^128 + lo.
func (f StandardForm128) convertInExtended(hi, lo Uint128) MontgomeryValue128 {
	return MontgomeryValue128{mod256by128(hi, lo, f.n)}
}

// ConvertOut returns the residue x stands for.
func (f StandardForm128) ConvertOut(x MontgomeryValue128) Uint128 { return x.v }

// GetCanonical returns x as a canonical value; standard values already are.
func (f StandardForm128) GetCanonical(x MontgomeryValue128) CanonicalValue128 {
	return CanonicalValue128{x}
}

// GetFusing prepares a canonical value for FMAdd/FMSub.
func (f StandardForm128) GetFusing(x CanonicalValue128) FusingValue128 {
	return FusingValue128{x.v}
}

// One returns the residue 1 (0 when the modulus is 1).
func (f StandardForm128) One() CanonicalValue128 {
	return CanonicalValue128{MontgomeryValue128{Uint128{0, 1}.Mod(f.n)}}
}

// Zero returns the residue 0.
func (f StandardForm128) Zero() CanonicalValue128 {
	return CanonicalValue128{}
}

// NegativeOne returns the residue n-1 (0 when the modulus is 1).
func (f StandardForm128) NegativeOne() CanonicalValue128 {
	one := Uint128{0, 1}.Mod(f.n)
	return CanonicalValue128{MontgomeryValue128{modularSub128(Uint128{}, one, f.n)}}
}

// Negate returns -x mod n.
func (f StandardForm128) Negate(x MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(Uint128{}, x.v, f.n)}
}

// Add returns x+y mod n.
func (f StandardForm128) Add(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularAdd128(x.v, y.v, f.n)}
}

// AddLowUops is Add with the masked correction sequence.
func (f StandardForm128) AddLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularAddLowUops128(x.v, y.v, f.n)}
}

// Subtract returns x-y mod n.
func (f StandardForm128) Subtract(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSub128(x.v, y.v, f.n)}
}

// SubtractLowUops is Subtract with the masked correction sequence.
func (f StandardForm128) SubtractLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularSubLowUops128(x.v, y.v, f.n)}
}

// UnorderedSubtract returns either x-y or y-x mod n.
func (f StandardForm128) UnorderedSubtract(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{absDiff128(x.v, y.v)}
}

// TwoTimes returns 2*x mod n.
func (f StandardForm128) TwoTimes(x MontgomeryValue128) MontgomeryValue128 {
	return f.Add(x, x)
}

// Multiply returns x*y mod n.
func (f StandardForm128) Multiply(x, y MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularMul128(x.v, y.v, f.n)}
}

// MultiplyIsZero returns x*y mod n and whether the product is zero.
func (f StandardForm128) MultiplyIsZero(x, y MontgomeryValue128) (MontgomeryValue128, bool) {
	p := f.Multiply(x, y)
	return p, p.v.IsZero()
}

// Square returns x*x mod n.
func (f StandardForm128) Square(x MontgomeryValue128) MontgomeryValue128 {
	return f.Multiply(x, x)
}

// FMAdd returns x*y + f mod n.
func (f StandardForm128) FMAdd(x, y MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	p := f.Multiply(x, y)
	return MontgomeryValue128{modularAdd128(p.v, fv.v, f.n)}
}

// FMSub returns x*y - f mod n.
func (f StandardForm128) FMSub(x, y MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	p := f.Multiply(x, y)
	return MontgomeryValue128{modularSub128(p.v, fv.v, f.n)}
}

// FusedSquareAdd returns x*x + f mod n.
func (f StandardForm128) FusedSquareAdd(x MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.FMAdd(x, x, fv)
}

// FusedSquareSub returns x*x - f mod n.
func (f StandardForm128) FusedSquareSub(x MontgomeryValue128, fv FusingValue128) MontgomeryValue128 {
	return f.FMSub(x, x, fv)
}

// DivideBySmallPowerOfTwo returns x / 2^e mod n; it panics when the modulus
// is even and e > 0, since 2 has no inverse there.
func (f StandardForm128) DivideBySmallPowerOfTwo(x MontgomeryValue128, e int) MontgomeryValue128 {
	if e < 0 || e > 128 {
		panic("montmath: power of two exponent out of range")
	}
	if e == 0 {
		return x
	}
	inv := modularInverse128(f.twoPowLimited(e).v, f.n)
	if inv.IsZero() && f.n != (Uint128{0, 1}) {
		panic("montmath: modulus must be odd to divide by a power of two")
	}
	return MontgomeryValue128{modularMul128(x.v, inv, f.n)}
}

// Inverse returns the multiplicative inverse of x mod n, or the zero value
// when none exists.
func (f StandardForm128) Inverse(x MontgomeryValue128) MontgomeryValue128 {
	return MontgomeryValue128{modularInverse128(x.v, f.n)}
}

// Remainder reduces a plain integer into [0, n).
func (f StandardForm128) Remainder(a Uint128) Uint128 { return a.Mod(f.n) }

// GCDWithModulus evaluates gcd(x, n) through the supplied gcd function.
func (f StandardForm128) GCDWithModulus(x MontgomeryValue128, gcd func(a, b Uint128) Uint128) Uint128 {
	return gcd(x.v, f.n)
}

// twoPowLimited returns 2^e mod n for 0 <= e <= 128.
func (f StandardForm128) twoPowLimited(e int) MontgomeryValue128 {
	if e >= 128 {
		return MontgomeryValue128{f.r}
	}
	return MontgomeryValue128{Uint128{0, 1}.Lsh(uint(e)).Mod(f.n)}
}

// rTimesTwoPowLimited returns 2^(128+e) mod n for 0 <= e <= 128.
func (f StandardForm128) rTimesTwoPowLimited(e int) MontgomeryValue128 {
	return MontgomeryValue128{modularMul128(f.r, f.twoPowLimited(e).v, f.n)}
}

// montvalueR returns 2^128 mod n.
func (f StandardForm128) montvalueR() MontgomeryValue128 {
	return MontgomeryValue128{f.r}
}

// Pow returns base^exponent mod n.
func (f StandardForm128) Pow(base MontgomeryValue128, exponent Uint128) MontgomeryValue128 {
	return montPow128(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f StandardForm128) PowArray(bases []MontgomeryValue128, exponent Uint128) []MontgomeryValue128 {
	return montPowArray128(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f StandardForm128) TwoPow(exponent Uint128) MontgomeryValue128 {
	return montTwoPow128(f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f StandardForm128) TwoPowArray(exponents []Uint128) []MontgomeryValue128 {
	return montTwoPowArray128(f, exponents)
}
