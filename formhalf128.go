package montmath

// HalfForm128 is the 128-bit Montgomery form for odd moduli below 2^127,
// with the plain-sum addition the headroom allows.
type HalfForm128 struct {
	montyCommon128
}

// NewHalfForm128 returns a half-range 128-bit Montgomery form.
func NewHalfForm128(modulus Uint128) HalfForm128 {
	if (HalfForm128{}).MaxModulus().Less(modulus) {
		panic("montmath: modulus too large for HalfForm128")
	}
	return HalfForm128{newMontyCommon128(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, 2^127 - 1.
func (HalfForm128) MaxModulus() Uint128 {
	return Uint128{^uint64(0) >> 1, ^uint64(0)}
}

// Add returns x+y mod n. The sum cannot wrap, so one conditional
// subtraction reduces it.
func (f HalfForm128) Add(x, y MontgomeryValue128) MontgomeryValue128 {
	t := x.v.Add(y.v)
	return MontgomeryValue128{condSelect128(t.Less(f.n), t, t.Sub(f.n))}
}

// AddLowUops is Add with the masked correction sequence.
func (f HalfForm128) AddLowUops(x, y MontgomeryValue128) MontgomeryValue128 {
	t := x.v.Add(y.v)
	return MontgomeryValue128{t.Sub(f.n.And(mask128(!t.Less(f.n))))}
}

// TwoTimes returns 2*x mod n.
func (f HalfForm128) TwoTimes(x MontgomeryValue128) MontgomeryValue128 {
	return f.Add(x, x)
}

// Pow returns base^exponent mod n.
func (f HalfForm128) Pow(base MontgomeryValue128, exponent Uint128) MontgomeryValue128 {
	return montPow128(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f HalfForm128) PowArray(bases []MontgomeryValue128, exponent Uint128) []MontgomeryValue128 {
	return montPowArray128(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f HalfForm128) TwoPow(exponent Uint128) MontgomeryValue128 {
	return montTwoPow128(f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f HalfForm128) TwoPowArray(exponents []Uint128) []MontgomeryValue128 {
	return montTwoPowArray128(f, exponents)
}
