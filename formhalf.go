package montmath

// HalfForm is the Montgomery form for odd moduli below R/2. The headroom
// above n lets additions run as a plain sum followed by a single conditional
// reduction. All values it produces are canonical.
type HalfForm[T Uint] struct {
	montyCommon[T]
}

// NewHalfForm returns a half-range Montgomery form. It panics if the modulus
// is even, too small, or at least R/2.
func NewHalfForm[T Uint](modulus T) HalfForm[T] {
	if modulus > ^T(0)>>1 {
		panic("montmath: modulus too large for HalfForm")
	}
	return HalfForm[T]{newMontyCommon(modulus)}
}

// MaxModulus returns the largest modulus the form accepts, R/2 - 1.
func (HalfForm[T]) MaxModulus() T { return ^T(0) >> 1 }

// Add returns x+y mod n. The sum of two values below R/2 cannot wrap, so
// one conditional subtraction reduces it.
func (f HalfForm[T]) Add(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	t := x.v + y.v
	return MontgomeryValue[T]{condSelect(t >= f.n, t-f.n, t)}
}

// AddLowUops is Add with the masked correction sequence.
func (f HalfForm[T]) AddLowUops(x, y MontgomeryValue[T]) MontgomeryValue[T] {
	t := x.v + y.v
	return MontgomeryValue[T]{t - f.n&(0-b2u[T](t >= f.n))}
}

// TwoTimes returns 2*x mod n.
func (f HalfForm[T]) TwoTimes(x MontgomeryValue[T]) MontgomeryValue[T] {
	return f.Add(x, x)
}

// Pow returns base^exponent mod n.
func (f HalfForm[T]) Pow(base MontgomeryValue[T], exponent uint64) MontgomeryValue[T] {
	return montPow(f, base, exponent)
}

// PowArray raises every base to the same exponent with interleaved ladders.
func (f HalfForm[T]) PowArray(bases []MontgomeryValue[T], exponent uint64) []MontgomeryValue[T] {
	return montPowArray(f, bases, exponent)
}

// TwoPow returns 2^exponent mod n.
func (f HalfForm[T]) TwoPow(exponent uint64) MontgomeryValue[T] {
	return montTwoPow[T](f, exponent)
}

// TwoPowArray returns 2^e mod n for every exponent in e on one shared
// schedule.
func (f HalfForm[T]) TwoPowArray(exponents []uint64) []MontgomeryValue[T] {
	return montTwoPowArray[T](f, exponents)
}
