package montmath

import "math/bits"

// ModularAdd returns a+b mod modulus. Both inputs must already be reduced.
// The sum is formed as a - (modulus - b), which cannot overflow T even when
// the modulus takes up the full width.
func ModularAdd[T Uint](a, b, modulus T) T {
	t := modulus - b
	return condSelect(a < t, a+b, a-t)
}

// ModularAddLowUops computes the same sum as ModularAdd with a masked
// correction in place of the select, trading a little latency for fewer ops.
func ModularAddLowUops[T Uint](a, b, modulus T) T {
	t := modulus - b
	d := a - t
	return d + modulus&(0-b2u[T](a < t))
}

// ModularSub returns a-b mod modulus. Both inputs must already be reduced.
func ModularSub[T Uint](a, b, modulus T) T {
	d := a - b
	return condSelect(a >= b, d, modulus+d)
}

// ModularSubLowUops computes the same difference as ModularSub with a masked
// correction in place of the select.
func ModularSubLowUops[T Uint](a, b, modulus T) T {
	d := a - b
	return d + modulus&(0-b2u[T](a < b))
}

// AbsDiff returns |a-b|, which for reduced a and b is congruent to either
// a-b or b-a mod any modulus above both.
func AbsDiff[T Uint](a, b T) T {
	return condSelect(a > b, a-b, b-a)
}

// ModularMul returns a*b mod modulus using a widening multiply and a
// hardware remainder. Both inputs must already be reduced.
func ModularMul[T Uint](a, b, modulus T) T {
	if bitsOf[T]() == 64 {
		hi, lo := bits.Mul64(uint64(a), uint64(b))
		// hi < modulus because both factors are reduced, so Div64 cannot
		// trap on a too-large quotient.
		_, rem := bits.Div64(hi, lo, uint64(modulus))
		return T(rem)
	}
	return T(uint64(a) * uint64(b) % uint64(modulus))
}

// ModularPow returns base^exponent mod modulus by square and multiply.
// base must be reduced and modulus nonzero.
func ModularPow[T Uint](base, exponent, modulus T) T {
	result := condSelect(modulus == 1, T(0), T(1))
	for exponent > 0 {
		if exponent&1 == 1 {
			result = ModularMul(result, base, modulus)
		}
		exponent >>= 1
		base = ModularMul(base, base, modulus)
	}
	return result
}

// ModularInverse returns the multiplicative inverse of val mod modulus, or 0
// when no inverse exists (gcd(val, modulus) != 1). val must be reduced and
// modulus > 1.
//
// This is the extended Euclidean algorithm kept entirely in unsigned
// arithmetic: the Bezout coefficient magnitudes are tracked in u0/u1 and
// their alternating signs in neg, so no width is lost to a sign bit.
func ModularInverse[T Uint](val, modulus T) T {
	if val == 0 {
		return 0
	}
	r0, r1 := modulus, val
	u1 := T(1)
	u0 := T(0)
	neg := false
	for r1 > 1 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		u0, u1 = u1, u0+q*u1
		neg = !neg
	}
	if r1 != 1 {
		return 0
	}
	if neg {
		return modulus - u1
	}
	return u1
}
