package montmath

import "math/bits"

// inverseModR returns n^-1 mod R for odd n, where R = 2^bits(T).
//
// The seed (3n) xor 2 is correct to 5 bits (Dumas, "On Newton-Raphson
// iteration for multiplicative inverses modulo prime powers"); each
// quadratic step then doubles the number of correct low bits, so 8-bit
// needs one step and 64-bit four.
func inverseModR[T Uint](n T) T {
	x := n * 3 ^ 2
	y := 1 - n*x
	for i := 4; i < bitsOf[T](); i *= 2 {
		x *= y + 1
		y *= y
	}
	return x
}

// rModN returns R mod n for 1 < n < R. The wraparound negation 0-n equals
// R-n, which is congruent to R; one remainder finishes the reduction for
// small n.
func rModN[T Uint](n T) T {
	return (0 - n) % n
}

// rSquaredModN returns R^2 mod n given rmodn = R mod n. Narrow widths square
// into a uint64; 64-bit squares into a 128-bit pair and divides with the
// hardware 128/64 remainder, which is safe because the high half of the
// square of a reduced value stays below n.
func rSquaredModN[T Uint](rmodn, n T) T {
	if bitsOf[T]() == 64 {
		hi, lo := bits.Mul64(uint64(rmodn), uint64(rmodn))
		_, rem := bits.Div64(hi, lo, uint64(n))
		return T(rem)
	}
	w := uint64(rmodn) * uint64(rmodn)
	return T(w % uint64(n))
}
