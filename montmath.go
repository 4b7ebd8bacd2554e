// Package montmath implements modular arithmetic on unsigned integers of
// 8, 16, 32, 64 and 128 bits, centered on Montgomery multiplication.
//
// The Montgomery forms avoid hardware division in the multiplication inner
// loop by keeping values as residues a*R mod n, where R = 2^bits(T). Four
// form variants trade modulus range for speed:
//
//   - Form: any odd modulus 1 < n < R
//   - HalfForm: odd n < R/2, lets additions reduce with a single conditional
//   - QuarterForm: odd n < R/4, REDC results stay unfinalized in [0, 2n)
//   - StandardForm: any n > 0, plain modular arithmetic behind the same API
//
// Values of widths 8 through 64 go through the generic forms; 128-bit values
// use the Uint128 type and the parallel Form128 family.
//
// A form is immutable after construction and safe for concurrent use.
package montmath

import "math/bits"

// Uint is the constraint for the natively supported integer widths.
// 128-bit arithmetic uses the dedicated Uint128 type instead.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// bitsOf returns the width of T in bits (8, 16, 32 or 64).
func bitsOf[T Uint]() int {
	return bits.Len64(uint64(^T(0)))
}

// b2u converts a bool to 0 or 1 without a branch.
func b2u[T Uint](c bool) T {
	if c {
		return 1
	}
	return 0
}
