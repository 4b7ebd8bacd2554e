package montmath

import "math/bits"

// multiplyWide returns the full double-width product of a and b as a (hi, lo)
// pair. 64-bit operands go through the hardware widening multiply; narrower
// widths fit a single uint64 product.
func multiplyWide[T Uint](a, b T) (hi, lo T) {
	if bitsOf[T]() == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return T(h), T(l)
	}
	w := uint64(a) * uint64(b)
	return T(w >> uint(bitsOf[T]())), T(w)
}

// multiplyWideSplit computes the same (hi, lo) product from half-width limbs
// only. It exists as the portable reference for multiplyWide and is
// cross-checked against it in tests.
func multiplyWideSplit[T Uint](a, b T) (hi, lo T) {
	h := uint(bitsOf[T]() / 2)
	lowmask := T(1)<<h - 1

	aLo, aHi := a&lowmask, a>>h
	bLo, bHi := b&lowmask, b>>h

	loLo := aLo * bLo
	loHi := aLo * bHi
	hiLo := aHi * bLo
	hiHi := aHi * bHi

	// With S = 2^h each term is at most S-1 or (S-1)^2, so the sum is at
	// most S^2 - 2 and cannot overflow T.
	cross := loLo>>h + hiLo&lowmask + loHi

	hi = hiHi + hiLo>>h + cross>>h
	lo = cross<<h | loLo&lowmask
	return hi, lo
}
