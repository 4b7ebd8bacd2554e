package montmath

import "math/bits"

// montyOps extends modmulOps with the accessors the base-2 exponentiation
// needs. twoPowLimited and rTimesTwoPowLimited hand back 2^e and 2^(bits+e)
// with a single reduction each, which is what lets TwoPow skip the usual
// table of odd powers.
type montyOps[T Uint] interface {
	modmulOps[T]
	twoPowLimited(e int) MontgomeryValue[T]
	rTimesTwoPowLimited(e int) MontgomeryValue[T]
	montvalueR() MontgomeryValue[T]
}

// montTwoPow computes 2^exponent mod n with a fixed window walk from the top
// of the exponent. Window values up to bits(T) come from twoPowLimited and
// the rest from rTimesTwoPowLimited, so a window of log2(bits)+1 bits never
// needs a multiply beyond its single adjustment.
func montTwoPow[T Uint, F montyOps[T]](f F, exponent uint64) MontgomeryValue[T] {
	w := bitsOf[T]()
	if exponent <= uint64(w) {
		return f.twoPowLimited(int(exponent))
	}

	p := uint(bits.Len(uint(w))) // log2(w) + 1, window size in bits
	total := uint(bits.Len64(exponent))
	rem := total % p
	if rem == 0 {
		rem = p
	}
	shift := total - rem

	result := twoPowWindow[T](f, exponent>>shift&(1<<rem-1))
	for shift > 0 {
		shift -= p
		for i := uint(0); i < p; i++ {
			result = f.Square(result)
		}
		if v := exponent >> shift & (1<<p - 1); v != 0 {
			result = f.Multiply(result, twoPowWindow[T](f, v))
		}
	}
	return result
}

// twoPowWindow returns 2^v mod n for a window value v < 2*bits(T).
func twoPowWindow[T Uint, F montyOps[T]](f F, v uint64) MontgomeryValue[T] {
	w := uint64(bitsOf[T]())
	if v >= w {
		return f.rTimesTwoPowLimited(int(v - w))
	}
	return f.twoPowLimited(int(v))
}

// montTwoPowArray computes 2^e mod n for every exponent in one pass. The low
// log2(bits) bits of each lane seed directly from twoPowLimited; the higher
// bits share a single chain of squarings of mont(R), with each lane folding
// the current power in through a select on its own exponent bit.
func montTwoPowArray[T Uint, F montyOps[T]](f F, exponents []uint64) []MontgomeryValue[T] {
	w := uint64(bitsOf[T]())
	mask := w - 1

	result := make([]MontgomeryValue[T], len(exponents))
	var max uint64
	for i, e := range exponents {
		result[i] = f.twoPowLimited(int(e & mask))
		if e > max {
			max = e
		}
	}

	one := f.One().MontgomeryValue
	base := f.montvalueR() // mont(2^bits), the first power past the seed mask
	k := uint(bits.Len64(w)) - 1
	for bit := k; max>>bit != 0; bit++ {
		for i, e := range exponents {
			m := selectValue(e>>bit&1 == 1, base, one)
			result[i] = f.Multiply(result[i], m)
		}
		base = f.Square(base)
	}
	return result
}
