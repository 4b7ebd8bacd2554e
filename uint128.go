package montmath

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer as two 64-bit limbs. It is
// comparable with ==, and all arithmetic wraps mod 2^128 the way the native
// widths wrap mod 2^bits.
type Uint128 struct {
	Hi, Lo uint64
}

// NewUint128 assembles hi*2^64 + lo.
func NewUint128(hi, lo uint64) Uint128 { return Uint128{hi, lo} }

// Uint128From widens a 64-bit value.
func Uint128From(x uint64) Uint128 { return Uint128{0, x} }

// IsZero reports whether x is 0.
func (x Uint128) IsZero() bool { return x.Hi|x.Lo == 0 }

// Cmp returns -1, 0 or 1 depending on whether x is below, equal to or above
// y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports x < y.
func (x Uint128) Less(y Uint128) bool {
	return x.Hi < y.Hi || x.Hi == y.Hi && x.Lo < y.Lo
}

// Add returns x+y mod 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{hi, lo}
}

// Sub returns x-y mod 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{hi, lo}
}

// Mul returns x*y mod 2^128.
func (x Uint128) Mul(y Uint128) Uint128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Lo*y.Hi + x.Hi*y.Lo
	return Uint128{hi, lo}
}

// MulWide returns the full 256-bit product of x and y as a (hi, lo) pair.
func (x Uint128) MulWide(y Uint128) (hi, lo Uint128) {
	h00, l00 := bits.Mul64(x.Lo, y.Lo)
	h01, l01 := bits.Mul64(x.Lo, y.Hi)
	h10, l10 := bits.Mul64(x.Hi, y.Lo)
	h11, l11 := bits.Mul64(x.Hi, y.Hi)

	m, c1 := bits.Add64(h00, l01, 0)
	u, c2 := bits.Add64(h01, l11, c1)
	v := h11 + c2
	m, c1 = bits.Add64(m, l10, 0)
	u, c2 = bits.Add64(u, h10, c1)
	v += c2

	return Uint128{v, u}, Uint128{m, l00}
}

// And returns the bitwise and of x and y.
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{x.Hi & y.Hi, x.Lo & y.Lo}
}

// Lsh returns x << n for any shift count; counts of 128 or more yield 0.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{x.Lo << (n - 64), 0}
	case n == 0:
		return x
	}
	return Uint128{x.Hi<<n | x.Lo>>(64-n), x.Lo << n}
}

// Rsh returns x >> n for any shift count; counts of 128 or more yield 0.
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{0, x.Hi >> (n - 64)}
	case n == 0:
		return x
	}
	return Uint128{x.Hi >> n, x.Lo>>n | x.Hi<<(64-n)}
}

// Bit returns bit i of x as 0 or 1.
func (x Uint128) Bit(i uint) uint64 {
	if i >= 64 {
		return x.Hi >> (i - 64) & 1
	}
	return x.Lo >> i & 1
}

// BitLen returns the number of significant bits in x.
func (x Uint128) BitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

// DivMod returns the quotient and remainder of x / y. y must be nonzero.
// This runs the narrow cases through the hardware divider and falls back to
// shift-subtract long division when the divisor spans both limbs; it is a
// setup-path helper, not hot-loop arithmetic.
func (x Uint128) DivMod(y Uint128) (q, r Uint128) {
	if y.IsZero() {
		panic("montmath: division by zero")
	}
	if y.Hi == 0 {
		qHi := x.Hi / y.Lo
		qLo, rem := bits.Div64(x.Hi%y.Lo, x.Lo, y.Lo)
		return Uint128{qHi, qLo}, Uint128{0, rem}
	}
	if x.Less(y) {
		return Uint128{}, x
	}
	// y.Hi != 0 bounds the shift below 64.
	shift := x.BitLen() - y.BitLen()
	d := y.Lsh(uint(shift))
	r = x
	for i := shift; i >= 0; i-- {
		q = q.Lsh(1)
		if !r.Less(d) {
			r = r.Sub(d)
			q.Lo |= 1
		}
		d = d.Rsh(1)
	}
	return q, r
}

// Mod returns x % y. y must be nonzero.
func (x Uint128) Mod(y Uint128) Uint128 {
	_, r := x.DivMod(y)
	return r
}

// big converts x for display and for the test oracle.
func (x Uint128) big() *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

// String renders x in decimal.
func (x Uint128) String() string { return x.big().String() }

// Format implements fmt.Formatter, deferring to math/big for all verbs.
func (x Uint128) Format(s fmt.State, verb rune) {
	x.big().Format(s, verb)
}

// ParseUint128 reads a decimal or 0x-prefixed hexadecimal value.
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("montmath: invalid 128-bit integer %q", s)
	}
	lo := b.Uint64()
	hi := b.Rsh(b, 64).Uint64()
	return Uint128{hi, lo}, nil
}

// condSelect128 picks between two values limb by limb through condSelect, so
// it follows the same build-tag discipline as the native widths.
func condSelect128(c bool, a, b Uint128) Uint128 {
	return Uint128{condSelect(c, a.Hi, b.Hi), condSelect(c, a.Lo, b.Lo)}
}
