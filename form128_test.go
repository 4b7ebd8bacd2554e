package montmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

type formUnderTest128 interface {
	Modulus() Uint128
	MaxModulus() Uint128
	ConvertIn(Uint128) MontgomeryValue128
	convertInExtended(hi, lo Uint128) MontgomeryValue128
	ConvertOut(MontgomeryValue128) Uint128
	GetCanonical(MontgomeryValue128) CanonicalValue128
	GetFusing(CanonicalValue128) FusingValue128
	One() CanonicalValue128
	Zero() CanonicalValue128
	NegativeOne() CanonicalValue128
	Negate(MontgomeryValue128) MontgomeryValue128
	Add(x, y MontgomeryValue128) MontgomeryValue128
	AddLowUops(x, y MontgomeryValue128) MontgomeryValue128
	Subtract(x, y MontgomeryValue128) MontgomeryValue128
	SubtractLowUops(x, y MontgomeryValue128) MontgomeryValue128
	UnorderedSubtract(x, y MontgomeryValue128) MontgomeryValue128
	TwoTimes(MontgomeryValue128) MontgomeryValue128
	Multiply(x, y MontgomeryValue128) MontgomeryValue128
	MultiplyIsZero(x, y MontgomeryValue128) (MontgomeryValue128, bool)
	Square(MontgomeryValue128) MontgomeryValue128
	FMAdd(x, y MontgomeryValue128, f FusingValue128) MontgomeryValue128
	FMSub(x, y MontgomeryValue128, f FusingValue128) MontgomeryValue128
	FusedSquareAdd(MontgomeryValue128, FusingValue128) MontgomeryValue128
	FusedSquareSub(MontgomeryValue128, FusingValue128) MontgomeryValue128
	DivideBySmallPowerOfTwo(MontgomeryValue128, int) MontgomeryValue128
	Inverse(MontgomeryValue128) MontgomeryValue128
	Remainder(Uint128) Uint128
	GCDWithModulus(MontgomeryValue128, func(a, b Uint128) Uint128) Uint128
	Pow(MontgomeryValue128, Uint128) MontgomeryValue128
	PowArray([]MontgomeryValue128, Uint128) []MontgomeryValue128
	TwoPow(Uint128) MontgomeryValue128
	TwoPowArray([]Uint128) []MontgomeryValue128
}

func sampleResidues128(n Uint128) []Uint128 {
	one := Uint128{0, 1}
	seen := map[Uint128]struct{}{}
	var out []Uint128
	add := func(v Uint128) {
		v = v.Mod(n)
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	add(Uint128{})
	add(one)
	add(Uint128{0, 2})
	add(n.Sub(one))
	add(n.Sub(Uint128{0, 2}))
	add(n.Rsh(1))
	add(Uint128{0xdeadbeefcafef00d, 0x0123456789abcdef})
	add(Uint128{0x7, 0xfffffffffffffff1})
	v := Uint128{0, 97}
	for i := 0; i < 8; i++ {
		add(v)
		v = v.Mul(Uint128{0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9}).Add(one)
	}
	return out
}

func gcd128(a, b Uint128) Uint128 {
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

func testForm128Properties(t *testing.T, f formUnderTest128) {
	n := f.Modulus()
	bn := n.big()
	require.False(t, f.MaxModulus().Less(n))
	residues := sampleResidues128(n)
	out := func(x MontgomeryValue128) Uint128 { return f.ConvertOut(x) }
	ref := func(r *big.Int) Uint128 { return fromBig(t, r.Mod(r, bn)) }
	oneU := Uint128{0, 1}.Mod(n)

	require.Equal(t, oneU, out(f.One().MontgomeryValue128))
	require.Equal(t, Uint128{}, out(f.Zero().MontgomeryValue128))
	require.Equal(t, ref(new(big.Int).Sub(big.NewInt(0), oneU.big())), out(f.NegativeOne().MontgomeryValue128))
	require.Equal(t, f.NegativeOne(), f.GetCanonical(f.Negate(f.One().MontgomeryValue128)))

	for _, a := range residues {
		x := f.ConvertIn(a)
		ba := a.big()
		require.Equal(t, a, out(x), "roundtrip a=%v n=%v", a, n)
		require.Equal(t, f.GetCanonical(x), f.GetCanonical(f.Add(x, f.Zero().MontgomeryValue128)))

		require.Equal(t, ref(new(big.Int).Neg(ba)), out(f.Negate(x)), "negate a=%v", a)
		require.Equal(t, ref(new(big.Int).Add(ba, ba)), out(f.TwoTimes(x)), "twotimes a=%v", a)
		require.Equal(t, ref(new(big.Int).Mul(ba, ba)), out(f.Square(x)), "square a=%v", a)

		if n.Lo&1 == 1 {
			for _, e := range []int{0, 1, 3, 64, 127, 128} {
				d := out(f.DivideBySmallPowerOfTwo(x, e))
				back := new(big.Int).Lsh(d.big(), uint(e))
				require.Equal(t, a, ref(back), "div by 2^%d a=%v", e, a)
			}
		}

		inv := f.Inverse(x)
		if gcd128(a, n) == (Uint128{0, 1}) {
			require.Equal(t, oneU, out(f.Multiply(inv, x)), "inverse a=%v", a)
		} else {
			require.Equal(t, Uint128{}, out(inv), "inverse sentinel a=%v", a)
		}

		require.Equal(t, gcd128(a, n), f.GCDWithModulus(x, gcd128), "gcd a=%v", a)
	}

	for _, a := range residues {
		for _, b := range residues {
			x, y := f.ConvertIn(a), f.ConvertIn(b)
			ba, bb := a.big(), b.big()
			sum := ref(new(big.Int).Add(ba, bb))
			dif := ref(new(big.Int).Sub(ba, bb))
			prd := ref(new(big.Int).Mul(ba, bb))

			require.Equal(t, sum, out(f.Add(x, y)), "add %v+%v", a, b)
			require.Equal(t, sum, out(f.AddLowUops(x, y)))
			require.Equal(t, dif, out(f.Subtract(x, y)), "sub %v-%v", a, b)
			require.Equal(t, dif, out(f.SubtractLowUops(x, y)))

			ud := out(f.UnorderedSubtract(x, y))
			if ud != dif {
				require.Equal(t, ref(new(big.Int).Sub(bb, ba)), ud, "unordered %v,%v", a, b)
			}

			require.Equal(t, prd, out(f.Multiply(x, y)), "mul %v*%v", a, b)
			p, isZero := f.MultiplyIsZero(x, y)
			require.Equal(t, prd, out(p))
			require.Equal(t, prd.IsZero(), isZero)

			fv := f.GetFusing(f.GetCanonical(y))
			require.Equal(t, ref(new(big.Int).Add(new(big.Int).Mul(ba, bb), bb)), out(f.FMAdd(x, y, fv)))
			require.Equal(t, ref(new(big.Int).Sub(new(big.Int).Mul(ba, bb), bb)), out(f.FMSub(x, y, fv)))
			require.Equal(t, ref(new(big.Int).Add(new(big.Int).Mul(ba, ba), bb)), out(f.FusedSquareAdd(x, fv)))
			require.Equal(t, ref(new(big.Int).Sub(new(big.Int).Mul(ba, ba), bb)), out(f.FusedSquareSub(x, fv)))

			ext := new(big.Int).Lsh(ba, 128)
			ext.Or(ext, bb)
			require.Equal(t, ref(ext), out(f.convertInExtended(a, b)), "convertInExtended %v,%v", a, b)
		}
	}

	require.Equal(t, Uint128{}, f.Remainder(n))

	exponents := []Uint128{
		{0, 0}, {0, 1}, {0, 2}, {0, 5}, {0, 127}, {0, 128}, {0, 129},
		{0, 100003}, {0, ^uint64(0)}, {1, 0}, {1, 12345}, {0x7fffffffffffffff, ^uint64(0)},
	}
	bases := make([]MontgomeryValue128, len(residues))
	for i, a := range residues {
		bases[i] = f.ConvertIn(a)
	}
	for _, e := range exponents {
		for i, a := range residues {
			want := new(big.Int).Exp(a.big(), e.big(), bn)
			require.Equal(t, fromBig(t, want), out(f.Pow(bases[i], e)), "pow base=%v exp=%v", a, e)
		}
		arr := f.PowArray(bases, e)
		for i := range bases {
			require.Equal(t, out(f.Pow(bases[i], e)), out(arr[i]))
		}
		want := new(big.Int).Exp(big.NewInt(2), e.big(), bn)
		require.Equal(t, fromBig(t, want), out(f.TwoPow(e)), "twopow exp=%v", e)
	}
	arr := f.TwoPowArray(exponents)
	for i, e := range exponents {
		require.Equal(t, out(f.TwoPow(e)), out(arr[i]), "twopowarray exp=%v", e)
	}
}

func TestForm128Variants(t *testing.T) {
	m127 := Uint128{^uint64(0) >> 1, ^uint64(0)}        // 2^127 - 1, prime
	full := Uint128{^uint64(0), ^uint64(0) - 158}       // 2^128 - 159
	quarter := Uint128{^uint64(0) >> 2, ^uint64(0) - 4} // 2^126 - 5
	small := Uint128{0, 1009}

	t.Run("full", func(t *testing.T) { testForm128Properties(t, NewForm128(full)) })
	t.Run("full/small", func(t *testing.T) { testForm128Properties(t, NewForm128(small)) })
	t.Run("half", func(t *testing.T) { testForm128Properties(t, NewHalfForm128(m127)) })
	t.Run("quarter", func(t *testing.T) { testForm128Properties(t, NewQuarterForm128(quarter)) })
	t.Run("standard/odd", func(t *testing.T) { testForm128Properties(t, NewStandardForm128(m127)) })
	t.Run("standard/even", func(t *testing.T) { testForm128Properties(t, NewStandardForm128(Uint128{1, 0})) })
}

// Fermat's little theorem over the Mersenne prime 2^127 - 1.
func TestFermat128(t *testing.T) {
	m127 := Uint128{^uint64(0) >> 1, ^uint64(0)}
	f := NewHalfForm128(m127)
	base := f.ConvertIn(Uint128{0, 3})
	exp := m127.Sub(Uint128{0, 1})
	require.Equal(t, f.One(), f.GetCanonical(f.Pow(base, exp)))
	require.Equal(t, Uint128{0, 1}, f.ConvertOut(f.TwoPow(exp)), "2^(p-1) = 1 mod p")
}

func TestForm128ConstructorPanics(t *testing.T) {
	require.PanicsWithValue(t, "montmath: modulus must be odd", func() { NewForm128(Uint128{5, 0}) })
	require.PanicsWithValue(t, "montmath: modulus must exceed 1", func() { NewForm128(Uint128{0, 1}) })
	require.PanicsWithValue(t, "montmath: modulus too large for HalfForm128", func() {
		NewHalfForm128(Uint128{1 << 63, 1})
	})
	require.PanicsWithValue(t, "montmath: modulus too large for QuarterForm128", func() {
		NewQuarterForm128(Uint128{1 << 62, 1})
	})
	require.PanicsWithValue(t, "montmath: modulus must be nonzero", func() { NewStandardForm128(Uint128{}) })
}
