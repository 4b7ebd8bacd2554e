package montmath

// mask128 spreads a condition into an all-ones or all-zeros word.
func mask128(c bool) Uint128 {
	m := 0 - b2u[uint64](c)
	return Uint128{m, m}
}

// modularAdd128 returns a+b mod n for reduced inputs, with the same
// overflow-safe shape as ModularAdd.
func modularAdd128(a, b, n Uint128) Uint128 {
	t := n.Sub(b)
	return condSelect128(a.Less(t), a.Add(b), a.Sub(t))
}

// modularAddLowUops128 is modularAdd128 with the masked correction.
func modularAddLowUops128(a, b, n Uint128) Uint128 {
	t := n.Sub(b)
	return a.Sub(t).Add(n.And(mask128(a.Less(t))))
}

// modularSub128 returns a-b mod n for reduced inputs.
func modularSub128(a, b, n Uint128) Uint128 {
	d := a.Sub(b)
	return condSelect128(a.Less(b), n.Add(d), d)
}

// modularSubLowUops128 is modularSub128 with the masked correction.
func modularSubLowUops128(a, b, n Uint128) Uint128 {
	return a.Sub(b).Add(n.And(mask128(a.Less(b))))
}

// absDiff128 returns |a-b|.
func absDiff128(a, b Uint128) Uint128 {
	return condSelect128(b.Less(a), a.Sub(b), b.Sub(a))
}

// mod256by128 reduces the 256-bit value hi*2^128 + lo mod n. Bit-serial,
// with an explicit carry check so a shifted remainder that outgrows the
// width still subtracts n.
func mod256by128(hi, lo, n Uint128) Uint128 {
	r := hi.Mod(n)
	for i := 127; i >= 0; i-- {
		carry := r.Hi >> 63
		r = r.Lsh(1)
		r.Lo |= lo.Bit(uint(i))
		if carry != 0 || !r.Less(n) {
			r = r.Sub(n)
		}
	}
	return r
}

// modularMul128 returns a*b mod n for reduced inputs.
func modularMul128(a, b, n Uint128) Uint128 {
	hi, lo := a.MulWide(b)
	return mod256by128(hi, lo, n)
}

// modularInverse128 returns the inverse of val mod modulus, or 0 when none
// exists. Same unsigned-magnitude extended gcd as ModularInverse.
func modularInverse128(val, modulus Uint128) Uint128 {
	if val.IsZero() {
		return Uint128{}
	}
	one := Uint128{0, 1}
	r0, r1 := modulus, val
	u0, u1 := Uint128{}, one
	neg := false
	for one.Less(r1) {
		q, r := r0.DivMod(r1)
		r0, r1 = r1, r
		u0, u1 = u1, u0.Add(q.Mul(u1))
		neg = !neg
	}
	if r1 != one {
		return Uint128{}
	}
	if neg {
		return modulus.Sub(u1)
	}
	return u1
}
