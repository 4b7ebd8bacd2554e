//go:build montmath_avoid_cselect

package montmath

// condSelect returns a when c is true, b otherwise, computed with mask
// arithmetic rather than a conditional move or branch.
func condSelect[T Uint](c bool, a, b T) T {
	mask := T(0) - b2u[T](c)
	return b ^ ((a ^ b) & mask)
}
