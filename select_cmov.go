//go:build !montmath_avoid_cselect

package montmath

// condSelect returns a when c is true, b otherwise. The plain conditional
// compiles to a conditional move on targets that have one; builds for targets
// where that is not wanted can use the montmath_avoid_cselect tag to get the
// mask-arithmetic version instead.
func condSelect[T Uint](c bool, a, b T) T {
	if c {
		return a
	}
	return b
}
