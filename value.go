package montmath

// MontgomeryValue is a residue held in Montgomery form, x*R mod n. Its exact
// range discipline depends on the form that produced it (canonical for Form,
// HalfForm and StandardForm, [0, 2n) for QuarterForm), so values from
// different forms or different moduli must never be mixed. The zero value is
// the representation of zero in the canonical forms.
type MontgomeryValue[T Uint] struct {
	v T
}

// CanonicalValue is a MontgomeryValue known to be fully reduced into [0, n).
// Canonical values of equal residues compare equal with ==. The embedded
// MontgomeryValue is accepted anywhere a plain value is.
type CanonicalValue[T Uint] struct {
	MontgomeryValue[T]
}

// FusingValue is a canonical value prepared for use as the addend of the
// fused multiply-add and multiply-sub operations. Obtain one through a
// form's GetFusing.
type FusingValue[T Uint] struct {
	v T
}

// selectValue picks between two Montgomery values without leaving the
// branchless discipline of condSelect.
func selectValue[T Uint](c bool, a, b MontgomeryValue[T]) MontgomeryValue[T] {
	return MontgomeryValue[T]{condSelect(c, a.v, b.v)}
}
