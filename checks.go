package capkit

// Validator decides whether a combined permission value is legal under a
// descriptor. All methods are total: they never panic and never return errors,
// only booleans and integers.
//
// Validation rules, applied in order:
//  1. Descriptor integrity: the OR mask of all unit values must not exceed
//     their arithmetic sum. A descriptor violating this is treated as corrupt
//     and every value is rejected, including zero.
//  2. Bit containment: the value may only use bits present in the mask.
//  3. Magnitude: the value may not exceed the mask, as a signed comparison.
//     This catches signed edge cases that bit containment alone misses, e.g.
//     a descriptor whose mask is negative.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// IsValid checks a permission value against a descriptor.
//
// Examples:
//
//	d := Descriptor{"Admin": 0x1, "User": 0x2}
//	v.IsValid(0x1, d) // true  - Admin only
//	v.IsValid(0x3, d) // true  - Admin + User
//	v.IsValid(0x4, d) // false - bit not defined in descriptor
//	v.IsValid(0x0, d) // true  - zero is valid for any non-corrupt descriptor
//
// An empty descriptor accepts only zero.
func (v *Validator) IsValid(value HexValue, descriptor Descriptor) bool {
	// Single pass: combine all unit values into a mask of valid bits and
	// accumulate their arithmetic sum.
	var mask, sum HexValue
	for _, unit := range descriptor {
		mask |= unit
		sum += unit
	}

	// The mask of a well-formed descriptor never exceeds the sum of its
	// values. If it does, the descriptor uses negative or inconsistent bit
	// assignments; refuse to reason about it and fail closed.
	if mask > sum {
		return false
	}

	// The value may not have bits set outside the mask.
	if value&^mask != 0 {
		return false
	}

	// The value may not exceed the combination of all permissions.
	if value > mask {
		return false
	}

	return true
}

// MaxValue returns the maximum permission value a descriptor allows: the
// bitwise OR of all its unit values. Returns 0 for an empty descriptor.
// No validation is performed.
func (v *Validator) MaxValue(descriptor Descriptor) HexValue {
	var mask HexValue
	for _, unit := range descriptor {
		mask |= unit
	}
	return mask
}

// SumValue returns the arithmetic sum of all unit values in a descriptor.
// Returns 0 for an empty descriptor. Used by the integrity check and for
// diagnostics; a sum alone says nothing about validity.
//
// The sum wraps on int64 overflow per Go's two's-complement arithmetic.
func (v *Validator) SumValue(descriptor Descriptor) HexValue {
	var sum HexValue
	for _, unit := range descriptor {
		sum += unit
	}
	return sum
}

// DefaultValidator is the default validator instance.
var DefaultValidator = NewValidator()

// IsValidHex is a convenience function using the default validator.
func IsValidHex(value HexValue, descriptor Descriptor) bool {
	return DefaultValidator.IsValid(value, descriptor)
}

// MaxHexValue is a convenience function using the default validator.
func MaxHexValue(descriptor Descriptor) HexValue {
	return DefaultValidator.MaxValue(descriptor)
}

// SumHexValue is a convenience function using the default validator.
func SumHexValue(descriptor Descriptor) HexValue {
	return DefaultValidator.SumValue(descriptor)
}
