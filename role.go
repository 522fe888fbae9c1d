package capkit

// RoleCapability pairs a descriptor with one combined permission value and
// answers which capabilities that value activates.
//
// The descriptor is copied at construction time, so a RoleCapability is a
// stable snapshot: mutating the caller's map afterwards does not change the
// role's answers. The role itself is immutable.
//
// RoleCapability performs no descriptor-integrity validation; it trusts its
// caller already validated the value with IsValidHex, or deliberately
// tolerates invalid masks. Extraction works the same either way.
type RoleCapability struct {
	descriptor Descriptor
	value      HexValue
}

// NewRoleCapability creates a role from a descriptor and a combined
// permission value. The descriptor is copied.
//
// Example:
//
//	d := Descriptor{"Read": 0x1, "Write": 0x2}
//	role := NewRoleCapability(d, 0x3) // Read + Write
func NewRoleCapability(descriptor Descriptor, value HexValue) *RoleCapability {
	return &RoleCapability{
		descriptor: descriptor.Clone(),
		value:      value,
	}
}

// Value returns the role's combined permission value.
func (r *RoleCapability) Value() HexValue {
	return r.value
}

// Descriptor returns a copy of the role's descriptor snapshot.
func (r *RoleCapability) Descriptor() Descriptor {
	return r.descriptor.Clone()
}

// HexSet extracts the unit values of all capabilities the role's permission
// value activates.
//
// A descriptor entry with unit value 0 is never included: a zero bit never
// matches by bitwise AND, even when the stored value is also 0. Zero-valued
// entries are "always absent" by design.
func (r *RoleCapability) HexSet() HexUnitSet {
	hexSet := make(HexUnitSet)
	for _, unit := range r.descriptor {
		if r.value&unit != 0 {
			hexSet[unit] = true
		}
	}
	return hexSet
}

// NameSet extracts the names of all capabilities the role's permission value
// activates. This is the most user-friendly representation of a role's
// permissions.
func (r *RoleCapability) NameSet() NameSet {
	nameSet := make(NameSet)
	for name, unit := range r.descriptor {
		if r.value&unit != 0 {
			nameSet[name] = true
		}
	}
	return nameSet
}

// HasCapability checks if the role's permission value activates a capability.
// A name not defined in the descriptor is simply "not held": the result is
// false, not an error.
//
// Example:
//
//	role := NewRoleCapability(Descriptor{"Read": 0x1, "Write": 0x2}, 0x1)
//	role.HasCapability("Read")        // true
//	role.HasCapability("Write")       // false
//	role.HasCapability("NonExistent") // false
func (r *RoleCapability) HasCapability(name CapabilityName) bool {
	if unit, ok := r.descriptor[name]; ok {
		return r.value&unit != 0
	}
	return false
}

// HasAnyCapability checks if the role has at least one of the named
// capabilities.
func (r *RoleCapability) HasAnyCapability(names ...CapabilityName) bool {
	for _, name := range names {
		if r.HasCapability(name) {
			return true
		}
	}
	return false
}

// HasAllCapabilities checks if the role has every one of the named
// capabilities.
func (r *RoleCapability) HasAllCapabilities(names ...CapabilityName) bool {
	for _, name := range names {
		if !r.HasCapability(name) {
			return false
		}
	}
	return true
}

// IsEmpty returns true if the role activates no capability at all.
func (r *RoleCapability) IsEmpty() bool {
	for _, unit := range r.descriptor {
		if r.value&unit != 0 {
			return false
		}
	}
	return true
}

// Valid checks the role's permission value against its own descriptor using
// the default validator.
func (r *RoleCapability) Valid() bool {
	return DefaultValidator.IsValid(r.value, r.descriptor)
}
