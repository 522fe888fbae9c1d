package capkit

// CapabilityName is the human-readable name of a capability, such as
// "Administrator" or "ManageServer".
type CapabilityName = string

// HexUnitValue is the bit value assigned to a single capability.
// By convention each capability uses a single power of two so that values can
// be combined with bitwise OR, but the convention is not enforced: validation
// and extraction behave correctly for overlapping, zero, and negative values.
type HexUnitValue = int64

// HexValue is a combined permission value: a bitmask whose set bits indicate
// which capabilities are granted. It is normally produced by OR-ing
// HexUnitValues from one descriptor, but may be any integer; it is only
// validated when passed through IsValidHex.
type HexValue = int64

// Descriptor maps capability names to their bit values. It defines the
// vocabulary of a permission system and is the authoritative source for
// validating and translating permission values.
//
// Insertion order is irrelevant. Inserting under an existing name overwrites
// the previous value.
type Descriptor map[CapabilityName]HexUnitValue

// Clone returns a copy of the descriptor. Roles use this to snapshot their
// descriptor at construction time.
func (d Descriptor) Clone() Descriptor {
	clone := make(Descriptor, len(d))
	for name, value := range d {
		clone[name] = value
	}
	return clone
}

// UnitValue returns the bit value declared for a capability name.
// Returns ErrUnknownCapability if the name is not defined in the descriptor.
func (d Descriptor) UnitValue(name CapabilityName) (HexUnitValue, error) {
	value, ok := d[name]
	if !ok {
		return 0, NewError(ErrUnknownCapability, "capability not defined in descriptor").
			WithCapability(name)
	}
	return value, nil
}

// Names returns all capability names defined in the descriptor.
func (d Descriptor) Names() []CapabilityName {
	names := make([]CapabilityName, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	return names
}

// HexUnitSet is a deduplicated set of capability unit values extracted from a
// combined permission value.
type HexUnitSet map[HexUnitValue]bool

// Contains reports whether the set includes a unit value.
func (s HexUnitSet) Contains(value HexUnitValue) bool {
	return s[value]
}

// Values returns the set members as a slice, in no particular order.
func (s HexUnitSet) Values() []HexUnitValue {
	values := make([]HexUnitValue, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	return values
}

// NameSet is a deduplicated set of capability names extracted from a combined
// permission value.
type NameSet map[CapabilityName]bool

// Contains reports whether the set includes a capability name.
func (s NameSet) Contains(name CapabilityName) bool {
	return s[name]
}

// Names returns the set members as a slice, in no particular order.
func (s NameSet) Names() []CapabilityName {
	names := make([]CapabilityName, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}
