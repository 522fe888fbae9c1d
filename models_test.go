package capkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescriptorClone tests that clones are independent copies
func TestDescriptorClone(t *testing.T) {
	original := Descriptor{"Read": 0x1, "Write": 0x2}
	clone := original.Clone()

	assert.Equal(t, original, clone)

	clone["Read"] = 0x4
	clone["Execute"] = 0x8

	assert.Equal(t, HexUnitValue(0x1), original["Read"])
	assert.NotContains(t, original, "Execute")
}

// TestDescriptorCloneEmpty tests cloning empty and nil descriptors
func TestDescriptorCloneEmpty(t *testing.T) {
	assert.Empty(t, Descriptor{}.Clone())

	var nilDescriptor Descriptor
	clone := nilDescriptor.Clone()
	assert.NotNil(t, clone)
	assert.Empty(t, clone)
}

// TestDescriptorUnitValue tests capability value lookup
func TestDescriptorUnitValue(t *testing.T) {
	descriptor := Descriptor{"Read": 0x1, "Ghost": 0x0}

	value, err := descriptor.UnitValue("Read")
	require.NoError(t, err)
	assert.Equal(t, HexUnitValue(0x1), value)

	// Zero-valued entries are defined, even though they never activate.
	value, err = descriptor.UnitValue("Ghost")
	require.NoError(t, err)
	assert.Equal(t, HexUnitValue(0x0), value)

	_, err = descriptor.UnitValue("NonExistent")
	require.Error(t, err)
	assert.True(t, IsUnknownCapability(err))
}

// TestDescriptorNames tests name enumeration
func TestDescriptorNames(t *testing.T) {
	descriptor := Descriptor{"Read": 0x1, "Write": 0x2, "Execute": 0x4}

	names := descriptor.Names()
	assert.Len(t, names, 3)
	assert.ElementsMatch(t, []CapabilityName{"Read", "Write", "Execute"}, names)

	assert.Empty(t, Descriptor{}.Names())
}

// TestDescriptorOverwrite tests that later insertion wins under the same name
func TestDescriptorOverwrite(t *testing.T) {
	descriptor := Descriptor{}
	descriptor["Read"] = 0x1
	descriptor["Read"] = 0x2

	assert.Len(t, descriptor, 1)
	assert.Equal(t, HexUnitValue(0x2), descriptor["Read"])
}

// TestHexUnitSet tests the unit value set helpers
func TestHexUnitSet(t *testing.T) {
	set := HexUnitSet{0x1: true, 0x4: true}

	assert.True(t, set.Contains(0x1))
	assert.True(t, set.Contains(0x4))
	assert.False(t, set.Contains(0x2))

	assert.ElementsMatch(t, []HexUnitValue{0x1, 0x4}, set.Values())
	assert.Empty(t, HexUnitSet{}.Values())
}

// TestNameSet tests the name set helpers
func TestNameSet(t *testing.T) {
	set := NameSet{"Read": true, "Execute": true}

	assert.True(t, set.Contains("Read"))
	assert.False(t, set.Contains("Write"))

	assert.ElementsMatch(t, []CapabilityName{"Read", "Execute"}, set.Names())
	assert.Empty(t, NameSet{}.Names())
}
