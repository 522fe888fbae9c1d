package capkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryDefineDescriptor tests descriptor definition and retrieval
func TestRegistryDefineDescriptor(t *testing.T) {
	registry := NewRegistry()

	registry.DefineDescriptor("server").
		Capability("Administrator", 0x1).
		Capability("ManageServer", 0x2).
		Capability("ManageRoles", 0x4)

	descriptor, err := registry.Descriptor("server")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{
		"Administrator": 0x1,
		"ManageServer":  0x2,
		"ManageRoles":   0x4,
	}, descriptor)
}

// TestRegistryDescriptorUnknown tests lookup of an undefined descriptor
func TestRegistryDescriptorUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Descriptor("missing")
	require.Error(t, err)
	assert.True(t, IsUnknownDescriptor(err))
}

// TestRegistryDescriptorReturnsCopy tests that lookups cannot mutate the
// registry's descriptors
func TestRegistryDescriptorReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	registry.DefineDescriptor("server").Capability("Read", 0x1)

	descriptor, err := registry.Descriptor("server")
	require.NoError(t, err)
	descriptor["Read"] = 0x8

	again, err := registry.Descriptor("server")
	require.NoError(t, err)
	assert.Equal(t, HexUnitValue(0x1), again["Read"])
}

// TestRegistryFluentChaining tests chaining multiple descriptor definitions
func TestRegistryFluentChaining(t *testing.T) {
	registry := NewRegistry()

	registry.DefineDescriptor("server").
		Capability("Administrator", 0x1).
		DefineDescriptor("channel").
		Capability("Post", 0x1).
		Capability("Pin", 0x2)

	assert.ElementsMatch(t, []string{"server", "channel"}, registry.DescriptorNames())

	channel, err := registry.Descriptor("channel")
	require.NoError(t, err)
	assert.Len(t, channel, 2)
}

// TestRegistryValidate tests the integrity check on named descriptors
func TestRegistryValidate(t *testing.T) {
	registry := NewRegistry()

	registry.DefineDescriptor("server").
		Capability("Read", 0x1).
		Capability("Write", 0x2)

	registry.DefineDescriptor("corrupt").
		Capability("Dangling", -2).
		Capability("Broken", -4)

	assert.NoError(t, registry.Validate("server"))

	err := registry.Validate("corrupt")
	require.Error(t, err)
	assert.True(t, IsCorruptDescriptor(err))

	err = registry.Validate("missing")
	require.Error(t, err)
	assert.True(t, IsUnknownDescriptor(err))
}

// TestRegistryValidateValue tests value validation against named descriptors
func TestRegistryValidateValue(t *testing.T) {
	registry := NewRegistry()
	registry.DefineDescriptor("server").
		Capability("Read", 0x1).
		Capability("Write", 0x2)

	assert.NoError(t, registry.ValidateValue("server", 0x3))
	assert.NoError(t, registry.ValidateValue("server", 0x0))

	err := registry.ValidateValue("server", 0x4)
	require.Error(t, err)
	assert.True(t, IsInvalidValue(err))

	err = registry.ValidateValue("missing", 0x1)
	require.Error(t, err)
	assert.True(t, IsUnknownDescriptor(err))
}

// TestRegistryRole tests role construction over named descriptors
func TestRegistryRole(t *testing.T) {
	registry := NewRegistry()
	registry.DefineDescriptor("server").
		Capability("Administrator", 0x1).
		Capability("ManageServer", 0x2)

	role, err := registry.Role("server", 0x3)
	require.NoError(t, err)
	assert.True(t, role.HasCapability("Administrator"))
	assert.True(t, role.HasCapability("ManageServer"))

	_, err = registry.Role("missing", 0x1)
	require.Error(t, err)
	assert.True(t, IsUnknownDescriptor(err))
}

// TestDescriptorBuilderBuild tests the builder accessors
func TestDescriptorBuilderBuild(t *testing.T) {
	registry := NewRegistry()
	builder := registry.DefineDescriptor("server").Capability("Read", 0x1)

	assert.Equal(t, "server", builder.Name())

	built := builder.Build()
	assert.Equal(t, Descriptor{"Read": 0x1}, built)

	// Build returns a copy; mutating it must not touch the registry.
	built["Read"] = 0x8
	descriptor, err := registry.Descriptor("server")
	require.NoError(t, err)
	assert.Equal(t, HexUnitValue(0x1), descriptor["Read"])
}

// TestDescriptorBuilderOverwrite tests overwriting a capability in the builder
func TestDescriptorBuilderOverwrite(t *testing.T) {
	registry := NewRegistry()
	registry.DefineDescriptor("server").
		Capability("Read", 0x1).
		Capability("Read", 0x2)

	descriptor, err := registry.Descriptor("server")
	require.NoError(t, err)
	assert.Len(t, descriptor, 1)
	assert.Equal(t, HexUnitValue(0x2), descriptor["Read"])
}

// TestRegistryRedefineDescriptor tests that redefining a descriptor replaces it
func TestRegistryRedefineDescriptor(t *testing.T) {
	registry := NewRegistry()
	registry.DefineDescriptor("server").Capability("Old", 0x1)
	registry.DefineDescriptor("server").Capability("New", 0x2)

	descriptor, err := registry.Descriptor("server")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{"New": 0x2}, descriptor)
}
