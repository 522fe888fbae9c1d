package capkit

import "sync"

// Registry holds named descriptors for applications with more than one
// permission vocabulary (e.g. "server", "channel"). It is created at startup
// and should be treated as immutable after initialization.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]Descriptor
}

// DescriptorBuilder accumulates capability definitions for one named
// descriptor. Returned by Registry.DefineDescriptor for fluent configuration.
type DescriptorBuilder struct {
	name       string
	descriptor Descriptor
	registry   *Registry
}

// NewRegistry creates a new descriptor registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]Descriptor),
	}
}

// DefineDescriptor starts defining a new named descriptor.
// Returns a DescriptorBuilder for fluent configuration. Bit values are always
// given explicitly; the registry never allocates bits on its own.
//
// Example:
//
//	registry.DefineDescriptor("server").
//	    Capability("Administrator", 0x1).
//	    Capability("ManageServer", 0x2).
//	    Capability("ManageRoles", 0x4)
func (r *Registry) DefineDescriptor(name string) *DescriptorBuilder {
	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor := make(Descriptor)
	r.descriptors[name] = descriptor
	return &DescriptorBuilder{
		name:       name,
		descriptor: descriptor,
		registry:   r,
	}
}

// Descriptor returns a copy of the named descriptor.
// Returns ErrUnknownDescriptor if the name is not defined.
func (r *Registry) Descriptor(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, exists := r.descriptors[name]
	if !exists {
		return nil, NewError(ErrUnknownDescriptor, "descriptor not defined in registry").
			WithDescriptor(name)
	}
	return descriptor.Clone(), nil
}

// DescriptorNames returns all defined descriptor names.
func (r *Registry) DescriptorNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	return names
}

// Validate checks the integrity of a named descriptor: the OR mask of its
// unit values must not exceed their arithmetic sum.
// Returns ErrUnknownDescriptor or ErrCorruptDescriptor on failure.
func (r *Registry) Validate(name string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, exists := r.descriptors[name]
	if !exists {
		return NewError(ErrUnknownDescriptor, "descriptor not defined in registry").
			WithDescriptor(name)
	}

	if DefaultValidator.MaxValue(descriptor) > DefaultValidator.SumValue(descriptor) {
		return NewError(ErrCorruptDescriptor, "OR mask exceeds sum of unit values").
			WithDescriptor(name)
	}
	return nil
}

// ValidateValue checks a permission value against a named descriptor.
// Returns ErrInvalidValue if the value is not representable.
func (r *Registry) ValidateValue(name string, value HexValue) error {
	descriptor, err := r.Descriptor(name)
	if err != nil {
		return err
	}

	if !DefaultValidator.IsValid(value, descriptor) {
		return NewError(ErrInvalidValue, "value not representable under descriptor").
			WithDescriptor(name).
			WithValue(value)
	}
	return nil
}

// Role builds a RoleCapability over a named descriptor.
// The value is not validated; call ValidateValue first if needed.
func (r *Registry) Role(name string, value HexValue) (*RoleCapability, error) {
	descriptor, err := r.Descriptor(name)
	if err != nil {
		return nil, err
	}
	return NewRoleCapability(descriptor, value), nil
}

// Capability adds a capability to the descriptor being built.
// Inserting under an existing name overwrites the previous value.
func (b *DescriptorBuilder) Capability(name CapabilityName, value HexUnitValue) *DescriptorBuilder {
	b.descriptor[name] = value
	return b
}

// DefineDescriptor continues defining descriptors on the registry
// (fluent API). This allows chaining descriptor definitions.
//
// Example:
//
//	registry.DefineDescriptor("server").Capability("Admin", 0x1).
//	    DefineDescriptor("channel").Capability("Post", 0x1)
func (b *DescriptorBuilder) DefineDescriptor(name string) *DescriptorBuilder {
	return b.registry.DefineDescriptor(name)
}

// Name returns the name of the descriptor being built.
func (b *DescriptorBuilder) Name() string {
	return b.name
}

// Build returns a copy of the descriptor built so far.
func (b *DescriptorBuilder) Build() Descriptor {
	return b.descriptor.Clone()
}
