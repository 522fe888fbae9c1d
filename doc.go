// Package capkit translates integer permission bitmasks into human-readable
// capability sets.
//
// CapKit is built around a caller-supplied descriptor: a mapping from
// capability name to the bit value that represents it. A combined permission
// value (a bitmask, normally the bitwise OR of descriptor entries) can be
// validated against a descriptor and decomposed back into the names and unit
// values it activates.
//
// # Core Concepts
//
// Descriptor: the authoritative name→bit-value catalogue defining a permission
// system's vocabulary. Example: {"Read": 0x1, "Write": 0x2, "Execute": 0x4}.
//
// HexValue: a combined permission value. Set bits indicate which capabilities
// are granted. Built by the caller, typically by OR-ing descriptor entries.
//
// RoleCapability: a descriptor paired with one permission value, queryable for
// which capabilities it grants.
//
// # Key Features
//
//   - Permission validation: check a bitmask against a descriptor, including a
//     fail-closed integrity check on the descriptor itself
//   - Capability extraction: decompose a bitmask into names and unit values
//   - Descriptor registry: define named descriptors once at startup with a
//     fluent builder
//   - HTTP middleware: gate handlers on required capabilities
//   - Pure computation: no I/O, no shared mutable state, safe for concurrent
//     readers
//
// # Basic Usage
//
//	// 1. Define a descriptor (at application startup)
//	registry := capkit.NewRegistry()
//
//	registry.DefineDescriptor("server").
//	    Capability("Administrator", 0x1).
//	    Capability("ManageServer", 0x2).
//	    Capability("ManageRoles", 0x4).
//	    Capability("CreateInvitation", 0x8)
//
//	// 2. Validate a stored permission value
//	descriptor, _ := registry.Descriptor("server")
//	if capkit.IsValidHex(0x3, descriptor) {
//	    // 0x3 only uses bits the descriptor defines
//	}
//
//	// 3. Translate the value into capabilities
//	role := capkit.NewRoleCapability(descriptor, 0x3)
//	role.NameSet()                     // {"Administrator", "ManageServer"}
//	role.HasCapability("ManageRoles")  // false
//
// Descriptors can also be built directly as plain maps:
//
//	descriptor := capkit.Descriptor{"Read": 0x1, "Write": 0x2}
//	role := capkit.NewRoleCapability(descriptor, 0x1)
//
// # Validation Rules
//
// IsValidHex enforces three rules, in order:
//
//  1. Descriptor integrity: the OR of all unit values must not exceed their
//     arithmetic sum. If it does, the descriptor is treated as corrupt and
//     every value is rejected, including zero. This is a defensive heuristic
//     against misconfigured descriptors (negative or inconsistent bit
//     assignments), not a security guarantee.
//  2. Bit containment: the value may only use bits the descriptor defines.
//  3. Magnitude: the value may not exceed the OR of all unit values, as a
//     signed comparison.
//
// # Middleware Usage
//
//	mw := capkit.NewMiddleware(capkit.RoleFromHeader(registry, "server", "X-Permissions"))
//
//	router.Handle("/admin", mw.RequireCapability("Administrator")(adminHandler))
//
// # Integer Semantics
//
// Unit values and permission values are int64. Bit 63 is the sign bit, which
// leaves 63 usable capability bits per descriptor. All operations are total:
// overflow wraps per Go's two's-complement arithmetic and never panics.
package capkit
