package capkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for CapKit operations.
var (
	// ErrUnknownDescriptor is returned when a descriptor name is not defined
	// in the registry.
	ErrUnknownDescriptor = errors.New("capkit: unknown descriptor")

	// ErrUnknownCapability is returned when a capability name is looked up in
	// a descriptor that does not define it.
	ErrUnknownCapability = errors.New("capkit: unknown capability")

	// ErrCorruptDescriptor is returned when a descriptor fails the integrity
	// check (OR mask exceeds arithmetic sum).
	ErrCorruptDescriptor = errors.New("capkit: corrupt descriptor")

	// ErrInvalidValue is returned when a permission value is not valid under
	// a descriptor.
	ErrInvalidValue = errors.New("capkit: invalid permission value")

	// ErrMissingCapability is returned when a role doesn't activate a
	// required capability.
	ErrMissingCapability = errors.New("capkit: missing capability")

	// ErrNoRole is returned when no role could be resolved, e.g. from a
	// request or a context.
	ErrNoRole = errors.New("capkit: no role")
)

// Error wraps a sentinel error with additional context.
type Error struct {
	Err        error          // Underlying sentinel error
	Message    string         // Additional context
	Descriptor string         // Descriptor name involved (if applicable)
	Capability CapabilityName // Capability involved (if applicable)
	Value      HexValue       // Permission value involved (if applicable)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches a target error.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewError creates a new Error with context.
func NewError(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
	}
}

// WithDescriptor adds the descriptor name to the error.
func (e *Error) WithDescriptor(name string) *Error {
	e.Descriptor = name
	return e
}

// WithCapability adds the capability name to the error.
func (e *Error) WithCapability(name CapabilityName) *Error {
	e.Capability = name
	return e
}

// WithValue adds the permission value to the error.
func (e *Error) WithValue(value HexValue) *Error {
	e.Value = value
	return e
}

// IsUnknownDescriptor checks if an error is due to an unknown descriptor.
func IsUnknownDescriptor(err error) bool {
	return errors.Is(err, ErrUnknownDescriptor)
}

// IsUnknownCapability checks if an error is due to an unknown capability.
func IsUnknownCapability(err error) bool {
	return errors.Is(err, ErrUnknownCapability)
}

// IsCorruptDescriptor checks if an error is due to a corrupt descriptor.
func IsCorruptDescriptor(err error) bool {
	return errors.Is(err, ErrCorruptDescriptor)
}

// IsInvalidValue checks if an error is due to an invalid permission value.
func IsInvalidValue(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}

// IsMissingCapability checks if an error is due to a missing capability.
func IsMissingCapability(err error) bool {
	return errors.Is(err, ErrMissingCapability)
}

// IsNoRole checks if an error is due to a missing role.
func IsNoRole(err error) bool {
	return errors.Is(err, ErrNoRole)
}
