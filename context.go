package capkit

import (
	"context"
)

// Context keys for CapKit values.
type contextKey string

const (
	contextKeyRole      contextKey = "capkit:role"
	contextKeySubjectID contextKey = "capkit:subject_id"
)

// WithRole adds a RoleCapability to the context.
// This is set by middleware and can be retrieved in handlers.
func WithRole(ctx context.Context, role *RoleCapability) context.Context {
	return context.WithValue(ctx, contextKeyRole, role)
}

// GetRole retrieves the RoleCapability from context.
// Returns nil if not set.
func GetRole(ctx context.Context) *RoleCapability {
	if v := ctx.Value(contextKeyRole); v != nil {
		if r, ok := v.(*RoleCapability); ok {
			return r
		}
	}
	return nil
}

// MustGetRole retrieves the RoleCapability from context.
// Panics if not set.
func MustGetRole(ctx context.Context) *RoleCapability {
	role := GetRole(ctx)
	if role == nil {
		panic("capkit: role not in context")
	}
	return role
}

// FromContext retrieves the RoleCapability from context.
// Alias for GetRole for convenience.
func FromContext(ctx context.Context) *RoleCapability {
	return GetRole(ctx)
}

// WithSubjectID adds a subject ID to the context.
// This identifies whose permissions are being checked, for correlation by
// callers; CapKit itself only needs the role.
func WithSubjectID(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, contextKeySubjectID, subjectID)
}

// GetSubjectID retrieves the subject ID from context.
// Returns empty string if not set.
func GetSubjectID(ctx context.Context) string {
	if v := ctx.Value(contextKeySubjectID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
