package capkit

import (
	"net/http"
	"strconv"
)

// Middleware provides HTTP middleware for capability checking.
// It resolves a RoleCapability from each request and gates handlers on the
// capabilities that role activates.
type Middleware struct {
	resolver     RoleResolver
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// RoleResolver resolves a RoleCapability from an HTTP request.
type RoleResolver func(*http.Request) (*RoleCapability, error)

// NewMiddleware creates a new Middleware instance.
//
// Example:
//
//	mw := capkit.NewMiddleware(
//	    capkit.RoleFromHeader(registry, "server", "X-Permissions"),
//	)
func NewMiddleware(resolver RoleResolver, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		resolver:     resolver,
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithErrorHandler sets a custom error handler for middleware.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if IsMissingCapability(err) || IsInvalidValue(err) || IsCorruptDescriptor(err) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if IsNoRole(err) || IsUnknownDescriptor(err) || IsUnknownCapability(err) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// RoleFromContext creates a RoleResolver that reads the role from the request
// context, where an upstream middleware (e.g. authentication) placed it.
func RoleFromContext() RoleResolver {
	return func(r *http.Request) (*RoleCapability, error) {
		role := GetRole(r.Context())
		if role == nil {
			return nil, NewError(ErrNoRole, "role not found in request context")
		}
		return role, nil
	}
}

// RoleFromHeader creates a RoleResolver that reads the permission value from
// a header and pairs it with a named descriptor from the registry.
// The header value is parsed with base 0, so "0x3", "0o7", and "3" all work.
//
// Example:
//
//	// For header X-Permissions: 0x3
//	capkit.RoleFromHeader(registry, "server", "X-Permissions")
func RoleFromHeader(registry *Registry, descriptorName, headerName string) RoleResolver {
	return func(r *http.Request) (*RoleCapability, error) {
		raw := r.Header.Get(headerName)
		if raw == "" {
			return nil, NewError(ErrNoRole, "permission header not found in request").
				WithDescriptor(descriptorName)
		}

		value, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return nil, NewError(ErrInvalidValue, "permission header is not an integer").
				WithDescriptor(descriptorName)
		}

		return registry.Role(descriptorName, value)
	}
}

// StaticRole creates a RoleResolver that always returns the same role.
// Useful for tests and single-tenant setups.
func StaticRole(role *RoleCapability) RoleResolver {
	return func(r *http.Request) (*RoleCapability, error) {
		if role == nil {
			return nil, NewError(ErrNoRole, "static role is nil")
		}
		return role, nil
	}
}

// RequireCapability creates middleware that requires a specific capability.
//
// Example:
//
//	router.Handle("/admin", mw.RequireCapability("Administrator")(adminHandler))
func (m *Middleware) RequireCapability(name CapabilityName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.resolver(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			if !role.HasCapability(name) {
				m.errorHandler(w, r, NewError(ErrMissingCapability, "missing required capability").
					WithCapability(name).
					WithValue(role.Value()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// RequireAnyCapability creates middleware that requires at least one of the
// specified capabilities.
func (m *Middleware) RequireAnyCapability(names ...CapabilityName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.resolver(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			if !role.HasAnyCapability(names...) {
				m.errorHandler(w, r, NewError(ErrMissingCapability, "missing required capability").
					WithValue(role.Value()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// RequireAllCapabilities creates middleware that requires every one of the
// specified capabilities.
func (m *Middleware) RequireAllCapabilities(names ...CapabilityName) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.resolver(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			if !role.HasAllCapabilities(names...) {
				m.errorHandler(w, r, NewError(ErrMissingCapability, "missing required capability").
					WithValue(role.Value()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// RequireValid creates middleware that rejects requests whose permission
// value is not representable under the role's descriptor.
func (m *Middleware) RequireValid() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.resolver(r)
			if err != nil {
				m.errorHandler(w, r, err)
				return
			}

			if !role.Valid() {
				m.errorHandler(w, r, NewError(ErrInvalidValue, "permission value not valid under descriptor").
					WithValue(role.Value()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}

// LoadRole creates middleware that resolves the role into context without
// gating. Use this when you want to do capability checks in the handler
// rather than in middleware.
//
// Example:
//
//	router.Handle("/dashboard", mw.LoadRole()(dashboardHandler))
//
//	func dashboardHandler(w http.ResponseWriter, r *http.Request) {
//	    role := capkit.FromContext(r.Context())
//	    if role != nil && role.HasCapability("Administrator") {
//	        // Show admin features
//	    }
//	}
func (m *Middleware) LoadRole() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := m.resolver(r)
			if err != nil {
				// No role, continue without one
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(r.Context(), role)))
		})
	}
}
