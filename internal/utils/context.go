// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// Authorization header parsing, HTTP response writing, HTTP client
// initialization, and token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key under which the authenticated caller is stored
// by the authentication middleware.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the resolved caller.
func WithCaller(ctx context.Context, caller models.User) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext retrieves the caller stored by WithCaller.
//
// Returns the caller and an ok flag:
//   - ok == true: a caller is present
//   - ok == false: the request was not authenticated
//
// Example usage:
//
//	caller, ok := utils.CallerFromContext(r.Context())
//	if !ok {
//	    // handle unauthenticated request
//	}
func CallerFromContext(ctx context.Context) (models.User, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.User)
	return caller, ok
}
