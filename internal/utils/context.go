// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing and identifier generation.
package utils

import (
	"context"
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

// CultureCtxKey is the key under which the negotiated request culture is
// stored in the context.
var CultureCtxKey = contextKey("culture")

// WithCulture returns a copy of ctx carrying culture.
func WithCulture(ctx context.Context, culture string) context.Context {
	return context.WithValue(ctx, CultureCtxKey, culture)
}

// GetCultureFromContext retrieves the request culture from the context.
//
// Returns the culture and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	culture, ok := utils.GetCultureFromContext(ctx)
//	if !ok {
//	    culture = defaultCulture
//	}
func GetCultureFromContext(ctx context.Context) (string, bool) {
	culture, ok := ctx.Value(CultureCtxKey).(string)
	return culture, ok && culture != ""
}
