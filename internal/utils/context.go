// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys
// and job identifier generation.
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

// JobIDCtxKey is the key under which a derivation job ID is stored in the
// context.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithJobID(ctx, "0190f0c4-...")
var JobIDCtxKey = contextKey("jobID")

// WithJobID returns a copy of ctx carrying jobID.
func WithJobID(ctx context.Context, jobID string) context.Context {
	return context.WithValue(ctx, JobIDCtxKey, jobID)
}

// GetJobIDFromContext retrieves the derivation job ID from the context.
//
// Returns the job ID and an ok flag:
//   - ok == true  — value is found and is a non-empty string
//   - ok == false — value is missing or has an unexpected type
func GetJobIDFromContext(ctx context.Context) (string, bool) {
	jobID, ok := ctx.Value(JobIDCtxKey).(string)
	return jobID, ok && jobID != ""
}
