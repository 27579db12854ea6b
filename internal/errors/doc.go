// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// allocation, internal consistency, etc.) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All wrapped errors support inspection with errors.Is() and errors.As().
package apperrors
