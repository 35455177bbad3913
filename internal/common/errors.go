// Package common defines shared constants and sentinel errors used across
// the Yeng client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrStateNotFound = errors.New("state not found")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotHydrated      = errors.New("session not hydrated")

	// Validation errors raised before a request reaches the network.
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrValidation       = errors.New("validation error")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
