package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when a tenant cannot be found.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrInvalidIdentifier is returned when an identifier is malformed.
	ErrInvalidIdentifier = errors.New("invalid tenant identifier")

	// ErrNoTenantInContext is returned when a tenant is required but the
	// context does not carry one.
	ErrNoTenantInContext = errors.New("no tenant in context")

	// ErrInactiveTenant is returned when the resolved tenant is deactivated.
	ErrInactiveTenant = errors.New("tenant is inactive")
)
