package changeset

import "errors"

var (
	// ErrInvalidChangeset is returned when columns or values are extracted
	// from a changeset that has validation errors.
	ErrInvalidChangeset = errors.New("changeset has errors")

	// ErrTenantMismatch is returned by PutTenant when the casted attributes
	// carry a tenant id other than the ambient one.
	ErrTenantMismatch = errors.New("tenant id does not match ambient tenant")
)
