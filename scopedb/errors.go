package scopedb

import (
	"errors"

	"github.com/dmitrymomot/tenantkit/tenant"
)

var (
	// ErrNoTenant is returned when a scoped statement is built from a
	// context that carries no tenant. It aliases
	// tenant.ErrNoTenantInContext so callers can errors.Is against either.
	ErrNoTenant = tenant.ErrNoTenantInContext

	// ErrTenantMismatch is returned when a statement explicitly sets the
	// tenant column to a value other than the ambient tenant id.
	ErrTenantMismatch = errors.New("tenant id does not match ambient tenant")

	// ErrNoTransactions is returned by WithTx when the underlying querier
	// cannot begin transactions.
	ErrNoTransactions = errors.New("querier does not support transactions")
)
