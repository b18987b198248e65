package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Tenant is the minimal tenant record carried through a request. It holds
// what resolution, scoping and UI code need; application-specific tenant
// data stays in the application's own tables keyed by ID.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Subdomain string    `json:"subdomain"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider loads tenant records from a data source. Implementations decide
// which identifier formats they accept (UUID, subdomain, slug, ...).
type Provider interface {
	// GetByIdentifier retrieves a tenant by any unique identifier.
	// Returns ErrTenantNotFound if no tenant matches.
	GetByIdentifier(ctx context.Context, identifier string) (*Tenant, error)
}
