package tenant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a private type so no other package can collide with it.
type contextKey struct{}

// WithTenant returns a context carrying the given tenant.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// WithTenantID returns a context carrying a tenant known only by id.
// This is the entry point for background jobs, queue consumers and CLIs
// that never saw an HTTP request: the scoped data layer only needs the id.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return WithTenant(ctx, &Tenant{ID: id})
}

// FromContext retrieves the tenant from the context.
// Returns nil, false if no tenant is present.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(contextKey{}).(*Tenant)
	if !ok || t == nil {
		return nil, false
	}
	return t, true
}

// IDFromContext retrieves just the tenant id from the context.
// A zero id counts as absent.
func IDFromContext(ctx context.Context) (uuid.UUID, bool) {
	t, ok := FromContext(ctx)
	if !ok || t.ID == uuid.Nil {
		return uuid.Nil, false
	}
	return t.ID, true
}

// MustFromContext retrieves the tenant from the context and panics if there
// is none. Reserve it for handlers behind RequireTenant where absence is a
// programming error.
func MustFromContext(ctx context.Context) *Tenant {
	t, ok := FromContext(ctx)
	if !ok {
		panic("tenant: no tenant in context")
	}
	return t
}

// LoggerExtractor returns a context extractor for package logger so that
// every log line emitted inside a tenant context carries the tenant id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("tenant_id", id.String()), true
		}
		return slog.Attr{}, false
	}
}
