// Package pgstore persists tenants in PostgreSQL and implements
// tenant.Provider for the resolution middleware.
//
// The tenants table is the one table that is not tenant-scoped, so the store
// runs on the unscoped surface of scopedb. Expected schema:
//
//	CREATE TABLE tenants (
//		id         UUID PRIMARY KEY,
//		subdomain  TEXT NOT NULL UNIQUE,
//		name       TEXT NOT NULL,
//		active     BOOLEAN NOT NULL DEFAULT TRUE,
//		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//
// Duplicate subdomains surface as errors matching pg.IsDuplicateKeyError.
// Callers that cache tenants (tenant.Middleware does) should delete the
// cache entry after Update or Deactivate.
package pgstore
