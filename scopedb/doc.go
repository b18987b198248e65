// Package scopedb provides tenant-scoped data access over pgx.
//
// Every statement built through a scoped DB automatically carries the tenant
// predicate: reads, updates and deletes get "tenant_id = <id>" appended to
// their WHERE clause, and inserts get the tenant column merged into their
// value set. The tenant id comes from the ambient context established by
// package tenant, so repositories never filter by tenant manually and cannot
// forget to.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/tenantkit/scopedb"
//		"github.com/dmitrymomot/tenantkit/tenant"
//	)
//
//	db := scopedb.New(pool) // pool is a *pgxpool.Pool
//
//	// ctx carries a tenant, e.g. via tenant.Middleware or tenant.WithTenantID.
//	rows, err := db.SelectFrom(ctx, "posts", "id", "title").
//		Where(squirrel.Eq{"published": true}).
//		OrderBy("created_at DESC").
//		Query(ctx)
//
//	_, err = db.InsertInto(ctx, "posts").
//		Set("id", uuid.New()).
//		Set("title", "hello").
//		Exec(ctx)
//
// Both statements are scoped to the ambient tenant; the generated SQL is
//
//	SELECT id, title FROM posts WHERE tenant_id = $1 AND published = $2 ORDER BY created_at DESC
//	INSERT INTO posts (id,tenant_id,title) VALUES ($1,$2,$3)
//
// # Fail-closed semantics
//
// If the context carries no tenant (or a zero id), building fails with
// ErrNoTenant before any SQL reaches the database. This applies to reads as
// well as writes: a request that lost its tenant context returns an error
// instead of silently reading across tenants.
//
// An insert or update that explicitly sets the tenant column is allowed when
// the value equals the ambient tenant id and fails with ErrTenantMismatch
// when it does not. Scoping can therefore not be used to smuggle rows into
// another tenant.
//
// # Escaping the scope
//
// System code that legitimately operates across tenants (the tenants table
// itself, maintenance jobs, admin tooling) uses Unscoped:
//
//	n, err := db.Unscoped().SelectFrom(ctx, "tenants", "count(*)").QueryRow(ctx)
//
// Unscoped returns a separate handle; it never changes the scoping of the
// DB it was called on.
//
// # Transactions
//
// WithTx runs a function against a scoped DB bound to a single transaction:
//
//	err := db.WithTx(ctx, func(tx *scopedb.DB) error {
//		if _, err := tx.InsertInto(ctx, "posts").SetMap(attrs).Exec(ctx); err != nil {
//			return err
//		}
//		_, err := tx.UpdateTable(ctx, "counters").Set("posts", squirrel.Expr("posts + 1")).Exec(ctx)
//		return err
//	})
package scopedb
