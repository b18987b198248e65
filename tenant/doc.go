// Package tenant provides tenant identity and per-request tenant context for
// multi-tenant applications.
//
// The package covers three concerns:
//
// 1. Ambient context - storing the current tenant in a context.Context so that
// lower layers (data access, logging, background work) can read it without
// threading tenant arguments through every call.
//
// 2. Resolution - extracting a tenant identifier from incoming HTTP requests
// via pluggable strategies (subdomain, header, path segment, query parameter,
// or any combination).
//
// 3. Loading and caching - turning an identifier into a full Tenant through a
// Provider, with an in-memory or Redis-backed cache in front of it.
//
// # Usage
//
//	import "github.com/dmitrymomot/tenantkit/tenant"
//
//	resolver := tenant.NewSubdomainResolver(".example.com")
//	provider := myTenantStore // implements tenant.Provider
//
//	mw := tenant.Middleware(resolver, provider,
//		tenant.WithCacheTTL(10*time.Minute),
//		tenant.WithSkipPaths([]string{"/health"}),
//	)
//	router.Use(mw)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		t, ok := tenant.FromContext(r.Context())
//		if !ok {
//			http.Error(w, "no tenant", http.StatusBadRequest)
//			return
//		}
//		_ = t
//	}
//
// Background jobs and CLIs that know only the tenant id can use
// WithTenantID to establish the same ambient context the data layer reads.
//
// # Fail-closed routes
//
// Routes that must never run without a tenant should either pass
// WithRequireTenant(true) to the middleware or wrap themselves in
// RequireTenant. The scoped data layer in package scopedb fails closed on its
// own, so a missing tenant surfaces before any SQL is issued either way.
package tenant
