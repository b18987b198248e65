package tenant

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// ErrorHandler handles errors raised during tenant resolution.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds middleware configuration.
type config struct {
	cache         Cache
	cacheTTL      time.Duration
	errorHandler  ErrorHandler
	skipPaths     []string
	requireActive bool
	requireTenant bool
	logger        *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithCache sets a custom cache implementation, e.g. NewRedisCache for
// multi-instance deployments.
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithCacheTTL sets how long resolved tenants stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = handler
	}
}

// WithSkipPaths sets path prefixes that bypass tenant resolution entirely,
// typically health checks and metrics endpoints.
func WithSkipPaths(paths []string) Option {
	return func(c *config) {
		c.skipPaths = paths
	}
}

// WithRequireActive rejects tenants whose Active flag is false. On by default.
func WithRequireActive(require bool) Option {
	return func(c *config) {
		c.requireActive = require
	}
}

// WithRequireTenant makes requests without a resolvable tenant fail instead
// of continuing tenant-less. Off by default so public pages keep working.
func WithRequireTenant(require bool) Option {
	return func(c *config) {
		c.requireTenant = require
	}
}

// WithLogger sets the logger used for resolution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTenantNotFound):
		http.Error(w, "Tenant not found", http.StatusNotFound)
	case errors.Is(err, ErrInactiveTenant):
		http.Error(w, "Tenant is inactive", http.StatusForbidden)
	case errors.Is(err, ErrInvalidIdentifier):
		http.Error(w, "Invalid tenant identifier", http.StatusBadRequest)
	case errors.Is(err, ErrNoTenantInContext):
		http.Error(w, "Tenant required", http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
