package tenant_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tenantkit/tenant"
)

func TestSubdomainResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		suffix string
		host   string
		want   string
	}{
		{"extracts subdomain with suffix", ".example.com", "acme.example.com", "acme"},
		{"extracts subdomain without suffix", "", "acme.example.com", "acme"},
		{"strips port", ".example.com", "acme.example.com:8080", "acme"},
		{"bare domain yields nothing", ".example.com", "example.com", ""},
		{"www is not a tenant", ".example.com", "www.example.com", ""},
		{"foreign host yields nothing", ".example.com", "acme.other.org", ""},
		{"single label yields nothing", "", "localhost", ""},
		{"two labels yield nothing without suffix", "", "example.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tc.host

			got, err := tenant.NewSubdomainResolver(tc.suffix).Resolve(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("reads configured header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Org", "acme")

		got, err := tenant.NewHeaderResolver("X-Org").Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})

	t.Run("defaults to X-Tenant-ID", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-ID", "acme")

		got, err := tenant.NewHeaderResolver("").Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})
}

func TestPathResolver(t *testing.T) {
	t.Parallel()

	t.Run("extracts segment at position", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tenants/acme/dashboard", nil)

		got, err := tenant.NewPathResolver(2).Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})

	t.Run("position past path yields nothing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tenants", nil)

		got, err := tenant.NewPathResolver(2).Resolve(req)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid position errors", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tenants/acme", nil)

		_, err := tenant.NewPathResolver(0).Resolve(req)
		assert.Error(t, err)
	})
}

func TestQueryResolver(t *testing.T) {
	t.Parallel()

	t.Run("reads configured parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/webhook?org=acme", nil)

		got, err := tenant.NewQueryResolver("org").Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})

	t.Run("defaults to tenant parameter", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/webhook?tenant=acme", nil)

		got, err := tenant.NewQueryResolver("").Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty result", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Tenant-ID", "acme")

		resolver := tenant.NewCompositeResolver(
			tenant.NewQueryResolver(""),
			tenant.NewHeaderResolver(""),
		)

		got, err := resolver.Resolve(req)
		require.NoError(t, err)
		assert.Equal(t, "acme", got)
	})

	t.Run("collects errors when nothing resolves", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		failing := tenant.ResolverFunc(func(r *http.Request) (string, error) {
			return "", boom
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := tenant.NewCompositeResolver(failing).Resolve(req)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty when no resolver matches", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		got, err := tenant.NewCompositeResolver(tenant.NewHeaderResolver("")).Resolve(req)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
