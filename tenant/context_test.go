package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tenantkit/tenant"
)

func createTestTenant(subdomain string, active bool) *tenant.Tenant {
	return &tenant.Tenant{
		ID:        uuid.New(),
		Subdomain: subdomain,
		Name:      subdomain,
		Active:    active,
		CreatedAt: time.Now(),
	}
}

func TestWithTenant(t *testing.T) {
	t.Parallel()

	t.Run("adds tenant to context", func(t *testing.T) {
		t.Parallel()

		testTenant := createTestTenant("acme", true)
		ctx := tenant.WithTenant(context.Background(), testTenant)

		retrieved, ok := tenant.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, testTenant, retrieved)
	})

	t.Run("overwrites existing tenant in context", func(t *testing.T) {
		t.Parallel()

		tenant1 := createTestTenant("acme", true)
		tenant2 := createTestTenant("globex", true)

		ctx := tenant.WithTenant(context.Background(), tenant1)
		ctx = tenant.WithTenant(ctx, tenant2)

		retrieved, ok := tenant.FromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, tenant2, retrieved)
	})
}

func TestWithTenantID(t *testing.T) {
	t.Parallel()

	t.Run("establishes id-only tenant context", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		ctx := tenant.WithTenantID(context.Background(), id)

		got, ok := tenant.IDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns nil and false for empty context", func(t *testing.T) {
		t.Parallel()

		retrieved, ok := tenant.FromContext(context.Background())
		assert.False(t, ok)
		assert.Nil(t, retrieved)
	})

	t.Run("returns false for nil tenant", func(t *testing.T) {
		t.Parallel()

		ctx := tenant.WithTenant(context.Background(), nil)

		retrieved, ok := tenant.FromContext(ctx)
		assert.False(t, ok)
		assert.Nil(t, retrieved)
	})
}

func TestIDFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns id when tenant present", func(t *testing.T) {
		t.Parallel()

		testTenant := createTestTenant("acme", true)
		ctx := tenant.WithTenant(context.Background(), testTenant)

		id, ok := tenant.IDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, testTenant.ID, id)
	})

	t.Run("returns false for empty context", func(t *testing.T) {
		t.Parallel()

		id, ok := tenant.IDFromContext(context.Background())
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("zero id counts as absent", func(t *testing.T) {
		t.Parallel()

		ctx := tenant.WithTenant(context.Background(), &tenant.Tenant{})

		_, ok := tenant.IDFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns tenant when present", func(t *testing.T) {
		t.Parallel()

		testTenant := createTestTenant("acme", true)
		ctx := tenant.WithTenant(context.Background(), testTenant)

		assert.Equal(t, testTenant, tenant.MustFromContext(ctx))
	})

	t.Run("panics when absent", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			tenant.MustFromContext(context.Background())
		})
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts tenant id attribute", func(t *testing.T) {
		t.Parallel()

		testTenant := createTestTenant("acme", true)
		ctx := tenant.WithTenant(context.Background(), testTenant)

		attr, ok := tenant.LoggerExtractor()(ctx)
		require.True(t, ok)
		assert.Equal(t, "tenant_id", attr.Key)
		assert.Equal(t, testTenant.ID.String(), attr.Value.String())
	})

	t.Run("reports absence", func(t *testing.T) {
		t.Parallel()

		_, ok := tenant.LoggerExtractor()(context.Background())
		assert.False(t, ok)
	})
}
