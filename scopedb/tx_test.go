package scopedb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tenantkit/scopedb"
)

// fakeTx implements the querier subset of pgx.Tx; unimplemented methods
// panic via the embedded nil interface.
type fakeTx struct {
	pgx.Tx
	lastSQL    string
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.lastSQL = sql
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	fakeQuerier
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	t.Run("commits on success and preserves scoping", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		ftx := &fakeTx{}
		db := scopedb.New(&fakeBeginner{tx: ftx})

		err := db.WithTx(context.Background(), func(tx *scopedb.DB) error {
			_, err := tx.InsertInto(tenantCtx(id), "posts").
				Set("title", "hello").
				Exec(context.Background())
			return err
		})
		require.NoError(t, err)
		assert.True(t, ftx.committed)
		assert.False(t, ftx.rolledBack)
		assert.Equal(t, "INSERT INTO posts (tenant_id,title) VALUES ($1,$2)", ftx.lastSQL)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		t.Parallel()

		ftx := &fakeTx{}
		db := scopedb.New(&fakeBeginner{tx: ftx})

		boom := errors.New("boom")
		err := db.WithTx(context.Background(), func(tx *scopedb.DB) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.True(t, ftx.rolledBack)
		assert.False(t, ftx.committed)
	})

	t.Run("propagates begin failure", func(t *testing.T) {
		t.Parallel()

		beginErr := errors.New("no connection")
		db := scopedb.New(&fakeBeginner{beginErr: beginErr})

		err := db.WithTx(context.Background(), func(tx *scopedb.DB) error { return nil })
		assert.ErrorIs(t, err, beginErr)
	})

	t.Run("fails when querier cannot begin transactions", func(t *testing.T) {
		t.Parallel()

		db := scopedb.New(&fakeQuerier{})

		err := db.WithTx(context.Background(), func(tx *scopedb.DB) error { return nil })
		assert.ErrorIs(t, err, scopedb.ErrNoTransactions)
	})

	t.Run("unscoped handle stays unscoped inside the transaction", func(t *testing.T) {
		t.Parallel()

		ftx := &fakeTx{}
		db := scopedb.New(&fakeBeginner{tx: ftx}).Unscoped()

		err := db.WithTx(context.Background(), func(tx *scopedb.DB) error {
			_, err := tx.InsertInto(context.Background(), "tenants").
				Set("subdomain", "acme").
				Exec(context.Background())
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO tenants (subdomain) VALUES ($1)", ftx.lastSQL)
	})
}
