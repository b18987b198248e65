package scopedb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn against a DB bound to a single transaction, preserving the
// receiver's scoping configuration. The transaction is committed when fn
// returns nil and rolled back otherwise. Returns ErrNoTransactions when the
// underlying querier cannot begin transactions.
func (db *DB) WithTx(ctx context.Context, fn func(tx *DB) error) error {
	b, ok := db.q.(beginner)
	if !ok {
		return ErrNoTransactions
	}

	tx, err := b.Begin(ctx)
	if err != nil {
		return err
	}

	txdb := &DB{q: tx, column: db.column, log: db.log, unscoped: db.unscoped}

	if err := fn(txdb); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
