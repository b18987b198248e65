package scopedb

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

// DeleteBuilder builds a tenant-scoped DELETE.
type DeleteBuilder struct {
	db  *DB
	b   sq.DeleteBuilder
	err error
}

// DeleteFrom starts a DELETE against the given table. On a scoped DB the
// WHERE clause starts with the tenant predicate; if the context carries no
// tenant the builder is poisoned with ErrNoTenant.
func (db *DB) DeleteFrom(ctx context.Context, table string) DeleteBuilder {
	dbuilder := DeleteBuilder{db: db, b: sq.Delete(table).PlaceholderFormat(sq.Dollar)}
	if db.unscoped {
		return dbuilder
	}

	id, err := db.tenantID(ctx)
	if err != nil {
		dbuilder.err = err
		return dbuilder
	}
	dbuilder.b = dbuilder.b.Where(sq.Eq{db.column: id})
	return dbuilder
}

// Where adds a predicate, AND-combined with the tenant predicate.
func (b DeleteBuilder) Where(pred any, args ...any) DeleteBuilder {
	b.b = b.b.Where(pred, args...)
	return b
}

// ToSQL renders the statement with $n placeholders.
func (b DeleteBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	return b.b.ToSql()
}

// Exec executes the statement.
func (b DeleteBuilder) Exec(ctx context.Context) (pgconn.CommandTag, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.Exec(ctx, sql, args...)
}
