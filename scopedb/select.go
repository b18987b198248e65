package scopedb

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// SelectBuilder builds a tenant-scoped SELECT. Obtain one via DB.SelectFrom;
// the tenant predicate is already attached and cannot be removed through
// this surface.
type SelectBuilder struct {
	db  *DB
	b   sq.SelectBuilder
	err error
}

// SelectFrom starts a SELECT against the given table. On a scoped DB the
// WHERE clause starts with the tenant predicate for the ambient tenant;
// if the context carries no tenant the builder is poisoned with ErrNoTenant
// and every execution method returns it.
func (db *DB) SelectFrom(ctx context.Context, table string, columns ...string) SelectBuilder {
	b := sq.Select(columns...).From(table).PlaceholderFormat(sq.Dollar)
	sb := SelectBuilder{db: db, b: b}
	if db.unscoped {
		return sb
	}

	id, err := db.tenantID(ctx)
	if err != nil {
		sb.err = err
		return sb
	}
	sb.b = sb.b.Where(sq.Eq{db.column: id})
	return sb
}

// Columns adds result columns to the statement.
func (b SelectBuilder) Columns(columns ...string) SelectBuilder {
	b.b = b.b.Columns(columns...)
	return b
}

// Where adds a predicate, AND-combined with the tenant predicate and any
// previously added predicates. Accepts the same forms as squirrel: Eq maps,
// expression strings with args, or any Sqlizer.
func (b SelectBuilder) Where(pred any, args ...any) SelectBuilder {
	b.b = b.b.Where(pred, args...)
	return b
}

// Join adds a JOIN clause. Joined tables are not scoped automatically;
// constrain them in the join condition when they are tenant-owned.
func (b SelectBuilder) Join(join string, args ...any) SelectBuilder {
	b.b = b.b.Join(join, args...)
	return b
}

// LeftJoin adds a LEFT JOIN clause.
func (b SelectBuilder) LeftJoin(join string, args ...any) SelectBuilder {
	b.b = b.b.LeftJoin(join, args...)
	return b
}

// GroupBy adds GROUP BY clauses.
func (b SelectBuilder) GroupBy(groupBys ...string) SelectBuilder {
	b.b = b.b.GroupBy(groupBys...)
	return b
}

// OrderBy adds ORDER BY clauses.
func (b SelectBuilder) OrderBy(orderBys ...string) SelectBuilder {
	b.b = b.b.OrderBy(orderBys...)
	return b
}

// Limit sets a LIMIT.
func (b SelectBuilder) Limit(limit uint64) SelectBuilder {
	b.b = b.b.Limit(limit)
	return b
}

// Offset sets an OFFSET.
func (b SelectBuilder) Offset(offset uint64) SelectBuilder {
	b.b = b.b.Offset(offset)
	return b
}

// ToSQL renders the statement with $n placeholders.
func (b SelectBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	return b.b.ToSql()
}

// Query executes the statement and returns the rows.
func (b SelectBuilder) Query(ctx context.Context) (pgx.Rows, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.Query(ctx, sql, args...)
}

// QueryRow executes the statement expecting a single row. Build errors are
// deferred to Scan, matching pgx semantics.
func (b SelectBuilder) QueryRow(ctx context.Context) pgx.Row {
	sql, args, err := b.ToSQL()
	if err != nil {
		return errRow{err: err}
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.QueryRow(ctx, sql, args...)
}
