package scopedb

import (
	"context"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// UpdateBuilder builds a tenant-scoped UPDATE. The tenant predicate is part
// of the WHERE clause from the start, so an update can only ever touch the
// ambient tenant's rows.
type UpdateBuilder struct {
	db     *DB
	b      sq.UpdateBuilder
	id     uuid.UUID
	scoped bool
	err    error
}

// UpdateTable starts an UPDATE against the given table. On a scoped DB the
// WHERE clause starts with the tenant predicate; if the context carries no
// tenant the builder is poisoned with ErrNoTenant.
func (db *DB) UpdateTable(ctx context.Context, table string) UpdateBuilder {
	ub := UpdateBuilder{db: db, b: sq.Update(table).PlaceholderFormat(sq.Dollar)}
	if db.unscoped {
		return ub
	}

	id, err := db.tenantID(ctx)
	if err != nil {
		ub.err = err
		return ub
	}
	ub.id = id
	ub.scoped = true
	ub.b = ub.b.Where(sq.Eq{db.column: id})
	return ub
}

// Set adds a SET clause. Reassigning the tenant column to another tenant
// poisons the builder with ErrTenantMismatch; setting it to the ambient id
// is a no-op since the scope already guarantees it.
func (b UpdateBuilder) Set(column string, value any) UpdateBuilder {
	if b.err != nil {
		return b
	}
	if b.scoped && column == b.db.column {
		if !tenantValueEqual(value, b.id) {
			b.err = ErrTenantMismatch
		}
		return b
	}
	b.b = b.b.Set(column, value)
	return b
}

// SetMap adds SET clauses for all entries of the attribute map in sorted
// column order, applying the same tenant column rules as Set.
func (b UpdateBuilder) SetMap(attrs map[string]any) UpdateBuilder {
	columns := make([]string, 0, len(attrs))
	for column := range attrs {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		b = b.Set(column, attrs[column])
	}
	return b
}

// Where adds a predicate, AND-combined with the tenant predicate.
func (b UpdateBuilder) Where(pred any, args ...any) UpdateBuilder {
	b.b = b.b.Where(pred, args...)
	return b
}

// ToSQL renders the statement with $n placeholders.
func (b UpdateBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	return b.b.ToSql()
}

// Exec executes the statement; the command tag reports how many of the
// tenant's rows were updated.
func (b UpdateBuilder) Exec(ctx context.Context) (pgconn.CommandTag, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.Exec(ctx, sql, args...)
}
