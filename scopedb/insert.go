package scopedb

import (
	"context"
	"maps"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// InsertBuilder builds a tenant-scoped INSERT. The value set is attribute
// based (column -> value) so the tenant column can be merged in, the way a
// changeset merges attributes; column order in the generated SQL is
// alphabetical and therefore deterministic.
type InsertBuilder struct {
	db        *DB
	table     string
	sets      map[string]any
	id        uuid.UUID
	scoped    bool
	returning []string
	err       error
}

// InsertInto starts an INSERT into the given table. On a scoped DB the
// tenant column is pre-set to the ambient tenant id; if the context carries
// no tenant the builder is poisoned with ErrNoTenant.
func (db *DB) InsertInto(ctx context.Context, table string) InsertBuilder {
	ib := InsertBuilder{db: db, table: table, sets: map[string]any{}}
	if db.unscoped {
		return ib
	}

	id, err := db.tenantID(ctx)
	if err != nil {
		ib.err = err
		return ib
	}
	ib.id = id
	ib.scoped = true
	ib.sets[db.column] = id
	return ib
}

// Set adds a column value. Setting the tenant column explicitly is allowed
// only when the value equals the ambient tenant id; anything else poisons
// the builder with ErrTenantMismatch.
func (b InsertBuilder) Set(column string, value any) InsertBuilder {
	if b.err != nil {
		return b
	}
	if b.scoped && column == b.db.column {
		if !tenantValueEqual(value, b.id) {
			b.err = ErrTenantMismatch
		}
		return b
	}
	b.sets = maps.Clone(b.sets)
	b.sets[column] = value
	return b
}

// SetMap adds all entries of the attribute map, applying the same tenant
// column rules as Set.
func (b InsertBuilder) SetMap(attrs map[string]any) InsertBuilder {
	for column, value := range attrs {
		b = b.Set(column, value)
	}
	return b
}

// Returning appends a RETURNING clause; fetch the row with QueryRow.
func (b InsertBuilder) Returning(columns ...string) InsertBuilder {
	b.returning = columns
	return b
}

// ToSQL renders the statement with $n placeholders.
func (b InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	stmt := sq.Insert(b.table).SetMap(b.sets).PlaceholderFormat(sq.Dollar)
	if len(b.returning) > 0 {
		stmt = stmt.Suffix("RETURNING " + strings.Join(b.returning, ", "))
	}
	return stmt.ToSql()
}

// Exec executes the statement.
func (b InsertBuilder) Exec(ctx context.Context) (pgconn.CommandTag, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.Exec(ctx, sql, args...)
}

// QueryRow executes the statement and returns the single row produced by
// its RETURNING clause.
func (b InsertBuilder) QueryRow(ctx context.Context) pgx.Row {
	sql, args, err := b.ToSQL()
	if err != nil {
		return errRow{err: err}
	}
	b.db.debugSQL(ctx, sql, args)
	return b.db.q.QueryRow(ctx, sql, args...)
}
