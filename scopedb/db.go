package scopedb

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/tenantkit/tenant"
)

// Querier is the minimal pgx execution surface this package needs.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultTenantColumn is the column name used when WithTenantColumn is not set.
const DefaultTenantColumn = "tenant_id"

// DB builds and executes tenant-scoped statements against a Querier.
// The zero value is not usable; construct with New.
type DB struct {
	q        Querier
	column   string
	log      *slog.Logger
	unscoped bool
}

// Option configures a DB.
type Option func(*DB)

// WithTenantColumn overrides the tenant column name. Every tenant-scoped
// table must carry this column.
func WithTenantColumn(column string) Option {
	return func(db *DB) {
		if column != "" {
			db.column = column
		}
	}
}

// WithLogger enables debug logging of generated SQL.
func WithLogger(log *slog.Logger) Option {
	return func(db *DB) {
		db.log = log
	}
}

// New creates a scoped DB over the given querier.
func New(q Querier, opts ...Option) *DB {
	db := &DB{q: q, column: DefaultTenantColumn}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Unscoped returns a DB whose builders skip tenant injection. The receiver
// is unchanged; scoping never leaks between the two handles.
func (db *DB) Unscoped() *DB {
	clone := *db
	clone.unscoped = true
	return &clone
}

// Querier exposes the underlying querier for statements that cannot be
// expressed through the builders. Raw SQL executed this way is NOT scoped.
func (db *DB) Querier() Querier {
	return db.q
}

// TenantColumn reports the configured tenant column name.
func (db *DB) TenantColumn() string {
	return db.column
}

// tenantID reads the ambient tenant id, failing closed when absent.
func (db *DB) tenantID(ctx context.Context) (uuid.UUID, error) {
	id, ok := tenant.IDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrNoTenant
	}
	return id, nil
}

func (db *DB) debugSQL(ctx context.Context, sql string, args []any) {
	if db.log != nil {
		db.log.DebugContext(ctx, "executing statement",
			slog.String("sql", sql),
			slog.Int("args", len(args)))
	}
}

// tenantValueEqual reports whether an explicitly supplied tenant value
// matches the ambient tenant id. Accepts uuid.UUID and its string form.
func tenantValueEqual(v any, id uuid.UUID) bool {
	switch t := v.(type) {
	case uuid.UUID:
		return t == id
	case *uuid.UUID:
		return t != nil && *t == id
	case string:
		parsed, err := uuid.Parse(t)
		return err == nil && parsed == id
	default:
		return false
	}
}

// errRow satisfies pgx.Row for builders that failed before execution, so
// callers always get the build error from Scan.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error {
	return r.err
}
