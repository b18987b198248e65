package pgstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/tenantkit/changeset"
	"github.com/dmitrymomot/tenantkit/scopedb"
	"github.com/dmitrymomot/tenantkit/tenant"
)

const tenantsTable = "tenants"

var tenantColumns = []string{"id", "subdomain", "name", "active", "created_at"}

// ErrNoFieldsToUpdate is returned by Update when the attribute map contains
// no updatable fields after casting.
var ErrNoFieldsToUpdate = errors.New("no updatable fields")

// subdomains follow DNS label rules: lowercase alphanumerics and inner hyphens.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// Store is a Postgres-backed tenant store. It satisfies tenant.Provider.
type Store struct {
	db *scopedb.DB
}

var _ tenant.Provider = (*Store)(nil)

// New creates a store over the given querier (typically a *pgxpool.Pool).
func New(q scopedb.Querier) *Store {
	// The tenants table carries no tenant column; everything here runs
	// through the unscoped surface.
	return &Store{db: scopedb.New(q).Unscoped()}
}

// Create inserts a new active tenant. The subdomain is normalized to lower
// case and must be a valid DNS label; violations return
// tenant.ErrInvalidIdentifier.
func (s *Store) Create(ctx context.Context, subdomain, name string) (*tenant.Tenant, error) {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	if !subdomainPattern.MatchString(subdomain) {
		return nil, tenant.ErrInvalidIdentifier
	}

	t := &tenant.Tenant{
		ID:        uuid.New(),
		Subdomain: subdomain,
		Name:      name,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.InsertInto(ctx, tenantsTable).SetMap(map[string]any{
		"id":         t.ID,
		"subdomain":  t.Subdomain,
		"name":       t.Name,
		"active":     t.Active,
		"created_at": t.CreatedAt,
	}).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByID retrieves a tenant by primary key.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	row := s.db.SelectFrom(ctx, tenantsTable, tenantColumns...).
		Where(sq.Eq{"id": id}).
		QueryRow(ctx)
	return scanTenant(row)
}

// GetBySubdomain retrieves a tenant by its unique subdomain.
func (s *Store) GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Tenant, error) {
	row := s.db.SelectFrom(ctx, tenantsTable, tenantColumns...).
		Where(sq.Eq{"subdomain": strings.ToLower(subdomain)}).
		QueryRow(ctx)
	return scanTenant(row)
}

// GetByIdentifier implements tenant.Provider: a UUID identifier is looked up
// by id, anything else by subdomain.
func (s *Store) GetByIdentifier(ctx context.Context, identifier string) (*tenant.Tenant, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, tenant.ErrInvalidIdentifier
	}

	if id, err := uuid.Parse(identifier); err == nil {
		return s.GetByID(ctx, id)
	}
	return s.GetBySubdomain(ctx, identifier)
}

// Update applies a whitelisted attribute map (name, subdomain) to a tenant
// and returns the updated record. Validation failures are wrapped around
// changeset.ErrInvalidChangeset.
func (s *Store) Update(ctx context.Context, id uuid.UUID, attrs map[string]any) (*tenant.Tenant, error) {
	cs := changeset.Cast(attrs, []string{"name", "subdomain"}).
		Validate("name", changeset.MaxLength(200)).
		Validate("subdomain", validSubdomain)

	assignments, err := cs.Assignments()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.Join(cs.ErrorList(), "; "))
	}
	if len(assignments) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	if subdomain, ok := assignments["subdomain"].(string); ok {
		assignments["subdomain"] = strings.ToLower(subdomain)
	}

	tag, err := s.db.UpdateTable(ctx, tenantsTable).
		SetMap(assignments).
		Where(sq.Eq{"id": id}).
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, tenant.ErrTenantNotFound
	}

	return s.GetByID(ctx, id)
}

// Deactivate marks a tenant inactive; its data stays in place but the
// resolution middleware will reject it.
func (s *Store) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.UpdateTable(ctx, tenantsTable).
		Set("active", false).
		Where(sq.Eq{"id": id}).
		Exec(ctx)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tenant.ErrTenantNotFound
	}
	return nil
}

// List returns all tenants ordered by creation time.
func (s *Store) List(ctx context.Context) ([]tenant.Tenant, error) {
	rows, err := s.db.SelectFrom(ctx, tenantsTable, tenantColumns...).
		OrderBy("created_at ASC").
		Query(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		var t tenant.Tenant
		if err := rows.Scan(&t.ID, &t.Subdomain, &t.Name, &t.Active, &t.CreatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func scanTenant(row pgx.Row) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := row.Scan(&t.ID, &t.Subdomain, &t.Name, &t.Active, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

func validSubdomain(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if !subdomainPattern.MatchString(strings.ToLower(s)) {
		return errors.New("must be a valid subdomain")
	}
	return nil
}
