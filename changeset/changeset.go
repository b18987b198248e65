package changeset

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/dmitrymomot/tenantkit/tenant"
)

// Changeset holds a whitelisted attribute set together with accumulated
// validation errors. Construct with Cast; the zero value is not usable.
type Changeset struct {
	source map[string]any
	params map[string]any
	errs   map[string][]string
}

// Cast whitelists attrs down to the allowed keys. Unknown keys are dropped
// without error; the input map is never mutated and may be a raw request
// payload.
func Cast(attrs map[string]any, allowed []string) *Changeset {
	params := make(map[string]any, len(allowed))
	for _, key := range allowed {
		if v, ok := attrs[key]; ok {
			params[key] = v
		}
	}
	return &Changeset{
		source: attrs,
		params: params,
		errs:   make(map[string][]string),
	}
}

// Require records an error for each listed field that is absent, nil, or an
// empty string.
func (c *Changeset) Require(fields ...string) *Changeset {
	for _, field := range fields {
		v, ok := c.params[field]
		if !ok || v == nil {
			c.addError(field, "is required")
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			c.addError(field, "is required")
		}
	}
	return c
}

// Validate runs fn against the field's value when the field is present.
// The returned error message is recorded against the field.
func (c *Changeset) Validate(field string, fn func(value any) error) *Changeset {
	if v, ok := c.params[field]; ok {
		if err := fn(v); err != nil {
			c.addError(field, err.Error())
		}
	}
	return c
}

func (c *Changeset) addError(field, msg string) {
	c.errs[field] = append(c.errs[field], msg)
}

// Valid reports whether no validation errors were recorded.
func (c *Changeset) Valid() bool {
	return len(c.errs) == 0
}

// Errors returns a copy of the accumulated field errors.
func (c *Changeset) Errors() map[string][]string {
	out := make(map[string][]string, len(c.errs))
	for field, msgs := range c.errs {
		out[field] = append([]string(nil), msgs...)
	}
	return out
}

// Get returns a casted value.
func (c *Changeset) Get(field string) (any, bool) {
	v, ok := c.params[field]
	return v, ok
}

// PutTenant merges the ambient tenant id into the changeset under the given
// column (default "tenant_id" when empty). The tenant column never needs to
// be whitelisted; an input value for it is checked against the ambient id
// even when Cast dropped it, and a conflict fails with ErrTenantMismatch.
// Returns tenant.ErrNoTenantInContext when the context carries no tenant.
func (c *Changeset) PutTenant(ctx context.Context, column string) error {
	if column == "" {
		column = "tenant_id"
	}

	id, ok := tenant.IDFromContext(ctx)
	if !ok {
		return tenant.ErrNoTenantInContext
	}

	if supplied, present := c.source[column]; present && !tenantValueEqual(supplied, id) {
		return ErrTenantMismatch
	}

	c.params[column] = id
	return nil
}

// Columns returns the casted column names in sorted order.
// Fails with ErrInvalidChangeset when validation errors were recorded.
func (c *Changeset) Columns() ([]string, error) {
	if !c.Valid() {
		return nil, ErrInvalidChangeset
	}

	columns := make([]string, 0, len(c.params))
	for column := range c.params {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns, nil
}

// Values returns the casted values in the same order as Columns.
func (c *Changeset) Values() ([]any, error) {
	columns, err := c.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(columns))
	for i, column := range columns {
		values[i] = c.params[column]
	}
	return values, nil
}

// Assignments returns a column -> value copy suitable for SetMap on the
// scoped builders.
func (c *Changeset) Assignments() (map[string]any, error) {
	if !c.Valid() {
		return nil, ErrInvalidChangeset
	}

	out := make(map[string]any, len(c.params))
	for column, value := range c.params {
		out[column] = value
	}
	return out, nil
}

// ErrorList renders the field errors as "field: message" strings in sorted
// order, for logs and API responses.
func (c *Changeset) ErrorList() []string {
	fields := make([]string, 0, len(c.errs))
	for field := range c.errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var out []string
	for _, field := range fields {
		for _, msg := range c.errs[field] {
			out = append(out, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return out
}

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
