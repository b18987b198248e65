// Package changeset casts untrusted attribute maps into validated column
// sets for inserts and updates.
//
// Cast whitelists the keys an endpoint may write; everything else is
// silently dropped, so request payloads can be passed in as-is. Validators
// accumulate field errors instead of failing fast, and a changeset with
// errors refuses to produce columns or values.
//
//	cs := changeset.Cast(payload, []string{"title", "body"}).
//		Require("title").
//		Validate("title", changeset.MaxLength(200))
//	if err := cs.PutTenant(ctx, "tenant_id"); err != nil {
//		return err
//	}
//	attrs, err := cs.Assignments()
//
// PutTenant merges the ambient tenant id into the changeset; the tenant
// field does not need to appear in the whitelist, and a payload that tries
// to write a different tenant id is rejected with ErrTenantMismatch.
package changeset
