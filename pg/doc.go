// Package pg bootstraps the PostgreSQL layer the tenant-scoped data access
// builds on: a pgx/v5 connection pool with retrying startup, goose schema
// migrations, a health check closure, and SQLSTATE classification helpers.
//
// Config is populated from environment variables (see the field tags),
// typically through the config package:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		panic(err)
//	}
//
//	db := scopedb.New(pool)
//
// The error helpers matter to multi-tenant schemas in particular:
// IsNotNullViolationError catches writes that reached the database without a
// tenant id (every tenant-scoped table declares the tenant column NOT NULL
// as a second line of defense), and IsDuplicateKeyError catches per-tenant
// unique constraint conflicts.
package pg
