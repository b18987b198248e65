package pg

import "time"

// Config controls the connection pool and migrations. All fields come from
// environment variables.
type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`                   // Postgres connection string.
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`      // Maximum number of open connections.
	MinIdleConns      int32         `env:"PG_MIN_IDLE_CONNS" envDefault:"5"`       // Minimum number of idle connections kept in the pool.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // Period between pool health checks.
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // How long a connection may sit idle before being closed.
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // How long a connection may live before being recycled.

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // Connection attempts before giving up.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // Base interval between attempts.

	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"migrations"`         // Directory containing goose migrations.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // Table goose records applied versions in.
}
