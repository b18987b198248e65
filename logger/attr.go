package logger

import (
	"log/slog"

	"github.com/google/uuid"
)

// Error records a single error under the key "error"; nil yields an empty attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// TenantID records a tenant identifier under the key "tenant_id".
func TenantID(id uuid.UUID) slog.Attr {
	return slog.String("tenant_id", id.String())
}
