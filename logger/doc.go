// Package logger builds slog loggers with context-aware attributes.
//
// New returns a *slog.Logger whose handler pulls attributes out of the
// context on every log call, so request-scoped values like the tenant id
// appear on every line without being passed around:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithLevel(slog.LevelInfo),
//		logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
//	slog.SetDefault(log)
package logger
