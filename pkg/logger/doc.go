// Package logger builds the *slog.Logger used across buildmat.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout) and wraps the handler with ContextHandler, which copies
// selected context values (an audit run ID, a request ID) into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take an
// error or an optional value return an empty slog.Attr for nil, which slog
// drops, so call sites need no nil checks:
//
//	log.WarnContext(ctx, "image reference read failed", logger.Ref(ref), logger.Error(err))
package logger
