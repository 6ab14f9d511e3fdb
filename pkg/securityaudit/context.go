package securityaudit

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// ContextWithRunID returns a copy of ctx carrying the audit run ID.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the audit run ID stored in ctx.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor is a logger.ContextExtractor adding run_id to log records.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := RunIDFromContext(ctx); ok {
		return slog.String("run_id", id), true
	}
	return slog.Attr{}, false
}
