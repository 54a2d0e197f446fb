package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the per-invocation correlation identifier.
	FieldRunID = "run_id"
	// FieldInputPath is the standardized structured logging key for the analysed document.
	FieldInputPath = "input_path"
	// FieldChartPath is the standardized structured logging key for a written chart image.
	FieldChartPath = "chart_path"
	// FieldTokenCount is the standardized structured logging key for document token totals.
	FieldTokenCount = "token_count"
	// FieldSentenceCount is the standardized structured logging key for document sentence totals.
	FieldSentenceCount = "sentence_count"
	// FieldTypeTokenRatio is the standardized structured logging key for the type-token ratio.
	FieldTypeTokenRatio = "type_token_ratio"
)

type runIDKey struct{}

// WithRunID returns a context carrying a fresh correlation identifier.
func WithRunID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, uuid.NewString())
}

// RunIDFromContext returns the correlation identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if id, ok := RunIDFromContext(ctx); ok {
		return []slog.Attr{slog.String(FieldRunID, id)}
	}
	return nil
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
