package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldInvocationID tags every line emitted while handling one command invocation.
	FieldInvocationID = "invocation_id"
	// FieldBackend is the backend selected after calibration.
	FieldBackend = "backend"
	// FieldProgram is the executable that was (or would be) spawned.
	FieldProgram = "program"
	// FieldAction is the subcommand variant driving the invocation.
	FieldAction = "action"
)

type invocationKey struct{}

// WithInvocationID stores a fresh invocation identifier on ctx and returns it.
func WithInvocationID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.NewString()
	return context.WithValue(ctx, invocationKey{}, id), id
}

// InvocationIDFromContext returns the identifier set by WithInvocationID.
func InvocationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(invocationKey{}).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if id, ok := InvocationIDFromContext(ctx); ok {
		return []slog.Attr{slog.String(FieldInvocationID, id)}
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
	return logger.With(attrsToArgs(fields)...)
}
