// Package observability carries log-correlation identifiers through
// context.Context so layers can tag their log lines without sharing a
// logger instance.
package observability

import "context"

type ctxKey string

const (
	ctxKeyTraceID        ctxKey = "trace_id"
	ctxKeyConversationID ctxKey = "conversation_id"
)

// WithTraceID stores a per-update trace ID in the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ctxKeyTraceID, traceID)
}

// TraceID returns the trace ID from the context, or "".
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyTraceID).(string)
	return id
}

// WithConversationID stores a conversation ID in the context.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyConversationID, id)
}

// ConversationID returns the conversation ID from the context, or "".
func ConversationID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyConversationID).(string)
	return id
}
