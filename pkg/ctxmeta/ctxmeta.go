// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace_id, span_id).
// HTTP-слой, консьюмер Kafka и логгер зависят от него, но не друг от друга.
package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type ctxKey string

// KeyRequestID — id корреляции: X-Request-ID для HTTP, ключ сообщения для Kafka.
const KeyRequestID ctxKey = "request_id"

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// TraceIDFromContext — trace id активного спана.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

func spanContext(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

// Fields — все известные метаданные парами ключ/значение для структурного лога.
func Fields(ctx context.Context) []any {
	var out []any
	if v, ok := RequestIDFromContext(ctx); ok {
		out = append(out, string(KeyRequestID), v)
	}
	if v, ok := TraceIDFromContext(ctx); ok {
		out = append(out, "trace_id", v)
	}
	if v, ok := SpanIDFromContext(ctx); ok {
		out = append(out, "span_id", v)
	}
	return out
}
