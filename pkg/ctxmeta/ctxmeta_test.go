package ctxmeta_test

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Gunvolt24/cleanpos/pkg/ctxmeta"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	if ctx := ctxmeta.WithRequestID(parent, ""); ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestWithRequestID_NilCtx(t *testing.T) {
	var nilCtx context.Context
	if ctx := ctxmeta.WithRequestID(nilCtx, "req-1"); ctx != nil {
		t.Fatalf("WithRequestID(nil, ...) must return nil")
	}
	if id, ok := ctxmeta.RequestIDFromContext(nilCtx); ok || id != "" {
		t.Fatalf("RequestIDFromContext(nil) must be empty/false, got id=%q ok=%v", id, ok)
	}
}

func TestTraceAndSpanIDs_FromContext(t *testing.T) {
	// Локальный TracerProvider — без глобальной настройки.
	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	traceID, ok := ctxmeta.TraceIDFromContext(ctx)
	if !ok || traceID != span.SpanContext().TraceID().String() {
		t.Fatalf("traceID=%q ok=%v, want %s", traceID, ok, span.SpanContext().TraceID())
	}
	spanID, ok := ctxmeta.SpanIDFromContext(ctx)
	if !ok || spanID != span.SpanContext().SpanID().String() {
		t.Fatalf("spanID=%q ok=%v, want %s", spanID, ok, span.SpanContext().SpanID())
	}
}

func TestTraceAndSpanIDs_NoSpan(t *testing.T) {
	if id, ok := ctxmeta.TraceIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("TraceIDFromContext(background) => %q,%v; want \"\", false", id, ok)
	}
	if id, ok := ctxmeta.SpanIDFromContext(context.Background()); ok || id != "" {
		t.Fatalf("SpanIDFromContext(background) => %q,%v; want \"\", false", id, ok)
	}
}

func TestFields(t *testing.T) {
	if f := ctxmeta.Fields(context.Background()); len(f) != 0 {
		t.Fatalf("empty ctx must give no fields, got %v", f)
	}

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(ctxmeta.WithRequestID(context.Background(), "rid"), "op")
	defer span.End()

	f := ctxmeta.Fields(ctx)
	if len(f) != 6 || f[0] != "request_id" || f[1] != "rid" || f[2] != "trace_id" || f[4] != "span_id" {
		t.Fatalf("unexpected fields: %v", f)
	}
}
