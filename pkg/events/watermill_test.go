package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/examseats/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	permanent := errors.New("permanent error")
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return permanent
	}
	err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler, maxRetries, time.Millisecond, nopLogger())
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped permanent error, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	err := retryWithBackoff(ctx, message.NewMessage("id", nil), handler, maxRetries, time.Second, nopLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

func TestNewMessage_PayloadAndMetadata(t *testing.T) {
	payload := map[string]any{"classroom_id": "abc", "capacity": 30}

	msg, err := NewMessage(context.Background(), "evt-1", 2, payload)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if msg.UUID == "" {
		t.Error("expected message UUID")
	}
	if got := msg.Metadata.Get(MetadataEventID); got != "evt-1" {
		t.Errorf("event_id: got %q", got)
	}
	if got := msg.Metadata.Get(MetadataEventVersion); got != "2" {
		t.Errorf("event_version: got %q", got)
	}

	var decoded map[string]any
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if decoded["classroom_id"] != "abc" {
		t.Errorf("unexpected payload: %v", decoded)
	}
}

func TestNewMessage_UnencodablePayload(t *testing.T) {
	if _, err := NewMessage(context.Background(), "evt", 1, make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
}

func TestTracePropagation_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "create-classroom")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msg, err := NewMessage(ctx, "evt", 1, struct{}{})
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}

	gotSpan := trace.SpanFromContext(extractTrace(context.Background(), msg))
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}
