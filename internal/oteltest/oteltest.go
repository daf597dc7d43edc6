// Package oteltest provides OpenTelemetry helpers for tests: a synchronous
// in-memory exporter installed as the global tracer provider for the duration
// of a test, with accessors for the captured spans.
package oteltest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Setup installs a synchronous in-memory span exporter as the global tracer
// provider and restores the previous provider when the test finishes.
func Setup(t *testing.T) *Exporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
	)

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		require.NoError(t, tp.Shutdown(context.Background()))
		otel.SetTracerProvider(original)
	})

	return &Exporter{exporter: exporter, t: t}
}

// Exporter wraps the in-memory exporter with test helpers.
type Exporter struct {
	exporter *tracetest.InMemoryExporter
	t        *testing.T
}

// Flush returns the spans captured so far and clears the buffer.
func (e *Exporter) Flush() []Span {
	stubs := e.exporter.GetSpans()
	e.exporter.Reset()

	spans := make([]Span, len(stubs))
	for i, stub := range stubs {
		spans[i] = Span{t: e.t, Stub: stub}
	}
	return spans
}

// Named returns the flushed spans with the given name.
func Named(spans []Span, name string) []Span {
	var out []Span
	for _, s := range spans {
		if s.Stub.Name == name {
			out = append(out, s)
		}
	}
	return out
}

// Span wraps a captured span stub with attribute helpers.
type Span struct {
	t    *testing.T
	Stub tracetest.SpanStub
}

// StringAttr returns the string attribute with the given key, failing the
// test if it is absent.
func (s Span) StringAttr(key string) string {
	s.t.Helper()
	for _, kv := range s.Stub.Attributes {
		if string(kv.Key) == key {
			return kv.Value.AsString()
		}
	}
	s.t.Fatalf("span %q has no attribute %q", s.Stub.Name, key)
	return ""
}

// JSONAttr unmarshals the JSON-encoded string attribute with the given key
// into v.
func (s Span) JSONAttr(key string, v any) {
	s.t.Helper()
	raw := s.StringAttr(key)
	require.NoError(s.t, json.Unmarshal([]byte(raw), v))
}
