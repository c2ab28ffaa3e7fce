// Package pttrace wraps the OpenTelemetry tracing types used in this module,
// so that callers only need to reference one package.
package pttrace

import (
	otelattr "go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	otpnoop "go.opentelemetry.io/otel/trace/noop"
)

type TracerProvider = oteltrace.TracerProvider

type Tracer = oteltrace.Tracer

type Span = oteltrace.Span

type KeyValueAttr = otelattr.KeyValue

// TracerName is the instrumentation name for tracers created in this module.
const TracerName = "github.com/gordian-engine/prooftree"

// NopTracerProvider returns the otel no-op tracer provider.
// This is intended to use as a fallback when a nil tracer provider is given.
func NopTracerProvider() TracerProvider {
	return otpnoop.NewTracerProvider()
}

// TracerFrom returns the module's tracer from tp,
// falling back to a no-op tracer when tp is nil.
func TracerFrom(tp TracerProvider) Tracer {
	if tp == nil {
		tp = NopTracerProvider()
	}
	return tp.Tracer(TracerName)
}

// WithAttributes is an alias to [oteltrace.WithAttributes]
// to allow consumers to only reference the pttrace package.
func WithAttributes(attrs ...KeyValueAttr) oteltrace.SpanStartEventOption {
	return oteltrace.WithAttributes(attrs...)
}

// SpanError sets the given span to error status,
// with detail from err.Error().
func SpanError(span Span, err error) {
	span.SetStatus(otelcodes.Error, err.Error())
}

func LeafCountAttr(n int) KeyValueAttr {
	return otelattr.Int("prooftree.leaves", n)
}

func RedactedCountAttr(n uint) KeyValueAttr {
	return otelattr.Int("prooftree.redacted", int(n))
}

func RootAttr(root string) KeyValueAttr {
	return otelattr.String("prooftree.root", root)
}

func ExpectedRootAttr(root string) KeyValueAttr {
	return otelattr.String("prooftree.expected_root", root)
}

func ValidAttr(ok bool) KeyValueAttr {
	return otelattr.Bool("prooftree.valid", ok)
}
