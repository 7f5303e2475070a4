package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/rscript/internal/adapters/telemetry"
)

func TestOTelTracer_Start(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, span := tracer.Start(context.Background(), "plan")
	require.NotNil(t, ctx)
	span.SetAttribute("run_id", "abc")
	span.SetAttribute("deps", 2)
	span.SetAttribute("cached", true)
	span.SetAttribute("prelude", []string{"#![feature(x)]"})
	span.SetAttribute("age", struct{ N int }{N: 3})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "plan", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "abc", attrs["run_id"].AsString())
	assert.Equal(t, int64(2), attrs["deps"].AsInt64())
	assert.True(t, attrs["cached"].AsBool())
	assert.Equal(t, []string{"#![feature(x)]"}, attrs["prelude"].AsStringSlice())
	assert.Equal(t, "{3}", attrs["age"].AsString())
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, root := tracer.Start(context.Background(), "run")
	_, child := tracer.Start(ctx, "materialize")
	child.End()
	root.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "materialize", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestOTelSpan_RecordError(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer("test-tracer", sr)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "invoke")
	span.RecordError(errors.New("boom"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
