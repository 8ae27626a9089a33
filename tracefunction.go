package primebench

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/serverless-bench/primebench"

type traceFunction struct {
	Function
	Name   string
	Tracer trace.Tracer
}

func (f *traceFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	ctx, span := f.Tracer.Start(ctx, f.Name, trace.WithAttributes(attribute.String("faas.name", f.Name)))
	defer span.End()
	out, err := f.Function.Invoke(ctx, b)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

// traceFetcher wraps the function in a decorator that records a span for
// each invocation. The global tracer provider is used when Tracer is nil.
type traceFetcher struct {
	Tracer  trace.Tracer
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds tracing.
func (f *traceFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	tracer := f.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &traceFunction{Name: name, Tracer: tracer, Function: r}, nil
}
