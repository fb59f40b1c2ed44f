package middleware

import (
	"context"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/mmynk/gymparty/internal/middleware"

type tracingInterceptor struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// TracingInterceptor starts a server span per handled RPC, continuing any
// trace carried in the request headers. With the global no-op provider the
// spans cost nothing.
func TracingInterceptor() connect.Interceptor {
	return &tracingInterceptor{
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}
}

func (i *tracingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		ctx = i.propagator.Extract(ctx, propagation.HeaderCarrier(req.Header()))
		ctx, span := i.start(ctx, req.Spec().Procedure, req.Peer().Addr)
		defer span.End()

		resp, err := next(ctx, req)
		finish(span, err)
		return resp, err
	}
}

func (i *tracingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *tracingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		ctx = i.propagator.Extract(ctx, propagation.HeaderCarrier(conn.RequestHeader()))
		ctx, span := i.start(ctx, conn.Spec().Procedure, conn.Peer().Addr)
		defer span.End()

		err := next(ctx, conn)
		finish(span, err)
		return err
	}
}

func (i *tracingInterceptor) start(ctx context.Context, procedure, peer string) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, procedure,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.system", "connect_rpc"),
			attribute.String("rpc.method", procedure),
			attribute.String("net.peer.addr", peer),
		),
	)
}

func finish(span trace.Span, err error) {
	span.SetAttributes(attribute.String("rpc.connect_rpc.error_code", codeOf(err)))
	if err != nil && connect.CodeOf(err) == connect.CodeInternal {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// traceID returns the ID of the span in ctx, or "" without a sampled span.
func traceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
