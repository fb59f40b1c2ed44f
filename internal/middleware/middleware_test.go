package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mmynk/gymparty/internal/auth"
	"github.com/mmynk/gymparty/internal/metrics"
	"github.com/mmynk/gymparty/internal/models"
)

type empty struct{}

func okHandler(seen *context.Context) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if seen != nil {
			*seen = ctx
		}
		return connect.NewResponse(&empty{}), nil
	}
}

func TestAuthInterceptor(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-secret", time.Hour)
	token, _, err := jwtManager.Generate(&models.User{ID: "user-1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tests := []struct {
		name     string
		optional bool
		header   string
		wantCode connect.Code
		wantUser string
	}{
		{name: "valid token", header: "Bearer " + token, wantUser: "user-1"},
		{name: "missing header", wantCode: connect.CodeUnauthenticated},
		{name: "wrong scheme", header: "Basic " + token, wantCode: connect.CodeUnauthenticated},
		{name: "garbage token", header: "Bearer nope", wantCode: connect.CodeUnauthenticated},
		{name: "optional without header", optional: true},
		{name: "optional with garbage", optional: true, header: "Bearer nope"},
		{name: "optional with token", optional: true, header: "Bearer " + token, wantUser: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor := RequireAuth(jwtManager)
			if tt.optional {
				interceptor = OptionalAuth(jwtManager)
			}

			req := connect.NewRequest(&empty{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			var seen context.Context
			_, err := interceptor.WrapUnary(okHandler(&seen))(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("expected %v, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := GetUserID(seen); got != tt.wantUser {
				t.Errorf("expected user %q, got %q", tt.wantUser, got)
			}
			if tt.wantUser != "" && GetEmail(seen) != "user@example.com" {
				t.Errorf("expected email in context, got %q", GetEmail(seen))
			}
		})
	}
}

func TestTracingInterceptor(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	interceptor := TracingInterceptor()
	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInternal, errors.New("boom"))
	}

	if _, err := interceptor.WrapUnary(okHandler(nil))(context.Background(), connect.NewRequest(&empty{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := interceptor.WrapUnary(failing)(context.Background(), connect.NewRequest(&empty{})); err == nil {
		t.Fatal("expected error")
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Status().Code.String() != "Unset" {
		t.Errorf("expected unset status on success, got %v", spans[0].Status().Code)
	}
	if spans[1].Status().Code.String() != "Error" {
		t.Errorf("expected error status on internal failure, got %v", spans[1].Status().Code)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	interceptor := MetricsInterceptor(metrics.New(reg))

	if _, err := interceptor.WrapUnary(okHandler(nil))(context.Background(), connect.NewRequest(&empty{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "gymparty_rpc_requests_total" {
			found = true
			if got := family.GetMetric()[0].GetCounter().GetValue(); got != 1 {
				t.Errorf("expected 1 request, got %v", got)
			}
		}
	}
	if !found {
		t.Error("expected gymparty_rpc_requests_total to be exported")
	}
}
