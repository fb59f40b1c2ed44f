package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// loggingInterceptor logs every RPC call with its procedure name, user ID,
// duration, and any error codes/messages.
type loggingInterceptor struct{}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// Place it after the auth interceptor so the user ID is known.
func LoggingInterceptor() connect.Interceptor {
	return loggingInterceptor{}
}

func (loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logRPC(ctx, req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		slog.Debug("Stream opened", "procedure", conn.Spec().Procedure, "user_id", GetUserID(ctx))
		err := next(ctx, conn)
		logRPC(ctx, conn.Spec().Procedure, start, err)
		return err
	}
}

func logRPC(ctx context.Context, procedure string, start time.Time, err error) {
	userID := GetUserID(ctx) // empty if pre-auth
	duration := time.Since(start).Milliseconds()
	logger := slog.Default()
	if id := traceID(ctx); id != "" {
		logger = logger.With("trace_id", id)
	}

	if err == nil {
		logger.Info("RPC ok",
			"procedure", procedure,
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
		logger.Warn("RPC error",
			"procedure", procedure,
			"code", connectErr.Code(),
			"error", connectErr.Message(),
			"user_id", userID,
			"duration_ms", duration,
		)
		return
	}
	logger.Error("RPC error",
		"procedure", procedure,
		"error", err,
		"user_id", userID,
		"duration_ms", duration,
	)
}
