package interceptors

import (
	"context"
	"log/slog"
	"time"

	"tracker-grpc/internal/contextkeys"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		requestID := uuid.NewString()

		log := logger.With(
			slog.String("method", info.FullMethod),
			slog.String("request_id", requestID),
		)

		ctx = contextkeys.WithLogger(ctx, log)
		ctx = contextkeys.WithRequestID(ctx, requestID)

		log.Info("request started")

		resp, err := handler(ctx, req)

		duration := time.Since(start)
		statusCode := status.Code(err)

		attributes := []any{
			slog.Duration("duration", duration),
			slog.String("status", statusCode.String()),
		}

		if err != nil {
			attributes = append(attributes, slog.String("error", err.Error()))
			log.Error("request failed", attributes...)
		} else {
			log.Info("request completed", attributes...)
		}

		return resp, err
	}
}

func LoggingStreamInterceptor(logger *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		requestID := uuid.NewString()

		log := logger.With(
			slog.String("method", info.FullMethod),
			slog.String("request_id", requestID),
		)

		ctx := contextkeys.WithLogger(ss.Context(), log)
		ctx = contextkeys.WithRequestID(ctx, requestID)

		log.Info("stream started")

		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		attributes := []any{
			slog.Duration("duration", time.Since(start)),
			slog.String("status", status.Code(err).String()),
		}

		if err != nil {
			attributes = append(attributes, slog.String("error", err.Error()))
			log.Error("stream failed", attributes...)
		} else {
			log.Info("stream closed", attributes...)
		}

		return err
	}
}
