package interceptors

import (
	"context"
	"log/slog"

	"tracker-grpc/internal/contextkeys"
	"tracker-grpc/internal/token"
	"tracker-grpc/pkg/logging"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authenticate resolves the caller's token claims into the context. A
// missing authorization header is not an error: the watch and list feeds
// serve anonymous viewers, and mutations reject anonymity themselves. An
// invalid token is rejected outright.
func authenticate(ctx context.Context, secret string, log *slog.Logger) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx, nil
	}

	authHeaders := md.Get("authorization")
	if len(authHeaders) == 0 {
		return ctx, nil
	}

	claims, err := token.Decode(authHeaders[0], secret)
	if err != nil {
		log.Error("token decode error", logging.Err(err))
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = contextkeys.WithTokenClaims(ctx, &contextkeys.TokenClaims{
		UserId:   claims.UserId,
		Email:    claims.Email,
		Username: claims.Username,
	})

	log = contextkeys.GetLogger(ctx).With(slog.Int64("user_id", claims.UserId))
	ctx = contextkeys.WithLogger(ctx, log)

	return ctx, nil
}

func AuthUnaryInterceptor(secret string, log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, err := authenticate(ctx, secret, log.With(slog.String("interceptor", "auth")))
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func AuthStreamInterceptor(secret string, log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), secret, log.With(slog.String("interceptor", "auth")))
		if err != nil {
			return err
		}
		return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
	}
}

type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context {
	return w.ctx
}
