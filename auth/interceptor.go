package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the identity injected by the interceptors.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// UnaryInterceptor validates the bearer token of every unary call and
// injects the resolved user id into the handler context.
func (s TokenService) UnaryInterceptor(ctx context.Context, req any,
	_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	userID, err := s.identify(ctx)
	if err != nil {
		return nil, err
	}
	return handler(context.WithValue(ctx, userIDKey, userID), req)
}

// StreamInterceptor does the same for streaming calls; an invalid
// token terminates the stream before the handler runs.
func (s TokenService) StreamInterceptor(srv any, ss grpc.ServerStream,
	_ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	userID, err := s.identify(ss.Context())
	if err != nil {
		return err
	}
	wrapped := &identifiedStream{ServerStream: ss, ctx: context.WithValue(ss.Context(), userIDKey, userID)}
	return handler(srv, wrapped)
}

func (s TokenService) identify(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is missing")
	}
	tokenStr := strings.TrimPrefix(values[0], "Bearer ")

	userID, err := s.Identify(tokenStr)
	if err != nil {
		return "", status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return userID, nil
}

type identifiedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *identifiedStream) Context() context.Context {
	return s.ctx
}
