package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/codedestate/go-rental-ledger/pkg/auth"
)

type callerKey struct{}

// CallerFromContext 取出認證層寫入的呼叫者地址
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerKey{}).(string)
	return caller, ok
}

// AuthInterceptor 驗證 metadata 中的 Bearer token，並將呼叫者地址寫入 context。
// 業務層一律以驗證後的地址為準，不信任請求本文內的任何地址欄位。
func AuthInterceptor(manager *auth.Manager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization token required")
		}

		// 預期格式: "Bearer <token>"
		parts := strings.SplitN(values[0], " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header format")
		}

		address, err := manager.Verify(parts[1])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(context.WithValue(ctx, callerKey{}, address), req)
	}
}
