package interceptor

import (
	"context"

	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"google.golang.org/grpc"
)

// MetricsInterceptor times every unary call under its full method name.
func MetricsInterceptor(producer telemetry.Producer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		err = telemetry.Track(producer, info.FullMethod, func() error {
			var herr error
			resp, herr = handler(ctx, req)
			return herr
		})
		return resp, err
	}
}
