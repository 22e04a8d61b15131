package interceptor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jt828/storefront-telemetry/internal/constant"
	"github.com/jt828/storefront-telemetry/pkg/apperror"
	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/snowflake"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorInterceptor maps domain errors to gRPC status codes and counts them by
// class. Server-side failures are logged under a generated incident id that is
// also returned to the caller.
func ErrorInterceptor(log observability.Logger, producer telemetry.Producer, idGen snowflake.Snowflake) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				incident := idGen.Generate()
				log.Error("panic recovered",
					observability.String("panic", fmt.Sprintf("%v", r)),
					observability.String("method", info.FullMethod),
					observability.Int64("incident_id", incident),
				)
				recordError(producer, constant.ErrorClassServer)
				err = internalError(incident)
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch {
		case errors.Is(err, apperror.ErrNotFound):
			recordError(producer, constant.ErrorClassClient)
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, apperror.ErrInvalidArgument):
			recordError(producer, constant.ErrorClassClient)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			incident := idGen.Generate()
			log.Error("unhandled error",
				observability.Err(err),
				observability.String("method", info.FullMethod),
				observability.Int64("incident_id", incident),
			)
			recordError(producer, constant.ErrorClassServer)
			return nil, internalError(incident)
		}
	}
}

func recordError(producer telemetry.Producer, class string) {
	producer.IncrementCounter(constant.HTTPErrors, 1, telemetry.Labels{constant.LabelType: class})
	producer.RecordEvent(constant.ErrorsTotal, nil)
}

func internalError(incident int64) error {
	return status.Errorf(codes.Internal, "internal server error (incident %d)", incident)
}
