package controller

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/jt828/storefront-telemetry/internal/interceptor"
	observabilityImpl "github.com/jt828/storefront-telemetry/pkg/observability/implementation"
	"github.com/jt828/storefront-telemetry/pkg/telemetry"
	telemetryImpl "github.com/jt828/storefront-telemetry/pkg/telemetry/implementation"
	v1 "github.com/jt828/storefront-telemetry/proto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// --- mocks ---

type mockSnowflake struct{}

func (m *mockSnowflake) Generate() int64 { return 1 }

type mockBusinessMetricsService struct {
	getFunc func(ctx context.Context) telemetry.BusinessMetrics
}

func (m *mockBusinessMetricsService) GetBusinessMetrics(ctx context.Context) telemetry.BusinessMetrics {
	return m.getFunc(ctx)
}

// --- helpers ---

func setupTelemetryServer(t *testing.T, engine telemetry.Engine, business *mockBusinessMetricsService) v1.TelemetryServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptor.MetricsInterceptor(engine),
		interceptor.ErrorInterceptor(observabilityImpl.NewNopLogger(), engine, &mockSnowflake{}),
	))
	v1.RegisterTelemetryServiceServer(srv, NewTelemetryController(engine, business))
	t.Cleanup(srv.GracefulStop)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1.NewTelemetryServiceClient(conn)
}

func seriesRequest(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

// --- tests ---

func TestTelemetryController(t *testing.T) {
	ctx := context.Background()
	engine := telemetryImpl.NewEngine()
	engine.IncrementCounter("orders_total", 2, telemetry.Labels{"status": "success"})
	engine.SetGauge("queue_depth", 7, nil)
	engine.Observe("checkout_seconds", 1, telemetry.Labels{"region": "eu"})
	engine.Observe("checkout_seconds", 3, telemetry.Labels{"region": "us"})
	engine.RecordEvent("orders_total", nil)

	business := &mockBusinessMetricsService{
		getFunc: func(ctx context.Context) telemetry.BusinessMetrics {
			return telemetry.BusinessMetrics{
				Orders: telemetry.OrderMetrics{Total: 6, Revenue: decimal.RequireFromString("35.50")},
				Source: telemetry.SourceStore,
			}
		},
	}
	client := setupTelemetryServer(t, engine, business)

	t.Run("GetCounter returns the labelled value", func(t *testing.T) {
		resp, err := client.GetCounter(ctx, seriesRequest(t, map[string]any{
			"name":   "orders_total",
			"labels": map[string]any{"status": "success"},
		}))

		require.NoError(t, err)
		assert.Equal(t, 2.0, resp.GetValue())
	})

	t.Run("GetCounter of an unknown series is zero", func(t *testing.T) {
		resp, err := client.GetCounter(ctx, seriesRequest(t, map[string]any{"name": "missing"}))

		require.NoError(t, err)
		assert.Zero(t, resp.GetValue())
	})

	t.Run("GetGauge without labels", func(t *testing.T) {
		resp, err := client.GetGauge(ctx, seriesRequest(t, map[string]any{"name": "queue_depth"}))

		require.NoError(t, err)
		assert.Equal(t, 7.0, resp.GetValue())
	})

	t.Run("GetHistogramStats without labels aggregates every series", func(t *testing.T) {
		resp, err := client.GetHistogramStats(ctx, seriesRequest(t, map[string]any{"name": "checkout_seconds"}))

		require.NoError(t, err)
		assert.Equal(t, 2.0, resp.GetFields()["count"].GetNumberValue())
		assert.Equal(t, 2.0, resp.GetFields()["avg"].GetNumberValue())
		assert.Equal(t, 3.0, resp.GetFields()["max"].GetNumberValue())
	})

	t.Run("GetRate over a minute", func(t *testing.T) {
		resp, err := client.GetRate(ctx, seriesRequest(t, map[string]any{
			"name":           "orders_total",
			"window_seconds": 60,
		}))

		require.NoError(t, err)
		assert.InDelta(t, 1.0/60, resp.GetValue(), 1e-9)
	})

	t.Run("GetAllMetrics returns the snapshot", func(t *testing.T) {
		resp, err := client.GetAllMetrics(ctx, &emptypb.Empty{})

		require.NoError(t, err)
		counters := resp.GetFields()["counters"].GetStructValue().GetFields()
		assert.Equal(t, 2.0, counters["orders_total{status=success}"].GetNumberValue())
		histograms := resp.GetFields()["histograms"].GetStructValue().GetFields()
		assert.Contains(t, histograms, "checkout_seconds")
	})

	t.Run("GetBusinessMetrics returns the report", func(t *testing.T) {
		resp, err := client.GetBusinessMetrics(ctx, &emptypb.Empty{})

		require.NoError(t, err)
		assert.Equal(t, "store", resp.GetFields()["source"].GetStringValue())
		orders := resp.GetFields()["orders"].GetStructValue().GetFields()
		assert.Equal(t, 6.0, orders["total"].GetNumberValue())
		assert.Equal(t, "35.5", orders["revenue"].GetStringValue())
	})

	t.Run("invalid requests map to codes.InvalidArgument", func(t *testing.T) {
		cases := map[string]*structpb.Struct{
			"missing name":       seriesRequest(t, map[string]any{}),
			"labels not object":  seriesRequest(t, map[string]any{"name": "x", "labels": "status=ok"}),
			"label not a string": seriesRequest(t, map[string]any{"name": "x", "labels": map[string]any{"code": 500}}),
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := client.GetCounter(ctx, req)

				require.Error(t, err)
				st, ok := status.FromError(err)
				require.True(t, ok)
				assert.Equal(t, codes.InvalidArgument, st.Code())
			})
		}
	})

	t.Run("GetRate requires a positive window", func(t *testing.T) {
		_, err := client.GetRate(ctx, seriesRequest(t, map[string]any{"name": "orders_total"}))

		require.Error(t, err)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("calls are timed by the metrics interceptor", func(t *testing.T) {
		stats := engine.HistogramStats("http_request_duration_seconds", telemetry.Labels{
			"endpoint": v1.TelemetryService_GetGauge_FullMethodName,
			"status":   "success",
		})
		assert.GreaterOrEqual(t, stats.Count, 1)
		assert.Less(t, stats.Max, (10 * time.Second).Seconds())
	})
}
