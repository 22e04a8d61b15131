package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jt828/storefront-telemetry/internal/bootstrap"
	"github.com/jt828/storefront-telemetry/internal/config"
	"github.com/jt828/storefront-telemetry/internal/controller"
	"github.com/jt828/storefront-telemetry/internal/interceptor"
	"github.com/jt828/storefront-telemetry/internal/repository"
	"github.com/jt828/storefront-telemetry/internal/service"
	"github.com/jt828/storefront-telemetry/pkg/circuitbreaker"
	"github.com/jt828/storefront-telemetry/pkg/observability"
	"github.com/jt828/storefront-telemetry/pkg/observability/implementation"
	snowflakeImpl "github.com/jt828/storefront-telemetry/pkg/snowflake/implementation"
	v1 "github.com/jt828/storefront-telemetry/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	obs, err := implementation.NewObservability(implementation.Config{
		ServiceName:       cfg.ServiceName,
		MetricsAddr:       cfg.MetricsAddr,
		OTLPEndpoint:      cfg.OTLP.Endpoint,
		HistogramCapacity: cfg.Telemetry.HistogramCapacity,
		EventCapacity:     cfg.Telemetry.EventCapacity,
	})
	if err != nil {
		panic(err)
	}
	log := obs.Logger()
	engine := obs.Telemetry()
	reg := implementation.PromRegistry(obs)
	if reg == nil {
		log.Fatal("prometheus registry not available")
	}

	grpcMetrics := grpc_prometheus.NewServerMetrics()
	reg.MustRegister(grpcMetrics)

	idGen, err := bootstrap.InitializeSnowflake()
	if err != nil {
		log.Warn("falling back to snowflake node 0", observability.Err(err))
		idGen, err = snowflakeImpl.NewSnowflake(0)
		if err != nil {
			log.Fatal("failed to initialize snowflake", observability.Err(err))
		}
	}

	var (
		uowFactory repository.UnitOfWorkFactory
		pinger     bootstrap.Pinger
		breaker    circuitbreaker.CircuitBreaker
	)
	if cfg.Database.DSN == "" {
		log.Info("no business store configured, reports use in-memory figures")
	} else {
		dbs, err := bootstrap.InitializeDatabase(bootstrap.DatabaseConfig{
			DSN:             cfg.Database.DSN,
			BreakerFailures: cfg.Database.BreakerFailures,
			BreakerTimeout:  cfg.Database.BreakerOpenDuration,
		}, engine)
		if err != nil {
			log.Fatal("failed to initialize database", observability.Err(err))
		}
		sqlDB, err := dbs.DB.DB()
		if err != nil {
			log.Fatal("failed to get sql db", observability.Err(err))
		}
		uowFactory = dbs.UnitOfWorkFactory
		pinger = sqlDB
		breaker = dbs.CircuitBreaker
	}

	businessSvc := service.NewBusinessMetricsService(engine, uowFactory, log, obs.Tracer(), cfg.Database.QueryTimeout)

	httpCtrl := controller.NewHTTPController(engine, businessSvc, log)
	for pattern, handler := range httpCtrl.Routes() {
		obs.Handle(pattern, interceptor.HTTPMetrics(engine, pattern, handler))
	}

	if err := obs.Start(ctx); err != nil {
		log.Error("failed to start observability", observability.Err(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		log.Info("Shutting down server...")
		cancel()
	}()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("failed to listen", observability.Err(err), observability.String("addr", cfg.GRPCAddr))
	}

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcMetrics.UnaryServerInterceptor(),
			interceptor.MetricsInterceptor(engine),
			interceptor.ErrorInterceptor(log, engine, idGen),
		),
		grpc.StreamInterceptor(grpcMetrics.StreamServerInterceptor()),
	)

	v1.RegisterTelemetryServiceServer(server, controller.NewTelemetryController(engine, businessSvc))

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	probe := bootstrap.NewHealthProbe(pinger, breaker, engine, healthServer, cfg.Database.QueryTimeout)
	go probe.Run(ctx, cfg.Database.HealthInterval)

	grpcMetrics.InitializeMetrics(server)

	go func() {
		log.Info("gRPC server running", observability.String("addr", cfg.GRPCAddr))
		if err := server.Serve(lis); err != nil {
			log.Fatal("failed to serve", observability.Err(err))
		}
	}()

	<-ctx.Done()
	log.Info("Graceful stopping gRPC server...")
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	server.GracefulStop()
	log.Info("gRPC server stopped")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := obs.Close(shutdownCtx); err != nil {
		log.Error("failed to close observability", observability.Err(err))
	}
}
