package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/logistics-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
	"github.com/KirkDiggler/logistics-api/internal/orchestrators/routing"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
	"github.com/KirkDiggler/logistics-api/internal/pkg/idgen"
	"github.com/KirkDiggler/logistics-api/internal/redis"
	"github.com/KirkDiggler/logistics-api/internal/repositories/containers"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

var (
	grpcPort    int
	fixturePath string
	redisAddr   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the planner gRPC server over the containers described by a fixture file.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&fixturePath, "fixture", "", "YAML file describing the containers")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", os.Getenv("REDIS_ADDR"),
		"Redis address for node counts; counts are kept in memory when empty")
	_ = serverCmd.MarkFlagRequired("fixture")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	containerRepo, err := loadContainers(ctx, fixturePath)
	if err != nil {
		return err
	}

	countsRepo, closeCounts, err := newCountsRepository(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer closeCounts()

	routingService, err := routing.NewOrchestrator(&routing.Config{
		ContainerRepo: containerRepo,
		CountsRepo:    countsRepo,
		IDGenerator:   idgen.NewUUID("plan"),
	})
	if err != nil {
		return fmt.Errorf("failed to create routing orchestrator: %w", err)
	}

	plannerHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RoutingService: routingService,
	})
	if err != nil {
		return fmt.Errorf("failed to create planner handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterPlannerServiceServer(srv, plannerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.PlannerServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func loadContainers(ctx context.Context, path string) (containers.Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	named, err := inventory.LoadFixture(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixture %s: %w", path, err)
	}

	repo, err := containers.FromFixture(ctx, named)
	if err != nil {
		return nil, fmt.Errorf("failed to register containers: %w", err)
	}

	slog.Info("Containers loaded", "fixture", path, "count", len(named))
	return repo, nil
}

func newCountsRepository(ctx context.Context, addr string) (countsrepo.Repository, func(), error) {
	if addr == "" {
		slog.Warn("No Redis address configured, node counts will not survive a restart")
		return countsrepo.NewInMemoryRepository(clock.New()), func() {}, nil
	}

	client, err := redis.Connect(ctx, addr, &redis.Options{PoolSize: 10, MaxRetries: 3})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	repo, err := countsrepo.NewRedisRepository(&countsrepo.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create counts repository: %w", err)
	}

	slog.Info("Node counts stored in Redis", "addr", addr)
	return repo, func() {
		_ = client.Close()
	}, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
