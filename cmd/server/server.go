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

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/clients/external"
	"github.com/KirkDiggler/ba-raid-api/internal/config"
	"github.com/KirkDiggler/ba-raid-api/internal/engine"
	"github.com/KirkDiggler/ba-raid-api/internal/handlers/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/raid"
	"github.com/KirkDiggler/ba-raid-api/internal/orchestrators/video"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/clock"
	"github.com/KirkDiggler/ba-raid-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ba-raid-api/internal/redis"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
	videoanalysis "github.com/KirkDiggler/ba-raid-api/internal/repositories/video_analysis"
)

var (
	grpcPort  int
	redisAddr string
	feedURL   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the raid API gRPC server. Flags override values from the config file.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", config.DefaultPort, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis", config.DefaultRedisAddress, "Redis address")
	serverCmd.Flags().StringVar(&feedURL, "feed-url", "", "Base URL of the party data feed")
}

// loadConfig reads the config file and applies any flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if flags.Lookup("redis") != nil && flags.Changed("redis") {
		cfg.Redis.Address = redisAddr
	}
	if flags.Lookup("feed-url") != nil && flags.Changed("feed-url") {
		cfg.Feed.BaseURL = feedURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newFeedClient builds the cached upstream feed client
func newFeedClient(cfg *config.Config) (external.Client, error) {
	return external.New(&external.Config{
		BaseURL:     cfg.Feed.BaseURL,
		HTTPTimeout: cfg.Feed.Timeout,
		CacheTTL:    cfg.Feed.CacheTTL,
	})
}

// buildHandler wires repositories, orchestrators and the gRPC handler
func buildHandler(cfg *config.Config, redisClient redisclient.Client) (*v1alpha1.Handler, error) {
	clk := clock.New()

	feedClient, err := newFeedClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed client: %w", err)
	}

	eng, err := engine.New(&engine.Config{Thresholds: cfg.Thresholds})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	stateRepo, err := filterstate.NewRedisRepository(&filterstate.Config{
		Client: redisClient,
		Clock:  clk,
		TTL:    cfg.FilterState.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create filter state repository: %w", err)
	}

	videoRepo, err := videoanalysis.NewRedisRepository(&videoanalysis.Config{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create video analysis repository: %w", err)
	}

	raidService, err := raid.NewOrchestrator(&raid.Config{
		ExternalClient:    feedClient,
		Engine:            eng,
		FilterStateRepo:   stateRepo,
		VideoAnalysisRepo: videoRepo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create raid orchestrator: %w", err)
	}

	videoService, err := video.NewOrchestrator(&video.Config{
		Repository:  videoRepo,
		IDGenerator: idgen.NewTimeOrdered(video.IDPrefix),
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create video orchestrator: %w", err)
	}

	return v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RaidService:  raidService,
		VideoService: videoService,
	})
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(os.Stderr, cfg.Log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.Redis.Address, &redisclient.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.TLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.Redis.Address, err)
	}

	raidHandler, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
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

	raidv1alpha1.RegisterRaidServiceServer(srv, raidHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(raidv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Server.Port,
			"feed", cfg.Feed.BaseURL,
			"redis", cfg.Redis.Address)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
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
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}
