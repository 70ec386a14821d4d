package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	rediscache "github.com/ogurasousui/garage-registry/internal/adapters/cache/redis"
	"github.com/ogurasousui/garage-registry/internal/adapters/grpc/handler"
	"github.com/ogurasousui/garage-registry/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/garage-registry/internal/adapters/repository/memory"
	"github.com/ogurasousui/garage-registry/internal/adapters/repository/postgres"
	"github.com/ogurasousui/garage-registry/internal/core/employee"
	"github.com/ogurasousui/garage-registry/internal/platform/config"
	pg "github.com/ogurasousui/garage-registry/internal/platform/db/postgres"
	"github.com/ogurasousui/garage-registry/internal/platform/logging"
	"github.com/ogurasousui/garage-registry/internal/platform/metrics"
	"github.com/ogurasousui/garage-registry/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env は任意。存在しない場合は環境変数のみを使う。
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	repo, tx, cleanup, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Cache.Enabled {
		client, err := rediscache.NewClient(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		repo = rediscache.NewEmployeeCache(repo, client, cfg.Cache.TTL, logger.Named("cache"))
		logger.Info("employee cache enabled", zap.String("addr", cfg.Cache.Addr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	m := metrics.New()
	svc := employee.NewService(repo, nil, tx)

	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewEmployeeGrpcHandler(svc, m),
		interceptor.Chain(logger, m),
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", cfg.Server.ListenAddr), zap.String("storage", cfg.Storage.Driver))
		return grpcServer.Run(ctx)
	})

	if cfg.Metrics.ListenAddr != "" {
		httpServer := server.NewHTTPServer(cfg.Metrics.ListenAddr, server.NewOpsRouter(m.Handler()))
		g.Go(func() error {
			logger.Info("ops HTTP server listening", zap.String("addr", cfg.Metrics.ListenAddr))
			return server.RunHTTP(ctx, httpServer)
		})
	}

	return g.Wait()
}

func buildStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (employee.Repository, employee.TransactionManager, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		dbPool, err := pg.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewEmployeeRepository(dbPool), pg.NewTransactionManager(dbPool), dbPool.Close, nil
	default:
		return memory.NewEmployeeRepository(), memory.NewTransactionManager(), func() {}, nil
	}
}
