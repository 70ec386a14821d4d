package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ogurasousui/garage-registry/internal/platform/config"
	pg "github.com/ogurasousui/garage-registry/internal/platform/db/postgres"
	"github.com/ogurasousui/garage-registry/internal/platform/logging"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		migrationsDir = flag.String("dir", "assets/migrations", "directory containing migration files")
	)
	flag.Parse()

	action := pg.MigrateUp
	if flag.NArg() > 0 {
		action = pg.MigrationAction(flag.Arg(0))
	}

	_ = godotenv.Load()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Storage.Driver != config.StorageDriverPostgres {
		logger.Fatal("migrations require storage.driver=postgres", zap.String("driver", cfg.Storage.Driver))
	}

	result, err := pg.Migrate(action, *migrationsDir, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("migration failed", zap.String("action", string(action)), zap.Error(err))
	}

	if !result.Applied {
		logger.Info("no migration applied", zap.String("action", string(action)))
		return
	}
	logger.Info("migration completed",
		zap.String("action", string(action)),
		zap.Uint("version", result.Version),
		zap.Bool("dirty", result.Dirty),
	)
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}
