package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ogurasousui/garage-registry/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "user",
		Password:        "pass",
		Name:            "registry",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg, nil)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}
	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}
	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}
	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}
	if poolCfg.ConnConfig.Database != "registry" {
		t.Errorf("expected database registry, got %s", poolCfg.ConnConfig.Database)
	}
	if poolCfg.ConnConfig.Tracer != nil {
		t.Errorf("expected no tracer without logger")
	}
}

func TestBuildPoolConfig_WithLoggerInstallsTracer(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "db", SSLMode: "disable",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if _, ok := poolCfg.ConnConfig.Tracer.(*tracelog.TraceLog); !ok {
		t.Fatalf("expected tracelog tracer, got %T", poolCfg.ConnConfig.Tracer)
	}
}

func TestZapTraceLogger_MapsLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	log := zapTraceLogger(zap.New(core))

	log(context.Background(), tracelog.LogLevelError, "query failed", map[string]any{"sql": "SELECT 1"})
	log(context.Background(), tracelog.LogLevelWarn, "slow", nil)
	log(context.Background(), tracelog.LogLevelTrace, "trace", nil)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[0].ContextMap()["sql"] != "SELECT 1" {
		t.Errorf("unexpected error entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("expected warn, got %s", entries[1].Level)
	}
	if entries[2].Level != zapcore.DebugLevel {
		t.Errorf("expected debug, got %s", entries[2].Level)
	}
}

func TestMigrationURL(t *testing.T) {
	t.Parallel()

	if got := migrationURL("postgres://u:p@h:5432/db?sslmode=disable"); got != "pgx5://u:p@h:5432/db?sslmode=disable" {
		t.Fatalf("unexpected migration url: %s", got)
	}
	if got := migrationURL("pgx5://already"); got != "pgx5://already" {
		t.Fatalf("unexpected passthrough: %s", got)
	}
}

func TestMigrate_UnsupportedAction(t *testing.T) {
	t.Parallel()

	if _, err := Migrate(MigrationAction("sideways"), t.TempDir(), "pgx5://u:p@127.0.0.1:1/db"); err == nil {
		t.Fatalf("expected error")
	}
}
