package postgres

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationAction はマイグレーション操作の種類です。
type MigrationAction string

const (
	MigrateUp      MigrationAction = "up"
	MigrateDown    MigrationAction = "down"
	MigrateDrop    MigrationAction = "drop"
	MigrateVersion MigrationAction = "version"
)

// MigrationResult は操作後のスキーマバージョンです。Version が 0 かつ Applied が false の場合は未適用です。
type MigrationResult struct {
	Version uint
	Dirty   bool
	Applied bool
}

// Migrate は dir 内のマイグレーションを dsn のデータベースへ適用します。
func Migrate(action MigrationAction, dir, dsn string) (MigrationResult, error) {
	switch action {
	case MigrateUp, MigrateDown, MigrateDrop, MigrateVersion:
	default:
		return MigrationResult{}, fmt.Errorf("unsupported action %q", action)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("resolve path for %s: %w", dir, err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absDir), migrationURL(dsn))
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case MigrateUp:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return MigrationResult{}, err
		}
	case MigrateDown:
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return MigrationResult{}, err
		}
	case MigrateDrop:
		if err := m.Drop(); err != nil {
			return MigrationResult{}, err
		}
		return MigrationResult{}, nil
	}

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return MigrationResult{}, nil
		}
		return MigrationResult{}, err
	}
	return MigrationResult{Version: version, Dirty: dirty, Applied: true}, nil
}

// migrationURL は pgx/v5 ドライバ用に DSN のスキームを置き換えます。
func migrationURL(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "pgx5://" + rest
	}
	return dsn
}
