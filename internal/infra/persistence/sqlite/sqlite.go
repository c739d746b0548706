// Package sqlite provides the embedded SQLite backend of the entity store.
package sqlite

import (
	"context"
	"log/slog"
	"strings"

	"roster/config"
	"roster/internal/errors"
	"roster/internal/infra/persistence/gormlog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const memoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database file configured under storage.sqlite.path.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(DSN(params.Config.Storage.SQLite.Path), params.Logger, params.Config.Env.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// DSN builds a go-sqlite3 data source name with foreign keys enforced.
func DSN(path string) string {
	path = strings.TrimSpace(path)
	if path == memoryPath {
		return "file::memory:?cache=shared&_foreign_keys=on"
	}

	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// Open connects to dsn. The pool is limited to a single connection so that
// in-memory databases are shared and writers never contend.
func Open(dsn string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlog.New(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
