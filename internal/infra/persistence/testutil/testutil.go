// Package testutil opens throwaway entity stores for repository tests.
//
// Tests run against a fresh in-memory SQLite database. Setting
// TEST_POSTGRES_DSN runs them against PostgreSQL instead; the tables are
// truncated before each test, so such tests must not run in parallel.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"
	"roster/internal/infra/persistence/postgres"
	"roster/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Store is an opened and migrated test database.
type Store struct {
	DB         *gorm.DB
	Classifier repository.ConstraintClassifier
}

var (
	pgOnce sync.Once
	pgDB   *gorm.DB
	pgErr  error
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns an empty, migrated store.
func Open(tb testing.TB) *Store {
	tb.Helper()

	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		return openPostgres(tb, dsn)
	}

	return openSQLite(tb)
}

func openSQLite(tb testing.TB) *Store {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := sqlite.Open(dsn, Logger(), false)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite sql.DB: %v", err)
	}
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(model.All()...); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}

	return &Store{DB: db, Classifier: sqlite.NewConstraintClassifier()}
}

func openPostgres(tb testing.TB, dsn string) *Store {
	tb.Helper()

	pgOnce.Do(func() {
		pgDB, pgErr = gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if pgErr != nil {
			return
		}
		pgErr = pgDB.AutoMigrate(model.All()...)
	})
	if pgErr != nil {
		tb.Fatalf("failed to init test db: %v", pgErr)
	}

	if err := pgDB.Exec(`TRUNCATE TABLE members, contacts, "groups", users RESTART IDENTITY CASCADE`).Error; err != nil {
		tb.Fatalf("truncate tables: %v", err)
	}

	return &Store{DB: pgDB, Classifier: postgres.NewConstraintClassifier()}
}
