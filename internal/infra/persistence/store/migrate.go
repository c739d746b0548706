package store

import (
	"context"

	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, indexes and constraints of the entity store.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
