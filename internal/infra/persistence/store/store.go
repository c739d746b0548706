// Package store implements the domain repositories on top of GORM. It is
// backend-agnostic: vendor error codes are interpreted by the injected
// repository.ConstraintClassifier.
package store

import (
	"context"
	"log/slog"
	"time"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/infra/metrics"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the repositories and the transaction manager.
var Module = fx.Module("store",
	fx.Provide(
		NewUserRepository,
		NewGroupRepository,
		NewMemberRepository,
		NewTransactionManager,
	),
)

// Params defines the dependencies shared by all repositories.
type Params struct {
	fx.In

	DB         *gorm.DB
	Classifier repository.ConstraintClassifier
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
	Metrics    *metrics.Metrics `optional:"true"`
}

// repoBase carries the dependencies and helpers common to every repository.
type repoBase struct {
	db         *gorm.DB
	classifier repository.ConstraintClassifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
	name       string
}

func newRepoBase(params Params, name string) repoBase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return repoBase{
		db:         params.DB,
		classifier: params.Classifier,
		logger:     logger.With(slog.String("repository", name)),
		metrics:    params.Metrics,
		name:       name,
	}
}

// transaction runs fn in its own transaction. Bound to an outer transaction
// the repository gets a savepoint instead.
func (b *repoBase) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return b.db.WithContext(ctx).Transaction(fn)
}

// observe records the outcome of an operation; defer it with the named error result.
func (b *repoBase) observe(operation string, start time.Time, errp *error) {
	outcome := metrics.OutcomeOK
	if errp != nil && *errp != nil {
		outcome = domainerrors.Code(*errp)
	}

	b.metrics.Observe(b.name, operation, outcome, time.Since(start))
}

// listFailed logs a swallowed list error.
func (b *repoBase) listFailed(ctx context.Context, operation string, err error) {
	b.logger.WarnContext(ctx, "List query failed, returning empty result",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	b.metrics.Degraded(b.name, operation)
}

// storageError keeps domain errors as they are and wraps anything else into
// a DatabaseExecuteError.
func storageError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
