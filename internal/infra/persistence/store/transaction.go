package store

import (
	"context"
	"log/slog"

	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/google/uuid"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	params Params
	logger *slog.Logger
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Its params carry the transaction in place of the root connection, so every
// repository it builds runs inside that transaction.
type gormRepositoryFactory struct {
	params Params
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.params)
}

// NewGroupRepository creates a new group repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewGroupRepository() repository.GroupRepository {
	return NewGroupRepository(f.params)
}

// NewMemberRepository creates a new member repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewMemberRepository() repository.MemberRepository {
	return NewMemberRepository(f.params)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(params Params) repository.TransactionManager {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &gormTransactionManager{
		params: params,
		logger: logger.With(slog.String("component", "transaction_manager")),
	}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	txID := uuid.NewString()
	logger := tm.logger.With(slog.String("txID", txID))

	tx := tm.params.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}
	logger.DebugContext(ctx, "Transaction started")

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.ErrorContext(ctx, "Transaction rolled back after panic", slog.Any("panic", r))
			panic(r)
		}
	}()

	txParams := tm.params
	txParams.DB = tx

	if err := fn(&gormRepositoryFactory{params: txParams}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			logger.ErrorContext(ctx, "Transaction rollback failed", slog.Any("error", rbErr))

			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}
		logger.DebugContext(ctx, "Transaction rolled back", slog.Any("error", err))

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	logger.DebugContext(ctx, "Transaction committed")

	return nil
}
