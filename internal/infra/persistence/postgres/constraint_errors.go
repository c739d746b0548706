package postgres

import (
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes of integrity constraint violations.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type constraintClassifier struct{}

// NewConstraintClassifier returns the classifier for PostgreSQL errors.
func NewConstraintClassifier() repository.ConstraintClassifier {
	return constraintClassifier{}
}

func (constraintClassifier) IsUniqueViolation(err error) bool {
	// Check for GORM's translated error first, in case TranslateError is enabled on the dialector
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return sqlState(err) == uniqueViolation
}

func (constraintClassifier) IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return sqlState(err) == foreignKeyViolation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
