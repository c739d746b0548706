package sqlite

import (
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type constraintClassifier struct{}

// NewConstraintClassifier returns the classifier for SQLite errors.
func NewConstraintClassifier() repository.ConstraintClassifier {
	return constraintClassifier{}
}

func (constraintClassifier) IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	code, ok := extendedCode(err)

	return ok && (code == sqlite3.ErrConstraintUnique || code == sqlite3.ErrConstraintPrimaryKey)
}

func (constraintClassifier) IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	code, ok := extendedCode(err)

	return ok && code == sqlite3.ErrConstraintForeignKey
}

func extendedCode(err error) (sqlite3.ErrNoExtended, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode, true
	}

	return 0, false
}
