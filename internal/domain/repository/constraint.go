package repository

// ConstraintClassifier interprets storage errors for one backend, keeping the
// repository logic independent of vendor error codes.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err was caused by a unique or primary key constraint.
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a foreign key constraint.
	IsForeignKeyViolation(err error) bool
}
