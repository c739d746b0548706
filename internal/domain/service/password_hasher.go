// Package service defines interfaces for stateless domain logic the repositories delegate to.
package service

// PasswordHasher defines the interface for password hashing and verification.
// User repositories hash through it; the algorithm stays an infrastructure detail.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
