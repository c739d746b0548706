// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between transport adapters and the infrastructure layer.
package repository

import (
	"context"

	"roster/internal/domain/entity"
)

// UserRepository manages users and their contact row.
// Every method runs as one unit of work; constraint violations surface as
// domain errors (ErrUnique, ErrNotFound, ErrBadRequest).
type UserRepository interface {
	// Create hashes the password and persists a new user.
	Create(ctx context.Context, payload *entity.UserCreate) (*entity.User, error)

	// Get retrieves a single user by ID.
	Get(ctx context.Context, id int64) (*entity.User, error)

	// List returns users by descending ID. It never fails; query errors yield an empty slice.
	List(ctx context.Context, page entity.Pagination) []*entity.User

	// Update applies the set fields of payload. An empty payload is a no-op returning nil.
	Update(ctx context.Context, id int64, payload *entity.UserUpdate) (*entity.User, error)

	// Delete removes the user together with its contacts, owned groups and memberships.
	Delete(ctx context.Context, id int64) (*entity.User, error)

	// AddContact creates the contact row of a user.
	AddContact(ctx context.Context, userID int64, payload *entity.ContactCreate) (*entity.Contact, error)

	// GetContacts retrieves a user with its contact row.
	GetContacts(ctx context.Context, userID int64) (*entity.UserContacts, error)

	// UpdateContacts applies the set fields of payload to the user's contact row.
	UpdateContacts(ctx context.Context, userID int64, payload *entity.ContactUpdate) (*entity.Contact, error)

	// DeleteContacts removes the user's contact row.
	DeleteContacts(ctx context.Context, userID int64) (*entity.Contact, error)

	// ListOwnedGroups returns groups owned by the user by descending group ID.
	ListOwnedGroups(ctx context.Context, userID int64, page entity.Pagination) []*entity.Group

	// ListMemberGroups returns the user's memberships by descending membership ID.
	ListMemberGroups(ctx context.Context, userID int64, page entity.Pagination) []*entity.GroupMember
}
