package repository

import (
	"context"

	"roster/internal/domain/entity"
)

// MemberRepository manages non-owner memberships.
type MemberRepository interface {
	// Create adds a user to a group with RoleMember, whatever role the payload asks for.
	Create(ctx context.Context, payload *entity.MemberCreate) (*entity.GroupMember, error)

	// Delete removes a membership. Owner memberships are refused with ErrNotAuthorized.
	Delete(ctx context.Context, membershipID int64) (*entity.GroupMember, error)
}
