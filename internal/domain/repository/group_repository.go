package repository

import (
	"context"

	"roster/internal/domain/entity"
)

// GroupRepository manages groups. Creating a group also creates the owner's
// membership in the same transaction.
type GroupRepository interface {
	Create(ctx context.Context, payload *entity.GroupCreate) (*entity.Group, error)
	Get(ctx context.Context, id int64) (*entity.Group, error)
	List(ctx context.Context, page entity.Pagination) []*entity.Group
	Update(ctx context.Context, id int64, payload *entity.GroupUpdate) (*entity.Group, error)
	Delete(ctx context.Context, id int64) (*entity.Group, error)
	ListMembers(ctx context.Context, groupID int64, page entity.Pagination) []*entity.GroupMember
}
