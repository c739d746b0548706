package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// groupRepository implements the repository.GroupRepository interface.
type groupRepository struct {
	repoBase
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(params Params) repository.GroupRepository {
	return &groupRepository{
		repoBase: newRepoBase(params, "group"),
	}
}

// Create persists the group and its owner membership in one transaction.
func (repo *groupRepository) Create(ctx context.Context, payload *entity.GroupCreate) (group *entity.Group, err error) {
	defer repo.observe("Create", time.Now(), &err)

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	groupM := &model.GroupModel{
		GroupName:        strings.TrimSpace(payload.Name),
		GroupDescription: trimmed(payload.Description),
		IsPrivate:        payload.IsPrivate,
		OwnerID:          payload.OwnerID,
	}

	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(groupM).Error; err != nil {
			return err
		}

		return tx.Create(&model.MemberModel{
			GroupID: groupM.GroupID,
			UserID:  groupM.OwnerID,
			Role:    entity.RoleOwner.String(),
		}).Error
	})
	if err != nil {
		switch {
		case repo.classifier.IsUniqueViolation(err):
			return nil, domainerrors.ErrUnique.WithDetails(fmt.Sprintf("group with name %s already exists", groupM.GroupName))
		case repo.classifier.IsForeignKeyViolation(err):
			return nil, userNotFound(payload.OwnerID)
		default:
			return nil, storageError(err, "failed to create group")
		}
	}

	return toGroupDomain(groupM), nil
}

// Get retrieves a single group by ID.
func (repo *groupRepository) Get(ctx context.Context, id int64) (group *entity.Group, err error) {
	defer repo.observe("Get", time.Now(), &err)

	var groupM model.GroupModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).First(&groupM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupNotFound(id)
		}

		return nil, storageError(err, "failed to get group")
	}

	return toGroupDomain(&groupM), nil
}

// List returns groups by descending ID. Query errors yield an empty slice.
func (repo *groupRepository) List(ctx context.Context, page entity.Pagination) []*entity.Group {
	defer repo.observe("List", time.Now(), nil)

	page = page.Normalize()

	var groupModels []*model.GroupModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("group_id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&groupModels).Error; err != nil {
		repo.listFailed(ctx, "List", err)

		return []*entity.Group{}
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups
}

// Update applies the set, non-blank fields of payload. An empty payload
// returns (nil, nil) without touching storage.
func (repo *groupRepository) Update(ctx context.Context, id int64, payload *entity.GroupUpdate) (group *entity.Group, err error) {
	defer repo.observe("Update", time.Now(), &err)

	if payload == nil {
		return nil, nil
	}

	updates := make(map[string]any)
	setIfPresent(updates, "group_name", payload.Name)
	setIfPresent(updates, "group_description", payload.Description)
	if payload.IsPrivate != nil {
		updates["is_private"] = *payload.IsPrivate
	}
	if len(updates) == 0 {
		return nil, nil
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var groupM model.GroupModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&model.GroupModel{}).Where("group_id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return groupNotFound(id)
		}

		return tx.First(&groupM, id).Error
	})
	if err != nil {
		if repo.classifier.IsUniqueViolation(err) {
			return nil, domainerrors.ErrUnique.WithDetails(fmt.Sprintf("group with name %v already exists", updates["group_name"]))
		}

		return nil, storageError(err, "failed to update group")
	}

	return toGroupDomain(&groupM), nil
}

// Delete removes the group. Its memberships go with it through ON DELETE CASCADE.
func (repo *groupRepository) Delete(ctx context.Context, id int64) (group *entity.Group, err error) {
	defer repo.observe("Delete", time.Now(), &err)

	var groupM model.GroupModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&groupM, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return groupNotFound(id)
			}

			return err
		}

		return tx.Delete(&groupM).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to delete group")
	}

	return toGroupDomain(&groupM), nil
}

// ListMembers returns the group's memberships, joined with member emails,
// by descending membership ID.
func (repo *groupRepository) ListMembers(ctx context.Context, groupID int64, page entity.Pagination) []*entity.GroupMember {
	defer repo.observe("ListMembers", time.Now(), nil)

	rows, err := listMemberRows(repo.db.WithContext(ctx).Clauses(dbresolver.Read), page, "members.group_id = ?", groupID)
	if err != nil {
		repo.listFailed(ctx, "ListMembers", err)

		return []*entity.GroupMember{}
	}

	return toGroupMembersDomain(rows)
}

func groupNotFound(id int64) error {
	return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("unable to find group with id %d", id))
}
