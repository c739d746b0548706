package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// memberRepository implements the repository.MemberRepository interface.
type memberRepository struct {
	repoBase
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(params Params) repository.MemberRepository {
	return &memberRepository{
		repoBase: newRepoBase(params, "member"),
	}
}

// Create adds the user to the group as a plain member; the requested role is ignored.
func (repo *memberRepository) Create(ctx context.Context, payload *entity.MemberCreate) (member *entity.GroupMember, err error) {
	defer repo.observe("Create", time.Now(), &err)

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	if payload.Role != "" && payload.Role != entity.RoleMember {
		repo.logger.DebugContext(ctx, "Ignoring requested member role",
			slog.String("requestedRole", payload.Role.String()),
		)
	}

	memberM := &model.MemberModel{
		GroupID: payload.GroupID,
		UserID:  payload.UserID,
		Role:    entity.RoleMember.String(),
	}

	var row *model.MemberRow
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(memberM).Error; err != nil {
			return err
		}

		var err error
		row, err = findMemberRow(tx, memberM.MembershipID)

		return err
	})
	if err != nil {
		switch {
		case repo.classifier.IsUniqueViolation(err):
			return nil, domainerrors.ErrUnique.WithDetails(
				fmt.Sprintf("user %d is already a member of group %d", payload.UserID, payload.GroupID))
		case repo.classifier.IsForeignKeyViolation(err):
			return nil, domainerrors.ErrNotFound.WithDetails(
				fmt.Sprintf("unable to find group %d or user %d", payload.GroupID, payload.UserID))
		default:
			return nil, storageError(err, "failed to create member")
		}
	}

	return toGroupMemberDomain(row), nil
}

// Delete removes a membership. Owner memberships only leave with their group.
func (repo *memberRepository) Delete(ctx context.Context, membershipID int64) (member *entity.GroupMember, err error) {
	defer repo.observe("Delete", time.Now(), &err)

	var row *model.MemberRow
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		var err error
		row, err = findMemberRow(tx, membershipID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("unable to find membership with id %d", membershipID))
			}

			return err
		}

		if entity.MemberRole(row.Role) == entity.RoleOwner {
			return domainerrors.ErrNotAuthorized.WithDetails("the group owner cannot be removed from the group")
		}

		return tx.Where("membership_id = ?", membershipID).Delete(&model.MemberModel{}).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to delete member")
	}

	return toGroupMemberDomain(row), nil
}
