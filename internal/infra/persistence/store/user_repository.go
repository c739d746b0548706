package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	repoBase
	hasher service.PasswordHasher
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(params Params) repository.UserRepository {
	return &userRepository{
		repoBase: newRepoBase(params, "user"),
		hasher:   params.Hasher,
	}
}

// Create hashes the password and persists a new user.
func (repo *userRepository) Create(ctx context.Context, payload *entity.UserCreate) (user *entity.User, err error) {
	defer repo.observe("Create", time.Now(), &err)

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	hashed, err := repo.hasher.Hash(strings.TrimSpace(payload.Password))
	if err != nil {
		return nil, domainerrors.ErrBadRequest.WithDetails(err.Error())
	}

	userM := &model.UserModel{
		UserEmail:      strings.TrimSpace(payload.Email),
		UserName:       trimmed(payload.Name),
		HashedPassword: hashed,
	}

	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(userM).Error
	})
	if err != nil {
		if repo.classifier.IsUniqueViolation(err) {
			return nil, domainerrors.ErrUnique.WithDetails(fmt.Sprintf("user with email %s already registered", userM.UserEmail))
		}

		return nil, storageError(err, "failed to create user")
	}

	return toUserDomain(userM), nil
}

// Get retrieves a single user by ID.
func (repo *userRepository) Get(ctx context.Context, id int64) (user *entity.User, err error) {
	defer repo.observe("Get", time.Now(), &err)

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound(id)
		}

		return nil, storageError(err, "failed to get user")
	}

	return toUserDomain(&userM), nil
}

// List returns users by descending ID. Query errors yield an empty slice.
func (repo *userRepository) List(ctx context.Context, page entity.Pagination) []*entity.User {
	defer repo.observe("List", time.Now(), nil)

	page = page.Normalize()

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("user_id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&userModels).Error; err != nil {
		repo.listFailed(ctx, "List", err)

		return []*entity.User{}
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// Update applies the set, non-blank fields of payload. An empty payload
// returns (nil, nil) without touching storage.
func (repo *userRepository) Update(ctx context.Context, id int64, payload *entity.UserUpdate) (user *entity.User, err error) {
	defer repo.observe("Update", time.Now(), &err)

	if payload == nil {
		return nil, nil
	}

	updates := make(map[string]any)
	setIfPresent(updates, "user_name", payload.Name)
	if password := trimmed(payload.Password); password != nil {
		hashed, err := repo.hasher.Hash(*password)
		if err != nil {
			return nil, domainerrors.ErrBadRequest.WithDetails(err.Error())
		}
		updates["hashed_password"] = hashed
	}
	if len(updates) == 0 {
		return nil, nil
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var userM model.UserModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&model.UserModel{}).Where("user_id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return userNotFound(id)
		}

		return tx.First(&userM, id).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to update user")
	}

	return toUserDomain(&userM), nil
}

// Delete removes the user. Contacts, owned groups and memberships go with it
// through ON DELETE CASCADE.
func (repo *userRepository) Delete(ctx context.Context, id int64) (user *entity.User, err error) {
	defer repo.observe("Delete", time.Now(), &err)

	var userM model.UserModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&userM, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userNotFound(id)
			}

			return err
		}

		return tx.Delete(&userM).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to delete user")
	}

	return toUserDomain(&userM), nil
}

// AddContact creates the contact row of a user.
func (repo *userRepository) AddContact(ctx context.Context, userID int64, payload *entity.ContactCreate) (contact *entity.Contact, err error) {
	defer repo.observe("AddContact", time.Now(), &err)

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	contactM := &model.ContactModel{
		PhoneNumber: trimmed(payload.PhoneNumber),
		Telegram:    trimmed(payload.Telegram),
		LinkedIn:    trimmed(payload.LinkedIn),
		UserID:      userID,
	}

	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(contactM).Error
	})
	if err != nil {
		switch {
		case repo.classifier.IsUniqueViolation(err):
			return nil, domainerrors.ErrUnique.WithDetails(fmt.Sprintf("contacts of user %d already exist", userID))
		case repo.classifier.IsForeignKeyViolation(err):
			return nil, userNotFound(userID)
		default:
			return nil, storageError(err, "failed to add contacts")
		}
	}

	return toContactDomain(contactM), nil
}

// GetContacts retrieves a user with its contact row, which is nil when absent.
func (repo *userRepository) GetContacts(ctx context.Context, userID int64) (userContacts *entity.UserContacts, err error) {
	defer repo.observe("GetContacts", time.Now(), &err)

	var (
		userM    model.UserModel
		contacts []*model.ContactModel
	)
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&userM, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userNotFound(userID)
			}

			return err
		}

		return tx.Where("user_id = ?", userID).Limit(1).Find(&contacts).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to get contacts")
	}

	userContacts = &entity.UserContacts{User: *toUserDomain(&userM)}
	if len(contacts) > 0 {
		userContacts.Contacts = toContactDomain(contacts[0])
	}

	return userContacts, nil
}

// UpdateContacts applies the set, non-blank fields of payload to the user's
// contact row. An empty payload returns (nil, nil) without touching storage.
func (repo *userRepository) UpdateContacts(ctx context.Context, userID int64, payload *entity.ContactUpdate) (contact *entity.Contact, err error) {
	defer repo.observe("UpdateContacts", time.Now(), &err)

	if payload == nil {
		return nil, nil
	}

	updates := make(map[string]any)
	setIfPresent(updates, "phone_number", payload.PhoneNumber)
	setIfPresent(updates, "telegram", payload.Telegram)
	setIfPresent(updates, "linkedin", payload.LinkedIn)
	if len(updates) == 0 {
		return nil, nil
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var contactM model.ContactModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&model.ContactModel{}).Where("user_id = ?", userID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrBadRequest.WithDetails(fmt.Sprintf("user %d has no contacts", userID))
		}

		return tx.Where("user_id = ?", userID).First(&contactM).Error
	})
	if err != nil {
		switch {
		case repo.classifier.IsUniqueViolation(err):
			return nil, domainerrors.ErrUnique.WithDetails(fmt.Sprintf("contacts of user %d collide with another user", userID))
		case repo.classifier.IsForeignKeyViolation(err):
			return nil, userNotFound(userID)
		default:
			return nil, storageError(err, "failed to update contacts")
		}
	}

	return toContactDomain(&contactM), nil
}

// DeleteContacts removes the user's contact row.
func (repo *userRepository) DeleteContacts(ctx context.Context, userID int64) (contact *entity.Contact, err error) {
	defer repo.observe("DeleteContacts", time.Now(), &err)

	var contactM model.ContactModel
	err = repo.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&contactM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("user %d has no contacts", userID))
			}

			return err
		}

		return tx.Delete(&contactM).Error
	})
	if err != nil {
		return nil, storageError(err, "failed to delete contacts")
	}

	return toContactDomain(&contactM), nil
}

// ListOwnedGroups returns groups owned by the user by descending group ID.
func (repo *userRepository) ListOwnedGroups(ctx context.Context, userID int64, page entity.Pagination) []*entity.Group {
	defer repo.observe("ListOwnedGroups", time.Now(), nil)

	page = page.Normalize()

	var groupModels []*model.GroupModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("owner_id = ?", userID).
		Order("group_id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&groupModels).Error; err != nil {
		repo.listFailed(ctx, "ListOwnedGroups", err)

		return []*entity.Group{}
	}

	groups := make([]*entity.Group, 0, len(groupModels))
	for _, groupM := range groupModels {
		groups = append(groups, toGroupDomain(groupM))
	}

	return groups
}

// ListMemberGroups returns the user's memberships, joined with group names,
// by descending membership ID.
func (repo *userRepository) ListMemberGroups(ctx context.Context, userID int64, page entity.Pagination) []*entity.GroupMember {
	defer repo.observe("ListMemberGroups", time.Now(), nil)

	rows, err := listMemberRows(repo.db.WithContext(ctx).Clauses(dbresolver.Read), page, "members.user_id = ?", userID)
	if err != nil {
		repo.listFailed(ctx, "ListMemberGroups", err)

		return []*entity.GroupMember{}
	}

	return toGroupMembersDomain(rows)
}

func userNotFound(id int64) error {
	return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("unable to find user with id %d", id))
}
