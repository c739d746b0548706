package store

import (
	"context"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGroupRepository_Create_AddsOwnerMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")

	group, err := f.groups.Create(ctx, &entity.GroupCreate{
		Name:        "  devs ",
		Description: ptr("people who ship"),
		IsPrivate:   true,
		OwnerID:     a.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "devs", group.Name)
	assert.Equal(t, "people who ship", *group.Description)
	assert.True(t, group.IsPrivate)
	assert.Equal(t, a.ID, group.OwnerID)

	members := f.groups.ListMembers(ctx, group.ID, entity.DefaultPagination())
	require.Len(t, members, 1)
	assert.Equal(t, entity.RoleOwner, members[0].Role)
	assert.Equal(t, "a@x.com", members[0].UserEmail)
	assert.Equal(t, "devs", members[0].GroupName)
	assert.Equal(t, a.ID, members[0].UserID)
	assert.Equal(t, int64(1), f.count(t, &model.MemberModel{}, "group_id = ? AND role = ?", group.ID, entity.RoleOwner.String()))
}

func TestGroupRepository_Create_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")
	f.createGroup(t, "devs", a.ID)

	tests := []struct {
		name    string
		payload *entity.GroupCreate
		wantErr error
	}{
		{name: "duplicate name", payload: &entity.GroupCreate{Name: "devs", OwnerID: a.ID}, wantErr: domainerrors.ErrUnique},
		{name: "unknown owner", payload: &entity.GroupCreate{Name: "ghosts", OwnerID: 9999}, wantErr: domainerrors.ErrNotFound},
		{name: "blank name", payload: &entity.GroupCreate{Name: " ", OwnerID: a.ID}, wantErr: domainerrors.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := f.groups.Create(ctx, tt.payload)

			assert.Nil(t, group)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, int64(1), f.count(t, &model.GroupModel{}, "1 = 1"))
	assert.Equal(t, int64(1), f.count(t, &model.MemberModel{}, "1 = 1"))
}

func TestGroupRepository_Create_RollsBackWhenOwnerMembershipFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")

	db := f.params.DB
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_members", func(tx *gorm.DB) {
		if tx.Statement.Table == "members" {
			_ = tx.AddError(errors.New("members insert refused"))
		}
	}))
	t.Cleanup(func() {
		_ = db.Callback().Create().Remove("test:fail_members")
	})

	group, err := f.groups.Create(ctx, &entity.GroupCreate{Name: "devs", OwnerID: a.ID})

	assert.Nil(t, group)
	var dbErr *domainerrors.DatabaseExecuteError
	require.ErrorAs(t, err, &dbErr)
	assert.Zero(t, f.count(t, &model.GroupModel{}, "1 = 1"))
	assert.Zero(t, f.count(t, &model.MemberModel{}, "1 = 1"))
}

func TestGroupRepository_GetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")
	g1 := f.createGroup(t, "one", a.ID)
	g2 := f.createGroup(t, "two", a.ID)

	got, err := f.groups.Get(ctx, g1.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)
	assert.False(t, got.IsPrivate)
	assert.Nil(t, got.Description)

	_, err = f.groups.Get(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	groups := f.groups.List(ctx, entity.DefaultPagination())
	require.Len(t, groups, 2)
	assert.Equal(t, g2.ID, groups[0].ID)
	assert.Equal(t, g1.ID, groups[1].ID)

	page := f.groups.List(ctx, entity.Pagination{Skip: 5, Limit: 5})
	assert.NotNil(t, page)
	assert.Empty(t, page)

	degraded := f.groups.List(canceledContext(), entity.DefaultPagination())
	assert.NotNil(t, degraded)
	assert.Empty(t, degraded)
}

func TestGroupRepository_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")
	group := f.createGroup(t, "devs", a.ID)
	f.createGroup(t, "ops", a.ID)

	updated, err := f.groups.Update(ctx, group.ID, &entity.GroupUpdate{
		Description: ptr("builders"),
		IsPrivate:   ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "devs", updated.Name)
	assert.Equal(t, "builders", *updated.Description)
	assert.True(t, updated.IsPrivate)
	assert.Equal(t, a.ID, updated.OwnerID)

	updated, err = f.groups.Update(ctx, group.ID, &entity.GroupUpdate{IsPrivate: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsPrivate)

	_, err = f.groups.Update(ctx, group.ID, &entity.GroupUpdate{Name: ptr("ops")})
	assert.ErrorIs(t, err, domainerrors.ErrUnique)

	_, err = f.groups.Update(ctx, 9999, &entity.GroupUpdate{Name: ptr("nobody")})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGroupRepository_Update_EmptyPayloadIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")
	group := f.createGroup(t, "devs", a.ID)

	var before model.GroupModel
	require.NoError(t, f.params.DB.First(&before, group.ID).Error)

	for name, payload := range map[string]*entity.GroupUpdate{
		"nil payload":  nil,
		"no fields":    {},
		"blank fields": {Name: ptr(""), Description: ptr(" ")},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := f.groups.Update(ctx, group.ID, payload)

			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}

	var after model.GroupModel
	require.NoError(t, f.params.DB.First(&after, group.ID).Error)
	assert.Equal(t, before, after)
}

func TestGroupRepository_Delete_CascadesMemberships(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@x.com")
	b := f.createUser(t, "b@x.com")
	group := f.createGroup(t, "devs", a.ID)
	f.addMember(t, group.ID, b.ID)

	deleted, err := f.groups.Delete(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.ID, deleted.ID)
	assert.Equal(t, "devs", deleted.Name)

	assert.Zero(t, f.count(t, &model.MemberModel{}, "group_id = ?", group.ID))
	assert.Equal(t, int64(2), f.count(t, &model.UserModel{}, "1 = 1"))

	_, err = f.groups.Delete(ctx, group.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGroupRepository_ListMembers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.createUser(t, "owner@x.com")
	group := f.createGroup(t, "devs", owner.ID)

	var added []*entity.GroupMember
	for _, email := range []string{"b@x.com", "c@x.com", "d@x.com"} {
		user := f.createUser(t, email)
		added = append(added, f.addMember(t, group.ID, user.ID))
	}

	members := f.groups.ListMembers(ctx, group.ID, entity.Pagination{Limit: 2})
	require.Len(t, members, 2)
	assert.Equal(t, added[2].ID, members[0].ID)
	assert.Equal(t, "d@x.com", members[0].UserEmail)
	assert.Equal(t, added[1].ID, members[1].ID)

	rest := f.groups.ListMembers(ctx, group.ID, entity.Pagination{Skip: 2, Limit: 10})
	require.Len(t, rest, 2)
	assert.Equal(t, entity.RoleOwner, rest[1].Role)

	unknown := f.groups.ListMembers(ctx, 9999, entity.DefaultPagination())
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}
