package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"roster/config"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/infra/auth"
	"roster/internal/infra/metrics"
	"roster/internal/infra/persistence/store"
	"roster/internal/infra/persistence/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testInfra(t *testing.T) fx.Option {
	t.Helper()

	s := testutil.Open(t)

	return fx.Options(
		fx.Supply(s.DB, testutil.Logger()),
		fx.Provide(
			func() repository.ConstraintClassifier { return s.Classifier },
			func() service.PasswordHasher { return auth.NewBcryptHasherWithCost(bcrypt.MinCost) },
		),
	)
}

func execute(t *testing.T, infra fx.Option, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd(&out, infra)
	root.SetArgs(args)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func decode[T any](t *testing.T, raw string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)

	return v
}

func TestUsersCommands(t *testing.T) {
	infra := testInfra(t)

	out, err := execute(t, infra, "users", "create", "--email", "a@x.com", "--name", "Ann", "--password", "secret")
	require.NoError(t, err)
	assert.NotContains(t, out, "password")
	created := decode[entity.User](t, out)
	assert.Equal(t, "a@x.com", created.Email)

	out, err = execute(t, infra, "users", "list", "--limit", "5")
	require.NoError(t, err)
	users := decode[[]entity.User](t, out)
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)

	out, err = execute(t, infra, "users", "update", "1")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, err = execute(t, infra, "users", "get", "99")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = execute(t, infra, "users", "get", "abc")
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
}

func TestContactsCommands(t *testing.T) {
	infra := testInfra(t)

	_, err := execute(t, infra, "users", "create", "--email", "a@x.com", "--password", "secret")
	require.NoError(t, err)
	_, err = execute(t, infra, "users", "create", "--email", "b@x.com", "--password", "secret")
	require.NoError(t, err)

	out, err := execute(t, infra, "users", "contacts", "add", "1", "--phone", "+1000")
	require.NoError(t, err)
	assert.Equal(t, "+1000", *decode[entity.Contact](t, out).PhoneNumber)

	_, err = execute(t, infra, "users", "contacts", "add", "2", "--phone", "+1000")
	assert.ErrorIs(t, err, domainerrors.ErrUnique)

	out, err = execute(t, infra, "users", "contacts", "get", "1")
	require.NoError(t, err)
	userContacts := decode[entity.UserContacts](t, out)
	require.NotNil(t, userContacts.Contacts)
	assert.Equal(t, "+1000", *userContacts.Contacts.PhoneNumber)

	_, err = execute(t, infra, "users", "contacts", "delete", "1")
	require.NoError(t, err)
	_, err = execute(t, infra, "users", "contacts", "delete", "1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGroupsCreateWithMembers(t *testing.T) {
	infra := testInfra(t)

	for _, email := range []string{"owner@x.com", "b@x.com", "c@x.com"} {
		_, err := execute(t, infra, "users", "create", "--email", email, "--password", "secret")
		require.NoError(t, err)
	}

	out, err := execute(t, infra, "groups", "create", "--name", "devs", "--owner", "1", "--member", "2", "--member", "3")
	require.NoError(t, err)
	created := decode[groupWithMembersOutput](t, out)
	assert.Equal(t, "devs", created.Name)
	require.Len(t, created.Members, 2)
	assert.Equal(t, entity.RoleMember, created.Members[0].Role)

	out, err = execute(t, infra, "groups", "members", "1")
	require.NoError(t, err)
	members := decode[[]entity.GroupMember](t, out)
	require.Len(t, members, 3)
	assert.Equal(t, entity.RoleOwner, members[2].Role)
	assert.Equal(t, "owner@x.com", members[2].UserEmail)

	// An unknown member rolls the whole creation back.
	_, err = execute(t, infra, "groups", "create", "--name", "ops", "--owner", "1", "--member", "99")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	out, err = execute(t, infra, "groups", "list")
	require.NoError(t, err)
	assert.Len(t, decode[[]entity.Group](t, out), 1)
}

func TestMembersCommands(t *testing.T) {
	infra := testInfra(t)

	for _, email := range []string{"owner@x.com", "b@x.com"} {
		_, err := execute(t, infra, "users", "create", "--email", email, "--password", "secret")
		require.NoError(t, err)
	}
	_, err := execute(t, infra, "groups", "create", "--name", "devs", "--owner", "1")
	require.NoError(t, err)

	out, err := execute(t, infra, "members", "add", "--group", "1", "--user", "2")
	require.NoError(t, err)
	member := decode[entity.GroupMember](t, out)
	assert.Equal(t, entity.RoleMember, member.Role)
	assert.Equal(t, "devs", member.GroupName)

	_, err = execute(t, infra, "members", "remove", "1")
	require.ErrorIs(t, err, domainerrors.ErrNotAuthorized)

	var stderr bytes.Buffer
	writeError(&stderr, err)
	body := decode[errorBody](t, stderr.String())
	assert.Equal(t, "NOT_AUTHORIZED", body.Code)
	assert.Equal(t, 403, body.Status)

	_, err = execute(t, infra, "members", "remove", "2")
	assert.NoError(t, err)
}

func TestMigrateCommand(t *testing.T) {
	out, err := execute(t, testInfra(t), "migrate")

	require.NoError(t, err)
	assert.JSONEq(t, `{"migrated": true}`, out)
}

func TestMetricsFlag(t *testing.T) {
	s := testutil.Open(t)
	infra := fx.Options(
		fx.Supply(s.DB, testutil.Logger()),
		fx.Provide(
			func() repository.ConstraintClassifier { return s.Classifier },
			func() service.PasswordHasher { return auth.NewBcryptHasherWithCost(bcrypt.MinCost) },
			metrics.New,
		),
	)

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, infra)
	root.SetArgs([]string{"--metrics", "users", "create", "--email", "a@x.com", "--password", "secret"})
	root.SetErr(&errOut)

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "a@x.com")
	assert.Contains(t, errOut.String(), `roster_repository_operations_total{operation="Create",outcome="OK",repository="user"} 1`)
}

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "roster.db")

	var (
		db         *gorm.DB
		classifier repository.ConstraintClassifier
	)
	app := fxtest.New(t,
		fx.Supply(cfg, testutil.Logger()),
		fx.Provide(newDatabase),
		fx.Populate(&db, &classifier),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NoError(t, store.Migrate(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("members"))
	assert.NotNil(t, classifier)
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "oracle"

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, testutil.Logger()),
		fx.Provide(newDatabase),
		fx.Invoke(func(*gorm.DB) {}),
	)

	assert.ErrorContains(t, app.Err(), "unknown storage driver")
}

type groupWithMembersOutput struct {
	entity.Group
	Members []entity.GroupMember `json:"members"`
}
