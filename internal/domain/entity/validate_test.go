package entity

import (
	"strings"
	"testing"

	domainerrors "roster/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestUserCreate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload UserCreate
		wantErr bool
	}{
		{name: "valid", payload: UserCreate{Email: "a@x.com", Password: "secret"}},
		{name: "valid with name", payload: UserCreate{Email: "a@x.com", Name: ptr("Ann"), Password: "secret"}},
		{name: "blank email", payload: UserCreate{Email: "  ", Password: "secret"}, wantErr: true},
		{name: "malformed email", payload: UserCreate{Email: "not-an-email", Password: "secret"}, wantErr: true},
		{name: "long email", payload: UserCreate{Email: strings.Repeat("a", 45) + "@x.com", Password: "secret"}, wantErr: true},
		{name: "blank password", payload: UserCreate{Email: "a@x.com", Password: " "}, wantErr: true},
		{name: "long name", payload: UserCreate{Email: "a@x.com", Name: ptr(strings.Repeat("n", 51)), Password: "secret"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
		})
	}
}

func TestContactCreate_Validate(t *testing.T) {
	assert.NoError(t, (&ContactCreate{PhoneNumber: ptr("+1000")}).Validate())
	assert.NoError(t, (&ContactCreate{}).Validate())
	assert.ErrorIs(t, (&ContactCreate{PhoneNumber: ptr("+1234567890123")}).Validate(), domainerrors.ErrBadRequest)
	assert.ErrorIs(t, (&ContactUpdate{LinkedIn: ptr(strings.Repeat("l", 51))}).Validate(), domainerrors.ErrBadRequest)
}

func TestGroupCreate_Validate(t *testing.T) {
	assert.NoError(t, (&GroupCreate{Name: "devs", OwnerID: 1}).Validate())
	assert.ErrorIs(t, (&GroupCreate{Name: "   ", OwnerID: 1}).Validate(), domainerrors.ErrBadRequest)
	assert.ErrorIs(t, (&GroupCreate{Name: "devs", Description: ptr(strings.Repeat("d", 501))}).Validate(), domainerrors.ErrBadRequest)
	assert.NoError(t, (&GroupUpdate{}).Validate())
	assert.ErrorIs(t, (&GroupUpdate{Name: ptr(strings.Repeat("g", 51))}).Validate(), domainerrors.ErrBadRequest)
}

func TestValidate_NilPayload(t *testing.T) {
	var (
		user    *UserCreate
		contact *ContactCreate
		group   *GroupCreate
		member  *MemberCreate
	)

	assert.ErrorIs(t, user.Validate(), domainerrors.ErrBadRequest)
	assert.ErrorIs(t, contact.Validate(), domainerrors.ErrBadRequest)
	assert.ErrorIs(t, group.Validate(), domainerrors.ErrBadRequest)
	assert.ErrorIs(t, member.Validate(), domainerrors.ErrBadRequest)
	assert.NoError(t, (&MemberCreate{GroupID: 1, UserID: 2}).Validate())
}
