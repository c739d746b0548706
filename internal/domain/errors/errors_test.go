package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesKindAcrossDetails(t *testing.T) {
	detailed := ErrUnique.WithDetails(`group "ops" already registered`)

	assert.ErrorIs(t, detailed, ErrUnique)
	assert.NotErrorIs(t, detailed, ErrNotFound)
	assert.Equal(t, `resource already exists: group "ops" already registered`, detailed.Error())
}

func TestBaseError_WrapMessageKeepsKind(t *testing.T) {
	err := ErrNotAuthorized.WithDetails("owner membership").WrapMessage("delete member")

	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Contains(t, err.Error(), "delete member")
	assert.Equal(t, http.StatusForbidden, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "unique", err: ErrUnique, want: http.StatusConflict},
		{name: "not found", err: ErrNotFound.WithDetails("user 1"), want: http.StatusNotFound},
		{name: "not authorized", err: ErrNotAuthorized, want: http.StatusForbidden},
		{name: "bad request", err: ErrBadRequest, want: http.StatusBadRequest},
		{name: "database", err: NewDatabaseExecuteError(stderrors.New("conn reset"), "list users"), want: http.StatusInternalServerError},
		{name: "foreign error", err: stderrors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestDatabaseExecuteError_UnwrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "create user")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", Code(err))
	assert.Contains(t, err.Error(), "create user")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", Code(ErrNotFound.WrapMessage("get group")))
	assert.Equal(t, "INTERNAL_ERROR", Code(stderrors.New("boom")))
}
