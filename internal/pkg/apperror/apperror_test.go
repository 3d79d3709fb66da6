package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsThroughWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("authorize: %w", Forbidden("Auth.Error0001", "denied", cause))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CategoryForbidden, appErr.Category)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, IsForbidden(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{Validation("c", "m", nil), http.StatusUnprocessableEntity},
		{NotFound("c", "m"), http.StatusNotFound},
		{Unauthorized("m"), http.StatusUnauthorized},
		{Forbidden("c", "m", nil), http.StatusForbidden},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.err.Category), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[NOT_FOUND:c] missing", NotFound("c", "missing").Error())
	assert.Contains(t, Internal(errors.New("boom")).Error(), "boom")
	assert.False(t, IsForbidden(errors.New("plain")))
}
