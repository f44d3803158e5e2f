package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAsKeepsIdentity(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := WrapAs(ErrStore, cause, "Failed to fetch paginated data")

	assert.True(t, errors.Is(err, ErrStore))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Failed to fetch paginated data", err.Summary)
	assert.Equal(t, "dial tcp: connection refused", err.Detail())
	assert.Equal(t, "Failed to query data store", ErrStore.Summary)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Same(t, ErrNotFound, FromError(ErrNotFound))

	wrapped := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, wrapped.Code)
	assert.Equal(t, "boom", wrapped.Detail())
	assert.Equal(t, "Internal server error: boom", wrapped.Error())
}
