package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_DefaultsStatusToOK(t *testing.T) {
	err := NewError(ErrChatNameInvalid)

	assert.Equal(t, ErrChatNameInvalid, err.Code)
	assert.Equal(t, http.StatusOK, err.Status)
	assert.Equal(t, "Chat name already exists or is empty.", err.Message)
}

func TestNewError_FormatsTemplatedMessage(t *testing.T) {
	err := NewError(ErrStoreUnavailable, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Stored data could not be read: unexpected EOF", err.Message)
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	err := NewError(987654)

	assert.Equal(t, ErrUnknown, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestNewError_UnknownKeepsMessageHidden(t *testing.T) {
	err := NewError(ErrUnknown, errors.New("db password leaked in here"))

	assert.NotContains(t, err.Message, "password")
}
