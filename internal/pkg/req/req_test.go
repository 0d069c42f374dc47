package req

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewbot/internal/pkg/errs"
)

type loginSignals struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func TestBindSignals(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ui/login", strings.NewReader(`{"username":"alice","password":"pw1"}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Datastar-Request", "true")

	var s loginSignals
	customErr := BindSignals(httptest.NewRecorder(), r, &s)

	require.Nil(t, customErr)
	assert.Equal(t, loginSignals{Username: "alice", Password: "pw1"}, s)
	assert.True(t, IsDatastar(r))
}

func TestBindSignals_Malformed(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/ui/login", strings.NewReader(`{"username":`))
	r.Header.Set("Content-Type", "application/json")

	var s loginSignals
	customErr := BindSignals(httptest.NewRecorder(), r, &s)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidSignals, customErr.Code)
	assert.False(t, IsDatastar(r))
}
