package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionID_IsValid(t *testing.T) {
	a, b := SessionID(), SessionID()

	assert.True(t, IsValidSessionID(a))
	assert.NotEqual(t, a, b)
}

func TestIsValidSessionID_Rejects(t *testing.T) {
	for _, id := range []string{
		"",
		"not-a-uuid",
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	} {
		assert.False(t, IsValidSessionID(id), id)
	}
}
