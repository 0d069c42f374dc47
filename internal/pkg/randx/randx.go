/*
Package randx generates the random identifiers used by the interview assistant.

Browser sessions are keyed by UUID v4 strings.
*/
package randx

import (
	"github.com/google/uuid"
)

// SessionID generates a new UUID v4 string identifying one browser session.
func SessionID() string {
	return uuid.New().String()
}

// IsValidSessionID checks that id is a canonical UUID v4 string.
func IsValidSessionID(id string) bool {
	if len(id) != 36 {
		return false
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}

	return parsed.Version() == 4
}
