/*
Package user holds the credential rules for interview-assistant accounts.

Accounts live in the credential document as a flat username to password mapping. By default
passwords are stored exactly as given. With bcrypt enabled, new passwords are stored as hashes
and entries written earlier keep working as plaintext.
*/
package user

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hashing modes accepted by New.
const (
	HashingPlain  = "plain"
	HashingBcrypt = "bcrypt"
)

// bcryptPrefixes are the version prefixes produced by bcrypt implementations.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Credentials turns passwords into stored values and checks them.
type Credentials interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// New returns the Credentials for mode. cost only applies to bcrypt.
func New(mode string, cost int) (Credentials, error) {
	switch mode {
	case HashingPlain, "":
		return Plaintext{}, nil
	case HashingBcrypt:
		return NewBcrypt(cost), nil
	default:
		return nil, fmt.Errorf("unsupported password hashing mode %q", mode)
	}
}

// Plaintext stores passwords as-is.
type Plaintext struct{}

// Hash implements Credentials.
func (Plaintext) Hash(password string) (string, error) {
	return password, nil
}

// Verify implements Credentials.
func (Plaintext) Verify(stored, password string) bool {
	return stored == password
}

// Bcrypt stores new passwords as bcrypt hashes.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt using cost, or bcrypt.DefaultCost when cost is out of range.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash implements Credentials. Passwords bcrypt cannot take (over 72 bytes) are stored as-is.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return password, nil
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify implements Credentials. A stored value that only looks like a hash is compared as plaintext.
func (b *Bcrypt) Verify(stored, password string) bool {
	if !IsHashed(stored) {
		return stored == password
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	switch {
	case err == nil:
		return true
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false
	default:
		return stored == password
	}
}

// IsHashed reports whether stored looks like a bcrypt hash.
func IsHashed(stored string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return true
		}
	}
	return false
}

// Authenticate looks username up in users and checks password against it.
func Authenticate(creds Credentials, users map[string]string, username, password string) bool {
	stored, ok := users[username]
	if !ok {
		return false
	}
	return creds.Verify(stored, password)
}
