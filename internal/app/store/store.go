/*
Package store persists the interview assistant's two flat JSON documents: the credential
map and the per-user chat list.

A Document reads and writes one whole mapping through a Backend. Saves overwrite the full
document; there is no locking, so concurrent writers lose updates (last writer wins).
*/
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Document names shared by every backend.
const (
	UsersDocument = "users"
	ChatsDocument = "chats"
)

// ErrNotExist is returned by a Backend when the named document has never been written.
var ErrNotExist = errors.New("document does not exist")

// Backend stores raw JSON documents by name.
type Backend interface {
	// Read returns the stored bytes, or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the stored bytes.
	Write(ctx context.Context, name string, data []byte) error

	// Close releases connections held by the backend.
	Close() error
}

// Document is a typed view over one named JSON mapping.
type Document[K comparable, V any] struct {
	backend Backend
	name    string
}

// NewDocument binds a mapping type to a named document in backend.
func NewDocument[K comparable, V any](backend Backend, name string) *Document[K, V] {
	return &Document[K, V]{backend: backend, name: name}
}

// Load returns the stored mapping. A missing document yields an empty mapping.
// Malformed content is returned as an error and is not repaired.
func (d *Document[K, V]) Load(ctx context.Context) (map[K]V, error) {
	data, err := d.backend.Read(ctx, d.name)
	if errors.Is(err, ErrNotExist) {
		return map[K]V{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.name, err)
	}

	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.name, err)
	}
	if m == nil {
		m = map[K]V{}
	}
	return m, nil
}

// Save overwrites the stored mapping with m.
func (d *Document[K, V]) Save(ctx context.Context, m map[K]V) error {
	if m == nil {
		m = map[K]V{}
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.name, err)
	}

	if err := d.backend.Write(ctx, d.name, data); err != nil {
		return fmt.Errorf("write %s: %w", d.name, err)
	}
	return nil
}
