package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each document in its own JSON file.
type FileBackend struct {
	paths map[string]string
}

// NewFileBackend maps the users and chats documents onto the given file paths.
func NewFileBackend(usersPath, chatsPath string) *FileBackend {
	return &FileBackend{
		paths: map[string]string{
			UsersDocument: usersPath,
			ChatsDocument: chatsPath,
		},
	}
}

func (b *FileBackend) path(name string) (string, error) {
	p, ok := b.paths[name]
	if !ok || p == "" {
		return "", fmt.Errorf("no file configured for document %q", name)
	}
	return p, nil
}

// Read implements Backend.
func (b *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	p, err := b.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	return data, err
}

// Write implements Backend. The file is truncated and rewritten in place.
func (b *FileBackend) Write(_ context.Context, name string, data []byte) error {
	p, err := b.path(name)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	return os.WriteFile(p, data, 0o644)
}

// Close implements Backend.
func (b *FileBackend) Close() error {
	return nil
}
