package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noSuchKeyBody = `<?xml version="1.0" encoding="UTF-8"?>
<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`

func TestS3Backend_Key(t *testing.T) {
	b := &S3Backend{cfg: S3Config{KeyPrefix: "interview"}}
	assert.Equal(t, "interview/users.json", b.key(UsersDocument))

	b = &S3Backend{cfg: S3Config{}}
	assert.Equal(t, "chats.json", b.key(ChatsDocument))
}

func TestS3Backend_MissingObject(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(noSuchKeyBody))
	}))
	defer srv.Close()

	backend, err := NewS3Backend(context.Background(), S3Config{
		Bucket:          "docs",
		Endpoint:        srv.URL,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		KeyPrefix:       "interview",
	})
	require.NoError(t, err)

	_, err = backend.Read(context.Background(), UsersDocument)

	assert.ErrorIs(t, err, ErrNotExist)
	assert.Equal(t, "/docs/interview/users.json", gotPath)
}
