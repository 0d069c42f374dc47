package interview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewbot/internal/app/llm"
	"interviewbot/internal/app/store"
	"interviewbot/internal/app/user"
)

type memBackend struct {
	mu       sync.Mutex
	docs     map[string][]byte
	writeErr error
}

func newMemBackend(seed map[string]string) *memBackend {
	b := &memBackend{docs: map[string][]byte{}}
	for k, v := range seed {
		b.docs[k] = []byte(v)
	}
	return b
}

func (m *memBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[name]
	if !ok {
		return nil, store.ErrNotExist
	}
	return data, nil
}

func (m *memBackend) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.docs[name] = data
	return nil
}

func (m *memBackend) Close() error { return nil }

type fakeLLM struct {
	text  string
	err   error
	calls [][]llm.Message
}

func (f *fakeLLM) Complete(_ context.Context, conversation []llm.Message) (string, error) {
	f.calls = append(f.calls, conversation)
	return f.text, f.err
}

func newTestService(backend store.Backend, client llm.Client) *Service {
	return NewService(backend, client, user.Plaintext{})
}

func TestService_SignupThenLogin(t *testing.T) {
	ctx := context.Background()
	backend := newMemBackend(nil)
	svc := newTestService(backend, &fakeLLM{})

	state, _, err := svc.Dispatch(ctx, State{}, Signup{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.Len(t, state.Notices, 1)
	assert.Equal(t, SignupSuccessMessage, state.Notices[0].Message)
	assert.Contains(t, string(backend.docs[store.UsersDocument]), `"alice":"pw1"`)

	state, _, err = svc.Dispatch(ctx, state, Login{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", state.Username)
}

func TestService_GenerateRunsAdapterAndPersists(t *testing.T) {
	ctx := context.Background()
	backend := newMemBackend(map[string]string{
		store.UsersDocument: `{"alice":"pw1"}`,
		store.ChatsDocument: `{"alice":[{"name":"backend","questions":[]}]}`,
	})
	client := &fakeLLM{text: "**Question 1\nWhat is a goroutine?\n**Question 2\nWhat is a channel?"}
	svc := newTestService(backend, client)

	state := State{Username: "alice", SelectedChat: intPtr(0)}
	state, docs, err := svc.Dispatch(ctx, state, GenerateQuestions{Candidate: validCandidate()})

	require.NoError(t, err)
	require.Len(t, client.calls, 1)
	assert.True(t, state.Submitted)
	assert.Len(t, state.Questions, 4)
	assert.Equal(t, state.Questions, docs.ChatsFor("alice")[0].Questions)

	reloaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Questions, reloaded.ChatsFor("alice")[0].Questions)
}

func TestService_GenerateRefusedNeverCallsAdapter(t *testing.T) {
	backend := newMemBackend(map[string]string{store.UsersDocument: `{"alice":"pw1"}`})
	client := &fakeLLM{text: "unused"}
	svc := newTestService(backend, client)

	state, _, err := svc.Dispatch(context.Background(), loggedIn("alice"), GenerateQuestions{Candidate: CandidateInfo{Position: "SRE"}})

	require.NoError(t, err)
	assert.Empty(t, client.calls)
	assert.False(t, state.Submitted)
	_, written := backend.docs[store.ChatsDocument]
	assert.False(t, written)
}

func TestService_AdapterErrorBecomesNotice(t *testing.T) {
	client := &fakeLLM{err: &llm.Error{Kind: llm.KindMissingCredential, Message: "API key not found. Please set NVIDIA_API_KEY."}}
	svc := newTestService(newMemBackend(nil), client)

	state, _, err := svc.Dispatch(context.Background(), loggedIn("alice"), AskDoubt{Query: "why?"})

	require.NoError(t, err)
	require.Len(t, state.Notices, 1)
	assert.Equal(t, "API key not found. Please set NVIDIA_API_KEY.", state.Notices[0].Message)
}

func TestService_DoubtAnswerDisplayed(t *testing.T) {
	client := &fakeLLM{text: "Because."}
	svc := newTestService(newMemBackend(nil), client)

	state, _, err := svc.Dispatch(context.Background(), loggedIn("alice"), AskDoubt{Query: "why?"})

	require.NoError(t, err)
	assert.Equal(t, "Because.", state.DoubtAnswer)
	assert.Equal(t, [][]llm.Message{llm.UserMessage("why?")}, client.calls)
}

func TestService_MalformedDocumentIsError(t *testing.T) {
	backend := newMemBackend(map[string]string{store.ChatsDocument: `[`})
	svc := newTestService(backend, &fakeLLM{})

	_, _, err := svc.Dispatch(context.Background(), loggedIn("alice"), CreateChat{Name: "x"})

	assert.Error(t, err)
}

func TestService_PersistFailureIsError(t *testing.T) {
	boom := errors.New("read-only")
	backend := newMemBackend(nil)
	backend.writeErr = boom
	svc := newTestService(backend, &fakeLLM{})

	_, _, err := svc.Dispatch(context.Background(), loggedIn("alice"), CreateChat{Name: "x"})

	assert.ErrorIs(t, err, boom)
}
