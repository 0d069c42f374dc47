package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/app/llm"
	"interviewbot/internal/app/session"
	"interviewbot/internal/app/store"
	"interviewbot/internal/app/user"
	"interviewbot/internal/configs"
	"interviewbot/internal/view"
)

type fakeLLM struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (f *fakeLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text, f.err
}

type testApp struct {
	srv       *httptest.Server
	client    *http.Client
	llm       *fakeLLM
	usersPath string
	chatsPath string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dir := t.TempDir()
	usersPath := filepath.Join(dir, "users.json")
	chatsPath := filepath.Join(dir, "chats.json")
	require.NoError(t, os.WriteFile(usersPath, []byte(`{"alice":"pw1"}`), 0o644))

	fake := &fakeLLM{text: "Sure!\n**Question 1\nWhat is a goroutine?\n**Question 2\nWhat is a channel?"}
	renderer, err := view.New()
	require.NoError(t, err)

	sessions := session.NewManager(time.Hour)
	t.Cleanup(sessions.Shutdown)

	deps := &AppDeps{
		Config: &configs.AppConfig{
			Environment: "development",
			JWTSecret:   "test-secret",
			SessionTTL:  time.Hour,
		},
		Sessions:  sessions,
		Interview: interview.NewService(store.NewFileBackend(usersPath, chatsPath), fake, user.Plaintext{}),
		View:      renderer,
	}

	router, stop := Router(deps)
	t.Cleanup(stop)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		srv:       srv,
		client:    &http.Client{Jar: jar},
		llm:       fake,
		usersPath: usersPath,
		chatsPath: chatsPath,
	}
}

func (a *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()
	res, err := a.client.Get(a.srv.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func (a *testApp) post(t *testing.T, path, signals string) string {
	t.Helper()
	r, err := http.NewRequest(http.MethodPost, a.srv.URL+path, strings.NewReader(signals))
	require.NoError(t, err)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Datastar-Request", "true")

	res, err := a.client.Do(r)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"ok"`)
}

func TestPage_LoggedOut(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Login / Signup")
	assert.Contains(t, body, view.DatastarURL)
}

func TestPage_MalformedStoreIs500(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.WriteFile(app.usersPath, []byte(`{"alice":`), 0o644))

	status, _ := app.get(t, "/")

	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	body := app.post(t, "/ui/login", `{"username":"alice","password":"wrong"}`)

	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "Invalid credentials! Please Sign Up.")
	assert.Contains(t, body, "Login / Signup")
}

func TestSignup_Duplicate(t *testing.T) {
	app := newTestApp(t)

	body := app.post(t, "/ui/signup", `{"username":"alice","password":"other"}`)

	assert.Contains(t, body, "Username already exists!")
	assert.JSONEq(t, `{"alice":"pw1"}`, readFile(t, app.usersPath))
}

func TestFullInterviewFlow(t *testing.T) {
	app := newTestApp(t)

	body := app.post(t, "/ui/signup", `{"username":"bob","password":"pw2"}`)
	assert.Contains(t, body, "Signup successful! Please log in.")
	assert.Contains(t, readFile(t, app.usersPath), `"bob"`)

	body = app.post(t, "/ui/login", `{"username":"bob","password":"pw2"}`)
	assert.Contains(t, body, "Hello, bob")
	assert.Contains(t, body, "datastar-patch-signals")

	body = app.post(t, "/ui/chats", `{"chatname":"backend"}`)
	assert.Contains(t, body, "backend")
	assert.Contains(t, body, "Enter Candidate Details")
	assert.JSONEq(t, `{"bob":[{"name":"backend","questions":[]}]}`, readFile(t, app.chatsPath))

	body = app.post(t, "/ui/generate", `{"cname":"Ada","email":"ada@example.com","phone":"0123456789","position":"Backend Engineer","techstack":"Go"}`)
	assert.Contains(t, body, "Question 1")
	assert.Contains(t, body, "Question 2")
	assert.NotContains(t, body, "Enter Candidate Details")
	assert.Equal(t, 1, app.llm.calls)
	assert.Contains(t, readFile(t, app.chatsPath), "What is a goroutine?")

	app.llm.text = "A goroutine is a lightweight thread."
	body = app.post(t, "/ui/doubt", `{"doubt":"What is a goroutine?"}`)
	assert.Contains(t, body, "Chatbot Response")
	assert.Contains(t, body, "A goroutine is a lightweight thread.")

	body = app.post(t, "/ui/chats/0/select", `{}`)
	assert.Contains(t, body, "Question 1")

	body = app.post(t, "/ui/chats/delete", `{}`)
	assert.NotContains(t, body, "Question 1")
	assert.JSONEq(t, `{"bob":[]}`, readFile(t, app.chatsPath))

	_, page := app.get(t, "/")
	assert.Contains(t, page, "Hello, bob")

	body = app.post(t, "/ui/logout", `{}`)
	assert.Contains(t, body, "Login / Signup")
}

func TestGenerate_MissingFieldsNeverCallsModel(t *testing.T) {
	app := newTestApp(t)
	app.post(t, "/ui/login", `{"username":"alice","password":"pw1"}`)

	body := app.post(t, "/ui/generate", `{"position":"","techstack":"Go"}`)

	assert.Contains(t, body, "Tech stack and role are required.")
	assert.Zero(t, app.llm.calls)
}

func TestGenerate_MissingCredentialNotice(t *testing.T) {
	app := newTestApp(t)
	app.llm.err = &llm.Error{Kind: llm.KindMissingCredential, Message: "API key not found. Please set NVIDIA_API_KEY."}
	app.post(t, "/ui/login", `{"username":"alice","password":"pw1"}`)

	body := app.post(t, "/ui/generate", `{"position":"SRE","techstack":"Go"}`)

	assert.Contains(t, body, "API key not found. Please set NVIDIA_API_KEY.")
	assert.Contains(t, body, "Enter Candidate Details")
}

func TestActionWithoutLogin(t *testing.T) {
	app := newTestApp(t)

	body := app.post(t, "/ui/chats", `{"chatname":"x"}`)

	assert.Contains(t, body, "Please log in to continue.")
	_, err := os.Stat(app.chatsPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSelectChat_BadIndex(t *testing.T) {
	app := newTestApp(t)
	app.post(t, "/ui/login", `{"username":"alice","password":"pw1"}`)

	body := app.post(t, "/ui/chats/abc/select", `{}`)

	assert.Contains(t, body, "Invalid request parameters.")
}

func TestSessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	app.post(t, "/ui/login", `{"username":"alice","password":"pw1"}`)

	res, err := http.Get(app.srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "Login / Signup")
}
