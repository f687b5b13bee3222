package tui

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/auth"
	"github.com/melmoskitchen/pantry/internal/router"
	"github.com/melmoskitchen/pantry/internal/session"
)

func newLoginTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("unable to start test server: %v", err)
	}

	server := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	server.Start()
	t.Cleanup(server.Close)
	return server
}

func TestWorkspaceSelectionPersistsImmediately(t *testing.T) {
	store := session.NewMemStore()
	m := NewLoginModel(nil, store)

	m, _ = m.Update(key("enter"))

	assert.Equal(t, "melmo", store.TenantID())
	assert.Equal(t, stepCredentials, m.step)
}

func TestLoginFlowPersistsTokenAndNavigatesHome(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "melmo", r.Header.Get("X-Tenant-ID"))
		w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","username":"mel","role":"admin"}}`))
	})
	server := newLoginTestServer(t, mux)

	store := session.NewMemStore()
	authCtx := auth.NewContext(api.New(server.URL, store), store)
	m := NewLoginModel(authCtx, store)

	m, _ = m.Update(key("enter")) // pick the first workspace
	m.username.SetValue("mel")
	m.password.SetValue("pw")

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(loginDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, "tok-1", store.Token())

	m, cmd = m.Update(done)
	require.NotNil(t, cmd)
	nav, ok := cmd().(navigateMsg)
	require.True(t, ok)
	assert.Equal(t, router.RouteDashboard, nav.route)
}

func TestLoginFailureShowsBackendMessageInline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	})
	server := newLoginTestServer(t, mux)

	store := session.NewMemStore()
	authCtx := auth.NewContext(api.New(server.URL, store), store)
	m := NewLoginModel(authCtx, store)

	m, _ = m.Update(key("enter"))
	m.username.SetValue("mel")
	m.password.SetValue("wrong")

	m, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)

	m, _ = m.Update(cmd())
	assert.Contains(t, m.errMsg, "Invalid credentials")
	assert.Empty(t, store.Token())
	assert.False(t, m.submitting)
}

func TestBackToPickerResetsFormButKeepsPersistedWorkspace(t *testing.T) {
	store := session.NewMemStore()
	m := NewLoginModel(nil, store)

	m, _ = m.Update(key("enter"))
	m.username.SetValue("mel")
	m.password.SetValue("pw")

	m, _ = m.Update(key("esc"))

	assert.Equal(t, stepTenantSelect, m.step)
	assert.Empty(t, m.username.Value())
	assert.Empty(t, m.password.Value())
	assert.Equal(t, "melmo", store.TenantID())
}

func TestSubmitWhileInFlightIsIgnored(t *testing.T) {
	store := session.NewMemStore()
	m := NewLoginModel(nil, store)

	m, _ = m.Update(key("enter"))
	m.submitting = true

	m, cmd := m.Update(key("enter"))
	assert.Nil(t, cmd)
}
