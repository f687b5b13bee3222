package auth

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melmoskitchen/pantry/internal/api"
	"github.com/melmoskitchen/pantry/internal/session"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
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

func loginHandler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","username":"mel","role":"admin"}}`))
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"No token"}`))
			return
		}
		w.Write([]byte(`{"user":{"id":"u1","username":"mel","role":"admin"}}`))
	})
	return mux
}

func TestLoginPersistsTokenAndCachesUser(t *testing.T) {
	server := newTestServer(t, loginHandler(t))
	store := session.NewMemStore()
	require.NoError(t, store.SetTenantID("melmo"))

	authCtx := NewContext(api.New(server.URL, store), store)
	require.NoError(t, authCtx.Login(context.Background(), api.Credentials{Username: "mel", Password: "pw"}))

	assert.Equal(t, "tok-1", store.Token())
	assert.Equal(t, "melmo", store.TenantID())
	require.NotNil(t, authCtx.CurrentUser())
	assert.Equal(t, "mel", authCtx.CurrentUser().Username)
	assert.True(t, authCtx.Authenticated())
}

func TestLoginFailurePersistsNothing(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))
	store := session.NewMemStore()

	authCtx := NewContext(api.New(server.URL, store), store)
	err := authCtx.Login(context.Background(), api.Credentials{Username: "mel", Password: "bad"})

	require.EqualError(t, err, "Invalid username or password")
	assert.Empty(t, store.Token())
	assert.Nil(t, authCtx.CurrentUser())
}

func TestLogoutKeepsTenantByDefault(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.SetToken("tok-1"))
	require.NoError(t, store.SetTenantID("tearaja"))

	authCtx := NewContext(api.New("http://unused", store), store)
	require.NoError(t, authCtx.Logout())

	assert.Empty(t, store.Token())
	assert.Equal(t, "tearaja", store.TenantID(), "workspace stays sticky across logout")
	assert.Nil(t, authCtx.CurrentUser())
	assert.False(t, authCtx.Authenticated())
}

func TestLogoutClearsTenantWhenConfigured(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.SetToken("tok-1"))
	require.NoError(t, store.SetTenantID("tearaja"))

	authCtx := NewContext(api.New("http://unused", store), store, WithClearTenantOnLogout())
	require.NoError(t, authCtx.Logout())

	assert.Empty(t, store.TenantID())
}

func TestUpdateUserReplacesWholeObject(t *testing.T) {
	store := session.NewMemStore()
	authCtx := NewContext(api.New("http://unused", store), store)

	authCtx.UpdateUser(&api.User{ID: "u1", Username: "mel", Name: "Mel"})
	authCtx.UpdateUser(&api.User{ID: "u1", Username: "mel", Name: "Melissa"})

	assert.Equal(t, "Melissa", authCtx.CurrentUser().Name)
}

func TestHydrateFromPersistedToken(t *testing.T) {
	server := newTestServer(t, loginHandler(t))
	store := session.NewMemStore()
	require.NoError(t, store.SetToken("tok-1"))

	authCtx := NewContext(api.New(server.URL, store), store)
	require.NoError(t, authCtx.Hydrate(context.Background()))

	require.NotNil(t, authCtx.CurrentUser())
	assert.Equal(t, "mel", authCtx.CurrentUser().Username)
}

func TestHydrateFailureKeepsPersistedToken(t *testing.T) {
	var calls atomic.Int32
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	store := session.NewMemStore()
	require.NoError(t, store.SetToken("stale"))

	authCtx := NewContext(api.New(server.URL, store), store)
	err := authCtx.Hydrate(context.Background())

	require.Error(t, err)
	assert.Nil(t, authCtx.CurrentUser())
	// Stale token detection is server-side only; the client keeps it.
	assert.Equal(t, "stale", store.Token())
	assert.Equal(t, int32(1), calls.Load())
}

func TestHydrateWithoutTokenIsNoop(t *testing.T) {
	store := session.NewMemStore()
	authCtx := NewContext(api.New("http://unused", store), store)

	require.NoError(t, authCtx.Hydrate(context.Background()))
	assert.Nil(t, authCtx.CurrentUser())
}
