package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melmoskitchen/pantry/internal/session"
)

func TestLoginDecodesTokenAndUser(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "mel", creds.Username)

		w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","username":"mel","role":"admin"}}`))
	}))

	client := New(server.URL, session.NewMemStore())
	resp, err := client.Login(context.Background(), Credentials{Username: "mel", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, "mel", resp.User.Username)
	assert.Equal(t, RoleAdmin, resp.User.Role)
}

func TestLoginSurfacesBackendMessage(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))

	client := New(server.URL, session.NewMemStore())
	_, err := client.Login(context.Background(), Credentials{Username: "mel", Password: "wrong"})

	require.Error(t, err)
	assert.EqualError(t, err, "Invalid username or password")
}

func TestErrorFallsBackToErrorFieldThenRawBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"duplicate username"}`, "duplicate username"},
		{"raw body", `oops`, "request failed with status 400: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))

			client := New(server.URL, session.NewMemStore())
			_, err := client.ListUsers(context.Background())
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestUpdateProfileReturnsServerConfirmedUser(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "PUT", r.Method)
		require.Equal(t, "/auth/profile", r.URL.Path)

		var update ProfileUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))

		// The server is authoritative: it may normalize fields.
		w.Write([]byte(`{"user":{"id":"u1","username":"mel","name":"Melissa","role":"admin"}}`))
	}))

	client := New(server.URL, session.NewMemStore())
	user, err := client.UpdateProfile(context.Background(), ProfileUpdate{Name: "melissa"})
	require.NoError(t, err)
	assert.Equal(t, "Melissa", user.Name)
}

func TestSetAvatarNilSendsExplicitNull(t *testing.T) {
	var body map[string]json.RawMessage
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"user":{"id":"u1","username":"mel","role":"admin"}}`))
	}))

	client := New(server.URL, session.NewMemStore())
	_, err := client.SetAvatar(context.Background(), nil)
	require.NoError(t, err)

	raw, ok := body["avatarUrl"]
	require.True(t, ok, "avatarUrl must be present")
	assert.Equal(t, "null", string(raw))
}

func TestUserManagementPaths(t *testing.T) {
	var gotMethod, gotPath string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"user":{"id":"u2","username":"staffer","role":"staff"},"users":[]}`))
	}))

	client := New(server.URL, session.NewMemStore())
	ctx := context.Background()

	_, err := client.Register(ctx, NewUser{Username: "staffer", Password: "pw", Role: RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, "POST /auth/register", gotMethod+" "+gotPath)

	_, err = client.UpdateUser(ctx, "u2", UserUpdate{Username: "staffer", Role: RoleStaff})
	require.NoError(t, err)
	assert.Equal(t, "PUT /auth/users/u2", gotMethod+" "+gotPath)

	require.NoError(t, client.DeleteUser(ctx, "u2"))
	assert.Equal(t, "DELETE /auth/users/u2", gotMethod+" "+gotPath)
}

func TestChangePasswordBody(t *testing.T) {
	var body map[string]string
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "PUT /auth/profile/password", r.Method+" "+r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))

	client := New(server.URL, session.NewMemStore())
	require.NoError(t, client.ChangePassword(context.Background(), "old", "new"))

	assert.Equal(t, "old", body["currentPassword"])
	assert.Equal(t, "new", body["newPassword"])
}

func TestInventoryEndpoints(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			w.Write([]byte(`{"categories":[{"id":"c1","name":"Spices","productCount":12}]}`))
		case "/categories/c1/products":
			w.Write([]byte(`{"products":[{"id":"p1","name":"Cardamom","unit":"kg","quantity":2.5,"lowStock":1}]}`))
		case "/history":
			w.Write([]byte(`{"history":[{"id":"h1","product":"Cardamom","action":"out","quantity":0.5,"actor":"mel"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))

	client := New(server.URL, session.NewMemStore())
	ctx := context.Background()

	categories, err := client.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 12, categories[0].ProductCount)

	products, err := client.Products(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cardamom", products[0].Name)

	history, err := client.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "out", history[0].Action)
}
