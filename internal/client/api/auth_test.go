package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/client/session"
	"github.com/dserranox/blschool-intranet/internal/common"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestState(t *testing.T) *session.State {
	t.Helper()
	store, err := session.OpenStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return session.NewState(store)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "mgarcia", req["username"])
		require.Equal(t, "secreta", req["password"])

		_ = json.NewEncoder(w).Encode(session.LoginResult{
			Token:       "tok-1",
			ExpiresAt:   time.Now().Add(time.Hour).UnixMilli(),
			TokenType:   "Bearer",
			Username:    "mgarcia",
			Authorities: []string{"ROLE_USER"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken(""))
	res, err := c.Login(context.Background(), "mgarcia", "secreta")
	require.NoError(t, err)
	require.Equal(t, "tok-1", res.Token)
	require.Equal(t, "mgarcia", res.Username)
	require.Equal(t, []string{"ROLE_USER"}, res.Authorities)
}

func TestLogin_BadCredentialsPropagated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, staticToken(""))
	_, err := c.Login(context.Background(), "mgarcia", "mala")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLoadPerfil_EnrichesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/perfil", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(session.Perfil{
			PersonaID: 7,
			Nombres:   "Carla",
			Apellidos: "García",
			Roles:     []string{"ADMIN"},
		})
	}))
	defer srv.Close()

	st := newTestState(t)
	require.NoError(t, st.Persist(session.LoginResult{Token: "tok-1", ExpiresAt: time.Now().Add(time.Hour).UnixMilli()}, "mgarcia"))

	c := New(srv.URL, srv.URL, st)
	c.LoadPerfil(context.Background(), st)

	snap := st.Current()
	require.Equal(t, "Miss Carla", snap.DisplayName)
	require.Equal(t, []string{"ADMIN"}, snap.Roles)
	require.Equal(t, int64(7), snap.PersonaID)
}

func TestLoadPerfil_FailureLeavesDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := newTestState(t)
	require.NoError(t, st.Persist(session.LoginResult{Token: "tok-1", ExpiresAt: time.Now().Add(time.Hour).UnixMilli()}, "mgarcia"))

	c := New(srv.URL, srv.URL, st)
	c.LoadPerfil(context.Background(), st)

	// enrichment is decorative: the session stays valid, name stays username
	snap := st.Current()
	require.True(t, snap.Authenticated)
	require.Equal(t, "mgarcia", snap.DisplayName)
}
