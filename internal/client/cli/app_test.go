package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dserranox/blschool-intranet/internal/client/api"
	"github.com/dserranox/blschool-intranet/internal/client/config"
	"github.com/dserranox/blschool-intranet/internal/client/session"
)

// newTestApp builds an App over a throwaway session store and a stub server.
func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()

	c := &config.Config{
		APIURL:        serverURL,
		LoginAPIURL:   serverURL,
		SessionDBPath: filepath.Join(t.TempDir(), "session.db"),
	}

	store, err := session.OpenStore(c.SessionDBPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a := &App{
		config: c,
		store:  store,
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &bytes.Buffer{},
		view:   session.RouteLogin,
	}
	a.state = session.NewState(store, session.WithForcedLogout(a.onForcedLogout))
	a.api = api.New(c.APIURL, c.LoginAPIURL, a.state)
	return a
}

func TestNavigate_Guards(t *testing.T) {
	a := newTestApp(t, "http://localhost:0")

	// anonymous: protected views redirect to login
	got := a.Navigate(viewAlumnos)
	require.Equal(t, session.RouteLogin, got)
	require.Equal(t, session.RouteLogin, a.view)
	require.Contains(t, a.out.(*bytes.Buffer).String(), "redirected to /login")

	err := a.state.Persist(session.LoginResult{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
		Username:  "mgarcia",
	}, "mgarcia")
	require.NoError(t, err)

	// authenticated: login view redirects to dashboard
	got = a.Navigate(session.RouteLogin)
	require.Equal(t, session.RouteDashboard, got)

	got = a.Navigate(viewComisiones)
	require.Equal(t, viewComisiones, got)
	require.Equal(t, viewComisiones, a.view)
}

func TestLogin_FullFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]any{
			"token":       "tok-123",
			"expiresAt":   time.Now().Add(time.Hour).UnixMilli(),
			"tokenType":   "Bearer",
			"username":    "mgarcia",
			"authorities": []string{"ADMIN"},
		})
	})
	mux.HandleFunc("/perfil", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"personaId": 7,
			"nombres":   "Carla",
			"apellidos": "Garcia",
			"username":  "mgarcia",
			"roles":     []string{"ADMIN"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	a := newTestApp(t, srv.URL)
	a.reader = bufio.NewReader(strings.NewReader("mgarcia\n"))

	origRead := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = origRead })

	err := a.Login(context.Background())
	require.NoError(t, err)

	snap := a.state.Current()
	require.True(t, snap.Authenticated)
	require.Equal(t, "mgarcia", snap.Username)
	require.Equal(t, "Miss Carla", snap.DisplayName)
	require.True(t, a.state.IsAdmin())
	require.Equal(t, int64(7), snap.PersonaID)
	require.Equal(t, session.RouteDashboard, a.view)
	require.Contains(t, a.out.(*bytes.Buffer).String(), "Welcome, Miss Carla")
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	a := newTestApp(t, srv.URL)
	a.reader = bufio.NewReader(strings.NewReader("mgarcia\n"))

	origRead := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("wrong"), nil }
	t.Cleanup(func() { readPassword = origRead })

	err := a.Login(context.Background())
	require.Error(t, err)
	require.False(t, a.state.Authenticated())
	require.Equal(t, session.RouteLogin, a.view)
	require.Contains(t, a.out.(*bytes.Buffer).String(), "Invalid username or password")
}

func TestLogout(t *testing.T) {
	a := newTestApp(t, "http://localhost:0")
	err := a.state.Persist(session.LoginResult{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
		Username:  "mgarcia",
	}, "mgarcia")
	require.NoError(t, err)
	a.view = session.RouteDashboard

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.state.Authenticated())
	require.Equal(t, session.RouteLogin, a.view)
}

func TestForcedLogout_ReturnsToLoginView(t *testing.T) {
	a := newTestApp(t, "http://localhost:0")
	a.view = session.RouteDashboard

	a.onForcedLogout()

	require.Equal(t, session.RouteLogin, a.view)
	require.Contains(t, a.out.(*bytes.Buffer).String(), "Session expired")
}
