package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuards_Unauthenticated(t *testing.T) {
	s, _ := newTestState(t)

	require.Equal(t, Decision{Redirect: RouteLogin}, RequireAuth(s))
	require.Equal(t, Decision{Allow: true}, RequireAnon(s))
}

func TestGuards_Authenticated(t *testing.T) {
	s, _ := newTestState(t)
	require.NoError(t, s.Persist(LoginResult{Token: "abc", ExpiresAt: futureMillis(time.Hour)}, "mgarcia"))

	require.Equal(t, Decision{Allow: true}, RequireAuth(s))
	require.Equal(t, Decision{Redirect: RouteDashboard}, RequireAnon(s))
}
