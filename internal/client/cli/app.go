// Package cli implements the terminal client of the school intranet: a
// read-eval-print loop whose views mirror the original web routes and whose
// navigation is gated by the session guards.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dserranox/blschool-intranet/internal/client/api"
	"github.com/dserranox/blschool-intranet/internal/client/config"
	"github.com/dserranox/blschool-intranet/internal/client/session"
)

// Views reachable from the REPL. Login and dashboard route names come from
// the session package because the guards redirect to them.
const (
	viewAlumnos    = "/alumnos"
	viewDocentes   = "/docentes"
	viewCursos     = "/cursos"
	viewComisiones = "/comisiones"
)

type App struct {
	config *config.Config
	store  *session.Store
	state  *session.State
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
	view   string
}

func NewApp(c *config.Config) (*App, error) {
	a := &App{
		config: c,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		view:   session.RouteLogin,
	}

	store, err := session.OpenStore(c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}
	a.store = store
	a.state = session.NewState(store, session.WithForcedLogout(a.onForcedLogout))
	a.api = api.New(c.APIURL, c.LoginAPIURL, a.state)

	// resume a persisted session from a previous run
	if a.state.Authenticated() {
		a.view = session.RouteDashboard
	}
	return a, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.state.Authenticated()
}

// Navigate moves the REPL to route, consulting the session guards first.
// The login view is guarded by RequireAnon, everything else by RequireAuth;
// a denial redirects and reports the detour.
func (a *App) Navigate(route string) string {
	var d session.Decision
	if route == session.RouteLogin {
		d = session.RequireAnon(a.state)
	} else {
		d = session.RequireAuth(a.state)
	}
	if !d.Allow {
		fmt.Fprintf(a.out, "redirected to %s\n", d.Redirect)
		route = d.Redirect
	}
	a.view = route
	return route
}

// onForcedLogout runs after the auto-logout scheduler cleared the session.
func (a *App) onForcedLogout() {
	fmt.Fprintln(a.out, "Session expired, please log in again")
	a.view = session.RouteLogin
}

func (a *App) status() string {
	snap := a.state.Current()
	who := "guest"
	if snap.Authenticated && snap.DisplayName != "" {
		who = snap.DisplayName
	}
	return fmt.Sprintf("%s %s", who, a.view)
}
