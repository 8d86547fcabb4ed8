package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dserranox/blschool-intranet/internal/client/session"
	"github.com/dserranox/blschool-intranet/internal/common"
)

// Login drives the interactive login flow: credential prompt, the login
// call, session persistence, then the best-effort profile fetch. The
// profile is fetched only after Persist completed, so an authenticated
// session never races its own enrichment.
func (a *App) Login(ctx context.Context) error {
	if d := session.RequireAnon(a.state); !d.Allow {
		fmt.Fprintln(a.out, "Already logged in")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Fprintln(a.out, "Invalid username or password")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	if err := a.state.Persist(res, username); err != nil {
		fmt.Fprintf(a.out, "Unexpected server response: %v\n", err)
		return err
	}

	a.api.LoadPerfil(ctx, a.state)

	a.Navigate(session.RouteDashboard)
	fmt.Fprintf(a.out, "Welcome, %s\n", a.state.Current().DisplayName)
	return nil
}

// Logout clears the session and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.state.Clear(); err != nil {
		return err
	}
	a.Navigate(session.RouteLogin)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami prints the observable session fields.
func (a *App) Whoami(ctx context.Context) error {
	snap := a.state.Current()
	if !snap.Authenticated {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Username:     %s\n", snap.Username)
	fmt.Fprintf(a.out, "Display name: %s\n", snap.DisplayName)
	fmt.Fprintf(a.out, "Roles:        %s\n", strings.Join(snap.Roles, ", "))
	if snap.PersonaID > 0 {
		fmt.Fprintf(a.out, "Persona ID:   %d\n", snap.PersonaID)
	}
	if a.state.IsAdmin() {
		fmt.Fprintln(a.out, "Administrator capability enabled")
	}
	return nil
}
