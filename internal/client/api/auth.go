package api

import (
	"context"
	"net/http"

	"github.com/dserranox/blschool-intranet/internal/client/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login issues the credential check against the auth endpoint and returns
// the raw server response. Transport and credential errors are propagated
// untouched; interpreting them is the caller's job.
func (c *Client) Login(ctx context.Context, username, password string) (session.LoginResult, error) {
	var res session.LoginResult
	err := c.doJSON(ctx, http.MethodPost, c.loginURL+"/auth/login", nil, loginRequest{Username: username, Password: password}, &res)
	return res, err
}

// LoadPerfil fetches the extended profile and merges it into the session
// state. Best effort: on any failure the session keeps the display name
// already defaulted by Persist, and no error surfaces to the caller.
func (c *Client) LoadPerfil(ctx context.Context, st *session.State) {
	var p session.Perfil
	if err := c.get(ctx, "/perfil", nil, &p); err != nil {
		// Si falla, se queda con el username.
		return
	}
	_ = st.Enrich(p)
}
