// Package api implements the REST client for the intranet backend. One
// Client serves every feature area (auth, alumnos, docentes, cursos,
// comisiones, dashboard); authenticated requests carry a bearer token
// obtained from the session state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dserranox/blschool-intranet/internal/common"
)

// TokenSource supplies the current bearer token; "" means unauthenticated.
// The session state satisfies this interface.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL  string // entity endpoints, e.g. https://host/api
	loginURL string // auth endpoints, may differ from baseURL
	http     *http.Client
	tokens   TokenSource
}

// New builds a Client for the given endpoint bases.
func New(baseURL, loginURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		loginURL: strings.TrimRight(loginURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		tokens:   tokens,
	}
}

// doJSON performs one request and decodes the JSON response into out (when
// out is non-nil). Non-2xx statuses map to the shared sentinel errors.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, query url.Values, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return common.ErrorForbidden
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrorNotFound
	case resp.StatusCode == http.StatusConflict:
		return common.ErrorAlreadyExists
	case resp.StatusCode >= 400:
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, c.baseURL+path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, c.baseURL+path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, c.baseURL+path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodPatch, c.baseURL+path, nil, nil, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, c.baseURL+path, nil, nil, nil)
}
