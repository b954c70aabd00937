// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Auth endpoint paths. registerPath is the primary sign-up endpoint;
// legacySignupPath is probed once when the primary is unreachable at the
// transport level (older deployments only expose the compatibility route).
const (
	registerPath     = "/auth/register"
	legacySignupPath = "/auth/v1/signup"
	loginPath        = "/auth/login"
	oauthPathPrefix  = "/auth/v1/oauth/"
)

// userInfoPaths are the candidate whoami endpoints, probed in order.
// Deployments disagree on where the identity route lives.
var userInfoPaths = []string{"/auth/me", "/auth/v1/me", "/user/me"}

// Auth performs sign-up/sign-in/sign-out and identity lookup against the
// backend's auth endpoints, updating the shared session store.
type Auth struct {
	c *Client
}

// Auth returns the auth facade for this client.
func (c *Client) Auth() *Auth { return &Auth{c: c} }

// jsonRoundTrip performs one request and decodes the JSON body regardless of
// status. Transport failures and undecodable bodies come back as the error;
// HTTP-level failures come back as (status, decoded, nil) so callers can
// branch on specific codes.
func (a *Auth) jsonRoundTrip(ctx context.Context, method, rawURL string, payload any, bearer string) (int, any, error) {
	resp, err := a.c.send(ctx, method, rawURL, payload, bearer)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode auth response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, decoded, nil
}

// captureSession extracts the access token and user identity from a
// successful auth response and persists both. The token arrives under either
// of two field names; the user either as an explicit object or as loose
// email/id fields a minimal record is synthesized from.
func (a *Auth) captureSession(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		return
	}

	token := ""
	for _, key := range []string{"accessToken", "access_token"} {
		if s, ok := m[key].(string); ok && s != "" {
			token = s
			break
		}
	}
	if token != "" {
		_ = a.c.sessions.SetToken(token)
	}

	if user, ok := m["user"].(map[string]any); ok {
		_ = a.c.sessions.SetCachedUser(user)
		return
	}
	if email, ok := m["email"].(string); ok && email != "" {
		id := "current"
		if s, ok := m["id"].(string); ok && s != "" {
			id = s
		}
		_ = a.c.sessions.SetCachedUser(map[string]any{"email": email, "id": id})
	}
}

// SignUp registers a new account. When the backend answers 409 (the account
// already exists) the call transparently retries as SignIn with the same
// credentials and returns that result. A transport-level failure on the
// primary endpoint triggers exactly one fallback POST to the legacy signup
// route before giving up. name defaults to the email's local part.
func (a *Auth) SignUp(ctx context.Context, email, password, name string) Result {
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	payload := map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	}

	status, body, err := a.jsonRoundTrip(ctx, http.MethodPost, a.c.baseURL+registerPath, payload, a.c.anonKey)
	if err != nil {
		status, body, err = a.jsonRoundTrip(ctx, http.MethodPost, a.c.baseURL+legacySignupPath, payload, a.c.anonKey)
		if err != nil {
			return Result{Error: transportError(err)}
		}
	}

	if status == http.StatusConflict {
		return a.SignIn(ctx, email, password)
	}
	if status < 200 || status >= 300 {
		return Result{Error: errorInfoFrom(status, body)}
	}

	data := unwrapData(body)
	a.captureSession(data)
	return Result{Data: data}
}

// SignIn exchanges credentials for a session token and persists it.
func (a *Auth) SignIn(ctx context.Context, email, password string) Result {
	payload := map[string]string{"email": email, "password": password}

	status, body, err := a.jsonRoundTrip(ctx, http.MethodPost, a.c.baseURL+loginPath, payload, a.c.anonKey)
	if err != nil {
		return Result{Error: transportError(err)}
	}
	if status < 200 || status >= 300 {
		return Result{Error: errorInfoFrom(status, body)}
	}

	data := unwrapData(body)
	a.captureSession(data)
	return Result{Data: data}
}

// SignOut clears the persisted session. It is a local operation only: the
// backend keeps no server-side session to invalidate, so this always
// succeeds.
func (a *Auth) SignOut() Result {
	_ = a.c.sessions.Clear()
	return Result{}
}

// authenticated reports whether a session token (as opposed to the
// anonymous fallback key) is persisted.
func (a *Auth) authenticated() bool {
	token := a.c.sessions.Token()
	return token != "" && token != a.c.anonKey
}

// GetUser resolves the current identity. With no persisted session it falls
// back to the cached record when present, else a non-fatal "no session"
// error. With a session it probes the candidate whoami endpoints in order
// and caches the first success. When every probe fails it degrades: first to
// the cached record, then to a placeholder marked authenticated; a live
// token is sufficient evidence of authentication even when identity lookup
// is down.
func (a *Auth) GetUser(ctx context.Context) Result {
	if !a.authenticated() {
		if cached := a.c.sessions.CachedUser(); cached != nil {
			return Result{Data: cached}
		}
		return Result{Error: &ErrorInfo{Message: "no session token"}}
	}

	token := a.c.sessions.Token()
	for _, path := range userInfoPaths {
		status, body, err := a.jsonRoundTrip(ctx, http.MethodGet, a.c.baseURL+path, nil, token)
		if err != nil || status < 200 || status >= 300 {
			continue
		}
		user := unwrapData(body)
		if m, ok := user.(map[string]any); ok {
			_ = a.c.sessions.SetCachedUser(m)
		}
		return Result{Data: user}
	}

	if cached := a.c.sessions.CachedUser(); cached != nil {
		return Result{Data: cached}
	}
	return Result{Data: map[string]any{"id": "authenticated", "authenticated": true}}
}

// AuthorizeURL builds the provider authorize endpoint for an OAuth sign-in.
// The caller is expected to navigate there (the CLI opens a browser); no
// result ever comes back through this client.
func (a *Auth) AuthorizeURL(provider, redirectTo string) string {
	u := a.c.baseURL + oauthPathPrefix + url.PathEscape(provider)
	if redirectTo != "" {
		u += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	return u
}
