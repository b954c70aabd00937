// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package radb implements a client for the RaDB backend-as-a-service HTTP API.
// It exposes table CRUD through chainable, PostgREST-style builders, plus auth
// and storage facades sharing one session store.
//
// Every terminal operation resolves to a uniform Result{Data, Error} envelope;
// expected failures (network errors, HTTP error responses) populate the Error
// field and are never returned as Go errors. Builders accumulate state without
// synchronization, so each goroutine must construct its own.
package radb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brewkit/cli/internal/session"
)

// DefaultRestPrefix is the table CRUD path prefix used by RaDB deployments.
const DefaultRestPrefix = "/rest/v1"

// Config describes a client. The anonymous-key and privileged-key variants
// are the same implementation under two configs: the privileged one carries
// the service key as AnonKey, a memory-only session store, and (for legacy
// deployments) the "/api" write prefix.
type Config struct {
	// BaseURL is the backend root, e.g. "https://radb.example.com/api/v1".
	BaseURL string
	// AnonKey is the static API key used as the bearer for unauthenticated
	// calls and as the pre-authentication bearer on auth endpoints.
	AnonKey string
	// RestPrefix is the path prefix for select/insert. Default "/rest/v1".
	RestPrefix string
	// WritePrefix is the path prefix for update/delete. Defaults to
	// RestPrefix; privileged deployments historically route writes via "/api".
	WritePrefix string
	// Sessions supplies the bearer token for table and storage calls and
	// caches the authenticated identity. Defaults to a process-local store
	// seeded with AnonKey.
	Sessions session.Store
	// HTTPClient overrides the transport. Default has a 10-second timeout.
	HTTPClient *http.Client
}

// Client talks to one RaDB deployment. Safe for concurrent use; the builders
// it hands out are not.
type Client struct {
	baseURL     string
	anonKey     string
	restPrefix  string
	writePrefix string
	sessions    session.Store
	client      *http.Client
}

// New creates a Client from cfg, applying defaults for unset fields.
func New(cfg Config) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		anonKey:     cfg.AnonKey,
		restPrefix:  cfg.RestPrefix,
		writePrefix: cfg.WritePrefix,
		sessions:    cfg.Sessions,
		client:      cfg.HTTPClient,
	}
	if c.restPrefix == "" {
		c.restPrefix = DefaultRestPrefix
	}
	if c.writePrefix == "" {
		c.writePrefix = c.restPrefix
	}
	if c.sessions == nil {
		c.sessions = session.NewMemory(cfg.AnonKey)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: 10 * time.Second}
	}
	return c
}

// Sessions exposes the session store the client was built with.
func (c *Client) Sessions() session.Store { return c.sessions }

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.baseURL }

// bearer returns the token attached to table and storage requests: the
// persisted session token when one exists, the anonymous key otherwise.
// Read once per request; concurrent sign-in/sign-out may race an in-flight
// request with a stale token (last writer wins).
func (c *Client) bearer() string { return c.sessions.Token() }

// readURL builds the URL for select/insert against a collection.
func (c *Client) readURL(collection string) string {
	return c.baseURL + c.restPrefix + "/" + collection
}

// writeURL builds the URL for update/delete against a collection.
func (c *Client) writeURL(collection string) string {
	return c.baseURL + c.writePrefix + "/" + collection
}

// send issues one HTTP request with the given bearer. payload, when non-nil,
// is marshaled as a JSON body. The caller owns the response body.
func (c *Client) send(ctx context.Context, method, rawURL string, payload any, bearer string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json, */*")
	return c.client.Do(req)
}

// exec runs a request end to end and folds the response into the envelope.
func (c *Client) exec(ctx context.Context, method, rawURL string, payload any) Result {
	resp, err := c.send(ctx, method, rawURL, payload, c.bearer())
	if err != nil {
		return Result{Error: transportError(err)}
	}
	defer resp.Body.Close()
	return decodeResult(resp)
}

// isJSONContentType reports whether ct denotes a JSON body.
func isJSONContentType(ct string) bool {
	lower := strings.ToLower(ct)
	return strings.Contains(lower, "application/json") || strings.Contains(lower, "+json")
}

// decodeResult turns an HTTP response into the uniform envelope. A non-JSON
// body is a transport-class failure: the status code and a truncated excerpt
// become a synthetic error. A JSON error body is passed through as the error.
// A JSON success body is normalized (top-level "data" unwrapped).
func decodeResult(resp *http.Response) Result {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Error: transportError(err)}
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		excerpt := string(body)
		if len(excerpt) > 100 {
			excerpt = excerpt[:100]
		}
		return Result{Error: &ErrorInfo{
			Message:    fmt.Sprintf("unexpected non-JSON response (status %d): %s", resp.StatusCode, excerpt),
			StatusCode: resp.StatusCode,
		}}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Result{Error: &ErrorInfo{
			Message:    fmt.Sprintf("malformed JSON response (status %d)", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Error: errorInfoFrom(resp.StatusCode, decoded)}
	}
	return Result{Data: unwrapData(decoded)}
}

// From returns a handle on a named collection.
func (c *Client) From(collection string) *Collection {
	return &Collection{client: c, name: collection}
}

// Collection is a named-table handle from which builders are created.
type Collection struct {
	client *Client
	name   string
}

// Select starts a read query. With no arguments (or a single "*") every
// column is returned and no select parameter is emitted; otherwise the given
// columns are requested as a comma-separated list.
func (t *Collection) Select(columns ...string) *QueryBuilder {
	qb := &QueryBuilder{client: t.client, collection: t.name}
	if len(columns) > 0 {
		qb.selectColumns(strings.Join(columns, ","))
	}
	return qb
}

// Insert starts an insert of one row object or an array of rows.
func (t *Collection) Insert(row any) *InsertBuilder {
	return &InsertBuilder{client: t.client, collection: t.name, row: row}
}

// Update starts a partial update carrying the given fields.
func (t *Collection) Update(fields any) *UpdateBuilder {
	return &UpdateBuilder{client: t.client, collection: t.name, fields: fields}
}

// Delete starts a delete.
func (t *Collection) Delete() *DeleteBuilder {
	return &DeleteBuilder{client: t.client, collection: t.name}
}
