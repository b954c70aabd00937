// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetURL(t *testing.T) {
	tests := []struct {
		name    string
		filters []writeFilter
		want    string
	}{
		{
			name: "no filters",
			want: "http://b/api/rows",
		},
		{
			name:    "eq on id is path style",
			filters: []writeFilter{{column: "id", op: "eq", value: "abc-123"}},
			want:    "http://b/api/rows/abc-123",
		},
		{
			name:    "path segment is escaped",
			filters: []writeFilter{{column: "id", op: "eq", value: "a/b c"}},
			want:    "http://b/api/rows/a%2Fb%20c",
		},
		{
			name:    "eq on other column is query style",
			filters: []writeFilter{{column: "section_key", op: "eq", value: "hero"}},
			want:    "http://b/api/rows?section_key=eq.hero",
		},
		{
			name:    "neq is always query style",
			filters: []writeFilter{{column: "id", op: "neq", value: "abc"}},
			want:    "http://b/api/rows?id=neq.abc",
		},
		{
			name: "only the first filter applies",
			filters: []writeFilter{
				{column: "id", op: "eq", value: "abc"},
				{column: "status", op: "eq", value: "draft"},
			},
			want: "http://b/api/rows/abc",
		},
		{
			name:    "numeric id coerces cleanly",
			filters: []writeFilter{{column: "id", op: "eq", value: 42.0}},
			want:    "http://b/api/rows/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, targetURL("http://b/api/rows", tt.filters))
		})
	}
}

func TestInsertPostsToReadPrefix(t *testing.T) {
	h := &capturingHandler{body: `{"data": {"id": "new-1"}}`}
	c, _ := newServerClient(t, h)

	res := c.From("cms_products").Insert(map[string]any{"name": "Flat White"}).Execute(context.Background())
	require.Nil(t, res.Error)
	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "/rest/v1/cms_products", h.path)

	row, ok := res.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new-1", row["id"])
}

func TestUpdateUsesWritePrefix(t *testing.T) {
	h := &capturingHandler{body: `{"data": {"id": "p1"}}`}
	srv := newHandlerServer(t, h)
	c := New(Config{BaseURL: srv.URL, AnonKey: "service-key", WritePrefix: "/api"})

	res := c.From("cms_products").
		Update(map[string]any{"price": 4.5}).
		Eq("id", "p1").
		Execute(context.Background())
	require.Nil(t, res.Error)
	assert.Equal(t, http.MethodPatch, h.method)
	assert.Equal(t, "/api/cms_products/p1", h.path)
}

func TestUpdateQueryStyleTargeting(t *testing.T) {
	h := &capturingHandler{body: `{"data": {}}`}
	c, _ := newServerClient(t, h)

	res := c.From("cms_sections").
		Update(map[string]any{"content": map[string]any{}}).
		Eq("section_key", "hero").
		Execute(context.Background())
	require.Nil(t, res.Error)
	assert.Equal(t, "/rest/v1/cms_sections", h.path)
	assert.Equal(t, "section_key=eq.hero", h.query)
}

func TestDeleteSuccessHasNoPayload(t *testing.T) {
	h := &capturingHandler{status: http.StatusNoContent, contentType: "text/plain"}
	c, _ := newServerClient(t, h)

	res := c.From("cms_products").Delete().Eq("id", "p1").Execute(context.Background())
	assert.Nil(t, res.Error)
	assert.Nil(t, res.Data)
	assert.Equal(t, http.MethodDelete, h.method)
	assert.Equal(t, "/rest/v1/cms_products/p1", h.path)
}

func TestDeleteErrorIsDecoded(t *testing.T) {
	h := &capturingHandler{
		status: http.StatusNotFound,
		body:   `{"message": "row not found"}`,
	}
	c, _ := newServerClient(t, h)

	res := c.From("cms_products").Delete().Eq("id", "missing").Execute(context.Background())
	require.NotNil(t, res.Error)
	assert.Equal(t, "row not found", res.Error.Message)
	assert.Equal(t, http.StatusNotFound, res.Error.StatusCode)
}

func TestDeleteNeqTargeting(t *testing.T) {
	h := &capturingHandler{status: http.StatusNoContent, contentType: "text/plain"}
	c, _ := newServerClient(t, h)

	res := c.From("cms_products").Delete().Neq("category", "protected").Execute(context.Background())
	assert.Nil(t, res.Error)
	assert.Equal(t, "/rest/v1/cms_products", h.path)
	assert.Equal(t, "category=neq.protected", h.query)
}
