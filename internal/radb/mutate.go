// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"context"
	"net/http"
	"net/url"
)

// InsertBuilder performs a single POST of one row object or an array of rows.
type InsertBuilder struct {
	client     *Client
	collection string
	row        any
}

// Execute performs the insert. POST is not idempotent against the backend;
// repeating Execute repeats the insert.
func (b *InsertBuilder) Execute(ctx context.Context) Result {
	return b.client.exec(ctx, http.MethodPost, b.client.readURL(b.collection), b.row)
}

// writeFilter is one recorded targeting filter on a mutation.
type writeFilter struct {
	column string
	op     string // "eq" or "neq"
	value  any
}

// targetURL resolves where a mutation lands. Only the first recorded filter
// is honored, a documented limitation inherited from the existing call
// sites, which target one row at a time. An eq filter on the primary-key
// column addresses the row path-style ({collection}/{id}); anything else
// becomes a single query-string filter. neq can never identify one path
// segment, so it always takes the query-string form.
func targetURL(base string, filters []writeFilter) string {
	if len(filters) == 0 {
		return base
	}
	f := filters[0]
	if f.op == "eq" && f.column == "id" {
		return base + "/" + url.PathEscape(coerce(f.value))
	}
	return base + "?" + url.QueryEscape(f.column) + "=" + url.QueryEscape(f.op+"."+coerce(f.value))
}

// UpdateBuilder performs a single PATCH carrying a partial row.
type UpdateBuilder struct {
	client     *Client
	collection string
	fields     any
	filters    []writeFilter
}

// Eq records an equality filter targeting the rows to update. Only the first
// recorded filter applies at execute time; see targetURL.
func (b *UpdateBuilder) Eq(column string, value any) *UpdateBuilder {
	b.filters = append(b.filters, writeFilter{column: column, op: "eq", value: value})
	return b
}

// Execute performs the update and returns the updated row(s), normalized.
func (b *UpdateBuilder) Execute(ctx context.Context) Result {
	rawURL := targetURL(b.client.writeURL(b.collection), b.filters)
	return b.client.exec(ctx, http.MethodPatch, rawURL, b.fields)
}

// DeleteBuilder performs a single DELETE.
type DeleteBuilder struct {
	client     *Client
	collection string
	filters    []writeFilter
}

// Eq records an equality filter targeting the rows to delete. Only the first
// recorded filter applies at execute time; see targetURL.
func (b *DeleteBuilder) Eq(column string, value any) *DeleteBuilder {
	b.filters = append(b.filters, writeFilter{column: column, op: "eq", value: value})
	return b
}

// Neq records an inequality filter. Supported only as the single first
// filter and only in the query-string form.
func (b *DeleteBuilder) Neq(column string, value any) *DeleteBuilder {
	b.filters = append(b.filters, writeFilter{column: column, op: "neq", value: value})
	return b
}

// Execute performs the delete. Collection deletes return no body, so a
// successful result carries nil Data and nil Error.
func (b *DeleteBuilder) Execute(ctx context.Context) Result {
	rawURL := targetURL(b.client.writeURL(b.collection), b.filters)
	resp, err := b.client.send(ctx, http.MethodDelete, rawURL, nil, b.client.bearer())
	if err != nil {
		return Result{Error: transportError(err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{}
	}
	return decodeResult(resp)
}
