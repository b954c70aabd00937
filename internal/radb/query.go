// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// queryParam is one key=value pair in the wire query string.
type queryParam struct {
	key   string
	value string
}

// queryParams preserves insertion order, which the backend relies on for
// multi-clause ordering and which keeps repeated filters on the same column
// distinct. url.Values cannot be used here: its encoder sorts keys.
type queryParams []queryParam

// add appends a pair, keeping any existing pairs with the same key.
func (p *queryParams) add(key, value string) {
	*p = append(*p, queryParam{key: key, value: value})
}

// set replaces the first pair with the given key, or appends when absent.
// Used for single-valued parameters (select, limit, offset).
func (p *queryParams) set(key, value string) {
	for i := range *p {
		if (*p)[i].key == key {
			(*p)[i].value = value
			return
		}
	}
	p.add(key, value)
}

// encode renders the pairs in insertion order, percent-escaped.
func (p queryParams) encode() string {
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.value))
	}
	return b.String()
}

// coerce renders a filter value the way the wire format expects: plain string
// coercion with no quoting. Strings pass through, numbers and booleans take
// their canonical textual form.
func coerce(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// QueryBuilder accumulates a single read query against one collection and
// executes it as a GET. Methods return the builder for chaining; Execute is
// the only terminal call. Not safe for concurrent mutation.
type QueryBuilder struct {
	client     *Client
	collection string
	params     queryParams
}

// selectColumns records the requested column list. The wildcard is omitted
// from the query string entirely: the engine already returns all columns by
// default, and emitting select=* is redundant.
func (qb *QueryBuilder) selectColumns(columns string) {
	if columns == "" || columns == "*" {
		return
	}
	qb.params.set("select", columns)
}

// filter appends one column=op.value pair. Repeated calls accumulate with
// AND semantics, including repeated filters on the same column.
func (qb *QueryBuilder) filter(column, op string, value any) *QueryBuilder {
	qb.params.add(column, op+"."+coerce(value))
	return qb
}

// Eq filters on column = value.
func (qb *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	return qb.filter(column, "eq", value)
}

// Neq filters on column != value.
func (qb *QueryBuilder) Neq(column string, value any) *QueryBuilder {
	return qb.filter(column, "neq", value)
}

// Gt filters on column > value.
func (qb *QueryBuilder) Gt(column string, value any) *QueryBuilder {
	return qb.filter(column, "gt", value)
}

// Gte filters on column >= value.
func (qb *QueryBuilder) Gte(column string, value any) *QueryBuilder {
	return qb.filter(column, "gte", value)
}

// Lt filters on column < value.
func (qb *QueryBuilder) Lt(column string, value any) *QueryBuilder {
	return qb.filter(column, "lt", value)
}

// Lte filters on column <= value.
func (qb *QueryBuilder) Lte(column string, value any) *QueryBuilder {
	return qb.filter(column, "lte", value)
}

// Like filters on a case-sensitive pattern match.
func (qb *QueryBuilder) Like(column, pattern string) *QueryBuilder {
	return qb.filter(column, "like", pattern)
}

// ILike filters on a case-insensitive pattern match.
func (qb *QueryBuilder) ILike(column, pattern string) *QueryBuilder {
	return qb.filter(column, "ilike", pattern)
}

// Is filters with IS semantics (null, true, false).
func (qb *QueryBuilder) Is(column string, value any) *QueryBuilder {
	return qb.filter(column, "is", value)
}

// In filters on membership in values, encoded as column=in.(v1,v2,...).
// Known limitation inherited from the wire format: values are joined by
// comma with no escaping, so values containing "," or ")" are not safely
// representable.
func (qb *QueryBuilder) In(column string, values []any) *QueryBuilder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = coerce(v)
	}
	qb.params.add(column, "in.("+strings.Join(parts, ",")+")")
	return qb
}

// Order appends an order clause. Clauses apply in call order: the first is
// primary, later ones break ties.
func (qb *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	qb.params.add("order", column+"."+dir)
	return qb
}

// Limit caps the number of returned rows. Calling it again overwrites the
// previous value rather than adding a second parameter.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.params.set("limit", strconv.Itoa(n))
	return qb
}

// Offset skips the first n rows. Same overwrite semantics as Limit.
func (qb *QueryBuilder) Offset(n int) *QueryBuilder {
	qb.params.set("offset", strconv.Itoa(n))
	return qb
}

// queryString renders the accumulated parameters.
func (qb *QueryBuilder) queryString() string {
	return qb.params.encode()
}

// Execute performs the GET and returns the uniform envelope. Re-invoking it
// repeats the identical request.
func (qb *QueryBuilder) Execute(ctx context.Context) Result {
	rawURL := qb.client.readURL(qb.collection)
	if qs := qb.queryString(); qs != "" {
		rawURL += "?" + qs
	}
	return qb.client.exec(ctx, http.MethodGet, rawURL, nil)
}
