// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient() *Client {
	return New(Config{BaseURL: "http://backend.local", AnonKey: "anon-key"})
}

func TestQueryStringEncoding(t *testing.T) {
	c := newTestClient()

	tests := []struct {
		name  string
		build func() *QueryBuilder
		want  string
	}{
		{
			name:  "wildcard select emits nothing",
			build: func() *QueryBuilder { return c.From("products").Select("*") },
			want:  "",
		},
		{
			name:  "bare select emits nothing",
			build: func() *QueryBuilder { return c.From("products").Select() },
			want:  "",
		},
		{
			name:  "explicit columns",
			build: func() *QueryBuilder { return c.From("products").Select("id", "name") },
			want:  "select=id%2Cname",
		},
		{
			name:  "eq filter",
			build: func() *QueryBuilder { return c.From("products").Select("*").Eq("category", "coffee") },
			want:  "category=eq.coffee",
		},
		{
			name:  "boolean value",
			build: func() *QueryBuilder { return c.From("products").Select("*").Eq("is_active", true) },
			want:  "is_active=eq.true",
		},
		{
			name:  "nil value",
			build: func() *QueryBuilder { return c.From("products").Select("*").Is("deleted_at", nil) },
			want:  "deleted_at=is.null",
		},
		{
			name: "numeric values drop trailing zeros",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").Gt("price", 4.0).Lte("price", 12.5)
			},
			want: "price=gt.4&price=lte.12.5",
		},
		{
			name: "repeated filters on one column accumulate",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").Gte("price", 1).Lt("price", 10)
			},
			want: "price=gte.1&price=lt.10",
		},
		{
			name:  "neq filter",
			build: func() *QueryBuilder { return c.From("products").Select("*").Neq("status", "archived") },
			want:  "status=neq.archived",
		},
		{
			name:  "like and ilike",
			build: func() *QueryBuilder { return c.From("products").Select("*").Like("name", "Latte%").ILike("name", "%brew%") },
			want:  "name=like.Latte%25&name=ilike.%25brew%25",
		},
		{
			name: "in list joins without escaping members",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").In("category", []any{"coffee", "tea", 3})
			},
			want: "category=in.%28coffee%2Ctea%2C3%29",
		},
		{
			name: "order clauses keep call order",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").Order("category", true).Order("price", false)
			},
			want: "order=category.asc&order=price.desc",
		},
		{
			name: "limit and offset overwrite on repeat",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").Limit(10).Offset(0).Limit(5).Offset(20)
			},
			want: "limit=5&offset=20",
		},
		{
			name: "filters precede order in emission order",
			build: func() *QueryBuilder {
				return c.From("products").Select("*").Eq("is_active", true).Order("order", true)
			},
			want: "is_active=eq.true&order=order.asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.build().queryString())
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passes through", "hello", "hello"},
		{"nil", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"integer float", 42.0, "42"},
		{"fractional float", 3.14, "3.14"},
		{"int", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerce(tt.value))
		})
	}
}
