// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"brewkit/cli/internal/cms"
	"brewkit/cli/internal/radb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal in-memory CMS backend covering the requests a
// seeding run makes: section lookup by key, inserts, and list queries.
type fakeBackend struct {
	sections     map[string]map[string]any // section_key -> row
	products     []map[string]any
	testimonials []map[string]any
	nextID       int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{sections: map[string]map[string]any{}}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reply := func(v any) { _ = json.NewEncoder(w).Encode(v) }

	collection := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	switch {
	case r.Method == http.MethodGet && collection == "cms_sections":
		key := strings.TrimPrefix(r.URL.Query().Get("section_key"), "eq.")
		if row, ok := b.sections[key]; ok {
			reply([]any{row})
			return
		}
		reply([]any{})

	case r.Method == http.MethodPost && collection == "cms_sections":
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.nextID++
		row["id"] = b.id()
		b.sections[row["section_key"].(string)] = row
		reply(map[string]any{"data": row})

	case r.Method == http.MethodPatch && strings.HasPrefix(collection, "cms_sections/"):
		var fields map[string]any
		_ = json.NewDecoder(r.Body).Decode(&fields)
		id := strings.TrimPrefix(collection, "cms_sections/")
		for _, row := range b.sections {
			if row["id"] == id {
				row["content"] = fields["content"]
			}
		}
		reply(map[string]any{"data": map[string]any{"id": id}})

	case r.Method == http.MethodGet && collection == "cms_products":
		reply(b.products)

	case r.Method == http.MethodPost && collection == "cms_products":
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.nextID++
		row["id"] = b.id()
		b.products = append(b.products, row)
		reply(map[string]any{"data": row})

	case r.Method == http.MethodGet && collection == "cms_testimonials":
		reply(b.testimonials)

	case r.Method == http.MethodPost && collection == "cms_testimonials":
		var row map[string]any
		_ = json.NewDecoder(r.Body).Decode(&row)
		b.nextID++
		row["id"] = b.id()
		b.testimonials = append(b.testimonials, row)
		reply(map[string]any{"data": row})

	default:
		w.WriteHeader(http.StatusNotFound)
		reply(map[string]any{"message": "no route for " + r.Method + " " + r.URL.Path})
	}
}

func (b *fakeBackend) id() string {
	return "row-" + strconv.Itoa(b.nextID)
}

func newTestRunner(t *testing.T) (*Runner, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	client := radb.New(radb.Config{BaseURL: srv.URL, AnonKey: "anon-key"})
	return NewRunner(cms.NewService(client)), backend
}

func TestRunSeedsEmptyBackend(t *testing.T) {
	runner, backend := newTestRunner(t)

	var steps []Step
	runner.OnStep = func(s Step) { steps = append(steps, s) }

	require.NoError(t, runner.Run(context.Background()))

	assert.Len(t, backend.sections, len(SectionContent()))
	assert.Len(t, backend.products, len(Products()))
	assert.Len(t, backend.testimonials, len(Testimonials()))

	for _, s := range steps {
		assert.Equal(t, StepOK, s.Status, "step %s", s.Name)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	runner, backend := newTestRunner(t)
	require.NoError(t, runner.Run(context.Background()))

	productCount := len(backend.products)
	testimonialCount := len(backend.testimonials)

	var skipped []string
	second := NewRunner(cms.NewService(radbClientFor(t, backend)))
	second.OnStep = func(s Step) {
		if s.Status == StepSkipped {
			skipped = append(skipped, s.Name)
		}
	}
	require.NoError(t, second.Run(context.Background()))

	assert.Len(t, backend.products, productCount, "rerun must not duplicate products")
	assert.Len(t, backend.testimonials, testimonialCount, "rerun must not duplicate testimonials")
	assert.ElementsMatch(t, []string{"products", "testimonials"}, skipped)
	assert.Len(t, backend.sections, len(SectionContent()), "sections upsert in place")
}

func radbClientFor(t *testing.T, backend *fakeBackend) *radb.Client {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	return radb.New(radb.Config{BaseURL: srv.URL, AnonKey: "anon-key"})
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "permission denied"})
	}))
	t.Cleanup(srv.Close)

	runner := NewRunner(cms.NewService(radb.New(radb.Config{BaseURL: srv.URL, AnonKey: "anon-key"})))

	var failed []string
	runner.OnStep = func(s Step) {
		if s.Status == StepFailed {
			failed = append(failed, s.Name)
		}
	}

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Len(t, failed, 1, "the run stops at the first failure")
}

func TestRunIDIsUniquePerRunner(t *testing.T) {
	a, _ := newTestRunner(t)
	b, _ := newTestRunner(t)
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
}
