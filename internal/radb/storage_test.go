// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsMultipartFileField(t *testing.T) {
	var (
		gotPath     string
		gotFilename string
		gotContent  string
	)
	srv := newHandlerServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		b, _ := io.ReadAll(file)
		gotContent = string(b)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"path": r.URL.Path}})
	}))
	c := New(Config{BaseURL: srv.URL, AnonKey: "anon-key"})

	res := c.Bucket("cms-assets").Upload(context.Background(), "hero/banner.png", "banner.png", strings.NewReader("png-bytes"))
	require.Nil(t, res.Error)
	assert.Equal(t, "/storage/cms-assets/hero/banner.png", gotPath)
	assert.Equal(t, "banner.png", gotFilename)
	assert.Equal(t, "png-bytes", gotContent)
}

func TestUploadErrorIsDecoded(t *testing.T) {
	srv := newHandlerServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "object too large"})
	}))
	c := New(Config{BaseURL: srv.URL, AnonKey: "anon-key"})

	res := c.Bucket("cms-assets").Upload(context.Background(), "big.bin", "big.bin", strings.NewReader("x"))
	require.NotNil(t, res.Error)
	assert.Equal(t, "object too large", res.Error.Message)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.Error.StatusCode)
}

func TestPublicURLIsPureStringConstruction(t *testing.T) {
	c := New(Config{BaseURL: "https://radb.example.com/api/v1", AnonKey: "anon"})
	assert.Equal(t,
		"https://radb.example.com/api/v1/storage/v1/object/public/cms-assets/hero/banner.png",
		c.Bucket("cms-assets").PublicURL("hero/banner.png"))
}

func TestDownloadReturnsRawBytes(t *testing.T) {
	srv := newHandlerServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	c := New(Config{BaseURL: srv.URL, AnonKey: "anon-key"})

	res := c.Bucket("cms-assets").Download(context.Background(), "hero/banner.png")
	require.Nil(t, res.Error)
	blob, ok := res.Data.([]byte)
	require.True(t, ok)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, blob)
}

func TestRemovePostsPathsArray(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   []string
	)
	srv := newHandlerServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	c := New(Config{BaseURL: srv.URL, AnonKey: "anon-key"})

	res := c.Bucket("cms-assets").Remove(context.Background(), []string{"old/a.png", "old/b.png"})
	require.Nil(t, res.Error)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/storage/v1/object/cms-assets", gotPath)
	assert.Equal(t, []string{"old/a.png", "old/b.png"}, gotBody)
}
