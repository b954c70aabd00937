// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// Bucket is a handle on a named storage bucket.
type Bucket struct {
	c    *Client
	name string
}

// Bucket returns the storage facade for a named bucket.
func (c *Client) Bucket(name string) *Bucket { return &Bucket{c: c, name: name} }

// Upload posts the file content as multipart form data to the bucket path
// and returns the backend response, normalized.
func (b *Bucket) Upload(ctx context.Context, path, filename string, content io.Reader) Result {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Result{Error: transportError(err)}
	}
	if _, err := io.Copy(part, content); err != nil {
		return Result{Error: transportError(err)}
	}
	if err := mw.Close(); err != nil {
		return Result{Error: transportError(err)}
	}

	rawURL := b.c.baseURL + "/storage/" + b.name + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, &buf)
	if err != nil {
		return Result{Error: transportError(err)}
	}
	req.Header.Set("Authorization", "Bearer "+b.c.bearer())
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := b.c.client.Do(req)
	if err != nil {
		return Result{Error: transportError(err)}
	}
	defer resp.Body.Close()
	return decodeResult(resp)
}

// PublicURL computes the deterministic public URL for an object. Pure string
// construction: no network call, and no check that the object exists.
func (b *Bucket) PublicURL(path string) string {
	return b.c.baseURL + "/storage/v1/object/public/" + b.name + "/" + path
}

// Download fetches an object's raw bytes. The Data field of a successful
// result holds a []byte payload.
func (b *Bucket) Download(ctx context.Context, path string) Result {
	rawURL := b.c.baseURL + "/storage/" + b.name + "/" + path
	resp, err := b.c.send(ctx, http.MethodGet, rawURL, nil, b.c.bearer())
	if err != nil {
		return Result{Error: transportError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeResult(resp)
	}
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Error: transportError(err)}
	}
	return Result{Data: blob}
}

// Remove deletes the listed object paths from the bucket in one call.
func (b *Bucket) Remove(ctx context.Context, paths []string) Result {
	rawURL := b.c.baseURL + "/storage/v1/object/" + b.name
	return b.c.exec(ctx, http.MethodDelete, rawURL, paths)
}
