// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package radb

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform envelope returned by every terminal operation.
// Exactly one of Data and Error is set on any failed or successful call;
// both are nil only for operations that legitimately return no body
// (delete, sign-out).
type Result struct {
	Data  any
	Error *ErrorInfo
}

// ErrorInfo describes a failed operation. Message is always set; StatusCode
// is present for HTTP-level failures, Code and Details carry whatever the
// backend included in its error body.
type ErrorInfo struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
	Code       string `json:"code,omitempty"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface so callers can wrap the info when
// they want to escalate it.
func (e *ErrorInfo) Error() string { return e.Message }

// unwrapData applies the response-shape normalization rule: the backend may
// answer with a bare JSON value or an envelope {"data": ...}. A top-level
// "data" field is unwrapped when present; everything else passes through
// unchanged.
func unwrapData(v any) any {
	if m, ok := v.(map[string]any); ok {
		if d, present := m["data"]; present {
			return d
		}
	}
	return v
}

// transportError converts a network-level failure (DNS, timeout, refused
// connection) into the envelope's error shape. Transport failures are never
// surfaced as Go errors past the builder boundary.
func transportError(err error) *ErrorInfo {
	return &ErrorInfo{Message: err.Error()}
}

// errorInfoFrom builds an ErrorInfo from a decoded HTTP error body, passing
// the backend's fields through where they are recognizable. Be liberal in
// what we accept: backends disagree on the field name for the human message.
func errorInfoFrom(status int, body any) *ErrorInfo {
	info := &ErrorInfo{StatusCode: status}

	m, ok := body.(map[string]any)
	if !ok {
		info.Message = fmt.Sprintf("request failed with status %d", status)
		if body != nil {
			info.Details = body
		}
		return info
	}

	for _, key := range []string{"message", "error", "msg"} {
		if s, ok := m[key].(string); ok && s != "" {
			info.Message = s
			break
		}
	}
	if info.Message == "" {
		info.Message = fmt.Sprintf("request failed with status %d", status)
	}
	switch c := m["code"].(type) {
	case string:
		info.Code = c
	case float64:
		info.Code = fmt.Sprintf("%.0f", c)
	}
	if d, present := m["details"]; present {
		info.Details = d
	} else {
		info.Details = m
	}
	return info
}

// DecodeInto copies a normalized Result payload into a typed destination via
// a JSON round trip. Data is dynamically shaped by design; this is the bridge
// to the typed layers above the client.
func DecodeInto(data any, dest any) error {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}
