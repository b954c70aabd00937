// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "u1",
		"email": "bean@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, ok := ParseClaims(signed)
	if !ok {
		t.Fatal("ParseClaims() = false for a well-formed JWT")
	}
	if claims.Subject != "u1" {
		t.Errorf("Subject = %q", claims.Subject)
	}
	if claims.Email != "bean@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", claims.ExpiresAt, exp)
	}
}

func TestParseClaimsOpaqueToken(t *testing.T) {
	for _, token := range []string{"", "static-anon-key", "a.b"} {
		if _, ok := ParseClaims(token); ok {
			t.Errorf("ParseClaims(%q) = true, want false for opaque token", token)
		}
	}
}

func TestParseClaimsDoesNotEnforceExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, ok := ParseClaims(signed)
	if !ok {
		t.Fatal("expired tokens must still parse; display is informational only")
	}
	if !claims.ExpiresAt.Before(time.Now()) {
		t.Error("ExpiresAt should reflect the past expiry")
	}
}
