// Copyright (c) 2025 Brewkit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds display-oriented fields parsed from a JWT-shaped session
// token. Parsing is unverified and purely informational: token expiry is not
// enforced anywhere in the client, a 401 from the backend remains the source
// of truth.
type Claims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseClaims extracts claims from a token without verifying its signature.
// Returns false for opaque (non-JWT) tokens such as static API keys.
func ParseClaims(token string) (Claims, bool) {
	var out Claims

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return out, false
	}

	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, true
}
