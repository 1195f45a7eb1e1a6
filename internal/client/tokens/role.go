// Package tokens reads claims from bearer tokens for display purposes.
//
// Signatures are NOT verified: the client only uses the role to decide which
// commands to offer. The backend must enforce authorization on every request
// regardless of what the client shows.
package tokens

import (
	"github.com/golang-jwt/jwt/v5"
)

const roleClaim = "role"

var parser = jwt.NewParser()

// RoleFromToken returns the "role" claim of token. An empty or malformed
// token, or one without a string role, yields ("", false).
func RoleFromToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", false
	}

	role, ok := claims[roleClaim].(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
