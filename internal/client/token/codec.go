// Package token decodes the unverified payload of a bearer token so the UI
// can personalize and the client can derive the user identifier for paths
// like /api/nutrition/users/{id}/....
//
// This is a convenience, not a security boundary: no signature or expiry
// validation happens here. The backend is the authority on token validity.
package token

import "github.com/golang-jwt/jwt/v5"

// Claims is the subset of token claims the client cares about.
type Claims struct {
	Sub      string
	Username string
	Email    string
	Exp      int64
}

// Decode extracts claims from a compact JWT without verifying it. Returns nil
// on malformed input, a missing payload segment, or an absent subject; it
// never panics. Callers must treat nil as "no identity available".
func Decode(raw string) *Claims {
	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(raw, mapClaims); err != nil {
		return nil
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil
	}

	claims := &Claims{Sub: sub}

	if v, ok := mapClaims["username"].(string); ok {
		claims.Username = v
	} else if v, ok := mapClaims["cognito:username"].(string); ok {
		claims.Username = v
	}
	if v, ok := mapClaims["email"].(string); ok {
		claims.Email = v
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.Exp = exp.Unix()
	}

	return claims
}
