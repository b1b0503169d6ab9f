package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded JWT payload. The backend stores the user id as the
// subject (a string) and the role as a top-level claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Decode parses the payload segment of a bearer token without verifying the
// signature. Signature and expiry are server-enforced; the client only reads
// advisory identity and role claims from the token it already holds.
//
// Decode fails softly: a missing token, malformed base64, bad JSON, or a
// payload without a role claim all return (nil, false). It never panics and
// never returns an error to the caller.
func Decode(token string) (*Claims, bool) {
	if token == "" {
		return nil, false
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	if _, ok := ParseRole(claims.Role); !ok {
		return nil, false
	}
	return claims, true
}
