package auth

import (
	"crypto/subtle"
	"strings"
)

// SecretChecker accepts requests carrying the shared app secret, either bare
// or as a bearer token in the Authorization header.
type SecretChecker struct {
	secret []byte
}

func NewSecretChecker(secret string) *SecretChecker {
	return &SecretChecker{
		secret: []byte(secret),
	}
}

func (c *SecretChecker) IsAllowed(authorization string) bool {
	if len(c.secret) == 0 {
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authorization), "Bearer "))
	return subtle.ConstantTimeCompare([]byte(token), c.secret) == 1
}
