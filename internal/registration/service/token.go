package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomTokenGenerator creates cryptographically secure random bearer tokens,
// base64 URL-encoded so they travel cleanly in an Authorization header.
type RandomTokenGenerator struct{}

func NewRandomTokenGenerator() RandomTokenGenerator {
	return RandomTokenGenerator{}
}

func (RandomTokenGenerator) Token() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
