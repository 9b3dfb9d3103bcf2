package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken returns a URL-safe random session token with 256 bits of
// entropy.
func GenerateToken() (string, error) {
	const numBytes = 32 // 256 bits
	buf := make([]byte, numBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
