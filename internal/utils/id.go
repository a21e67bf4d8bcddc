package utils

import (
	"crypto/rand"
	"encoding/base64"
)

const downloadIDBytes = 24

// GenerateSecureToken returns length random bytes, URL-safe base64 encoded.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewDownloadID names a stored download request.
func NewDownloadID() (string, error) {
	return GenerateSecureToken(downloadIDBytes)
}
