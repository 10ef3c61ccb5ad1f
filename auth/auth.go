// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
)

// APIKeyHeader carries the key for the transmission log endpoints
const APIKeyHeader = "X-API-Key"

var ErrInvalidAPIKey = errors.New("invalid API key")

// ValidateAPIKey compares the provided key against the configured one in
// constant time. An empty expected key disables the check.
func ValidateAPIKey(provided, expected string) error {
	if expected == "" {
		return nil
	}
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAPIKey
	}
	return nil
}

// RequestAPIKey reads the API key from the X-API-Key header, falling back
// to a Bearer token in Authorization.
func RequestAPIKey(r *http.Request) string {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key
	}
	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits)
	return hex.EncodeToString(sum[:8])
}
