// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidPresenterKey = errors.New("invalid presenter key")
	ErrMissingSalt         = errors.New("presenter key salt is empty")
)

// NewEventID returns a random identifier for one running event
func NewEventID() string {
	return uuid.NewString()
}

// GeneratePresenterKey creates an HMAC-based presenter key for an event
// This is deterministic and verifiable
func GeneratePresenterKey(eventID, salt string) (string, error) {
	if salt == "" {
		return "", ErrMissingSalt
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(eventID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "="), nil
}

// ValidatePresenterKey checks if the provided key is valid for the event
func ValidatePresenterKey(eventID, key, salt string) error {
	expected, err := GeneratePresenterKey(eventID, salt)
	if err != nil {
		return err
	}
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidPresenterKey
	}
	return nil
}
