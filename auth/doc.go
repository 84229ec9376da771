// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the presenter commands.

# Event IDs

Every process run gets a random event ID (a UUID):

	eventID := auth.NewEventID()

# Presenter Keys

Presenter keys are HMAC-SHA256 signatures of the event ID:

	key, err := auth.GeneratePresenterKey(eventID, salt)
	err = auth.ValidatePresenterKey(eventID, key, salt)

Keys are deterministic for a given event and salt, URL-safe base64
without padding, and compared in constant time. The key is logged once at
startup and sent by the presenter in the X-Presenter-Key header. Display
routes need no key.

# Errors

	ErrInvalidPresenterKey - key does not match
	ErrMissingSalt         - no salt configured
*/
package auth
