package utils

import "github.com/google/uuid"

// NewGuestID mints the stable identity for a guest profile.
func NewGuestID() string {
	return "guest-" + uuid.NewString()
}

// NewSessionKey mints the key the active session's profile record is
// stored under.
func NewSessionKey() string {
	return uuid.NewString()
}
