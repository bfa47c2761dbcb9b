package models

import "time"

// ProfileRecord is one persisted profile blob. The store keeps one row
// keyed by the active session and, for federated identities, one row
// keyed by the account email so a later login on the same address can
// recover the profile without re-onboarding.
type ProfileRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(255)"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}
