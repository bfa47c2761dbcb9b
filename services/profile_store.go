package services

import (
	"encoding/json"
	"log"

	"github.com/NibirNd/Safebite-App/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	sessionKeyPrefix = "session_"
	emailKeyPrefix   = "user_"
)

// Store is the single source of truth for persisted profiles. One
// record lives under the active session key; federated profiles get a
// second record under their email so a later login on the same address
// recovers the profile without re-onboarding.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// NewProfile returns an empty, fully hydrated profile so consumers
// never see nil list fields.
func NewProfile(id string, authType models.AuthType) *models.UserProfile {
	return &models.UserProfile{
		ID:                     id,
		AuthType:               authType,
		Theme:                  models.ThemeLight,
		Conditions:             []string{},
		Allergies:              []string{},
		GeneratedAvoidanceList: []string{},
		CustomAvoidanceList:    []string{},
		SafeFoodList:           []string{},
		Journal:                []models.JournalEntry{},
	}
}

// Hydrate decodes a persisted profile and fills any missing list
// fields with empty collections. Older or partially written records
// stay usable without null checks downstream. Returns nil on
// undecodable payloads; the caller falls back to fresh onboarding.
func Hydrate(raw []byte) *models.UserProfile {
	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if p.Conditions == nil {
		p.Conditions = []string{}
	}
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	if p.GeneratedAvoidanceList == nil {
		p.GeneratedAvoidanceList = []string{}
	}
	if p.CustomAvoidanceList == nil {
		p.CustomAvoidanceList = []string{}
	}
	if p.SafeFoodList == nil {
		p.SafeFoodList = []string{}
	}
	if p.Journal == nil {
		p.Journal = []models.JournalEntry{}
	}
	return &p
}

// Load returns the profile for the given session, or nil when none
// exists or the stored payload cannot be decoded.
func (s *Store) Load(sessionKey string) *models.UserProfile {
	return s.get(sessionKeyPrefix + sessionKey)
}

// LoadByEmail returns the recovery copy saved for a federated address,
// or nil when none exists.
func (s *Store) LoadByEmail(email string) *models.UserProfile {
	if email == "" {
		return nil
	}
	return s.get(emailKeyPrefix + email)
}

func (s *Store) get(key string) *models.UserProfile {
	var rec models.ProfileRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		return nil
	}
	return Hydrate([]byte(rec.Payload))
}

// Save persists the profile under the session key and, for onboarded
// federated identities with a known address, under that address too.
// Partial profiles never reach the recovery slot: a re-login before
// onboarding finishes must start onboarding again, not land on a
// dashboard with an empty medical profile. Both writes are best
// effort: a persistence failure is logged and never rolls back the
// in-memory state.
func (s *Store) Save(sessionKey string, p *models.UserProfile) {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Printf("profile encode failed: %v", err)
		return
	}
	s.put(sessionKeyPrefix+sessionKey, raw)
	if p.AuthType == models.AuthFederated && p.Email != "" && p.Onboarded {
		s.put(emailKeyPrefix+p.Email, raw)
	}
}

func (s *Store) put(key string, payload []byte) {
	rec := models.ProfileRecord{Key: key, Payload: string(payload)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		log.Printf("profile save failed for %s: %v", key, err)
	}
}

// Clear removes the primary session record. Per-address recovery
// records are intentionally retained so a federated identity can pick
// its profile back up on a later login.
func (s *Store) Clear(sessionKey string) {
	if err := s.db.Delete(&models.ProfileRecord{}, "key = ?", sessionKeyPrefix+sessionKey).Error; err != nil {
		log.Printf("profile clear failed: %v", err)
	}
}
