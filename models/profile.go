package models

// AuthType distinguishes how the profile identity was established.
type AuthType string

const (
	AuthGuest     AuthType = "GUEST"
	AuthFederated AuthType = "FEDERATED"
)

// EntryStatus is fixed at journal-entry creation and never changes.
type EntryStatus string

const (
	StatusSafe    EntryStatus = "SAFE"
	StatusUnsafe  EntryStatus = "UNSAFE"
	StatusNeutral EntryStatus = "NEUTRAL"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// JournalEntry is one logged meal. Entries are append-only: they are
// created once, retained indefinitely and only read back for display.
type JournalEntry struct {
	ID        string      `json:"id"`
	Timestamp int64       `json:"timestamp"` // milliseconds since epoch, backdatable
	FoodName  string      `json:"foodName"`
	Notes     string      `json:"notes,omitempty"`
	Status    EntryStatus `json:"status"`
}

// UserProfile is the root aggregate: one per identity, created at
// onboarding, mutated through the session, cleared on logout.
//
// SafeFoodList and CustomAvoidanceList are mutually exclusive: a food
// name never appears in both at once. All four food lists have set
// semantics (no duplicates, case-sensitive). GeneratedAvoidanceList is
// owned by the recommendation flow and replaced wholesale on
// regeneration.
type UserProfile struct {
	ID                     string         `json:"id"`
	AuthType               AuthType       `json:"authType"`
	Name                   string         `json:"name"`
	Email                  string         `json:"email,omitempty"`
	Avatar                 string         `json:"avatar,omitempty"`
	Conditions             []string       `json:"conditions"`
	Allergies              []string       `json:"allergies"`
	GeneratedAvoidanceList []string       `json:"generatedAvoidanceList"`
	CustomAvoidanceList    []string       `json:"customAvoidanceList"`
	SafeFoodList           []string       `json:"safeFoodList"`
	Goals                  string         `json:"goals"`
	Onboarded              bool           `json:"isOnboarded"`
	Theme                  string         `json:"theme"`
	Journal                []JournalEntry `json:"journal"`
}
