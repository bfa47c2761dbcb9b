package services

import (
	"sort"
	"time"

	"github.com/NibirNd/Safebite-App/models"

	"github.com/google/uuid"
)

const dayKeyLayout = "2006-01-02"

// NewEntry builds a journal entry for a meal eaten at the given time.
// The time may be backdated by the user; it is distinct from when the
// entry is saved. Status is fixed here and never edited afterwards.
func NewEntry(foodName, notes string, status models.EntryStatus, at time.Time) models.JournalEntry {
	return models.JournalEntry{
		ID:        uuid.NewString(),
		Timestamp: at.UnixMilli(),
		FoodName:  foodName,
		Notes:     notes,
		Status:    status,
	}
}

// AppendEntry prepends the entry to the journal. SAFE and UNSAFE
// entries also run through Classify so a single logged meal updates
// the long-lived safe/avoid sets; NEUTRAL entries touch the journal
// only.
func AppendEntry(p *models.UserProfile, entry models.JournalEntry) *models.UserProfile {
	out := *p
	journal := make([]models.JournalEntry, 0, len(p.Journal)+1)
	journal = append(journal, entry)
	journal = append(journal, p.Journal...)
	out.Journal = journal

	switch entry.Status {
	case models.StatusSafe:
		return Classify(&out, entry.FoodName, true)
	case models.StatusUnsafe:
		return Classify(&out, entry.FoodName, false)
	}
	return &out
}

// JournalIndex answers per-day queries over a journal snapshot. The
// calendar view probes every cell of a month, so entries are bucketed
// by local calendar day up front instead of rescanning the journal per
// call.
type JournalIndex struct {
	byDay map[string][]models.JournalEntry
}

func NewJournalIndex(journal []models.JournalEntry) *JournalIndex {
	idx := &JournalIndex{byDay: make(map[string][]models.JournalEntry)}
	for _, e := range journal {
		key := time.UnixMilli(e.Timestamp).Format(dayKeyLayout)
		idx.byDay[key] = append(idx.byDay[key], e)
	}
	for _, entries := range idx.byDay {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Timestamp > entries[j].Timestamp
		})
	}
	return idx
}

// EntriesOnDay returns the entries whose timestamp falls on the same
// local calendar day as day, most recent first.
func (idx *JournalIndex) EntriesOnDay(day time.Time) []models.JournalEntry {
	entries := idx.byDay[day.Format(dayKeyLayout)]
	out := make([]models.JournalEntry, len(entries))
	copy(out, entries)
	return out
}

// HasEntryOnDay reports whether anything was logged on that local
// calendar day.
func (idx *JournalIndex) HasEntryOnDay(day time.Time) bool {
	return len(idx.byDay[day.Format(dayKeyLayout)]) > 0
}

// SortedJournal returns the full journal ordered by timestamp
// descending, leaving the stored slice untouched.
func SortedJournal(journal []models.JournalEntry) []models.JournalEntry {
	out := make([]models.JournalEntry, len(journal))
	copy(out, journal)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
