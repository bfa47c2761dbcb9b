package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/NibirNd/Safebite-App/models"
	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// AddJournalEntry logs a meal. A SAFE or UNSAFE status also updates
// the long-lived classification lists in the same write.
func (h *Handler) AddJournalEntry(c *gin.Context) {
	var body struct {
		FoodName  string `json:"food_name" binding:"required"`
		Notes     string `json:"notes"`
		Status    string `json:"status" binding:"required,oneof=SAFE UNSAFE NEUTRAL"`
		Timestamp int64  `json:"timestamp"` // ms since epoch; defaults to now, may be backdated
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(body.FoodName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food_name must not be blank"})
		return
	}

	at := time.Now()
	if body.Timestamp > 0 {
		at = time.UnixMilli(body.Timestamp)
	}

	entry := services.NewEntry(name, strings.TrimSpace(body.Notes), models.EntryStatus(body.Status), at)
	profile := services.AppendEntry(activeProfile(c), entry)
	h.Store.Save(sessionKey(c), profile)

	c.JSON(http.StatusCreated, gin.H{"entry": entry, "profile": profile})
}

// ListJournal returns the full journal, most recent first.
func (h *Handler) ListJournal(c *gin.Context) {
	c.JSON(http.StatusOK, services.SortedJournal(activeProfile(c).Journal))
}

// JournalDay returns the entries logged on one local calendar day.
func (h *Handler) JournalDay(c *gin.Context) {
	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	idx := services.NewJournalIndex(activeProfile(c).Journal)
	c.JSON(http.StatusOK, idx.EntriesOnDay(day))
}

// JournalCalendar reports which days of a month have entries, for
// marking populated cells in the calendar view.
func (h *Handler) JournalCalendar(c *gin.Context) {
	month, err := time.ParseInLocation("2006-01", c.Query("month"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	idx := services.NewJournalIndex(activeProfile(c).Journal)
	days := make(map[string]bool)
	for d := month; d.Month() == month.Month(); d = d.AddDate(0, 0, 1) {
		days[d.Format("2006-01-02")] = idx.HasEntryOnDay(d)
	}

	c.JSON(http.StatusOK, gin.H{"month": c.Query("month"), "days": days})
}
