package controllers

import (
	"log"
	"net/http"

	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// CompleteOnboarding fills in the medical profile collected by the
// onboarding screens and runs the first recommendation pass. A failed
// recommendation run is silent: the profile is saved without generated
// avoidances and the user still lands on the dashboard.
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	var body struct {
		Name       string   `json:"name"`
		Conditions []string `json:"conditions"`
		Allergies  []string `json:"allergies"`
		Goals      string   `json:"goals"`
		Theme      string   `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := activeProfile(c)
	// A federated login already knows the account name; keep it.
	if profile.Name == "" {
		profile.Name = body.Name
	}
	if body.Theme != "" {
		profile.Theme = body.Theme
	}
	profile = services.UpdateMedicalProfile(profile, body.Conditions, body.Allergies, body.Goals)
	profile.Onboarded = true

	h.Flow.Force(services.ViewLoading)
	recs, err := h.AI.GenerateRecommendations(c.Request.Context(), profile.Conditions, profile.Allergies)
	if err != nil {
		log.Printf("recommendation generation failed, continuing without: %v", err)
	} else {
		profile = services.ApplyRecommendations(profile, recs)
	}

	h.Store.Save(sessionKey(c), profile)
	h.Flow.Force(services.ViewDashboard)
	c.JSON(http.StatusOK, gin.H{"profile": profile, "view": h.Flow.View()})
}
