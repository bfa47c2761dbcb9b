package controllers

import (
	"log"
	"net/http"

	"github.com/NibirNd/Safebite-App/models"
	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, activeProfile(c))
}

// UpdateProfile changes the display attributes. Identity fields (id,
// auth type, email) are fixed at creation and not editable here.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var body struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := activeProfile(c)
	if body.Name != "" {
		profile.Name = body.Name
	}
	if body.Avatar != "" {
		profile.Avatar = body.Avatar
	}

	h.Store.Save(sessionKey(c), profile)
	c.JSON(http.StatusOK, profile)
}

// UpdateMedicalProfile is the Save & Regenerate flow: conditions,
// allergies and goals are replaced, then the generated avoidance list
// is rebuilt from them. When regeneration fails the previous generated
// list is kept and the update still saves.
func (h *Handler) UpdateMedicalProfile(c *gin.Context) {
	var body struct {
		Conditions []string `json:"conditions"`
		Allergies  []string `json:"allergies"`
		Goals      string   `json:"goals"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := services.UpdateMedicalProfile(activeProfile(c), body.Conditions, body.Allergies, body.Goals)

	recs, err := h.AI.GenerateRecommendations(c.Request.Context(), profile.Conditions, profile.Allergies)
	if err != nil {
		log.Printf("recommendation regeneration failed, keeping previous list: %v", err)
	} else {
		profile = services.ApplyRecommendations(profile, recs)
	}

	h.Store.Save(sessionKey(c), profile)
	c.JSON(http.StatusOK, profile)
}

// GetAvoidances returns the three avoidance lists grouped by
// provenance plus the flat aggregate used as analysis context.
func (h *Handler) GetAvoidances(c *gin.Context) {
	profile := activeProfile(c)
	c.JSON(http.StatusOK, gin.H{
		"allergies": profile.Allergies,
		"generated": profile.GeneratedAvoidanceList,
		"custom":    profile.CustomAvoidanceList,
		"aggregate": services.AggregateAvoidances(profile),
	})
}

// GetCatalogs serves the pick-lists the onboarding and medical-profile
// screens autocomplete from.
func (h *Handler) GetCatalogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"conditions": models.MedicalConditions,
		"allergens":  models.CommonAllergens,
	})
}
