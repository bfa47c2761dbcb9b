package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// ClassifyFood marks a food safe or unsafe. Used by the analysis
// result screen and the diet-list quick add; both end up in the same
// classification path so the safe and unsafe lists stay mutually
// exclusive.
func (h *Handler) ClassifyFood(c *gin.Context) {
	var body struct {
		FoodName string `json:"food_name" binding:"required"`
		Safe     *bool  `json:"safe" binding:"required"`
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

	profile := services.Classify(activeProfile(c), name, *body.Safe)
	h.Store.Save(sessionKey(c), profile)
	c.JSON(http.StatusOK, gin.H{
		"safeFoodList":        profile.SafeFoodList,
		"customAvoidanceList": profile.CustomAvoidanceList,
	})
}

// RemoveDietItem removes an item from one of the three food lists.
// Removing an AI-generated item is local only; the next regeneration
// may suggest it again.
func (h *Handler) RemoveDietItem(c *gin.Context) {
	var body struct {
		Item string `json:"item" binding:"required"`
		List string `json:"list" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.RemoveFromList(activeProfile(c), body.Item, body.List)
	if err != nil {
		if errors.Is(err, services.ErrUnknownList) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Store.Save(sessionKey(c), profile)
	c.JSON(http.StatusOK, gin.H{
		"safeFoodList":           profile.SafeFoodList,
		"customAvoidanceList":    profile.CustomAvoidanceList,
		"generatedAvoidanceList": profile.GeneratedAvoidanceList,
	})
}
