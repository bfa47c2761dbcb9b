package controllers

import (
	"net/http"

	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeText judges a free-text food description against the active
// profile. Analysis failures are recoverable and user visible: the UI
// is sent back to the dashboard and the profile is never touched.
func (h *Handler) AnalyzeText(c *gin.Context) {
	var body struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Flow.Force(services.ViewLoading)
	result, err := h.AI.AnalyzeFoodText(c.Request.Context(), activeProfile(c), body.Query)
	if err != nil {
		h.Flow.Force(services.ViewDashboard)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyze food, please try again", "view": h.Flow.View()})
		return
	}

	h.Flow.SetResult(result)
	h.Flow.Force(services.ViewResult)
	c.JSON(http.StatusOK, gin.H{"result": result, "view": h.Flow.View()})
}

// AnalyzeImage judges a photographed food or label. Accepts bare
// base64 or a data URL.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Flow.Force(services.ViewLoading)
	result, err := h.AI.AnalyzeFoodImage(c.Request.Context(), activeProfile(c), body.Image)
	if err != nil {
		h.Flow.Force(services.ViewDashboard)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not analyze image, make sure it is clear and contains food or a label", "view": h.Flow.View()})
		return
	}

	h.Flow.SetResult(result)
	h.Flow.Force(services.ViewResult)
	c.JSON(http.StatusOK, gin.H{"result": result, "view": h.Flow.View()})
}

// GetResult re-reads the result the result screen is showing.
func (h *Handler) GetResult(c *gin.Context) {
	result := h.Flow.Result()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis result pending"})
		return
	}
	c.JSON(http.StatusOK, result)
}
