package controllers

import (
	"net/http"

	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// UpdateTheme flips the display theme.
func (h *Handler) UpdateTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme" binding:"required,oneof=light dark"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := activeProfile(c)
	profile.Theme = body.Theme
	h.Store.Save(sessionKey(c), profile)
	c.JSON(http.StatusOK, profile)
}

// GetView reports the screen the UI should be on.
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.Flow.View()})
}

// Navigate moves the UI to another screen, validated against the view
// state machine.
func (h *Handler) Navigate(c *gin.Context) {
	var body struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Flow.Transition(services.AppView(body.View)); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "view": h.Flow.View()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": h.Flow.View()})
}
