package controllers

import (
	"github.com/NibirNd/Safebite-App/models"
	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies the route handlers share. The
// coordinator is held only here and threaded explicitly; there is no
// ambient session singleton.
type Handler struct {
	Store *services.Store
	Flow  *services.Coordinator
	AI    *services.GeminiService
}

func NewHandler(store *services.Store, flow *services.Coordinator, ai *services.GeminiService) *Handler {
	return &Handler{Store: store, Flow: flow, AI: ai}
}

func activeProfile(c *gin.Context) *models.UserProfile {
	return c.MustGet("profile").(*models.UserProfile)
}

func sessionKey(c *gin.Context) string {
	return c.GetString("sessionKey")
}
