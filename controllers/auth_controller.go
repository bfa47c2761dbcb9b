package controllers

import (
	"net/http"

	"github.com/NibirNd/Safebite-App/models"
	"github.com/NibirNd/Safebite-App/services"
	"github.com/NibirNd/Safebite-App/utils"

	"github.com/gin-gonic/gin"
)

// GuestLogin starts a fresh guest session. A hydrated stub profile is
// written immediately so every later request can resolve the session.
func (h *Handler) GuestLogin(c *gin.Context) {
	key := utils.NewSessionKey()
	profile := services.NewProfile(utils.NewGuestID(), models.AuthGuest)
	h.Store.Save(key, profile)

	h.Flow.Reset()
	h.Flow.Force(services.ViewOnboarding)
	c.JSON(http.StatusCreated, gin.H{
		"session_key": key,
		"view":        h.Flow.View(),
	})
}

// FederatedLogin exchanges an identity-provider credential for a
// session. When a profile was previously saved for the same address it
// is recovered and the user lands on the dashboard; otherwise a
// partial profile is created and the user goes through onboarding.
func (h *Handler) FederatedLogin(c *gin.Context) {
	var body struct {
		Credential string `json:"credential" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ParseFederatedToken(body.Credential)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	key := utils.NewSessionKey()
	h.Flow.Reset()

	// Only an onboarded profile counts as recoverable; anything else
	// (including a partial record from an older install) restarts
	// onboarding.
	if existing := h.Store.LoadByEmail(claims.Email); existing != nil && existing.Onboarded {
		h.Store.Save(key, existing)
		h.Flow.Force(services.ViewDashboard)
		c.JSON(http.StatusOK, gin.H{
			"session_key": key,
			"view":        h.Flow.View(),
			"profile":     existing,
		})
		return
	}

	partial := services.NewProfile(claims.Subject, models.AuthFederated)
	partial.Name = claims.Name
	partial.Email = claims.Email
	partial.Avatar = claims.Picture
	h.Store.Save(key, partial)

	h.Flow.Force(services.ViewOnboarding)
	c.JSON(http.StatusCreated, gin.H{
		"session_key": key,
		"view":        h.Flow.View(),
	})
}

// Logout clears the primary session record. Federated recovery records
// stay put so the profile survives a later login on the same address.
func (h *Handler) Logout(c *gin.Context) {
	h.Store.Clear(sessionKey(c))
	h.Flow.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "logged out", "view": h.Flow.View()})
}
