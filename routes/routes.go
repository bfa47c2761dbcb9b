package routes

import (
	"github.com/NibirNd/Safebite-App/controllers"
	"github.com/NibirNd/Safebite-App/middlewares"
	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	store := services.NewStore(db)
	h := controllers.NewHandler(store, services.NewCoordinator(), services.NewGeminiService())

	r := gin.Default()

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/guest", h.GuestLogin)
		auth.POST("/federated", h.FederatedLogin)
	}
	r.GET("/catalogs", h.GetCatalogs)

	// Session-scoped routes
	api := r.Group("/")
	api.Use(middlewares.SessionMiddleware(store))
	{
		api.POST("/onboarding", h.CompleteOnboarding)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.PUT("/profile/medical", h.UpdateMedicalProfile)
		api.GET("/profile/avoidances", h.GetAvoidances)

		api.POST("/diet/classify", h.ClassifyFood)
		api.DELETE("/diet/items", h.RemoveDietItem)

		api.POST("/journal", h.AddJournalEntry)
		api.GET("/journal", h.ListJournal)
		api.GET("/journal/day", h.JournalDay)
		api.GET("/journal/calendar", h.JournalCalendar)

		api.POST("/analyze/text", h.AnalyzeText)
		api.POST("/analyze/image", h.AnalyzeImage)
		api.GET("/analyze/result", h.GetResult)

		api.GET("/view", h.GetView)
		api.POST("/view", h.Navigate)
		api.PUT("/settings/theme", h.UpdateTheme)
		api.POST("/logout", h.Logout)
	}

	return r
}
