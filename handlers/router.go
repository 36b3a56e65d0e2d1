package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a gin engine
func NewRouter(h *Handler, mode string) *gin.Engine {
	gin.SetMode(mode)

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		// Reference data
		api.GET("/stations", h.GetStations)
		api.GET("/classes", h.GetClasses)
		api.POST("/search", h.SearchTrains)
		api.GET("/trains/:id", h.GetTrain)

		// Booking session
		session := api.Group("/session")
		session.GET("", h.GetSession)
		session.POST("/navigate", h.Navigate)
		session.POST("/back", h.Back)
		session.POST("/train", h.SelectTrain)
		session.POST("/seats/toggle", h.ToggleSeat)
		session.POST("/seats", h.ConfirmSeats)
		session.POST("/passengers", h.ConfirmPassengers)
		session.POST("/pay", h.Pay)
		session.POST("/complete", h.CompleteBooking)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/guest", h.GuestLogin)
		auth.POST("/signup", h.Signup)
		auth.POST("/nid", h.VerifyNID)
		auth.POST("/logout", h.Logout)

		// History
		api.GET("/history", h.ListTickets)
		api.GET("/history/:id", h.GetTicket)
		api.POST("/history/:id/cancel", h.CancelTicket)

		// Notifications and settings
		api.GET("/notifications", h.ViewNotifications)
		api.DELETE("/notifications", h.ClearNotifications)
		api.PUT("/settings/language", h.SetLanguage)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
