package api

import (
	"net/http"
	"time"

	"fitvibe/fitness-coach/internal/coach"
	"fitvibe/fitness-coach/internal/session"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	jwtExpiration time.Duration,
	store session.Store,
	coachService coach.Service,
) {
	authHandler := NewAuthHandler(store, jwtSecret, jwtExpiration)
	profileHandler := NewProfileHandler(store)
	planHandler := NewPlanHandler(store)
	coachHandler := NewCoachHandler(coachService, store)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)

		// --- Profile Routes ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// --- Saved Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.SavePlan)
			planGroup.DELETE("/:planId", planHandler.DeletePlan)
			planGroup.GET("/:planId/rendered", planHandler.GetRenderedPlan)
		}

		// --- Coaching Routes ---
		coachGroup := protected.Group("/coach")
		{
			coachGroup.POST("/workout-plan", coachHandler.GenerateWorkoutPlan)
			coachGroup.POST("/diet-plan", coachHandler.GenerateDietPlan)
			coachGroup.POST("/chat", coachHandler.Chat)
			coachGroup.POST("/analyze-form", coachHandler.AnalyzeForm)
		}
	}
}
