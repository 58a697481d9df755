package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/stabtrack/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
	}

	// Everything below requires a resolved caller identity
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/users/current", GetCurrentUser)

	// Schedule template endpoints
	templates := protected.Group("/schedule-templates")
	{
		templates.GET("", ListScheduleTemplates)
		templates.POST("", CreateScheduleTemplate)
		templates.GET("/presets", ListPresetScheduleTemplates)
		templates.GET("/:id", GetScheduleTemplate)
		templates.PUT("/:id", UpdateScheduleTemplate)
		templates.PATCH("/:id", UpdateScheduleTemplate)
		templates.DELETE("/:id", DeleteScheduleTemplate)
	}

	// Freeze/thaw cycle template endpoints
	NewFTCycleTemplateController().RegisterRoutes(protected)

	// Product endpoints
	NewProductController().RegisterRoutes(protected)

	// Task endpoints
	NewTaskController().RegisterRoutes(protected)
}
