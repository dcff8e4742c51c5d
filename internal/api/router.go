package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/auth"
	"github.com/facuvd/horarios-backend-go/internal/config"
	"github.com/facuvd/horarios-backend-go/internal/handler"
	"github.com/facuvd/horarios-backend-go/internal/middleware"
)

// Handlers groups everything the router wires up
type Handlers struct {
	Schedules *handler.ScheduleHandler
	Lines     *handler.LineHandler
	Routes    *handler.RouteHandler
	Trips     *handler.TripHandler
	Auth      *handler.AuthHandler
	Tokens    *auth.TokenManager
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the frontend origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Horarios API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		schedules := api.Group("/schedules")
		{
			schedules.GET("/direct", h.Schedules.FindDirect)
			schedules.GET("/connections", h.Schedules.FindConnections)
			schedules.GET("/corridor", h.Schedules.FindCorridorConnections)
		}

		api.GET("/locations", h.Schedules.GetLocations)

		lines := api.Group("/lines")
		{
			lines.GET("", h.Lines.GetLines)
			lines.GET("/:id", h.Lines.GetLineByID)
		}

		routes := api.Group("/routes")
		{
			routes.GET("", h.Routes.GetRoutes)
			routes.GET("/:id", h.Routes.GetRouteByID)
			routes.GET("/:id/trips", h.Trips.GetTripsByRoute)
		}

		// Administrative writes require an admin token
		admin := api.Group("")
		admin.Use(auth.Required(h.Tokens), auth.AdminOnly())
		{
			admin.POST("/lines", h.Lines.CreateLine)
			admin.PUT("/lines/:id", h.Lines.UpdateLine)
			admin.DELETE("/lines/:id", h.Lines.DeleteLine)

			admin.POST("/routes", h.Routes.CreateRoute)
			admin.DELETE("/routes/:id", h.Routes.DeleteRoute)

			admin.POST("/routes/:id/trips", h.Trips.CreateTrip)
			admin.DELETE("/trips/:id", h.Trips.DeleteTrip)
		}

		authGroup := api.Group("/auth")
		authGroup.Use(middleware.RateLimit(20, time.Minute))
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.GET("/me", auth.Required(h.Tokens), h.Auth.Me)
		}
	}

	return r
}
