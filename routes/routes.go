package routes

import (
	"net/http"
	"time"

	"parklot/handlers"
	"parklot/middleware"
	"parklot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes registers the public reservation endpoints.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api")
	{
		api.Use(middleware.RateLimitMiddleware())
		api.GET("/availability", h.Availability)
		api.POST("/create", h.Create)
		api.POST("/cancel", h.Cancel)
	}
}

// RegisterAdminRoutes registers the admin endpoints. The admin key travels
// in the request itself and is checked by the service, so no auth middleware
// sits here.
func RegisterAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/list", h.List)
		admin.POST("/block", h.Block)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, public *handlers.ReservationHandler, admin *handlers.AdminHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReservationRoutes(r, public)
	RegisterAdminRoutes(r, admin)
	RegisterHealthRoute(r)
}
