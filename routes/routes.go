package routes

import (
	"net/http"
	"time"

	"trimly/handlers"
	"trimly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	catalog := api.Group("/catalog")
	{
		catalog.GET("/services", hb.Catalog.ListServices)
		catalog.GET("/employees", hb.Catalog.ListEmployees)
	}

	api.GET("/availability", hb.Availability.DaySlots)

	checkout := api.Group("/checkout")
	{
		checkout.POST("/session", hb.Checkout.StartSession)
		checkout.GET("/session/:sessionID", hb.Checkout.GetSession)
		checkout.PUT("/session/:sessionID/line/:index", hb.Checkout.UpdateLine)
		checkout.DELETE("/session/:sessionID", hb.Checkout.CancelSession)
		// Confirm resolves the caller itself so it can answer 401 with its
		// own auth-required error; the client re-invokes after signing in.
		checkout.POST("/session/:sessionID/confirm", middleware.OptionalJWTAuthMiddleware(), hb.Checkout.Confirm)
	}

	api.GET("/appointments", middleware.JWTAuthMiddleware(), hb.Appointments.ListMine)

	timeOff := api.Group("/timeoff")
	{
		timeOff.GET("", hb.TimeOff.MonthOccurrences)

		protected := timeOff.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.TimeOff.CreateException)
		protected.DELETE("/:id", hb.TimeOff.DeleteException)
	}
}
