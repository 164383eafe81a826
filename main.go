// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/cron"
	"trimly/database"
	appointmentRepo "trimly/database/repository/appointment"
	catalogRepo "trimly/database/repository/catalog"
	scheduleRepo "trimly/database/repository/schedule"
	timeoffRepo "trimly/database/repository/timeoff"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/availability"
	"trimly/services/booking"
	"trimly/services/schedule"
	"trimly/services/tasks"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	toRepo := timeoffRepo.NewMongoTimeOffRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		ScheduleRepo: schedRepo,
		CatalogRepo:  catRepo,
	}
	timeOffSvc := &schedule.DefaultTimeOffService{
		Repo: toRepo,
	}
	checkoutSvc := &booking.DefaultCheckoutService{
		Availability:    availabilitySvc,
		CatalogRepo:     catRepo,
		AppointmentRepo: apptRepo,
		Sessions:        booking.NewRedisSessionStore(),
		Policy:          booking.FirstAvailable{},
		Reminders:       tasks.NewAsynqReminderScheduler(),
		ReminderLead:    time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	// Background reminder worker.
	cron.InitReminderWorker()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Checkout:     handlers.NewCheckoutHandler(checkoutSvc, logger),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		TimeOff:      handlers.NewTimeOffHandler(timeOffSvc),
		Catalog:      handlers.NewCatalogHandler(catRepo),
		Appointments: handlers.NewAppointmentsHandler(apptRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
