// File: wanderbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderbook/config"
	"wanderbook/database"
	bookingRepo "wanderbook/database/repository/booking"
	"wanderbook/handlers"
	"wanderbook/middleware"
	"wanderbook/routes"
	"wanderbook/services/checkout"
	"wanderbook/services/tasks"
	"wanderbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()

	// Task queue client for deferred confirmation settling.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	}
	taskClient := asynq.NewClient(redisOpt)
	defer taskClient.Close()

	// Checkout pipeline.
	machine := checkout.NewMachine(config.AppConfig.TaxRate, config.AppConfig.DefaultCountryCode)
	sessionStore := checkout.NewRedisSessionStore(utils.GetCheckoutCacheClient(), config.SessionTTL())
	checkoutService := &checkout.DefaultCheckoutSessionService{
		Machine:     machine,
		Store:       sessionStore,
		Bookings:    bookings,
		TaskClient:  taskClient,
		SettleDelay: config.SettleDelay(),
		Logger:      logger,
	}

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	bookingHandler := handlers.NewBookingHandler(bookings, logger)

	routes.RegisterRoutes(router, checkoutHandler, bookingHandler)

	// Worker processing settle tasks.
	worker := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: config.AppConfig.WorkerConcurrency,
	})
	mux := asynq.NewServeMux()
	mux.Handle(tasks.TypeSettleConfirmation, tasks.NewSettleHandler(checkoutService, logger))
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Sugar().Fatalf("main: settle worker failed: %v", err)
		}
	}()

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

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
