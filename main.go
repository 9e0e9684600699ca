package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchbook/config"
	"pitchbook/database"
	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/handlers"
	"pitchbook/middleware"
	"pitchbook/routes"
	"pitchbook/services/booking"
	"pitchbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The ledger is the single source of truth for occupancy. "memory"
	// runs a single-node in-process ledger; anything else is a Mongo URI.
	var ledger ledgerRepo.LedgerRepository
	var mongoClient *mongo.Client
	if config.AppConfig.DatabaseURL == "memory" {
		ledger = ledgerRepo.NewMemoryLedgerRepo()
		logger.Sugar().Info("main: using in-memory ledger")
	} else {
		database.InitDB()
		mongoClient = database.MongoClient
		mongoLedger := ledgerRepo.NewMongoLedgerRepo()
		if err := mongoLedger.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure ledger indexes: %v", err)
		}
		ledger = mongoLedger
	}

	utils.InitQuoteCache()
	quoteCache := utils.GetQuoteCacheClient()
	utils.StartHealthMonitor(quoteCache, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	checker := &booking.DefaultAvailabilityChecker{Ledger: ledger}
	coordinator := &booking.DefaultBookingCoordinator{Ledger: ledger}
	quoteService := &booking.DefaultQuoteService{
		Checker:     checker,
		Coordinator: coordinator,
		Cache:       booking.NewRedisQuoteCache(quoteCache),
	}

	bookingHandler := handlers.NewBookingHandler(quoteService, ledger, logger)
	adminHandler := handlers.NewAdminHandler(coordinator, logger)

	routes.RegisterRoutes(router, bookingHandler, adminHandler)

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
