// File: fixeify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixeify/config"
	"fixeify/gateway"
	"fixeify/handlers"
	"fixeify/middleware"
	"fixeify/routes"
	"fixeify/services/payment"
	"fixeify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Backend gateway with snapshot caching.
	backendClient := gateway.NewHTTPBackendClient(
		config.AppConfig.BackendAPIURL,
		time.Duration(config.AppConfig.BackendAPITimeoutMS)*time.Millisecond,
		utils.GetSnapshotCacheClient(),
		time.Duration(config.AppConfig.SnapshotCacheTTL)*time.Second,
		logger,
	)

	// Payment services.
	attemptStore := payment.NewAttemptStore(
		utils.GetPaymentCacheClient(),
		time.Duration(config.AppConfig.PaymentAttemptTTL)*time.Second,
	)
	processor := payment.NewStripeProcessor(logger)

	// Handlers.
	invoiceHandler := handlers.NewInvoiceHandler(backendClient, logger)
	paymentHandler := handlers.NewPaymentHandler(backendClient, attemptStore, processor, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DownloadInvoiceHandler:       invoiceHandler.DownloadInvoiceHandler,
		GetPaymentStateHandler:       paymentHandler.GetPaymentStateHandler,
		BeginPaymentAttemptHandler:   paymentHandler.BeginPaymentAttemptHandler,
		ConfirmPaymentAttemptHandler: paymentHandler.ConfirmPaymentAttemptHandler,
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
