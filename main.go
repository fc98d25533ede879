package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"guidely/config"
	"guidely/database"
	bookingRepo "guidely/database/repository/booking"
	"guidely/handlers"
	"guidely/middleware"
	"guidely/routes"
	bookingSvc "guidely/services/booking"
	"guidely/services/convo"
	"guidely/services/dialog"
	"guidely/services/nlp"
	"guidely/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Conversation-state store: Redis when configured, in-memory otherwise.
	var convoStore convo.Store
	var redisClient *redis.Client
	if config.AppConfig.RedisAddr != "" {
		redisClient = utils.GetSessionCacheClient()
		convoStore = convo.NewRedisStore(redisClient, config.SessionTTL())
	} else {
		logger.Sugar().Info("main: no REDIS_ADDR configured, using in-memory conversation store")
		convoStore = convo.NewMemoryStore(config.SessionTTL())
	}

	// Date entity extraction: Gemini when an API key is configured, local
	// pattern matching otherwise.
	var extractor nlp.DateExtractor
	var geminiExtractor *nlp.GeminiExtractor
	if config.AppConfig.GeminiAPIKey != "" {
		var err error
		geminiExtractor, err = nlp.NewGeminiExtractor(config.AppConfig.GeminiAPIKey, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini extractor: %v", err)
		}
		extractor = geminiExtractor
	} else {
		logger.Sugar().Info("main: no GEMINI_API_KEY configured, using pattern date extractor")
		extractor = nlp.NewPatternExtractor()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and services.
	repo := bookingRepo.NewPostgresBookingRepo(database.GetDB())
	recorder := bookingSvc.NewDefaultRecorder(repo, logger)
	dialogService := dialog.NewDefaultDialogService(extractor, recorder, logger)
	webhookHandler := handlers.NewWebhookHandler(convoStore, dialogService, recorder, logger, config.SessionTTL())

	routes.RegisterRoutes(router, webhookHandler)

	utils.StartHealthMonitor(database.GetDB(), redisClient)

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

	if err := convoStore.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close conversation store: %v", err)
	}
	if err := repo.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close booking repository: %v", err)
	}
	if geminiExtractor != nil {
		if err := geminiExtractor.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close Gemini client: %v", err)
		}
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
