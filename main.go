// File: neobook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neobook/config"
	"neobook/cron"
	"neobook/database"
	bookingRepo "neobook/database/repository/booking"
	historyRepo "neobook/database/repository/history"
	"neobook/handlers"
	"neobook/middleware"
	"neobook/routes"
	"neobook/services/assistant"
	"neobook/services/dialogue"
	ai "neobook/services/intelligence"
	"neobook/services/knowledge"
	"neobook/services/notification"
	"neobook/services/rag"
	"neobook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	history := historyRepo.NewMongoHistoryRepo(config.AppConfig.HistoryLimit)

	// Notification: direct SMTP sender behind an asynq queue.
	mailer := notification.NewSMTPNotificationService(notification.EmailConfig{
		Sender:   config.AppConfig.EmailSender,
		Password: config.AppConfig.EmailPassword,
		Server:   config.AppConfig.SMTPServer,
		Port:     config.AppConfig.SMTPPort,
	})
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	notifier := notification.NewQueuedNotificationService(queueClient, mailer)
	cron.InitEmailWorker(mailer)

	// Language model gateway. A missing key disables the assistant instead
	// of failing every turn.
	var assistantSvc assistant.AssistantService
	var knowledgeSvc knowledge.KnowledgeService
	gateway, err := ai.NewGeminiClient(context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		config.AppConfig.EmbeddingModel,
	)
	if err != nil {
		logger.Sugar().Warnf("main: assistant disabled: %v", err)
	} else {
		knowledgeSvc = knowledge.NewDefaultKnowledgeService(gateway,
			config.AppConfig.ChunkSize, config.AppConfig.ChunkOverlap)

		slotStore := dialogue.NewRedisSlotStore(utils.GetSlotCacheClient(), 30*time.Minute)
		assistantSvc = &assistant.DefaultAssistantService{
			Extractor:    &dialogue.Extractor{Gateway: gateway},
			Slots:        slotStore,
			History:      history,
			Bookings:     bookings,
			Answers:      rag.NewAnswerEngine(knowledgeSvc, gateway, config.AppConfig.RAGTopK),
			Notification: notifier,
		}
	}

	aiTimeout := time.Duration(config.AppConfig.AITimeoutSecs) * time.Second
	chatHandler := handlers.NewChatHandler(assistantSvc, history, aiTimeout)
	bookingHandler := handlers.NewBookingHandler(bookings)

	// Knowledge endpoints share the assistant's gateway; without it the
	// knowledge base is unavailable too.
	var uploadHandler, statsHandler, resetHandler gin.HandlerFunc
	if knowledgeSvc != nil {
		knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeSvc)
		uploadHandler = knowledgeHandler.UploadDocument
		statsHandler = knowledgeHandler.GetStats
		resetHandler = knowledgeHandler.ResetKnowledgeBase
	} else {
		unavailable := func(c *gin.Context) {
			utils.JSONError(c, http.StatusServiceUnavailable, "Knowledge base unavailable",
				"The language model gateway is not configured. Set GEMINI_API_KEY.")
		}
		uploadHandler, statsHandler, resetHandler = unavailable, unavailable, unavailable
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:         chatHandler.HandleChat,
		GetHistoryHandler:   chatHandler.GetHistory,
		ResetSessionHandler: chatHandler.ResetSession,

		UploadDocumentHandler: uploadHandler,
		KnowledgeStatsHandler: statsHandler,
		KnowledgeResetHandler: resetHandler,

		ListBookingsHandler:  bookingHandler.ListBookings,
		BookingStatsHandler:  bookingHandler.GetStats,
		CancelBookingHandler: bookingHandler.CancelBooking,
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
