package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matchwise/matchwise-backend/internal/interview/consumers"
	"github.com/matchwise/matchwise-backend/internal/interview/events"
	"github.com/matchwise/matchwise-backend/internal/interview/handler"
	"github.com/matchwise/matchwise-backend/internal/interview/repository"
	"github.com/matchwise/matchwise-backend/internal/interview/service"
	"github.com/matchwise/matchwise-backend/pkg/config"
	"github.com/matchwise/matchwise-backend/pkg/database"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("interview-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("interview-service", cfg.Server.Environment)
	log.Info().Msg("starting Interview Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	// Dead letter queue for failed match events
	if err := rmq.DeclareDeadLetterQueue("interview-service"); err != nil {
		log.Fatal().Err(err).Msg("failed to declare dead letter queue")
	}

	// Initialize event publisher
	publisher, err := events.NewInterviewEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repository and service
	interviewRepo := repository.NewInterviewRepository(db)
	interviewService := service.NewInterviewService(interviewRepo, publisher, log)

	// Initialize handler
	interviewHandler := handler.NewInterviewHandler(interviewService, log)

	// Start match event consumer
	matchConsumer, err := consumers.NewMatchEventConsumer(rmq, interviewService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create match event consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := matchConsumer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start match event consumer")
	}

	// Token verifier for protected routes
	verifier := httputil.NewTokenVerifier(&cfg.Auth)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(httputil.Auth(verifier))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "interview-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1/interviews", func(r chi.Router) {
		r.Get("/", interviewHandler.List)
		r.Get("/{id}", interviewHandler.Get)
		r.Post("/{id}/schedule", interviewHandler.Schedule)
		r.Get("/{id}/email", interviewHandler.Email)
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Cancel context to stop consumers
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
