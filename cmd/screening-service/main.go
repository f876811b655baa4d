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

	"github.com/matchwise/matchwise-backend/internal/screening/events"
	"github.com/matchwise/matchwise-backend/internal/screening/extract"
	"github.com/matchwise/matchwise-backend/internal/screening/handler"
	"github.com/matchwise/matchwise-backend/internal/screening/repository"
	"github.com/matchwise/matchwise-backend/internal/screening/service"
	"github.com/matchwise/matchwise-backend/pkg/config"
	"github.com/matchwise/matchwise-backend/pkg/database"
	"github.com/matchwise/matchwise-backend/pkg/httputil"
	"github.com/matchwise/matchwise-backend/pkg/logger"
	"github.com/matchwise/matchwise-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("screening-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("screening-service", cfg.Server.Environment)
	log.Info().Msg("starting Screening Service")

	// Load skill vocabulary
	vocab, err := extract.LoadVocabulary(cfg.Screening.VocabularyFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load skill vocabulary")
	}
	log.Info().Int("skills", vocab.Size()).Msg("skill vocabulary loaded")

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

	// Initialize event publisher
	publisher, err := events.NewScreeningEventPublisher(rmq, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event publisher")
	}

	// Initialize repositories
	candidateRepo := repository.NewCandidateRepository(db)
	jobRepo := repository.NewJobRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	// Initialize service
	screeningService := service.NewScreeningService(
		candidateRepo, jobRepo, matchRepo, vocab, &cfg.Screening, publisher, log,
	)

	// Initialize handlers
	candidateHandler := handler.NewCandidateHandler(screeningService, log)
	jobHandler := handler.NewJobHandler(screeningService, log)
	matchHandler := handler.NewMatchHandler(screeningService, log)

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
			"service":  "screening-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1/screening", func(r chi.Router) {
		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", candidateHandler.List)
			r.Post("/", candidateHandler.Create)
			r.Get("/{id}", candidateHandler.Get)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.List)
			r.Post("/", jobHandler.Create)
			r.Get("/{id}", jobHandler.Get)
			r.Post("/{id}/matches", matchHandler.CreateForJob)
			r.Get("/{id}/matches", matchHandler.ListForJob)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/{id}", matchHandler.Get)
			r.Put("/{id}/shortlist", matchHandler.SetShortlist)
		})
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

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
