package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"inkwell/internal/ai/gemini"
	"inkwell/internal/api/middleware"
	"inkwell/internal/api/routes"
	"inkwell/internal/config"
	"inkwell/internal/core/assist"
	"inkwell/internal/core/posts"
	"inkwell/internal/core/search"
	"inkwell/internal/db/jsonfile"
	"inkwell/internal/db/memory"
)

const shutdownTimeout = 10 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := config.Load()

	// Persistence backend: file-backed JSON document when DATA_FILE is
	// set, otherwise a process-lifetime in-memory collection.
	var repo posts.Repository
	if cfg.DataFile != "" {
		repo = jsonfile.NewPostRepository(cfg.DataFile)
		log.Info().Str("path", cfg.DataFile).Msg("using JSON file post store")
	} else {
		repo = memory.NewPostRepository()
		log.Info().Msg("using in-memory post store")
	}

	// The write lock is disabled by default: concurrent admin writes
	// race and the later save wins, matching the single-admin
	// deployment this serves. SERIALIZE_WRITES=true opts into a mutex.
	var writeLock posts.WriteLock = posts.NoopWriteLock{}
	if cfg.SerializeWrites {
		writeLock = &sync.Mutex{}
		log.Info().Msg("write serialization enabled")
	}

	pageCache := middleware.NewPageCache()
	revalidator := middleware.NewRouteRevalidator(pageCache)

	postService := posts.NewPostService(repo, revalidator, writeLock)

	// AI delegate is optional: without an API key the assist and
	// search endpoints respond 503 and everything else works.
	var generator assist.Generator
	var searchService search.Service
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create gemini client")
		}
		generator = client
		searchService = search.NewSearchService(postService, client)
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set; AI assist and search are disabled")
	}

	sessions := middleware.NewSessionAuth(cfg.SessionSecret)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	// Global rate limit; the login route adds its own tighter one
	rateLimiter := middleware.NewRateLimiter(100, time.Minute)
	r.Use(rateLimiter.Middleware)

	routes.RegisterPostRoutes(r, postService, sessions, pageCache)
	routes.RegisterSearchRoutes(r, searchService)
	routes.RegisterAssistRoutes(r, generator, sessions)
	routes.RegisterAuthRoutes(r, sessions, cfg.AdminUsername, cfg.AdminPassword)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	log.Info().Msg("server stopped")
}
