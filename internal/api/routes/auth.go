package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	authHandler "inkwell/internal/api/handlers/auth"
	"inkwell/internal/api/middleware"
)

// RegisterAuthRoutes registers login, logout, and session inspection.
// The login route carries its own tight rate limit to slow credential
// guessing.
func RegisterAuthRoutes(r chi.Router, sessions *middleware.SessionAuth, adminUsername, adminPassword string) {
	loginHandler := authHandler.NewLoginHandler(sessions, adminUsername, adminPassword)
	sessionHandler := authHandler.NewSessionHandler(sessions)

	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	r.With(loginLimiter.Middleware).Post("/api/login", loginHandler.HandleLogin)

	r.Post("/api/logout", sessionHandler.HandleLogout)
	r.Get("/api/session", sessionHandler.HandleSession)
}
