package routes

import (
	"github.com/go-chi/chi/v5"

	assistHandler "inkwell/internal/api/handlers/assist"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/assist"
)

// RegisterAssistRoutes registers the admin-only AI form pre-fill
// endpoints. generator can be nil when no AI delegate is configured.
func RegisterAssistRoutes(r chi.Router, generator assist.Generator, sessions *middleware.SessionAuth) {
	handler := assistHandler.NewHandler(generator)

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAdmin)
		r.Post("/api/assist/content", handler.HandleGenerateContent)
		r.Post("/api/assist/cover-image", handler.HandleGenerateCoverImage)
	})
}
