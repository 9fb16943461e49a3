package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	// SessionName is the cookie holding the admin session.
	SessionName = "session"

	// SessionMaxAge is the session lifetime: 7 days in seconds.
	SessionMaxAge = 7 * 24 * 60 * 60

	sessionUserKey     = "username"
	sessionLoggedInKey = "loggedIn"
)

type contextKey string

const userNameKey contextKey = "user_name"

// SessionAuth owns the cookie session store and gates admin routes.
// Absence of the cookie, a failed decode, or loggedIn != true are all
// treated the same way: not logged in.
type SessionAuth struct {
	store *sessions.CookieStore
}

// NewSessionAuth creates the session layer with the given signing secret.
func NewSessionAuth(secret string) *SessionAuth {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionAuth{store: store}
}

// LogIn writes a logged-in session for username to the response.
func (a *SessionAuth) LogIn(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := a.store.Get(r, SessionName)
	session.Values[sessionUserKey] = username
	session.Values[sessionLoggedInKey] = true
	return session.Save(r, w)
}

// LogOut clears the session cookie.
func (a *SessionAuth) LogOut(w http.ResponseWriter, r *http.Request) error {
	session, err := a.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return nil
	}
	session.Options.MaxAge = -1 // Delete cookie
	return session.Save(r, w)
}

// Current returns the session's username and whether it is logged in.
func (a *SessionAuth) Current(r *http.Request) (string, bool) {
	session, err := a.store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	loggedIn, ok := session.Values[sessionLoggedInKey].(bool)
	if !ok || !loggedIn {
		return "", false
	}
	username, _ := session.Values[sessionUserKey].(string)
	return username, true
}

// RequireAdmin ensures the request carries a logged-in session.
// Unauthenticated requests get a 401 JSON response; authenticated ones
// continue with the username injected into the request context.
func (a *SessionAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, loggedIn := a.Current(r)
		if !loggedIn {
			log.Debug().
				Str("path", r.URL.Path).
				Str("method", r.Method).
				Msg("rejected unauthenticated admin request")
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), userNameKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserName returns the authenticated username from the request
// context, or "" when the request is anonymous.
func GetUserName(r *http.Request) string {
	username, _ := r.Context().Value(userNameKey).(string)
	return username
}

// writeAuthError writes a 401 response with a JSON error body
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Error().Err(err).Msg("failed to encode auth error response")
	}
}
