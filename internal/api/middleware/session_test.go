package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const testSecret = "test-session-secret-0123456789abcdef"

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello " + GetUserName(r)))
	})
}

// logIn performs a session write and copies the resulting cookie onto a
// fresh request, simulating a browser that logged in earlier.
func logIn(t *testing.T, auth *SessionAuth, username string, target *http.Request) {
	t.Helper()

	rec := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	if err := auth.LogIn(rec, loginReq, username); err != nil {
		t.Fatalf("LogIn failed: %v", err)
	}

	for _, cookie := range rec.Result().Cookies() {
		target.AddCookie(cookie)
	}
}

func TestRequireAdmin_RejectsAnonymous(t *testing.T) {
	auth := NewSessionAuth(testSecret)
	handler := auth.RequireAdmin(protectedEcho(t))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous request got %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("error Content-Type = %q, want application/json", ct)
	}
}

func TestRequireAdmin_RejectsGarbageCookie(t *testing.T) {
	auth := NewSessionAuth(testSecret)
	handler := auth.RequireAdmin(protectedEcho(t))

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-real-session"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage cookie got %d, want 401", rec.Code)
	}
}

func TestRequireAdmin_AllowsLoggedInSession(t *testing.T) {
	auth := NewSessionAuth(testSecret)
	handler := auth.RequireAdmin(protectedEcho(t))

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	logIn(t, auth, "admin", req)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("logged-in request got %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "hello admin" {
		t.Errorf("context username not injected: body = %q", got)
	}
}

func TestLogOutClearsSession(t *testing.T) {
	auth := NewSessionAuth(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	logIn(t, auth, "admin", req)

	rec := httptest.NewRecorder()
	if err := auth.LogOut(rec, req); err != nil {
		t.Fatalf("LogOut failed: %v", err)
	}

	// The logout response must expire the cookie
	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("LogOut did not expire the session cookie")
	}
}

func TestCurrent_SecretMismatchIsLoggedOut(t *testing.T) {
	auth := NewSessionAuth(testSecret)
	other := NewSessionAuth("a-completely-different-session-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	logIn(t, auth, "admin", req)

	// A cookie signed with another secret must not decode to a session
	if _, loggedIn := other.Current(req); loggedIn {
		t.Error("session decoded under the wrong secret")
	}
}
