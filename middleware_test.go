package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedTestToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestIsPublicRoute(t *testing.T) {
	public := []string{
		"/",
		"/sign-in",
		"/sign-up/sso",
		"/interview/abc",
		"/call/xyz",
		"/ws/call-1",
		"/api/register-call",
		"/api/generate-interview-questions",
		"/api/retell-webhook",
	}
	for _, path := range public {
		if !isPublicRoute(path) {
			t.Fatalf("%s should be public", path)
		}
	}

	private := []string{
		"/dashboard",
		"/api/jobs",
		"/api/responses",
	}
	for _, path := range private {
		if isPublicRoute(path) {
			t.Fatalf("%s should require auth", path)
		}
	}
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	srv, _ := newTestServer()
	app := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?position=x", nil)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	srv, _ := newTestServer()
	app := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?position=x", nil)
	req.Header.Set("Authorization", "Bearer "+signedTestToken(t, "wrong-secret"))
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad signature, got %d", w.Code)
	}
}

func TestAuthMiddlewareAcceptsSessionCookie(t *testing.T) {
	srv, _ := newTestServer()
	app := srv.Routes()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?position=x", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: signedTestToken(t, "test-secret")})
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with session cookie, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPublicRouteSkipsAuth(t *testing.T) {
	srv, _ := newTestServer()
	app := srv.Routes()

	w := doJSON(app, http.MethodPost, "/api/generate-interview-questions", map[string]interface{}{})
	if w.Code != http.StatusOK {
		t.Fatalf("public route should not require auth, got %d", w.Code)
	}
}
