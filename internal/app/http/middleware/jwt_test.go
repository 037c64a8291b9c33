package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"competition-portal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
}

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  uint(42),
		"username": "alice",
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
		"jti":      "tid-1",
	})
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func guardedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint("user_id"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: got %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("valid bearer token: got %d, want 200 (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareCookie(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: signToken(t, "user", time.Now().Add(time.Hour))})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("auth-token cookie: got %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareNonBearerHeaderFallsBackToCookie(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: signToken(t, "user", time.Now().Add(time.Hour))})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("non-Bearer header must not shadow the cookie session: got %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	orig := tokenRevoked
	defer func() { tokenRevoked = orig }()
	tokenRevoked = func(_ context.Context, tokenID string) bool {
		return tokenID == "tid-1"
	}

	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: got %d, want 401", w.Code)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth-token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("revoked token must clear the auth-token cookie")
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", time.Now().Add(-time.Hour)))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: got %d, want 401", w.Code)
	}

	// forced logout clears the cookie
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth-token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expired token must clear the auth-token cookie")
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	r := guardedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r := guardedRouter(RequireRole("admin"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("user on admin route: got %d, want 403", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin on admin route: got %d, want 200", w.Code)
	}
}
