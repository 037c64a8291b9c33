package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"competition-portal/config"
	"competition-portal/database"
	"competition-portal/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirror what login issues: subject id, username, role, iat, exp.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// tokenFromRequest reads the bearer header first, then the auth-token
// cookie. Both representations carry the same JWT; login keeps them in
// sync so the edge layer can inspect either. A non-Bearer Authorization
// header is ignored rather than shadowing the cookie session.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
	}
	cookie, err := c.Cookie("auth-token")
	if err != nil {
		return ""
	}
	return cookie
}

func parseToken(tokenString string) (*Claims, error) {
	jwtKey := []byte(config.JWT_SECRET)
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	return claims, nil
}

// tokenRevoked checks the logout set in redis. Package variable so
// tests can swap in their own checker.
var tokenRevoked = func(ctx context.Context, tokenID string) bool {
	if tokenID == "" || database.RDB == nil {
		return false
	}
	revoked, err := database.RDB.SIsMember(ctx, "revoked_tokens", tokenID).Result()
	return err == nil && revoked
}

// AuthMiddleware is the edge layer of the route guard: token decode,
// expiry, revocation. It has no registration data, so the status-gated
// rules stay with RegistrationGuard.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.JWT_SECRET == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}

		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization missing", "redirect": access.PathLogin})
			c.Abort()
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			// Undecodable or expired tokens mean forced logout.
			clearAuthCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "redirect": access.PathLogin})
			c.Abort()
			return
		}

		if tokenRevoked(c.Request.Context(), claims.ID) {
			clearAuthCookie(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out", "redirect": access.PathLogin})
			c.Abort()
			return
		}

		sess := &access.Session{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}
		if claims.IssuedAt != nil {
			sess.IssuedAt = claims.IssuedAt.Time
		}
		if claims.ExpiresAt != nil {
			sess.Expiry = claims.ExpiresAt.Time
		}

		c.Set("session", sess)
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("token_id", claims.ID)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			c.Abort()
			return
		}

		if value != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SessionFromContext returns the decoded session set by AuthMiddleware.
func SessionFromContext(c *gin.Context) *access.Session {
	v, ok := c.Get("session")
	if !ok {
		return nil
	}
	sess, _ := v.(*access.Session)
	if sess != nil && sess.Expired(time.Now()) {
		return nil
	}
	return sess
}

func clearAuthCookie(c *gin.Context) {
	c.SetCookie("auth-token", "", -1, "/", "", false, true)
}
