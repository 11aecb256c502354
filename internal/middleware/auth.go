package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartchef/smartchef-v4/backend/internal/service"
)

// Context keys under which the verified claims are stored.
const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
	ContextNameKey   = "name"
)

// ErrNoToken marks a missing or malformed Authorization header, as opposed to
// a token that failed verification.
var ErrNoToken = errors.New("no token provided")

// TokenVerifier is the interface the gates need from the auth service.
type TokenVerifier interface {
	ValidateToken(token string) (*service.TokenClaims, error)
}

// authenticate extracts and verifies the bearer token. Both gate variants
// share this one verification path and differ only in how they react.
func authenticate(c *gin.Context, verifier TokenVerifier) (*service.TokenClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrNoToken
	}
	return verifier.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
}

func setClaims(c *gin.Context, claims *service.TokenClaims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextEmailKey, claims.Email)
	c.Set(ContextNameKey, claims.Name)
}

// RequireAuth rejects requests without a valid token: 401 when the header is
// missing or malformed, 403 when the token fails verification.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, verifier)
		if err != nil {
			if errors.Is(err, ErrNoToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			} else {
				c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and otherwise
// lets the request through anonymously. It never blocks.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, verifier); err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
