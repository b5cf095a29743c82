package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"glass-dispatch/internal/domain/user"
	"glass-dispatch/internal/pkg/cookie"
	"glass-dispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

// ExtractToken reads the session token, Bearer header first with a cookie
// fallback for browser clients.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return cookie.GetSessionToken(c)
}

// RequireAuth rejects missing, unknown and expired tokens with the same 401
// body so callers cannot probe which tokens exist.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
			})
			c.Abort()
			return
		}

		userID, role, err := m.sessionValidator.ValidateSession(c.Request.Context(), token)
		if err != nil {
			slog.Warn("session validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set("auth_claims", map[string]any{
			"user_id": userID.String(),
			"role":    string(role),
		})
		c.Next()
	}
}

// RequireAdmin must be used after RequireAuth().
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != user.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}
