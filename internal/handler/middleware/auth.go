package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxViewerKey   = "viewer"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		viewer, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetViewer(c, viewer)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SetViewer stores the caller identity; tests use it to fake authentication.
func SetViewer(c *gin.Context, viewer authz.ViewerContext) {
	c.Set(ctxViewerKey, viewer)
	c.Set(ctxUserIDKey, viewer.ID)
	c.Set(ctxUserRoleKey, viewer.Role())
}

func GetViewer(c *gin.Context) (authz.ViewerContext, bool) {
	v, exists := c.Get(ctxViewerKey)
	if !exists {
		return authz.ViewerContext{}, false
	}
	viewer, ok := v.(authz.ViewerContext)
	return viewer, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (authz.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(authz.Role)
	return role, ok
}
