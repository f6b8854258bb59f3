//go:build unit

package api_test

import (
	"net/http"

	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	adminToken    = "admin-token"
	residentToken = "resident-token"
)

var (
	adminID    = uuid.MustParse("6f1c7d6e-0000-4000-8000-000000000001")
	residentID = uuid.MustParse("6f1c7d6e-0000-4000-8000-000000000002")
)

// fakeAuth maps the two fixed bearer tokens to viewers.
func fakeAuth(c *gin.Context) {
	switch c.GetHeader("Authorization") {
	case "Bearer " + adminToken:
		middleware.SetViewer(c, authz.NewViewer(adminID, authz.RoleAdmin))
	case "Bearer " + residentToken:
		middleware.SetViewer(c, authz.NewViewer(residentID, authz.RoleResident))
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}
