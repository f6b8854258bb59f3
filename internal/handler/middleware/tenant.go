package middleware

import (
	"net/http"
	"strings"

	"amenity-booking/internal/pkg/config"
	"amenity-booking/internal/pkg/tenant"

	"github.com/gin-gonic/gin"
)

const ctxTenantIDKey = "tenant_id"

type TenantDirectory interface {
	Has(tenantID string) bool
}

// NewTenantMiddleware scopes the request context to the tenant named by the
// configured header, or the default tenant when the header is absent.
func NewTenantMiddleware(cfg config.TenantConfig, tenants TenantDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(cfg.Header))
		if tenantID == "" {
			tenantID = cfg.Default
		}
		if !tenants.Has(tenantID) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"message": "Unknown tenant"},
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, tenantID)
		c.Request = c.Request.WithContext(tenant.WithTenant(c.Request.Context(), tenantID))
		c.Next()
	}
}

func GetTenantID(c *gin.Context) string {
	return c.GetString(ctxTenantIDKey)
}
