package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"amenity-booking/internal/handler/api"
	"amenity-booking/internal/handler/middleware"
	"amenity-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Spaces   *api.SpaceHandler
	Bookings *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, tenants middleware.TenantDirectory) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, tenants)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, tenants middleware.TenantDirectory) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewTenantMiddleware(cfg.Tenant, tenants), authMiddleware.RequireAuth())
	{
		spaces := apiGroup.Group("/spaces")
		addRoutes(spaces, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Spaces.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Spaces.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Spaces.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Spaces.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Spaces.Delete},
			{Method: http.MethodGet, Path: "/:id/occupied-slots", Handler: h.Spaces.OccupiedSlots},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Bookings.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Bookings.Cancel},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Bookings.Approve},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Bookings.Reject},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
