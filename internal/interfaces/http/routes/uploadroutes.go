package routes

import (
	"github.com/gin-gonic/gin"

	uploadHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/upload"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// UploadRouteConfig holds dependencies for file uploads.
type UploadRouteConfig struct {
	UploadHandler  *uploadHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	UploadLimiter  *middleware.RateLimiter
}

// SetupUploadRoutes configures /uploads/:folder.
func SetupUploadRoutes(engine *gin.Engine, cfg *UploadRouteConfig) {
	engine.POST("/uploads/:folder",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.UploadLimiter.Limit(),
		cfg.UploadHandler.Upload,
	)
}
