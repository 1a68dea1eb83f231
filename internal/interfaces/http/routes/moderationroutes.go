package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	lifecycleHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/lifecycle"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// ModerationRouteConfig holds dependencies for moderator routes.
type ModerationRouteConfig struct {
	LifecycleHandler     *lifecycleHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupModerationRoutes configures moderation decisions. The kind segment
// is exhibition or company.
func SetupModerationRoutes(engine *gin.Engine, cfg *ModerationRouteConfig) {
	moderation := engine.Group("/moderation")
	moderation.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequireCapability(user.CapabilityModerate),
	)
	{
		moderation.POST("/:kind", cfg.LifecycleHandler.BulkModerate)
		moderation.POST("/:kind/:id", cfg.LifecycleHandler.Moderate)
		moderation.POST("/:kind/:id/suspend", cfg.LifecycleHandler.Suspend)
	}
}
