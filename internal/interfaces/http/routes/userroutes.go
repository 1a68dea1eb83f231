package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/interfaces/http/handlers"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for health and user management routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures the health probe and admin user routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	engine.GET("/health", cfg.UserHandler.HealthCheck)

	users := engine.Group("/admin/users")
	users.Use(
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequireCapability(user.CapabilityManageUsers),
	)
	{
		users.POST("/verify-email", cfg.UserHandler.BulkVerifyEmail)
	}
}
