package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	adminHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/admin"
	categoryHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/category"
	reviewHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/review"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	SettingHandler       *adminHandlers.SettingHandler
	JobHandler           *adminHandlers.JobHandler
	ReviewHandler        *reviewHandlers.Handler
	CategoryHandler      *categoryHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	settings := admin.Group("/settings")
	settings.Use(cfg.PermissionMiddleware.RequireCapability(user.CapabilityManageSettings))
	{
		settings.GET("", cfg.SettingHandler.GetSettings)
		settings.PUT("", cfg.SettingHandler.UpdateSettings)
	}

	jobs := admin.Group("/jobs")
	jobs.Use(cfg.PermissionMiddleware.RequireCapability(user.CapabilityManageSettings))
	{
		jobs.GET("", cfg.JobHandler.ListJobs)
		jobs.POST("/:name/run", cfg.JobHandler.RunJob)
	}

	categories := admin.Group("/categories")
	categories.Use(cfg.PermissionMiddleware.RequireCapability(user.CapabilityManageSettings))
	{
		categories.POST("", cfg.CategoryHandler.Create)
		categories.PUT("/:id", cfg.CategoryHandler.Update)
	}

	reviews := admin.Group("/reviews")
	reviews.Use(cfg.PermissionMiddleware.RequireCapability(user.CapabilityModerate))
	{
		reviews.POST("/:id/moderate", cfg.ReviewHandler.Moderate)
	}
}
