package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/expohub/expohub/internal/domain/user"
	analyticsHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/analytics"
	favoriteHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/favorite"
	reviewHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/review"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// TargetRouteConfig holds dependencies for routes addressed by entity kind
// and id: favorites, reviews and analytics.
type TargetRouteConfig struct {
	FavoriteHandler      *favoriteHandlers.Handler
	ReviewHandler        *reviewHandlers.Handler
	AnalyticsHandler     *analyticsHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ReviewLimiter        *middleware.RateLimiter
}

// SetupTargetRoutes configures /targets/:kind/:id/*, /favorites and /reviews.
func SetupTargetRoutes(engine *gin.Engine, cfg *TargetRouteConfig) {
	targets := engine.Group("/targets/:kind/:id")
	{
		targets.GET("/reviews", cfg.AuthMiddleware.OptionalAuth(), cfg.ReviewHandler.List)

		authed := targets.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("/favorite", cfg.FavoriteHandler.Add)
			authed.DELETE("/favorite", cfg.FavoriteHandler.Remove)
			authed.POST("/reviews",
				cfg.PermissionMiddleware.RequireCapability(user.CapabilityWriteReview),
				cfg.ReviewLimiter.Limit(),
				cfg.ReviewHandler.Submit,
			)
			authed.GET("/analytics", cfg.AnalyticsHandler.Get)
		}
	}

	engine.GET("/favorites", cfg.AuthMiddleware.RequireAuth(), cfg.FavoriteHandler.List)

	reviews := engine.Group("/reviews")
	reviews.Use(cfg.AuthMiddleware.RequireAuth())
	{
		reviews.DELETE("/:id", cfg.ReviewHandler.Delete)
		reviews.POST("/:id/vote", cfg.ReviewHandler.Vote)
	}
}
