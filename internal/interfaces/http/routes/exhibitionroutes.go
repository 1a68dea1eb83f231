package routes

import (
	"github.com/gin-gonic/gin"

	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	exhibitionHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/exhibition"
	lifecycleHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/lifecycle"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// ExhibitionRouteConfig holds dependencies for exhibition routes.
type ExhibitionRouteConfig struct {
	ExhibitionHandler    *exhibitionHandlers.Handler
	LifecycleHandler     *lifecycleHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ViewerToken          gin.HandlerFunc
}

// SetupExhibitionRoutes configures exhibition routes. Reads are public;
// owners and moderators see unpublished listings when authenticated.
func SetupExhibitionRoutes(engine *gin.Engine, cfg *ExhibitionRouteConfig) {
	exhibitions := engine.Group("/exhibitions")
	{
		exhibitions.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.ExhibitionHandler.List)
		exhibitions.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.ExhibitionHandler.Get)
		exhibitions.POST("/:id/view", cfg.AuthMiddleware.OptionalAuth(), cfg.ViewerToken, cfg.ExhibitionHandler.RecordView)

		authed := exhibitions.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("", cfg.PermissionMiddleware.RequireCapability(user.CapabilityCreateExhibition), cfg.ExhibitionHandler.Create)
			authed.PUT("/:id", cfg.ExhibitionHandler.Update)
			authed.POST("/:id/register", cfg.ExhibitionHandler.Register)

			authed.POST("/:id/submit", cfg.LifecycleHandler.Submit(lvo.KindExhibition))
			authed.POST("/:id/publish", cfg.LifecycleHandler.Publish(lvo.KindExhibition))
			authed.POST("/:id/cancel", cfg.LifecycleHandler.Cancel(lvo.KindExhibition))
		}
	}
}
