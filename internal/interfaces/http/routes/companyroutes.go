package routes

import (
	"github.com/gin-gonic/gin"

	lvo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
	"github.com/expohub/expohub/internal/domain/user"
	companyHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/company"
	lifecycleHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/lifecycle"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// CompanyRouteConfig holds dependencies for company and product routes.
type CompanyRouteConfig struct {
	CompanyHandler       *companyHandlers.Handler
	LifecycleHandler     *lifecycleHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	ContactLimiter       *middleware.RateLimiter
	ViewerToken          gin.HandlerFunc
}

// SetupCompanyRoutes configures company routes.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	{
		companies.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.CompanyHandler.List)
		companies.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.CompanyHandler.Get)
		companies.POST("/:id/view", cfg.AuthMiddleware.OptionalAuth(), cfg.ViewerToken, cfg.CompanyHandler.RecordView)
		companies.POST("/:id/products/:productId/view", cfg.AuthMiddleware.OptionalAuth(), cfg.ViewerToken, cfg.CompanyHandler.RecordProductView)
		companies.POST("/:id/contact", cfg.AuthMiddleware.OptionalAuth(), cfg.ContactLimiter.Limit(), cfg.CompanyHandler.SubmitContact)

		authed := companies.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authed.POST("", cfg.PermissionMiddleware.RequireCapability(user.CapabilityCreateCompany), cfg.CompanyHandler.Create)
			authed.PUT("/:id", cfg.CompanyHandler.Update)
			authed.POST("/:id/products", cfg.CompanyHandler.CreateProduct)

			authed.POST("/:id/submit", cfg.LifecycleHandler.Submit(lvo.KindCompany))
			authed.POST("/:id/publish", cfg.LifecycleHandler.Publish(lvo.KindCompany))
			authed.POST("/:id/cancel", cfg.LifecycleHandler.Cancel(lvo.KindCompany))
		}
	}
}
