package routes

import (
	"github.com/gin-gonic/gin"

	categoryHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/category"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
)

// CategoryRouteConfig holds dependencies for the public category list.
type CategoryRouteConfig struct {
	CategoryHandler *categoryHandlers.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCategoryRoutes configures GET /categories. Editing lives under
// /admin/categories.
func SetupCategoryRoutes(engine *gin.Engine, cfg *CategoryRouteConfig) {
	engine.GET("/categories", cfg.AuthMiddleware.OptionalAuth(), cfg.CategoryHandler.List)
}
