package http

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/infrastructure/storage"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/interfaces/http/routes"
	"github.com/expohub/expohub/internal/interfaces/http/validators"
	"github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/logger"

	_ "github.com/expohub/expohub/docs"
)

// Router owns the gin engine and the dependency container behind it.
type Router struct {
	*Container
}

// NewRouter wires the container. Call SetupRoutes before serving.
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	if err := validators.Register(); err != nil {
		return nil, err
	}
	c, err := NewContainer(ctx, db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	cfg := r.cfg
	h := r.hdlrs
	secure := cfg.Environment == "production"

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	viewerToken := middleware.ViewerToken(secure)

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          h.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
		TokenLimiter:   r.tokenLimiter,
	})

	routes.SetupExhibitionRoutes(r.engine, &routes.ExhibitionRouteConfig{
		ExhibitionHandler:    h.exhibitionHandler,
		LifecycleHandler:     h.lifecycleHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ViewerToken:          viewerToken,
	})

	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler:       h.companyHandler,
		LifecycleHandler:     h.lifecycleHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ContactLimiter:       r.contactLimiter,
		ViewerToken:          viewerToken,
	})

	routes.SetupTargetRoutes(r.engine, &routes.TargetRouteConfig{
		FavoriteHandler:      h.favoriteHandler,
		ReviewHandler:        h.reviewHandler,
		AnalyticsHandler:     h.analyticsHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		ReviewLimiter:        r.reviewLimiter,
	})

	routes.SetupModerationRoutes(r.engine, &routes.ModerationRouteConfig{
		LifecycleHandler:     h.lifecycleHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		SettingHandler:       h.settingHandler,
		JobHandler:           h.jobHandler,
		ReviewHandler:        h.reviewHandler,
		CategoryHandler:      h.categoryHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: h.categoryHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupMediaRoutes(r.engine, &routes.MediaRouteConfig{
		MediaHandler:   h.mediaHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupUploadRoutes(r.engine, &routes.UploadRouteConfig{
		UploadHandler:  h.uploadHandler,
		AuthMiddleware: r.authMiddleware,
		UploadLimiter:  r.uploadLimiter,
	})

	if local, ok := r.assets.(*storage.LocalStorage); ok {
		r.engine.Static(mediaPath(cfg.Storage.PublicURL), local.Root())
	}

	if cfg.Server.EnableSwagger {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// StartScheduler starts the periodic maintenance jobs.
func (r *Router) StartScheduler() {
	r.schedulerManager.Start()
}

// mediaPath is the URL path local uploads are served under.
func mediaPath(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/media"
	}
	return u.Path
}
