package http

import (
	"context"
	"time"

	"github.com/expohub/expohub/internal/infrastructure/storage"
	"github.com/expohub/expohub/internal/interfaces/http/handlers"
	adminHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/admin"
	analyticsHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/analytics"
	categoryHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/category"
	companyHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/company"
	exhibitionHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/exhibition"
	favoriteHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/favorite"
	lifecycleHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/lifecycle"
	mediaHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/media"
	reviewHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/review"
	uploadHandlers "github.com/expohub/expohub/internal/interfaces/http/handlers/upload"
	"github.com/expohub/expohub/internal/shared/biztime"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	authHandler *handlers.AuthHandler
	userHandler *handlers.UserHandler

	// Listings
	exhibitionHandler *exhibitionHandlers.Handler
	companyHandler    *companyHandlers.Handler
	lifecycleHandler  *lifecycleHandlers.Handler
	mediaHandler      *mediaHandlers.Handler
	categoryHandler   *categoryHandlers.Handler

	// Engagement
	favoriteHandler  *favoriteHandlers.Handler
	reviewHandler    *reviewHandlers.Handler
	analyticsHandler *analyticsHandlers.Handler
	uploadHandler    *uploadHandlers.Handler

	// Admin
	settingHandler *adminHandlers.SettingHandler
	jobHandler     *adminHandlers.JobHandler
}

// ============================================================
// Section 6: Handlers
// ============================================================

func newHandlers(c *Container) *allHandlers {
	log := c.log
	ucs := c.ucs

	return &allHandlers{
		authHandler: handlers.NewAuthHandler(
			ucs.registerUC,
			ucs.loginUC,
			ucs.verifyEmailUC,
			ucs.resendVerificationUC,
			ucs.requestResetUC,
			ucs.resetPasswordUC,
			c.repos.userRepo,
			log,
		),
		userHandler: handlers.NewUserHandler(ucs.bulkVerifyEmailUC, c.healthProbes(), log),

		exhibitionHandler: exhibitionHandlers.NewHandler(
			ucs.createExhibitionUC,
			ucs.updateExhibitionUC,
			ucs.getExhibitionUC,
			ucs.listExhibitionsUC,
			ucs.exhibitionViewUC,
			ucs.registerVisitorUC,
			log,
		),
		companyHandler: companyHandlers.NewHandler(
			ucs.createCompanyUC,
			ucs.updateCompanyUC,
			ucs.getCompanyUC,
			ucs.listCompaniesUC,
			ucs.createProductUC,
			ucs.companyViewUC,
			ucs.submitContactUC,
			log,
		),
		lifecycleHandler: lifecycleHandlers.NewHandler(
			ucs.submitUC,
			ucs.publishUC,
			ucs.cancelUC,
			ucs.suspendUC,
			ucs.moderateUC,
			ucs.bulkModerateUC,
			log,
		),
		mediaHandler: mediaHandlers.NewHandler(
			ucs.addImageUC,
			ucs.removeImageUC,
			ucs.listImagesUC,
			ucs.addDocumentUC,
			ucs.removeDocumentUC,
			ucs.listDocumentsUC,
			ucs.downloadDocumentUC,
			log,
		),
		categoryHandler: categoryHandlers.NewHandler(ucs.createCategoryUC, ucs.updateCategoryUC, ucs.listCategoriesUC, log),

		favoriteHandler: favoriteHandlers.NewHandler(ucs.toggleFavoriteUC, ucs.listFavoritesUC, log),
		reviewHandler: reviewHandlers.NewHandler(
			ucs.submitReviewUC,
			ucs.listReviewsUC,
			ucs.moderateReviewUC,
			ucs.deleteReviewUC,
			ucs.voteReviewUC,
			log,
		),
		analyticsHandler: analyticsHandlers.NewHandler(ucs.getAnalyticsUC, log),
		uploadHandler: uploadHandlers.NewHandler(
			c.assets,
			func(folder, ext string) string { return storage.NewRef(folder, biztime.NowUTC(), ext) },
			storage.ExtensionFor,
			storage.DocumentExtensionFor,
			log,
		),

		settingHandler: adminHandlers.NewSettingHandler(ucs.getSettingsUC, ucs.updateSettingsUC, log),
		jobHandler:     adminHandlers.NewJobHandler(c.schedulerManager, log),
	}
}

// healthProbes checks the database and, when enabled, Redis.
func (c *Container) healthProbes() map[string]handlers.HealthProbe {
	probes := map[string]handlers.HealthProbe{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		probes["redis"] = func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			return c.redis.Ping(ctx).Err()
		}
	}
	return probes
}
