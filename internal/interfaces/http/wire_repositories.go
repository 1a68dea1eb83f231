package http

import (
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/activity"
	"github.com/expohub/expohub/internal/domain/analytics"
	"github.com/expohub/expohub/internal/domain/category"
	"github.com/expohub/expohub/internal/domain/company"
	"github.com/expohub/expohub/internal/domain/counter"
	"github.com/expohub/expohub/internal/domain/exhibition"
	"github.com/expohub/expohub/internal/domain/favorite"
	"github.com/expohub/expohub/internal/domain/media"
	"github.com/expohub/expohub/internal/domain/review"
	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/infrastructure/repository"
	"github.com/expohub/expohub/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	tokenRepo        token.Repository
	settingRepo      setting.Repository
	categoryRepo     category.Repository
	exhibitionRepo   exhibition.Repository
	registrationRepo exhibition.RegistrationRepository
	imageRepo        media.ImageRepository
	documentRepo     media.DocumentRepository
	companyRepo      company.Repository
	productRepo      company.ProductRepository
	contactRepo      company.ContactRepository
	favoriteRepo     favorite.Repository
	reviewRepo       review.Repository
	counterStore     counter.Store
	analyticsRepo    analytics.Repository
	activityRepo     activity.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		tokenRepo:        repository.NewTokenRepository(db, log),
		settingRepo:      repository.NewSiteSettingRepository(db, log),
		categoryRepo:     repository.NewCategoryRepository(db),
		exhibitionRepo:   repository.NewExhibitionRepository(db, log),
		registrationRepo: repository.NewRegistrationRepository(db),
		imageRepo:        repository.NewImageRepository(db),
		documentRepo:     repository.NewDocumentRepository(db),
		companyRepo:      repository.NewCompanyRepository(db, log),
		productRepo:      repository.NewProductRepository(db),
		contactRepo:      repository.NewContactRepository(db),
		favoriteRepo:     repository.NewFavoriteRepository(db),
		reviewRepo:       repository.NewReviewRepository(db, log),
		counterStore:     repository.NewCounterRepository(db),
		analyticsRepo:    repository.NewAnalyticsRepository(db),
		activityRepo:     repository.NewActivityRepository(db),
	}
}
