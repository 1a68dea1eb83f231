package http

import (
	"time"

	analyticsusecases "github.com/expohub/expohub/internal/application/analytics/usecases"
	categoryusecases "github.com/expohub/expohub/internal/application/category/usecases"
	companyusecases "github.com/expohub/expohub/internal/application/company/usecases"
	exhibitionusecases "github.com/expohub/expohub/internal/application/exhibition/usecases"
	favoriteusecases "github.com/expohub/expohub/internal/application/favorite/usecases"
	lifecycleusecases "github.com/expohub/expohub/internal/application/lifecycle/usecases"
	mediausecases "github.com/expohub/expohub/internal/application/media/usecases"
	reviewusecases "github.com/expohub/expohub/internal/application/review/usecases"
	settingusecases "github.com/expohub/expohub/internal/application/setting/usecases"
	userusecases "github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/domain/user"
)

// allUseCases holds every use case the handlers and jobs call.
type allUseCases struct {
	// User & Auth
	registerUC           *userusecases.RegisterUseCase
	loginUC              *userusecases.LoginUseCase
	verifyEmailUC        *userusecases.VerifyEmailUseCase
	resendVerificationUC *userusecases.ResendVerificationUseCase
	requestResetUC       *userusecases.RequestPasswordResetUseCase
	resetPasswordUC      *userusecases.ResetPasswordUseCase
	bulkVerifyEmailUC    *userusecases.BulkVerifyEmailUseCase

	// Lifecycle
	submitUC          *lifecycleusecases.SubmitForReviewUseCase
	publishUC         *lifecycleusecases.PublishUseCase
	cancelUC          *lifecycleusecases.CancelUseCase
	suspendUC         *lifecycleusecases.SuspendUseCase
	moderateUC        *lifecycleusecases.ModerateUseCase
	bulkModerateUC    *lifecycleusecases.BulkModerateUseCase
	completeExpiredUC *lifecycleusecases.CompleteExpiredUseCase

	// Exhibition
	createExhibitionUC *exhibitionusecases.CreateExhibitionUseCase
	updateExhibitionUC *exhibitionusecases.UpdateExhibitionUseCase
	getExhibitionUC    *exhibitionusecases.GetExhibitionUseCase
	listExhibitionsUC  *exhibitionusecases.ListExhibitionsUseCase
	exhibitionViewUC   *exhibitionusecases.RecordViewUseCase
	registerVisitorUC  *exhibitionusecases.RegisterUseCase

	// Company
	createCompanyUC *companyusecases.CreateCompanyUseCase
	updateCompanyUC *companyusecases.UpdateCompanyUseCase
	getCompanyUC    *companyusecases.GetCompanyUseCase
	listCompaniesUC *companyusecases.ListCompaniesUseCase
	createProductUC *companyusecases.CreateProductUseCase
	companyViewUC   *companyusecases.RecordViewUseCase
	submitContactUC *companyusecases.SubmitContactUseCase

	// Media
	addImageUC         *mediausecases.AddImageUseCase
	removeImageUC      *mediausecases.RemoveImageUseCase
	listImagesUC       *mediausecases.ListImagesUseCase
	addDocumentUC      *mediausecases.AddDocumentUseCase
	removeDocumentUC   *mediausecases.RemoveDocumentUseCase
	listDocumentsUC    *mediausecases.ListDocumentsUseCase
	downloadDocumentUC *mediausecases.DownloadDocumentUseCase

	// Categories
	createCategoryUC *categoryusecases.CreateCategoryUseCase
	updateCategoryUC *categoryusecases.UpdateCategoryUseCase
	listCategoriesUC *categoryusecases.ListCategoriesUseCase

	// Favorites, reviews, analytics
	toggleFavoriteUC *favoriteusecases.ToggleFavoriteUseCase
	listFavoritesUC  *favoriteusecases.ListFavoritesUseCase
	submitReviewUC   *reviewusecases.SubmitReviewUseCase
	listReviewsUC    *reviewusecases.ListReviewsUseCase
	moderateReviewUC *reviewusecases.ModerateReviewUseCase
	deleteReviewUC   *reviewusecases.DeleteReviewUseCase
	voteReviewUC     *reviewusecases.VoteReviewUseCase
	getAnalyticsUC   *analyticsusecases.GetAnalyticsUseCase

	// Settings
	getSettingsUC    *settingusecases.GetSettingsUseCase
	updateSettingsUC *settingusecases.UpdateSettingsUseCase
}

// ============================================================
// Section 4: Use cases
// ============================================================

func newUseCases(c *Container) *allUseCases {
	log := c.log
	repos := c.repos
	lockout := user.LockoutPolicy{
		MaxAttempts: c.cfg.Auth.Password.MaxFailedLogins,
		Duration:    time.Duration(c.cfg.Auth.Password.LockoutMinutes) * time.Minute,
	}
	if lockout.MaxAttempts <= 0 || lockout.Duration <= 0 {
		lockout = user.DefaultLockoutPolicy()
	}

	ucs := &allUseCases{}

	ucs.registerUC = userusecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.tokenLifecycle, c.emailSvc, repos.activityRepo, log)
	ucs.loginUC = userusecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, lockout, repos.activityRepo, log)
	ucs.verifyEmailUC = userusecases.NewVerifyEmailUseCase(repos.userRepo, c.tokenLifecycle, c.txManager, repos.activityRepo, log)
	ucs.resendVerificationUC = userusecases.NewResendVerificationUseCase(repos.userRepo, c.tokenLifecycle, c.emailSvc, log)
	ucs.requestResetUC = userusecases.NewRequestPasswordResetUseCase(repos.userRepo, c.tokenLifecycle, c.emailSvc, log)
	ucs.resetPasswordUC = userusecases.NewResetPasswordUseCase(repos.userRepo, c.hasher, c.tokenLifecycle, c.txManager, c.emailSvc, repos.activityRepo, log)
	ucs.bulkVerifyEmailUC = userusecases.NewBulkVerifyEmailUseCase(repos.userRepo, log)

	ucs.submitUC = lifecycleusecases.NewSubmitForReviewUseCase(c.subjects, c.txManager, c.dispatcher, log)
	ucs.publishUC = lifecycleusecases.NewPublishUseCase(c.subjects, c.txManager, c.dispatcher, log)
	ucs.cancelUC = lifecycleusecases.NewCancelUseCase(c.subjects, c.txManager, c.dispatcher, log)
	ucs.suspendUC = lifecycleusecases.NewSuspendUseCase(c.subjects, c.txManager, c.dispatcher, log)
	ucs.moderateUC = lifecycleusecases.NewModerateUseCase(c.subjects, c.txManager, c.dispatcher, log)
	ucs.bulkModerateUC = lifecycleusecases.NewBulkModerateUseCase(ucs.moderateUC, log)
	ucs.completeExpiredUC = lifecycleusecases.NewCompleteExpiredUseCase(repos.exhibitionRepo, c.subjects, c.txManager, c.dispatcher, log)

	ucs.createExhibitionUC = exhibitionusecases.NewCreateExhibitionUseCase(repos.exhibitionRepo, repos.categoryRepo, c.dispatcher, c.assets, log)
	ucs.updateExhibitionUC = exhibitionusecases.NewUpdateExhibitionUseCase(repos.exhibitionRepo, repos.categoryRepo, c.assets, log)
	ucs.getExhibitionUC = exhibitionusecases.NewGetExhibitionUseCase(repos.exhibitionRepo, c.assets, log)
	ucs.listExhibitionsUC = exhibitionusecases.NewListExhibitionsUseCase(repos.exhibitionRepo, c.assets, log)
	ucs.exhibitionViewUC = exhibitionusecases.NewRecordViewUseCase(c.counters)
	ucs.registerVisitorUC = exhibitionusecases.NewRegisterUseCase(repos.exhibitionRepo, repos.registrationRepo, c.counters, log)

	ucs.createCompanyUC = companyusecases.NewCreateCompanyUseCase(repos.companyRepo, repos.categoryRepo, c.dispatcher, c.assets, log)
	ucs.updateCompanyUC = companyusecases.NewUpdateCompanyUseCase(repos.companyRepo, repos.categoryRepo, c.assets, log)
	ucs.getCompanyUC = companyusecases.NewGetCompanyUseCase(repos.companyRepo, repos.productRepo, c.assets, log)
	ucs.listCompaniesUC = companyusecases.NewListCompaniesUseCase(repos.companyRepo, c.assets, log)
	ucs.createProductUC = companyusecases.NewCreateProductUseCase(repos.companyRepo, repos.productRepo, log)
	ucs.companyViewUC = companyusecases.NewRecordViewUseCase(c.counters)
	ucs.submitContactUC = companyusecases.NewSubmitContactUseCase(repos.companyRepo, repos.productRepo, repos.contactRepo, c.counters, log)

	ucs.addImageUC = mediausecases.NewAddImageUseCase(c.targets, repos.imageRepo, c.assets, log)
	ucs.removeImageUC = mediausecases.NewRemoveImageUseCase(c.targets, repos.imageRepo, c.assets, log)
	ucs.listImagesUC = mediausecases.NewListImagesUseCase(c.targets, repos.imageRepo, c.assets)
	ucs.addDocumentUC = mediausecases.NewAddDocumentUseCase(c.targets, repos.documentRepo, c.assets, log)
	ucs.removeDocumentUC = mediausecases.NewRemoveDocumentUseCase(c.targets, repos.documentRepo, c.assets, log)
	ucs.listDocumentsUC = mediausecases.NewListDocumentsUseCase(c.targets, repos.documentRepo, c.assets)
	ucs.downloadDocumentUC = mediausecases.NewDownloadDocumentUseCase(c.targets, repos.documentRepo, c.assets, log)

	ucs.createCategoryUC = categoryusecases.NewCreateCategoryUseCase(repos.categoryRepo, c.assets, log)
	ucs.updateCategoryUC = categoryusecases.NewUpdateCategoryUseCase(repos.categoryRepo, c.assets, log)
	ucs.listCategoriesUC = categoryusecases.NewListCategoriesUseCase(repos.categoryRepo, c.assets, log)

	ucs.toggleFavoriteUC = favoriteusecases.NewToggleFavoriteUseCase(
		repos.favoriteRepo, c.targets, repos.counterStore, c.txManager, repos.activityRepo, repos.analyticsRepo, log,
	)
	ucs.listFavoritesUC = favoriteusecases.NewListFavoritesUseCase(repos.favoriteRepo, log)

	ucs.submitReviewUC = reviewusecases.NewSubmitReviewUseCase(
		repos.reviewRepo, c.targets, c.ratings, c.txManager, c.settingProvider, repos.activityRepo, repos.analyticsRepo, log,
	)
	ucs.listReviewsUC = reviewusecases.NewListReviewsUseCase(repos.reviewRepo, c.targets, log)
	ucs.moderateReviewUC = reviewusecases.NewModerateReviewUseCase(repos.reviewRepo, c.ratings, c.txManager, log)
	ucs.deleteReviewUC = reviewusecases.NewDeleteReviewUseCase(repos.reviewRepo, c.ratings, c.txManager, log)
	ucs.voteReviewUC = reviewusecases.NewVoteReviewUseCase(repos.reviewRepo, log)
	ucs.getAnalyticsUC = analyticsusecases.NewGetAnalyticsUseCase(c.targets, repos.analyticsRepo, log)

	ucs.getSettingsUC = settingusecases.NewGetSettingsUseCase(repos.settingRepo, c.settingProvider, log)
	ucs.updateSettingsUC = settingusecases.NewUpdateSettingsUseCase(repos.settingRepo, c.txManager, c.settingProvider, log)

	return ucs
}
