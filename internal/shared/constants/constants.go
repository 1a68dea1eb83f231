package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeySuperuser   = "is_superuser"
	ContextKeyRequestID   = "request_id"
	ContextKeyViewerToken = "viewer_token"
)

// Table names
const (
	TableUsers              = "users"
	TableUserTokens         = "user_tokens"
	TableExhibitions        = "exhibitions"
	TableExhibitionRegs     = "exhibition_registrations"
	TableExhibitionImages   = "exhibition_images"
	TableExhibitionDocs     = "exhibition_documents"
	TableCategories         = "categories"
	TableCompanies          = "companies"
	TableProducts           = "products"
	TableCompanyGallery     = "company_gallery"
	TableContactRequests    = "contact_requests"
	TableReviews            = "reviews"
	TableReviewVotes        = "review_votes"
	TableFavorites          = "favorites"
	TableActivityLogs       = "activity_logs"
	TableEntityDailyMetrics = "entity_daily_metrics"
	TableSiteSettings       = "site_settings"
	TableCasbinRules        = "casbin_rule"
)
