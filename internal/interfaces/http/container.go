package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	lifecycleusecases "github.com/expohub/expohub/internal/application/lifecycle/usecases"
	settingusecases "github.com/expohub/expohub/internal/application/setting/usecases"
	tokenusecases "github.com/expohub/expohub/internal/application/token/usecases"
	userusecases "github.com/expohub/expohub/internal/application/user/usecases"
	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/infrastructure/auth"
	"github.com/expohub/expohub/internal/infrastructure/email"
	"github.com/expohub/expohub/internal/infrastructure/permission"
	"github.com/expohub/expohub/internal/infrastructure/scheduler"
	"github.com/expohub/expohub/internal/infrastructure/storage"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/config"
	shareddb "github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background jobs, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter
	tokenLimiter         *middleware.RateLimiter
	contactLimiter       *middleware.RateLimiter
	reviewLimiter        *middleware.RateLimiter
	uploadLimiter        *middleware.RateLimiter

	// Shared services
	txManager        *shareddb.TransactionManager
	settingProvider  *settingusecases.SettingProvider
	tokenLifecycle   *tokenusecases.TokenLifecycle
	hasher           *auth.BcryptPasswordHasher
	jwtSvc           *auth.JWTService
	emailSvc         *email.EmailService
	assets           storage.Storage
	enforcer         *permission.Enforcer
	counters         *aggregation.CounterService
	ratings          *aggregation.RatingService
	repairer         *aggregation.CounterRepairer
	dispatcher       *hooks.Dispatcher
	targets          common.Targets
	subjects         lifecycleusecases.SubjectRepositories
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories, Storage, Email
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: Domain services - Tokens, Counters, Ratings, Hooks
	c.initDomainServices()

	// Section 3: Authorization - Casbin policies and middlewares
	if err := c.initAuthorization(); err != nil {
		return nil, err
	}

	// Section 4: Use cases
	c.ucs = newUseCases(c)

	// Section 5: Scheduler jobs
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	// Section 6: Handlers
	c.hdlrs = newHandlers(c)

	return c, nil
}

// Engine returns the gin engine routes are mounted on.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Scheduler returns the maintenance job scheduler.
func (c *Container) Scheduler() *scheduler.SchedulerManager {
	return c.schedulerManager
}

// BulkModerate exposes the bulk moderation use case to the CLI.
func (c *Container) BulkModerate() *lifecycleusecases.BulkModerateUseCase {
	return c.ucs.bulkModerateUC
}

// BulkVerifyEmail exposes the bulk verification use case to the CLI.
func (c *Container) BulkVerifyEmail() *userusecases.BulkVerifyEmailUseCase {
	return c.ucs.bulkVerifyEmailUC
}

// Users returns the user repository for operator commands.
func (c *Container) Users() user.Repository {
	return c.repos.userRepo
}

// Shutdown stops background jobs and closes Redis.
func (c *Container) Shutdown() error {
	var firstErr error
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			firstErr = fmt.Errorf("failed to stop scheduler: %w", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close redis: %w", err)
		}
	}
	return firstErr
}
