package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expohub/expohub/internal/application/aggregation"
	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/application/hooks"
	lifecycleusecases "github.com/expohub/expohub/internal/application/lifecycle/usecases"
	settingusecases "github.com/expohub/expohub/internal/application/setting/usecases"
	tokenusecases "github.com/expohub/expohub/internal/application/token/usecases"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/infrastructure/auth"
	"github.com/expohub/expohub/internal/infrastructure/cache"
	"github.com/expohub/expohub/internal/infrastructure/email"
	"github.com/expohub/expohub/internal/infrastructure/permission"
	"github.com/expohub/expohub/internal/infrastructure/ratelimit"
	"github.com/expohub/expohub/internal/infrastructure/scheduler"
	"github.com/expohub/expohub/internal/infrastructure/storage"
	"github.com/expohub/expohub/internal/interfaces/http/middleware"
	"github.com/expohub/expohub/internal/shared/config"
	shareddb "github.com/expohub/expohub/internal/shared/db"
	"github.com/expohub/expohub/internal/shared/logger"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Storage, Email
// ============================================================

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(ctx, cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	} else {
		log.Infow("redis disabled, using in-process view dedup and no rate limits")
	}

	c.repos = newRepositories(c.db, log)
	c.txManager = shareddb.NewTransactionManager(c.db)

	c.settingProvider = settingusecases.NewSettingProvider(c.repos.settingRepo, settingusecases.SettingProviderConfig{
		VerificationTTL: cfg.Auth.Token.VerificationTTL(),
		ResetTTL:        cfg.Auth.Token.ResetTTL(),
		ViewDedupWindow: cfg.Moderation.ViewDedupWindow,
	}, log)

	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	emailSvc, err := email.NewFromConfig(cfg.Email, cfg.Server.BaseURL, c.settingProvider, log)
	if err != nil {
		return fmt.Errorf("failed to initialize email service: %w", err)
	}
	c.emailSvc = emailSvc

	assets, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize asset storage: %w", err)
	}
	c.assets = assets

	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// ============================================================
// Section 2: Domain services - Tokens, Counters, Ratings, Hooks
// ============================================================

func (c *Container) initDomainServices() {
	log := c.log
	repos := c.repos

	c.tokenLifecycle = tokenusecases.NewTokenLifecycle(
		repos.tokenRepo, c.txManager, services.NewTokenGenerator(), c.settingProvider, log,
	)

	var dedup aggregation.ViewDeduplicator = cache.NewMemoryViewDeduplicator()
	if c.redis != nil {
		dedup = cache.NewRedisViewDeduplicator(c.redis)
	}
	c.counters = aggregation.NewCounterService(
		repos.counterStore, repos.analyticsRepo, dedup, c.settingProvider.ViewDedupWindow, log,
	)
	c.ratings = aggregation.NewRatingService(repos.reviewRepo, repos.counterStore, log)
	c.repairer = aggregation.NewCounterRepairer(
		repos.counterStore, repos.favoriteRepo, repos.registrationRepo, repos.contactRepo, c.ratings, log,
	)

	lifecycleHooks := []hooks.Hook{hooks.NewActivityHook(repos.activityRepo)}
	if c.cfg.Moderation.NotifyOwnerOnDecision {
		lifecycleHooks = append(lifecycleHooks, hooks.NewNotificationHook(repos.userRepo, c.emailSvc))
	}
	c.dispatcher = hooks.NewDispatcher(log, lifecycleHooks...)

	c.targets = common.NewTargets(repos.exhibitionRepo, repos.companyRepo)
	c.subjects = lifecycleusecases.NewSubjectRepositories(repos.exhibitionRepo, repos.companyRepo)
}

// ============================================================
// Section 3: Authorization - Casbin policies and middlewares
// ============================================================

func (c *Container) initAuthorization() error {
	log := c.log

	enforcer, err := permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := enforcer.SyncCapabilities(); err != nil {
		return fmt.Errorf("failed to sync capabilities: %w", err)
	}
	c.enforcer = enforcer

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)

	// A nil limiter lets every request through.
	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}
	c.loginLimiter = middleware.NewRateLimiter(limiter, "login", ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	}, log)
	c.tokenLimiter = middleware.NewRateLimiter(limiter, "token", ratelimit.RateLimitConfig{
		RequestsPerHour: c.cfg.Moderation.TokenRequestsPerHour,
	}, log)
	c.contactLimiter = middleware.NewRateLimiter(limiter, "contact", ratelimit.RateLimitConfig{
		RequestsPerMinute: 5,
		RequestsPerHour:   30,
	}, log)
	c.reviewLimiter = middleware.NewRateLimiter(limiter, "review", ratelimit.RateLimitConfig{
		RequestsPerHour: 20,
	}, log)
	c.uploadLimiter = middleware.NewRateLimiter(limiter, "upload", ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	}, log)

	return nil
}

// ============================================================
// Section 5: Scheduler jobs
// ============================================================

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	intervals := c.cfg.Scheduler
	jobs := []struct {
		name     string
		interval time.Duration
		job      scheduler.BatchJob
	}{
		{scheduler.JobCompleteExpired, intervals.CompleteExpiredInterval, scheduler.CompleteExpiredJob(c.ucs.completeExpiredUC)},
		{scheduler.JobRepairCounters, intervals.RepairCountersInterval, scheduler.RepairCountersJob(c.repairer)},
		{scheduler.JobPurgeTokens, intervals.PurgeTokensInterval, scheduler.PurgeTokensJob(c.tokenLifecycle)},
	}
	for _, j := range jobs {
		if err := manager.Register(j.name, j.interval, j.job); err != nil {
			return fmt.Errorf("failed to register job %s: %w", j.name, err)
		}
	}

	c.schedulerManager = manager
	return nil
}
