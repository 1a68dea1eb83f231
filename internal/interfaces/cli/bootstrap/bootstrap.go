// Package bootstrap loads configuration, logging, the business timezone and
// the database for every command.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/user"
	"github.com/expohub/expohub/internal/infrastructure/config"
	"github.com/expohub/expohub/internal/infrastructure/database"
	httpRouter "github.com/expohub/expohub/internal/interfaces/http"
	"github.com/expohub/expohub/internal/shared/biztime"
	sharedConfig "github.com/expohub/expohub/internal/shared/config"
	"github.com/expohub/expohub/internal/shared/constants"
	"github.com/expohub/expohub/internal/shared/logger"
)

// Env is what a command needs before it wires anything else.
type Env struct {
	Name   string
	Config *sharedConfig.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// ResolveEnv prefers the ENV variable over the flag value.
func ResolveEnv(flagValue string) string {
	if v := os.Getenv("ENV"); v != "" {
		return v
	}
	return flagValue
}

// Load initializes configuration, logging, timezone and the database.
func Load(env string) (*Env, error) {
	env = ResolveEnv(env)

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == constants.EnvDevelopment); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gin.SetMode(GinMode(env))
	cfg.Server.Mode = gin.Mode()

	return &Env{Name: env, Config: cfg, Log: log, DB: database.Get()}, nil
}

// Container wires the application services without starting the scheduler.
func (e *Env) Container(ctx context.Context) (*httpRouter.Container, error) {
	c, err := httpRouter.NewContainer(ctx, e.DB, e.Config, e.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to build container: %w", err)
	}
	return c, nil
}

// Principal loads the operator account that a command acts as.
func Principal(ctx context.Context, c *httpRouter.Container, userID uint) (user.Principal, error) {
	if userID == 0 {
		return user.Principal{}, fmt.Errorf("acting user ID is required")
	}
	u, err := c.Users().GetByID(ctx, userID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("failed to load acting user %d: %w", userID, err)
	}
	return u.Principal(), nil
}

// Close releases the database connection and flushes the logger.
func (e *Env) Close() {
	if err := database.Close(); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}

// GinMode maps an environment name to a gin mode.
func GinMode(env string) string {
	switch strings.ToLower(env) {
	case constants.EnvProduction, "prod", "release":
		return gin.ReleaseMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
