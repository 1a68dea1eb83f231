package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/expohub/expohub/internal/shared/config"
)

// EnvPrefix prefixes every environment override, e.g. EXPOHUB_DATABASE_HOST.
const EnvPrefix = "EXPOHUB"

var (
	appConfig   *sharedConfig.Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, merges configs/config.<env>.yaml when it
// exists and applies EXPOHUB_* environment variables on top. Values from
// .env files are exported to the environment first and never override
// variables that are already set.
func Load(env string) (*sharedConfig.Config, error) {
	_ = godotenv.Load(".env")
	if env != "" && env != "default" {
		_ = godotenv.Load(".env." + env)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range []string{"./configs", "../configs", "../../configs"} {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to merge %s config: %w", env, err)
			}
		}
		v.Set("environment", env)
	}

	var cfg sharedConfig.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the loaded configuration
func Get() *sharedConfig.Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *sharedConfig.Config) error {
	switch cfg.Database.Driver {
	case sharedConfig.DriverMySQL, sharedConfig.DriverPostgres, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	switch cfg.Storage.Backend {
	case sharedConfig.StorageLocal, sharedConfig.StorageS3:
	default:
		return fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Environment == "production" && cfg.Auth.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("auth.jwt.secret must be set in production")
	}
	return nil
}

const defaultJWTSecret = "change-me-in-production"

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.enable_swagger", true)
	v.SetDefault("server.timezone", "Europe/Moscow")

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "expohub_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.password.max_failed_logins", 5)
	v.SetDefault("auth.password.lockout_minutes", 30)
	v.SetDefault("auth.token.verification_expires_hours", 24)
	v.SetDefault("auth.token.reset_expires_minutes", 120)
	v.SetDefault("auth.jwt.secret", defaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Email defaults
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@expohub.local")
	v.SetDefault("email.from_name", "ExpoHub")
	v.SetDefault("email.templates_dir", "")
	v.SetDefault("email.disabled", false)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Storage defaults
	v.SetDefault("storage.backend", sharedConfig.StorageLocal)
	v.SetDefault("storage.local_root", "./uploads")
	v.SetDefault("storage.public_url", "http://localhost:8080/media")

	// Scheduler defaults
	v.SetDefault("scheduler.complete_expired_interval", "1h")
	v.SetDefault("scheduler.repair_counters_interval", "24h")
	v.SetDefault("scheduler.purge_tokens_interval", "6h")

	// Moderation defaults
	v.SetDefault("moderation.view_dedup_window", "30m")
	v.SetDefault("moderation.token_requests_per_hour", 5)
	v.SetDefault("moderation.notify_owner_on_decision", true)
}
