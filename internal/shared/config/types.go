package config

import (
	"fmt"
	"time"
)

type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Email       EmailConfig      `mapstructure:"email"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Scheduler   SchedulerConfig  `mapstructure:"scheduler"`
	Moderation  ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	EnableSwagger  bool     `mapstructure:"enable_swagger"`
	// Timezone sets calendar day boundaries for analytics and listings.
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"ssl_mode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver specific connection string. For sqlite the
// Database field is the file path (":memory:" is allowed).
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case DriverPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case DriverSQLite:
		return d.Database
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost      int `mapstructure:"bcrypt_cost"`
	MaxFailedLogins int `mapstructure:"max_failed_logins"`
	LockoutMinutes  int `mapstructure:"lockout_minutes"`
}

type TokenConfig struct {
	VerificationExpiresHours int `mapstructure:"verification_expires_hours"`
	ResetExpiresMinutes      int `mapstructure:"reset_expires_minutes"`
}

func (t TokenConfig) VerificationTTL() time.Duration {
	return time.Duration(t.VerificationExpiresHours) * time.Hour
}

func (t TokenConfig) ResetTTL() time.Duration {
	return time.Duration(t.ResetExpiresMinutes) * time.Minute
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	Token    TokenConfig    `mapstructure:"token"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// TemplatesDir holds custom.<name>.yaml overrides of the built-in templates.
	TemplatesDir string `mapstructure:"templates_dir"`
	// Disabled swaps the SMTP sender for one that only logs.
	Disabled bool `mapstructure:"disabled"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type StorageConfig struct {
	Backend   string `mapstructure:"backend"`
	LocalRoot string `mapstructure:"local_root"`
	PublicURL string `mapstructure:"public_url"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type SchedulerConfig struct {
	CompleteExpiredInterval time.Duration `mapstructure:"complete_expired_interval"`
	RepairCountersInterval  time.Duration `mapstructure:"repair_counters_interval"`
	PurgeTokensInterval     time.Duration `mapstructure:"purge_tokens_interval"`
}

type ModerationConfig struct {
	ViewDedupWindow       time.Duration `mapstructure:"view_dedup_window"`
	TokenRequestsPerHour  int           `mapstructure:"token_requests_per_hour"`
	NotifyOwnerOnDecision bool          `mapstructure:"notify_owner_on_decision"`
}
