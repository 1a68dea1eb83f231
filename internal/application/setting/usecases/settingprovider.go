package usecases

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/expohub/expohub/internal/domain/setting"
	"github.com/expohub/expohub/internal/shared/logger"
)

// SettingProviderConfig holds the environment fallbacks used when a key was
// never stored in the database.
type SettingProviderConfig struct {
	VerificationTTL time.Duration
	ResetTTL        time.Duration
	ViewDedupWindow time.Duration
}

// SettingProvider serves typed site settings with database-first,
// env-fallback logic. Values are cached until Invalidate.
type SettingProvider struct {
	settingRepo setting.Repository
	fallbacks   map[setting.Key]string
	logger      logger.Interface

	mu    sync.RWMutex
	cache map[setting.Key]string
}

// NewSettingProvider creates a new SettingProvider
func NewSettingProvider(settingRepo setting.Repository, cfg SettingProviderConfig, logger logger.Interface) *SettingProvider {
	fallbacks := make(map[setting.Key]string)
	if cfg.VerificationTTL > 0 {
		fallbacks[setting.KeyVerificationTokenTTLHours] = strconv.Itoa(int(cfg.VerificationTTL / time.Hour))
	}
	if cfg.ResetTTL > 0 {
		fallbacks[setting.KeyResetTokenTTLHours] = strconv.Itoa(int(cfg.ResetTTL / time.Hour))
	}
	if cfg.ViewDedupWindow > 0 {
		fallbacks[setting.KeyViewDedupMinutes] = strconv.Itoa(int(cfg.ViewDedupWindow / time.Minute))
	}
	return &SettingProvider{
		settingRepo: settingRepo,
		fallbacks:   fallbacks,
		logger:      logger,
		cache:       make(map[setting.Key]string),
	}
}

// Raw returns the stored value of key, its env fallback, or its default.
func (p *SettingProvider) Raw(ctx context.Context, key setting.Key) (string, string) {
	p.mu.RLock()
	if v, ok := p.cache[key]; ok {
		p.mu.RUnlock()
		return v, "database"
	}
	p.mu.RUnlock()

	s, err := p.settingRepo.GetByKey(ctx, key)
	switch {
	case err == nil:
		p.mu.Lock()
		p.cache[key] = s.Value()
		p.mu.Unlock()
		return s.Value(), "database"
	case !errors.Is(err, setting.ErrSettingNotFound):
		p.logger.Warnw("failed to load setting, using fallback", "key", key, "error", err)
	}

	if v, ok := p.fallbacks[key]; ok {
		return v, "environment"
	}
	def, _ := setting.DefinitionOf(key)
	return def.Default, "default"
}

func (p *SettingProvider) String(ctx context.Context, key setting.Key) string {
	v, _ := p.Raw(ctx, key)
	return v
}

func (p *SettingProvider) Int(ctx context.Context, key setting.Key) int {
	v, _ := p.Raw(ctx, key)
	n, err := strconv.Atoi(v)
	if err != nil {
		def, _ := setting.DefinitionOf(key)
		n, _ = strconv.Atoi(def.Default)
	}
	return n
}

func (p *SettingProvider) Bool(ctx context.Context, key setting.Key) bool {
	v, _ := p.Raw(ctx, key)
	b, err := strconv.ParseBool(v)
	if err != nil {
		def, _ := setting.DefinitionOf(key)
		b, _ = strconv.ParseBool(def.Default)
	}
	return b
}

// VerificationTTL is the lifetime of email verification tokens.
func (p *SettingProvider) VerificationTTL(ctx context.Context) time.Duration {
	return hoursOrDefault(p.Int(ctx, setting.KeyVerificationTokenTTLHours), 24)
}

// ResetTTL is the lifetime of password reset tokens.
func (p *SettingProvider) ResetTTL(ctx context.Context) time.Duration {
	return hoursOrDefault(p.Int(ctx, setting.KeyResetTokenTTLHours), 2)
}

// ViewDedupWindow is how long repeated views by one viewer count once.
func (p *SettingProvider) ViewDedupWindow(ctx context.Context) time.Duration {
	return time.Duration(p.Int(ctx, setting.KeyViewDedupMinutes)) * time.Minute
}

// ModerationRequired reports whether new reviews wait for a moderator.
func (p *SettingProvider) ModerationRequired(ctx context.Context) bool {
	return p.Bool(ctx, setting.KeyModerationRequired)
}

// Invalidate drops cached values after an update.
func (p *SettingProvider) Invalidate(keys ...setting.Key) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(keys) == 0 {
		p.cache = make(map[setting.Key]string)
		return
	}
	for _, k := range keys {
		delete(p.cache, k)
	}
}

func hoursOrDefault(hours, def int) time.Duration {
	if hours <= 0 {
		hours = def
	}
	return time.Duration(hours) * time.Hour
}
