package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/shared/biztime"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

const issueAttempts = 2

// TTLProvider supplies token lifetimes per purpose.
type TTLProvider interface {
	VerificationTTL(ctx context.Context) time.Duration
	ResetTTL(ctx context.Context) time.Duration
}

// IssuedToken is the plain value to deliver to the user. It is never stored.
type IssuedToken struct {
	PlainToken string
	ExpiresAt  time.Time
}

// TokenLifecycle issues and consumes single-use email tokens.
type TokenLifecycle struct {
	tokenRepo token.Repository
	txManager common.TransactionManager
	generator services.TokenGenerator
	ttl       TTLProvider
	logger    logger.Interface
	now       func() time.Time
}

// NewTokenLifecycle creates a new TokenLifecycle
func NewTokenLifecycle(
	tokenRepo token.Repository,
	txManager common.TransactionManager,
	generator services.TokenGenerator,
	ttl TTLProvider,
	logger logger.Interface,
) *TokenLifecycle {
	return &TokenLifecycle{
		tokenRepo: tokenRepo,
		txManager: txManager,
		generator: generator,
		ttl:       ttl,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (l *TokenLifecycle) ttlFor(ctx context.Context, purpose token.Purpose) time.Duration {
	var ttl time.Duration
	if l.ttl != nil {
		switch purpose {
		case token.PurposeEmailVerification:
			ttl = l.ttl.VerificationTTL(ctx)
		case token.PurposePasswordReset:
			ttl = l.ttl.ResetTTL(ctx)
		}
	}
	if ttl > 0 {
		return ttl
	}
	if purpose == token.PurposePasswordReset {
		return token.DefaultResetTTL
	}
	return token.DefaultVerificationTTL
}

// Issue invalidates every live token of (userID, purpose) and stores a new
// one in the same transaction. A hash collision is retried once.
func (l *TokenLifecycle) Issue(ctx context.Context, userID uint, purpose token.Purpose) (*IssuedToken, error) {
	if !purpose.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid token purpose: %s", purpose))
	}
	ttl := l.ttlFor(ctx, purpose)

	var lastErr error
	for attempt := 1; attempt <= issueAttempts; attempt++ {
		plain, hash, err := l.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}

		var issued *token.Token
		lastErr = l.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			now := l.now()
			invalidated, err := l.tokenRepo.InvalidateLive(ctx, userID, purpose, now)
			if err != nil {
				return fmt.Errorf("failed to invalidate live tokens: %w", err)
			}
			if invalidated > 0 {
				l.logger.Debugw("invalidated previous tokens", "user_id", userID, "purpose", purpose, "count", invalidated)
			}

			issued, err = token.NewToken(userID, purpose, hash, ttl, now)
			if err != nil {
				return err
			}
			return l.tokenRepo.Create(ctx, issued)
		})
		if lastErr == nil {
			l.logger.Infow("token issued",
				"user_id", userID,
				"purpose", purpose,
				"expires_at", issued.ExpiresAt(),
			)
			return &IssuedToken{PlainToken: plain, ExpiresAt: issued.ExpiresAt()}, nil
		}
		if !apperrors.IsDuplicateError(lastErr) {
			break
		}
		l.logger.Warnw("token hash collision, retrying", "user_id", userID, "attempt", attempt)
	}

	l.logger.Errorw("failed to issue token", "user_id", userID, "purpose", purpose, "error", lastErr)
	return nil, fmt.Errorf("failed to issue token: %w", lastErr)
}

// ValidateAndConsume marks the token used and returns its user. Exactly one
// of any number of concurrent callers succeeds; the others observe
// ErrTokenAlreadyUsed.
func (l *TokenLifecycle) ValidateAndConsume(ctx context.Context, purpose token.Purpose, plainToken, ipAddress string) (uint, error) {
	if plainToken == "" {
		return 0, token.ErrTokenNotFound
	}
	hash := l.generator.HashToken(plainToken)

	t, err := l.tokenRepo.GetByHash(ctx, purpose, hash)
	if err != nil {
		return 0, err
	}
	now := l.now()
	if err := t.CheckUsable(now); err != nil {
		return 0, err
	}

	consumed, err := l.tokenRepo.ConsumeIfValid(ctx, t.ID(), now, ipAddress)
	if err != nil {
		return 0, fmt.Errorf("failed to consume token: %w", err)
	}
	if !consumed {
		fresh, err := l.tokenRepo.GetByHash(ctx, purpose, hash)
		if err != nil {
			return 0, err
		}
		if err := fresh.CheckUsable(now); err != nil {
			return 0, err
		}
		return 0, token.ErrTokenAlreadyUsed
	}

	l.logger.Infow("token consumed", "user_id", t.UserID(), "purpose", purpose)
	return t.UserID(), nil
}

// PurgeStale deletes tokens that expired or were used more than retention ago.
func (l *TokenLifecycle) PurgeStale(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := l.now().Add(-retention)
	n, err := l.tokenRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		l.logger.Errorw("failed to purge stale tokens", "error", err)
		return 0, fmt.Errorf("failed to purge stale tokens: %w", err)
	}
	l.logger.Infow("stale tokens purged", "count", n, "cutoff", cutoff)
	return n, nil
}

// MapTokenError converts token sentinels into application errors.
func MapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrTokenNotFound):
		return apperrors.NewNotFoundError("invalid or unknown token")
	case errors.Is(err, token.ErrTokenExpired):
		return apperrors.NewGoneError("token has expired")
	case errors.Is(err, token.ErrTokenAlreadyUsed):
		return apperrors.NewConflictError("token has already been used")
	default:
		return err
	}
}
