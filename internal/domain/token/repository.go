package token

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, t *Token) error
	// GetByHash returns ErrTokenNotFound when no token of purpose has hash.
	GetByHash(ctx context.Context, purpose Purpose, tokenHash string) (*Token, error)
	// InvalidateLive marks every unused, unexpired token of (userID, purpose) as used.
	InvalidateLive(ctx context.Context, userID uint, purpose Purpose, now time.Time) (int64, error)
	// ConsumeIfValid marks the token used only if it is still unused and
	// unexpired at now. It reports whether this call performed the consume.
	ConsumeIfValid(ctx context.Context, id uint, now time.Time, ipAddress string) (bool, error)
	// DeleteStale removes tokens that expired or were used before cutoff.
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}
