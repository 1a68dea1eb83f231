package usecases

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/expohub/expohub/internal/domain/shared/services"
	"github.com/expohub/expohub/internal/domain/token"
	apperrors "github.com/expohub/expohub/internal/shared/errors"
	"github.com/expohub/expohub/internal/shared/logger"
)

func newTestLifecycle(repo *memoryTokenRepository, now time.Time) *TokenLifecycle {
	l := NewTokenLifecycle(repo, passthroughTx{}, services.NewTokenGenerator(), fixedTTL{}, logger.NewNopLogger())
	l.now = func() time.Time { return now }
	return l
}

func TestTokenLifecycle_IssueInvalidatesPrevious(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryTokenRepository()
	l := newTestLifecycle(repo, now)
	ctx := context.Background()

	first, err := l.Issue(ctx, 7, token.PurposePasswordReset)
	require.NoError(t, err)
	second, err := l.Issue(ctx, 7, token.PurposePasswordReset)
	require.NoError(t, err)

	assert.NotEqual(t, first.PlainToken, second.PlainToken)
	assert.Equal(t, now.Add(token.DefaultResetTTL), second.ExpiresAt)
	assert.Equal(t, 1, repo.live(7, token.PurposePasswordReset, now))

	_, err = l.ValidateAndConsume(ctx, token.PurposePasswordReset, first.PlainToken, "")
	assert.ErrorIs(t, err, token.ErrTokenAlreadyUsed)

	userID, err := l.ValidateAndConsume(ctx, token.PurposePasswordReset, second.PlainToken, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestTokenLifecycle_IssueUsesConfiguredTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryTokenRepository()
	l := newTestLifecycle(repo, now)
	l.ttl = fixedTTL{verification: 48 * time.Hour}

	issued, err := l.Issue(context.Background(), 1, token.PurposeEmailVerification)
	require.NoError(t, err)
	assert.Equal(t, now.Add(48*time.Hour), issued.ExpiresAt)
}

func TestTokenLifecycle_IssueRetriesDuplicateOnce(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		wantErr   bool
		wantCalls int
	}{
		{"one collision", 1, false, 2},
		{"two collisions", 2, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryTokenRepository()
			calls := 0
			repo.CreateFunc = func(context.Context, *token.Token) error {
				calls++
				if calls <= tt.failures {
					return gorm.ErrDuplicatedKey
				}
				return nil
			}
			l := newTestLifecycle(repo, time.Now())

			_, err := l.Issue(context.Background(), 1, token.PurposeEmailVerification)

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.True(t, apperrors.IsDuplicateError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenLifecycle_ValidateAndConsume_Errors(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryTokenRepository()
	l := newTestLifecycle(repo, now)
	ctx := context.Background()

	issued, err := l.Issue(ctx, 3, token.PurposeEmailVerification)
	require.NoError(t, err)

	t.Run("unknown value", func(t *testing.T) {
		_, err := l.ValidateAndConsume(ctx, token.PurposeEmailVerification, "nope", "")
		assert.ErrorIs(t, err, token.ErrTokenNotFound)
	})

	t.Run("wrong purpose", func(t *testing.T) {
		_, err := l.ValidateAndConsume(ctx, token.PurposePasswordReset, issued.PlainToken, "")
		assert.ErrorIs(t, err, token.ErrTokenNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		late := newTestLifecycle(repo, now.Add(token.DefaultVerificationTTL))
		_, err := late.ValidateAndConsume(ctx, token.PurposeEmailVerification, issued.PlainToken, "")
		assert.ErrorIs(t, err, token.ErrTokenExpired)
	})

	t.Run("used beats expired", func(t *testing.T) {
		_, err := l.ValidateAndConsume(ctx, token.PurposeEmailVerification, issued.PlainToken, "")
		require.NoError(t, err)

		late := newTestLifecycle(repo, now.Add(72*time.Hour))
		_, err = late.ValidateAndConsume(ctx, token.PurposeEmailVerification, issued.PlainToken, "")
		assert.ErrorIs(t, err, token.ErrTokenAlreadyUsed)
	})
}

func TestTokenLifecycle_ConcurrentConsumeSingleWinner(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryTokenRepository()
	l := newTestLifecycle(repo, now)

	issued, err := l.Issue(context.Background(), 9, token.PurposePasswordReset)
	require.NoError(t, err)

	const workers = 16
	var wins, alreadyUsed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.ValidateAndConsume(context.Background(), token.PurposePasswordReset, issued.PlainToken, "")
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, token.ErrTokenAlreadyUsed):
				alreadyUsed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(workers-1), alreadyUsed.Load())
}

func TestTokenLifecycle_PurgeStale(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := newMemoryTokenRepository()
	old := newTestLifecycle(repo, now.Add(-10*24*time.Hour))
	_, err := old.Issue(context.Background(), 1, token.PurposeEmailVerification)
	require.NoError(t, err)
	fresh := newTestLifecycle(repo, now)
	_, err = fresh.Issue(context.Background(), 2, token.PurposeEmailVerification)
	require.NoError(t, err)

	n, err := fresh.PurgeStale(context.Background(), 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMapTokenError(t *testing.T) {
	assert.True(t, apperrors.IsNotFoundError(MapTokenError(token.ErrTokenNotFound)))
	assert.True(t, apperrors.IsGoneError(MapTokenError(token.ErrTokenExpired)))
	assert.True(t, apperrors.IsConflictError(MapTokenError(token.ErrTokenAlreadyUsed)))
}
