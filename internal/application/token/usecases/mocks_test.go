package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/expohub/expohub/internal/domain/token"
)

// memoryTokenRepository mimics the conditional update of the SQL repository.
type memoryTokenRepository struct {
	mu         sync.Mutex
	nextID     uint
	tokens     map[uint]*token.Token
	CreateFunc func(ctx context.Context, t *token.Token) error
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{tokens: make(map[uint]*token.Token)}
}

func (m *memoryTokenRepository) Create(ctx context.Context, t *token.Token) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, t); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	t.SetID(m.nextID)
	m.tokens[t.ID()] = t
	return nil
}

func (m *memoryTokenRepository) GetByHash(_ context.Context, purpose token.Purpose, hash string) (*token.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tokens {
		if t.Purpose() == purpose && t.TokenHash() == hash {
			return token.ReconstructToken(t.ID(), t.UserID(), t.Purpose(), t.TokenHash(), t.ExpiresAt(), t.IsUsed(), t.UsedAt(), t.IPAddress(), t.CreatedAt()), nil
		}
	}
	return nil, token.ErrTokenNotFound
}

func (m *memoryTokenRepository) InvalidateLive(_ context.Context, userID uint, purpose token.Purpose, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.tokens {
		if t.UserID() == userID && t.Purpose() == purpose && t.IsValid(now) {
			m.tokens[id] = token.ReconstructToken(t.ID(), t.UserID(), t.Purpose(), t.TokenHash(), t.ExpiresAt(), true, &now, "", t.CreatedAt())
			n++
		}
	}
	return n, nil
}

func (m *memoryTokenRepository) ConsumeIfValid(_ context.Context, id uint, now time.Time, ip string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[id]
	if !ok || !t.IsValid(now) {
		return false, nil
	}
	m.tokens[id] = token.ReconstructToken(t.ID(), t.UserID(), t.Purpose(), t.TokenHash(), t.ExpiresAt(), true, &now, ip, t.CreatedAt())
	return true, nil
}

func (m *memoryTokenRepository) DeleteStale(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, t := range m.tokens {
		if t.ExpiresAt().Before(cutoff) || (t.UsedAt() != nil && t.UsedAt().Before(cutoff)) {
			delete(m.tokens, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryTokenRepository) live(userID uint, purpose token.Purpose, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tokens {
		if t.UserID() == userID && t.Purpose() == purpose && t.IsValid(now) {
			n++
		}
	}
	return n
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTTL struct {
	verification time.Duration
	reset        time.Duration
}

func (f fixedTTL) VerificationTTL(context.Context) time.Duration { return f.verification }
func (f fixedTTL) ResetTTL(context.Context) time.Duration        { return f.reset }
