package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// viewKeyPrefix is the prefix for view deduplication keys.
// Format: view_seen:{target}:{viewer}
const viewKeyPrefix = "view_seen:"

// RedisViewDeduplicator remembers recent views in redis so repeated views
// count once across all instances.
type RedisViewDeduplicator struct {
	client *redis.Client
}

func NewRedisViewDeduplicator(client *redis.Client) *RedisViewDeduplicator {
	return &RedisViewDeduplicator{client: client}
}

func (d *RedisViewDeduplicator) buildKey(viewerKey, target string) string {
	return fmt.Sprintf("%s%s:%s", viewKeyPrefix, target, viewerKey)
}

// FirstView atomically marks (viewer, target) as seen for window. It
// returns true when the pair was not seen before.
func (d *RedisViewDeduplicator) FirstView(ctx context.Context, viewerKey, target string, window time.Duration) (bool, error) {
	if viewerKey == "" || window <= 0 {
		return true, nil
	}
	acquired, err := d.client.SetNX(ctx, d.buildKey(viewerKey, target), "1", window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark view: %w", err)
	}
	return acquired, nil
}

// MemoryViewDeduplicator is the single instance fallback when redis is not
// configured.
type MemoryViewDeduplicator struct {
	mu      sync.Mutex
	seen    map[string]time.Time
	now     func() time.Time
	lastGC  time.Time
	gcEvery time.Duration
}

func NewMemoryViewDeduplicator() *MemoryViewDeduplicator {
	return &MemoryViewDeduplicator{
		seen:    make(map[string]time.Time),
		now:     time.Now,
		gcEvery: time.Minute,
	}
}

func (d *MemoryViewDeduplicator) FirstView(_ context.Context, viewerKey, target string, window time.Duration) (bool, error) {
	if viewerKey == "" || window <= 0 {
		return true, nil
	}
	key := target + ":" + viewerKey
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if now.Sub(d.lastGC) >= d.gcEvery {
		for k, exp := range d.seen {
			if !now.Before(exp) {
				delete(d.seen, k)
			}
		}
		d.lastGC = now
	}

	if exp, ok := d.seen[key]; ok && now.Before(exp) {
		return false, nil
	}
	d.seen[key] = now.Add(window)
	return true, nil
}
