package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// guardTTL bounds how long a chat slot can stay reserved. The generation
// call has no timeout of its own, so the lease expiring is the only way a
// wedged request ever frees the session again.
const guardTTL = 2 * time.Minute

// ChatGuard reserves one assistant request slot per session, backed by
// Redis so the guard holds across replicas.
// Key format: chat:inflight:<session_id>
type ChatGuard struct {
	client *redis.Client
}

// NewChatGuard creates a ChatGuard wrapping the given Redis client.
func NewChatGuard(client *redis.Client) *ChatGuard {
	return &ChatGuard{client: client}
}

// Acquire reserves the session's slot. It returns false when a request is
// already in flight for the session.
func (g *ChatGuard) Acquire(ctx context.Context, sessionID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(sessionID), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("chat guard acquire: %w", err)
	}
	return ok, nil
}

// Release frees the session's slot. Errors are ignored: the TTL cleans up
// behind a failed release.
func (g *ChatGuard) Release(ctx context.Context, sessionID string) {
	_ = g.client.Del(ctx, g.key(sessionID)).Err()
}

func (g *ChatGuard) key(sessionID string) string {
	return "chat:inflight:" + sessionID
}

// NoopChatGuard is used when Redis is not configured; every acquire
// succeeds and concurrent sends go unguarded.
type NoopChatGuard struct{}

func (NoopChatGuard) Acquire(context.Context, string) (bool, error) { return true, nil }
func (NoopChatGuard) Release(context.Context, string)               {}
