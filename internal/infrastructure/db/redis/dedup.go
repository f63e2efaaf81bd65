package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides at-most-once delivery checks for notification jobs,
// backed by Redis. Key format: notify:<kind>:<entity_id>:<status>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this notification has already been delivered
// within the dedup window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, kind, entityID, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(kind, entityID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been delivered (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, kind, entityID, status string) error {
	return d.client.Set(ctx, d.key(kind, entityID, status), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(kind, entityID, status string) string {
	return fmt.Sprintf("notify:%s:%s:%s", kind, entityID, status)
}
