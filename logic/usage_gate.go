package logic

import (
	"context"
	"post_bot/dto"
	"sync"
)

// usageGate keeps the last usage snapshot fetched from the backend. It never counts locally.
type usageGate struct {
	userId  string
	backend IBackendClient
	mu      sync.RWMutex
	usage   *dto.Usage
}

func newUsageGate(userId string, backend IBackendClient) *usageGate {
	return &usageGate{userId: userId, backend: backend}
}

// Refresh fetches a new snapshot. On failure the previous snapshot stays.
func (ug *usageGate) Refresh(ctx context.Context) (*dto.Usage, error) {
	usage, err := ug.backend.GetUsage(ctx, ug.userId)
	if err != nil {
		return nil, err
	}
	ug.mu.Lock()
	defer ug.mu.Unlock()
	copied := *usage
	ug.usage = &copied
	return usage, nil
}

func (ug *usageGate) Usage() *dto.Usage {
	ug.mu.RLock()
	defer ug.mu.RUnlock()
	if ug.usage == nil {
		return nil
	}
	copied := *ug.usage
	return &copied
}

// IsLimitReached is false until a snapshot exists. A negative limit means unlimited.
func (ug *usageGate) IsLimitReached() bool {
	ug.mu.RLock()
	defer ug.mu.RUnlock()
	return limitReached(ug.usage)
}

// IsScheduleLimitReached tells whether the backend would refuse another scheduled post.
// A zero limit is how older backends leave the fields out, so it does not close the gate.
func (ug *usageGate) IsScheduleLimitReached() bool {
	ug.mu.RLock()
	defer ug.mu.RUnlock()
	return scheduleLimitReached(ug.usage)
}

func scheduleLimitReached(usage *dto.Usage) bool {
	return usage != nil && usage.ScheduledLimit > 0 && usage.ScheduledRemaining <= 0
}

func limitReached(usage *dto.Usage) bool {
	return usage != nil && usage.PostsLimit >= 0 && usage.PostsRemaining <= 0
}
