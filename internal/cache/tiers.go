package cache

import (
	"context"
	"sync"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/domain/repository"
)

// TierCache keeps an in-memory snapshot of the loyalty tier table. Tiers are
// immutable reference data read on every pricing request, so a periodically
// refreshed snapshot avoids a storage round trip per checkout. Lookups miss
// through to the repository.
type TierCache struct {
	tiers repository.TierRepository

	mu   sync.RWMutex
	byID map[int64]model.Tier
}

// NewTierCache constructs an empty cache over the tier repository.
func NewTierCache(tiers repository.TierRepository) *TierCache {
	return &TierCache{tiers: tiers, byID: make(map[int64]model.Tier)}
}

// Refresh replaces the snapshot with the current stored tier table.
func (c *TierCache) Refresh(ctx context.Context) error {
	tiers, err := c.tiers.List(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int64]model.Tier, len(tiers))
	for _, tier := range tiers {
		byID[tier.ID] = tier
	}

	c.mu.Lock()
	c.byID = byID
	c.mu.Unlock()
	return nil
}

// GetByID returns the cached tier or falls through to storage on a miss.
func (c *TierCache) GetByID(ctx context.Context, id int64) (*model.Tier, error) {
	c.mu.RLock()
	tier, ok := c.byID[id]
	c.mu.RUnlock()
	if ok {
		return &tier, nil
	}

	loaded, err := c.tiers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[loaded.ID] = *loaded
	c.mu.Unlock()
	return loaded, nil
}
