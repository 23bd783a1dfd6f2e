package repository

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// ProductRepository resolves catalog items by batch key lookup.
type ProductRepository interface {
	GetBatch(ctx context.Context, ids []int64) (map[int64]model.Product, error)
}

// TierRepository provides access to loyalty tier reference data.
type TierRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Tier, error)
	List(ctx context.Context) ([]model.Tier, error)
}
