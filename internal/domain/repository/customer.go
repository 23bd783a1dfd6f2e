package repository

import (
	"context"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// CustomerRepository describes read access to loyalty program members.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
}
