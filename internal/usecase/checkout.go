package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
	"github.com/polkiloo/loyaltycart/internal/domain/repository"
)

// TierSource resolves loyalty tiers. Satisfied by both the tier cache and
// the raw repository.
type TierSource interface {
	GetByID(ctx context.Context, id int64) (*model.Tier, error)
}

// CheckoutResult carries everything the request layer reports after pricing.
type CheckoutResult struct {
	Customer    model.Customer
	Tier        model.Tier
	OperationID int64
	Cart        model.PricedCart
}

// CheckoutUseCase prices a cart for a customer and opens a pending operation.
type CheckoutUseCase struct {
	customers  repository.CustomerRepository
	products   repository.ProductRepository
	tiers      TierSource
	operations repository.OperationRepository
	engine     PricingEngine
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	tiers TierSource,
	operations repository.OperationRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		customers:  customers,
		products:   products,
		tiers:      tiers,
		operations: operations,
		engine:     NewPricingEngine(),
	}
}

// Calculate validates the positions, prices the cart under the customer's
// tier, and persists the result as a pending operation. All checks run
// before the single write; a rejected write surfaces as ErrPersistence with
// no partial state.
func (u *CheckoutUseCase) Calculate(ctx context.Context, customerID int64, items []LineItemInput) (*CheckoutResult, error) {
	if issues := ValidateLineItems(items); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	tier, err := u.tiers.GetByID(ctx, customer.TierID)
	if err != nil {
		return nil, err
	}

	lineItems := ToLineItems(items)
	ids := make([]int64, 0, len(lineItems))
	for _, item := range lineItems {
		ids = append(ids, item.ProductID)
	}

	catalog, err := u.products.GetBatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	cart := u.engine.Price(tier, lineItems, catalog)

	operationID, err := u.operations.Create(ctx, &model.Operation{
		CustomerID:      customer.ID,
		CheckSum:        cart.TotalSum,
		Discount:        cart.TotalDiscount,
		DiscountPercent: cart.DiscountPercent,
		Cashback:        cart.TotalCashback,
		CashbackPercent: cart.CashbackPercent,
		AllowedWriteOff: cart.AllowWriteOff,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: save operation: %w", domainErrors.ErrPersistence, err)
	}

	return &CheckoutResult{
		Customer:    *customer,
		Tier:        *tier,
		OperationID: operationID,
		Cart:        *cart,
	}, nil
}
