package usecase

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// PricingEngine computes per-item and aggregate loyalty figures for a cart.
// It is stateless and side-effect-free: the same tier, items, and catalog
// always produce the same PricedCart.
type PricingEngine struct{}

// NewPricingEngine constructs PricingEngine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

var hundred = decimal.NewFromInt(100)

// Price resolves the loyalty rule for every line item and aggregates the
// results. Items referencing an unknown product price with zero loyalty
// effect and an explicit annotation; the cart as a whole still prices.
// Per-item values are rounded to two decimals before summation, so the
// aggregates always equal the sum of the per-item figures.
func (PricingEngine) Price(tier *model.Tier, items []model.LineItem, catalog map[int64]model.Product) *model.PricedCart {
	cart := &model.PricedCart{Items: make([]model.PricedItem, 0, len(items))}

	totalSum := decimal.Zero
	totalDiscount := decimal.Zero
	totalCashback := decimal.Zero
	allowWriteOff := decimal.Zero

	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		totalPrice := price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		product, found := catalog[item.ProductID]
		if !found {
			rounded := totalPrice.Round(2)
			cart.Items = append(cart.Items, model.PricedItem{
				ProductID:     item.ProductID,
				Found:         false,
				OriginalPrice: rounded.InexactFloat64(),
				FinalPrice:    rounded.InexactFloat64(),
				Description:   "product not found",
			})
			totalSum = totalSum.Add(rounded)
			continue
		}

		discountPercent, cashbackPercent := effectiveRates(tier, product)

		discountValue := totalPrice.Mul(discountPercent).Div(hundred).Round(2)
		finalPrice := totalPrice.Sub(discountValue)
		cashbackValue := finalPrice.Mul(cashbackPercent).Div(hundred).Round(2)

		cart.Items = append(cart.Items, model.PricedItem{
			ProductID:       product.ID,
			Name:            product.Name,
			Modifier:        product.Modifier,
			Found:           true,
			OriginalPrice:   totalPrice.Round(2).InexactFloat64(),
			FinalPrice:      finalPrice.Round(2).InexactFloat64(),
			DiscountPercent: discountPercent.InexactFloat64(),
			DiscountValue:   discountValue.InexactFloat64(),
			CashbackPercent: cashbackPercent.InexactFloat64(),
			CashbackValue:   cashbackValue.InexactFloat64(),
			Description:     describeRule(product),
		})

		totalSum = totalSum.Add(finalPrice.Round(2))
		totalDiscount = totalDiscount.Add(discountValue)
		totalCashback = totalCashback.Add(cashbackValue)
		if product.Modifier != model.ModifierNoLoyalty {
			allowWriteOff = allowWriteOff.Add(finalPrice.Round(2))
		}
	}

	// Aggregate percents are derived against the gross sum (net + discount),
	// defined as 0 when the cart is empty or free.
	gross := totalSum.Add(totalDiscount)

	cart.TotalSum = totalSum.Round(2).InexactFloat64()
	cart.TotalDiscount = totalDiscount.Round(2).InexactFloat64()
	cart.DiscountPercent = percentOf(totalDiscount, gross)
	cart.TotalCashback = totalCashback.Round(2).InexactFloat64()
	cart.CashbackPercent = percentOf(totalCashback, gross)
	cart.AllowWriteOff = allowWriteOff.Round(2).InexactFloat64()

	return cart
}

// effectiveRates maps (tier, product modifier) to discount and cashback
// percents. A discount modifier grants base discount plus the product extra
// on Silver and Gold only; cashback applies on Bronze and Silver, raised by
// the product extra for increased_cashback. Gold earns no cashback, no_loyalty
// products earn nothing, and an unrecognized tier name resolves to zero/zero.
func effectiveRates(tier *model.Tier, product model.Product) (decimal.Decimal, decimal.Decimal) {
	if product.Modifier == model.ModifierNoLoyalty {
		return decimal.Zero, decimal.Zero
	}

	baseDiscount := decimal.NewFromInt(int64(tier.Discount))
	baseCashback := decimal.NewFromInt(int64(tier.Cashback))
	extra := decimal.NewFromFloat(product.Value)

	discount := decimal.Zero
	if product.Modifier == model.ModifierDiscount {
		discount = baseDiscount.Add(extra)
	}

	cashback := baseCashback
	if product.Modifier == model.ModifierIncreasedCashback {
		cashback = baseCashback.Add(extra)
	}

	switch tier.Name {
	case model.TierBronze:
		return decimal.Zero, cashback
	case model.TierSilver:
		return discount, cashback
	case model.TierGold:
		return discount, decimal.Zero
	default:
		return decimal.Zero, decimal.Zero
	}
}

func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

func describeRule(product model.Product) string {
	switch product.Modifier {
	case model.ModifierDiscount:
		return fmt.Sprintf("discount +%s%%", strconv.FormatFloat(product.Value, 'f', -1, 64))
	case model.ModifierIncreasedCashback:
		return fmt.Sprintf("increased cashback +%s%%", strconv.FormatFloat(product.Value, 'f', -1, 64))
	case model.ModifierNoLoyalty:
		return "no loyalty"
	default:
		return "standard"
	}
}
