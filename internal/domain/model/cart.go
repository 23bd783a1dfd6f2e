package model

// LineItem is one requested cart position. Request-scoped, never persisted.
type LineItem struct {
	ProductID int64
	Price     float64
	Quantity  int
}

// PricedItem carries the pricing outcome for a single line item.
type PricedItem struct {
	ProductID       int64
	Name            string
	Modifier        ProductModifier
	Found           bool
	OriginalPrice   float64
	FinalPrice      float64
	DiscountPercent float64
	DiscountValue   float64
	CashbackPercent float64
	CashbackValue   float64
	Description     string
}

// PricedCart aggregates per-item results for one checkout. Per-item values
// are rounded before summation, so aggregates equal the sum of what the
// caller sees per position.
type PricedCart struct {
	Items           []PricedItem
	TotalSum        float64
	TotalDiscount   float64
	DiscountPercent float64
	TotalCashback   float64
	CashbackPercent float64
	AllowWriteOff   float64
}
