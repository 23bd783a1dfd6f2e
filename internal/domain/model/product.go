package model

// ProductModifier classifies how a product interacts with the loyalty program.
type ProductModifier string

const (
	ModifierDiscount          ProductModifier = "discount"
	ModifierIncreasedCashback ProductModifier = "increased_cashback"
	ModifierNoLoyalty         ProductModifier = "no_loyalty"
)

// Product describes a catalog item with its loyalty modifier.
type Product struct {
	ID       int64
	Name     string
	Modifier ProductModifier
	Value    float64
}
