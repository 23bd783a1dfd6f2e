package model

// TierName identifies a loyalty tier.
type TierName string

const (
	TierBronze TierName = "Bronze"
	TierSilver TierName = "Silver"
	TierGold   TierName = "Gold"
)

// Tier is immutable reference data fixing base loyalty rates.
type Tier struct {
	ID       int64
	Name     TierName
	Discount int
	Cashback int
}
