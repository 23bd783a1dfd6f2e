package model

// Customer represents a registered member of the loyalty program.
// Bonus is the only mutable field and changes solely through
// operation confirmation.
type Customer struct {
	ID     int64
	Name   string
	TierID int64
	Bonus  float64
}
