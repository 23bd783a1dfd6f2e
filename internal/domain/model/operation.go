package model

import "time"

// Operation is the persisted record of one priced checkout. It is created
// pending (WriteOff=0, Done=false) and transitions exactly once to confirmed.
type Operation struct {
	ID              int64
	CustomerID      int64
	CheckSum        float64
	Discount        float64
	DiscountPercent float64
	Cashback        float64
	CashbackPercent float64
	AllowedWriteOff float64
	WriteOff        float64
	Done            bool
	CreatedAt       time.Time
	ConfirmedAt     *time.Time
}

// ConfirmationReceipt echoes the monetary fields of a confirmed operation.
type ConfirmationReceipt struct {
	OperationID     int64
	CustomerID      int64
	CheckSum        float64
	Discount        float64
	DiscountPercent float64
	Cashback        float64
	CashbackPercent float64
	WriteOff        float64
	NewBalance      float64
}
