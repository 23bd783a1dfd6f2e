package dto

import "time"

// ConfirmCustomer is the client's claimed view of the customer.
type ConfirmCustomer struct {
	ID    *int64   `json:"id"`
	Bonus *float64 `json:"bonus"`
}

// ConfirmRequest is the body of POST /api/operations/confirm.
type ConfirmRequest struct {
	User        ConfirmCustomer `json:"user"`
	OperationID *int64          `json:"operation_id"`
	WriteOff    *float64        `json:"write_off"`
}

// OperationResponse echoes the monetary fields of an operation.
type OperationResponse struct {
	OperationID     int64   `json:"operation_id"`
	UserID          int64   `json:"user_id"`
	CheckSum        float64 `json:"check_summ"`
	Discount        float64 `json:"discount"`
	DiscountPercent float64 `json:"discount_percent"`
	Cashback        float64 `json:"cashback"`
	CashbackPercent float64 `json:"cashback_percent"`
	WriteOff        float64 `json:"write_off"`
	NewBalance      float64 `json:"new_balance"`
}

// ConfirmResponse is the success body of POST /api/operations/confirm.
type ConfirmResponse struct {
	Message   string            `json:"message"`
	Operation OperationResponse `json:"operation"`
}

// ErrorResponse reports a single structured failure, with the violated
// bounds attached where a business rule was broken.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Allowed   *float64 `json:"allowed,omitempty"`
	Available *float64 `json:"available,omitempty"`
	Attempted *float64 `json:"attempted,omitempty"`
	Claimed   *float64 `json:"claimed,omitempty"`
	Stored    *float64 `json:"stored,omitempty"`
}

// HistoryItemResponse is one operation in a customer's history.
type HistoryItemResponse struct {
	OperationID     int64      `json:"operation_id"`
	CheckSum        float64    `json:"check_summ"`
	Discount        float64    `json:"discount"`
	DiscountPercent float64    `json:"discount_percent"`
	Cashback        float64    `json:"cashback"`
	CashbackPercent float64    `json:"cashback_percent"`
	AllowedWriteOff float64    `json:"allowed_write_off"`
	WriteOff        float64    `json:"write_off"`
	Done            bool       `json:"done"`
	CreatedAt       time.Time  `json:"created_at"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
}
