package dto

// PositionRequest is one cart line as submitted by the client. Pointer
// fields let validation distinguish missing values from zeroes.
type PositionRequest struct {
	ID       *int64   `json:"id"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// CalculateRequest is the body of POST /api/operations/calculate.
type CalculateRequest struct {
	UserID    *int64            `json:"user_id"`
	Positions []PositionRequest `json:"positions"`
}

// CustomerResponse is the customer snapshot echoed with a priced cart.
type CustomerResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Tier  string  `json:"tier"`
	Bonus float64 `json:"bonus"`
}

// TotalsResponse reports an aggregate value with its derived percent.
type TotalsResponse struct {
	TotalValue   float64 `json:"total_value"`
	TotalPercent float64 `json:"total_percent"`
}

// CashbackResponse extends totals with the amount that will be credited.
type CashbackResponse struct {
	TotalValue   float64 `json:"total_value"`
	TotalPercent float64 `json:"total_percent"`
	WillAdd      float64 `json:"will_add"`
}

// PositionResponse is the per-item pricing breakdown.
type PositionResponse struct {
	ProductID       int64   `json:"product_id"`
	Name            string  `json:"name,omitempty"`
	Type            string  `json:"type,omitempty"`
	OriginalPrice   float64 `json:"original_price"`
	FinalPrice      float64 `json:"final_price"`
	DiscountPercent float64 `json:"discount_percent"`
	DiscountValue   float64 `json:"discount_value"`
	CashbackPercent float64 `json:"cashback_percent"`
	CashbackValue   float64 `json:"cashback_value"`
	Description     string  `json:"description"`
}

// CalculateResponse is the success body of POST /api/operations/calculate.
type CalculateResponse struct {
	User          CustomerResponse   `json:"user"`
	OperationID   int64              `json:"operation_id"`
	TotalSum      float64            `json:"total_sum"`
	Discounts     TotalsResponse     `json:"discounts"`
	Cashback      CashbackResponse   `json:"cashback"`
	AllowWriteOff float64            `json:"allow_write_off"`
	Positions     []PositionResponse `json:"positions"`
}

// ValidationIssueResponse points at one offending request field.
type ValidationIssueResponse struct {
	Code      string `json:"code"`
	Field     string `json:"field"`
	Position  int    `json:"position"`
	ProductID int64  `json:"product_id,omitempty"`
}

// ValidationErrorResponse carries the ordered issue list for a rejected request.
type ValidationErrorResponse struct {
	Errors []ValidationIssueResponse `json:"errors"`
}
