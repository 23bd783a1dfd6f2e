package usecase

import (
	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

// Validation issue codes surfaced to the request layer.
const (
	CodePositionsRequired = "positions_required"
	CodeFieldRequired     = "field_required"
	CodeFieldInvalid      = "field_invalid"
)

// ValidationIssue points at one offending request field.
type ValidationIssue struct {
	Code      string
	Field     string
	Position  int
	ProductID int64
}

// LineItemInput is one raw cart position as received from the request layer.
// Pointers distinguish absent fields from zero values.
type LineItemInput struct {
	ID       *int64
	Price    *float64
	Quantity *int
}

// ValidateLineItems checks every position and returns the issues in request
// order. An empty result means the input converts cleanly via ToLineItems.
func ValidateLineItems(items []LineItemInput) []ValidationIssue {
	if len(items) == 0 {
		return []ValidationIssue{{Code: CodePositionsRequired, Field: "positions"}}
	}

	var issues []ValidationIssue
	for i, item := range items {
		productID := int64(0)
		if item.ID != nil {
			productID = *item.ID
		}

		switch {
		case item.ID == nil:
			issues = append(issues, ValidationIssue{Code: CodeFieldRequired, Field: "id", Position: i})
		case *item.ID < 0:
			issues = append(issues, ValidationIssue{Code: CodeFieldInvalid, Field: "id", Position: i, ProductID: productID})
		}

		switch {
		case item.Price == nil:
			issues = append(issues, ValidationIssue{Code: CodeFieldRequired, Field: "price", Position: i, ProductID: productID})
		case *item.Price < 0:
			issues = append(issues, ValidationIssue{Code: CodeFieldInvalid, Field: "price", Position: i, ProductID: productID})
		}

		switch {
		case item.Quantity == nil:
			issues = append(issues, ValidationIssue{Code: CodeFieldRequired, Field: "quantity", Position: i, ProductID: productID})
		case *item.Quantity <= 0:
			issues = append(issues, ValidationIssue{Code: CodeFieldInvalid, Field: "quantity", Position: i, ProductID: productID})
		}
	}
	return issues
}

// ToLineItems converts validated input into domain line items.
func ToLineItems(items []LineItemInput) []model.LineItem {
	result := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, model.LineItem{
			ProductID: *item.ID,
			Price:     *item.Price,
			Quantity:  *item.Quantity,
		})
	}
	return result
}

// ValidationError aggregates the full ordered list of request issues.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string { return "invalid line items" }

// Is reports the error kind so callers can branch with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == domainErrors.ErrInvalidLineItems
}
