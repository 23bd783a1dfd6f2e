package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/server/http/dto"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

// CheckoutHandler manages cart pricing endpoints.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Calculate handles POST /api/operations/calculate.
func (h *CheckoutHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}
	if req.UserID == nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Errors: []dto.ValidationIssueResponse{{Code: usecase.CodeFieldRequired, Field: "user_id"}},
		})
		return
	}

	items := make([]usecase.LineItemInput, 0, len(req.Positions))
	for _, pos := range req.Positions {
		items = append(items, usecase.LineItemInput{ID: pos.ID, Price: pos.Price, Quantity: pos.Quantity})
	}

	result, err := h.facade.Calculate(c.Request.Context(), *req.UserID, items)
	if err != nil {
		var validation *usecase.ValidationError
		switch {
		case errors.As(err, &validation):
			c.JSON(http.StatusUnprocessableEntity, validationResponse(validation))
		case errors.Is(err, domainErrors.ErrCustomerNotFound), errors.Is(err, domainErrors.ErrTierNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, checkoutResponse(result))
}

func validationResponse(err *usecase.ValidationError) dto.ValidationErrorResponse {
	resp := dto.ValidationErrorResponse{Errors: make([]dto.ValidationIssueResponse, 0, len(err.Issues))}
	for _, issue := range err.Issues {
		resp.Errors = append(resp.Errors, dto.ValidationIssueResponse{
			Code:      issue.Code,
			Field:     issue.Field,
			Position:  issue.Position,
			ProductID: issue.ProductID,
		})
	}
	return resp
}

func checkoutResponse(result *usecase.CheckoutResult) dto.CalculateResponse {
	positions := make([]dto.PositionResponse, 0, len(result.Cart.Items))
	for _, item := range result.Cart.Items {
		positions = append(positions, dto.PositionResponse{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Type:            string(item.Modifier),
			OriginalPrice:   item.OriginalPrice,
			FinalPrice:      item.FinalPrice,
			DiscountPercent: item.DiscountPercent,
			DiscountValue:   item.DiscountValue,
			CashbackPercent: item.CashbackPercent,
			CashbackValue:   item.CashbackValue,
			Description:     item.Description,
		})
	}

	return dto.CalculateResponse{
		User: dto.CustomerResponse{
			ID:    result.Customer.ID,
			Name:  result.Customer.Name,
			Tier:  string(result.Tier.Name),
			Bonus: result.Customer.Bonus,
		},
		OperationID: result.OperationID,
		TotalSum:    result.Cart.TotalSum,
		Discounts: dto.TotalsResponse{
			TotalValue:   result.Cart.TotalDiscount,
			TotalPercent: result.Cart.DiscountPercent,
		},
		Cashback: dto.CashbackResponse{
			TotalValue:   result.Cart.TotalCashback,
			TotalPercent: result.Cart.CashbackPercent,
			WillAdd:      result.Cart.TotalCashback,
		},
		AllowWriteOff: result.Cart.AllowWriteOff,
		Positions:     positions,
	}
}
