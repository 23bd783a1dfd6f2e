package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/loyaltycart/internal/domain/errors"
	"github.com/polkiloo/loyaltycart/internal/server/http/dto"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

// OperationHandler manages operation settlement endpoints.
type OperationHandler struct {
	facade OperationFacade
}

// NewOperationHandler constructs OperationHandler.
func NewOperationHandler(facade OperationFacade) *OperationHandler {
	return &OperationHandler{facade: facade}
}

// Confirm handles POST /api/operations/confirm.
func (h *OperationHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}
	if req.User.ID == nil || req.User.Bonus == nil || req.OperationID == nil || req.WriteOff == nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "user.id, user.bonus, operation_id and write_off are required"})
		return
	}

	claim := usecase.CustomerClaim{ID: *req.User.ID, Bonus: *req.User.Bonus}
	receipt, err := h.facade.Confirm(c.Request.Context(), claim, *req.OperationID, *req.WriteOff)
	if err != nil {
		writeConfirmError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmResponse{
		Message: "operation confirmed",
		Operation: dto.OperationResponse{
			OperationID:     receipt.OperationID,
			UserID:          receipt.CustomerID,
			CheckSum:        receipt.CheckSum,
			Discount:        receipt.Discount,
			DiscountPercent: receipt.DiscountPercent,
			Cashback:        receipt.Cashback,
			CashbackPercent: receipt.CashbackPercent,
			WriteOff:        receipt.WriteOff,
			NewBalance:      receipt.NewBalance,
		},
	})
}

// History handles GET /api/operations?user_id=.
func (h *OperationHandler) History(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id query parameter is required"})
		return
	}

	operations, err := h.facade.History(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	if len(operations) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.HistoryItemResponse, 0, len(operations))
	for _, op := range operations {
		resp = append(resp, dto.HistoryItemResponse{
			OperationID:     op.ID,
			CheckSum:        op.CheckSum,
			Discount:        op.Discount,
			DiscountPercent: op.DiscountPercent,
			Cashback:        op.Cashback,
			CashbackPercent: op.CashbackPercent,
			AllowedWriteOff: op.AllowedWriteOff,
			WriteOff:        op.WriteOff,
			Done:            op.Done,
			CreatedAt:       op.CreatedAt,
			ConfirmedAt:     op.ConfirmedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func writeConfirmError(c *gin.Context, err error) {
	var (
		limit        *domainErrors.WriteOffLimitError
		insufficient *domainErrors.InsufficientBalanceError
		mismatch     *domainErrors.BalanceMismatchError
	)
	switch {
	case errors.As(err, &limit):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{
			Error:     err.Error(),
			Allowed:   &limit.Allowed,
			Attempted: &limit.Attempted,
		})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{
			Error:     err.Error(),
			Available: &insufficient.Available,
			Attempted: &insufficient.Attempted,
		})
	case errors.As(err, &mismatch):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   err.Error(),
			Claimed: &mismatch.Claimed,
			Stored:  &mismatch.Stored,
		})
	case errors.Is(err, domainErrors.ErrOperationConfirmed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrCustomerNotFound), errors.Is(err, domainErrors.ErrOperationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
