// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
	"github.com/brecho/backoffice/internal/integration/entrypoint/middleware"
)

// requireUser returns the authenticated user ID, writing a 401 when missing.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter, writing a 400 when malformed.
func pathID(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func invalidDate(ctx *gin.Context, field string) {
	badRequest(ctx, "Invalid "+field+" format, expected YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat))
}

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var (
		categoryErr   *domainerror.CategoryError
		entryErr      *domainerror.EntryError
		saleErr       *domainerror.SaleError
		commissionErr *domainerror.CommissionError
		cashErr       *domainerror.CashError
		goalErr       *domainerror.GoalError
		partyErr      *domainerror.PartyError
		productErr    *domainerror.ProductError
	)

	var status int
	var message, code string
	switch {
	case errors.As(err, &commissionErr):
		status, message, code = commissionStatus(commissionErr.Code), commissionErr.Message, string(commissionErr.Code)
	case errors.As(err, &categoryErr):
		status, message, code = categoryStatus(categoryErr.Code), categoryErr.Message, string(categoryErr.Code)
	case errors.As(err, &entryErr):
		status, message, code = entryStatus(entryErr.Code), entryErr.Message, string(entryErr.Code)
	case errors.As(err, &saleErr):
		status, message, code = saleStatus(saleErr.Code), saleErr.Message, string(saleErr.Code)
	case errors.As(err, &cashErr):
		status, message, code = http.StatusBadRequest, cashErr.Message, string(cashErr.Code)
	case errors.As(err, &goalErr):
		status, message, code = goalStatus(goalErr.Code), goalErr.Message, string(goalErr.Code)
	case errors.As(err, &partyErr):
		status, message, code = partyStatus(partyErr.Code), partyErr.Message, string(partyErr.Code)
	case errors.As(err, &productErr):
		status, message, code = productStatus(productErr.Code), productErr.Message, string(productErr.Code)
	default:
		slog.Error("Unhandled request error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "code", code, "error", err)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func categoryStatus(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedCategory:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeMissingCategoryFields,
		domainerror.ErrCodeInvalidColorFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func entryStatus(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound, domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeSettlementExpenseLocked:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func saleStatus(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSellerNotFound, domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSale:
		return http.StatusForbidden
	case domainerror.ErrCodeSellerInactive:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func commissionStatus(code domainerror.CommissionErrorCode) int {
	switch code {
	case domainerror.ErrCodeCommissionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedCommission:
		return http.StatusForbidden
	case domainerror.ErrCodeCommissionAlreadyPaid,
		domainerror.ErrCodeCommissionAlreadyExists,
		domainerror.ErrCodeInvalidTransition,
		domainerror.ErrCodeCommissionReversed:
		return http.StatusConflict
	case domainerror.ErrCodeSaleWithoutSeller,
		domainerror.ErrCodeSettlementCategory,
		domainerror.ErrCodeMissingCommissionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func goalStatus(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeGoalSellerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func partyStatus(code domainerror.PartyErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustomerNotFound, domainerror.ErrCodeSupplierNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func productStatus(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProductNotAvailable:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
