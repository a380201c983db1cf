package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/usecase/commission"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// CommissionController handles commission endpoints.
type CommissionController struct {
	listUseCase    *commission.ListCommissionsUseCase
	createUseCase  *commission.CreateCommissionUseCase
	approveUseCase *commission.TransitionUseCase
	reverseUseCase *commission.TransitionUseCase
	settleUseCase  *commission.SettleCommissionUseCase
}

// NewCommissionController creates a new commission controller instance.
func NewCommissionController(
	listUseCase *commission.ListCommissionsUseCase,
	createUseCase *commission.CreateCommissionUseCase,
	approveUseCase *commission.TransitionUseCase,
	reverseUseCase *commission.TransitionUseCase,
	settleUseCase *commission.SettleCommissionUseCase,
) *CommissionController {
	return &CommissionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		approveUseCase: approveUseCase,
		reverseUseCase: reverseUseCase,
		settleUseCase:  settleUseCase,
	}
}

// List handles GET /commissions requests.
func (c *CommissionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := commission.ListCommissionsInput{
		UserID: userID,
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.CommissionStatus(statusStr)
		if !status.IsValid() {
			badRequest(ctx, "Invalid commission status", string(domainerror.ErrCodeMissingCommissionFields))
			return
		}
		input.Status = &status
	}

	var err error
	if input.SellerID, err = dto.ParseOptionalUUID(optionalQuery(ctx, "seller_id")); err != nil {
		badRequest(ctx, "Invalid seller ID format", string(domainerror.ErrCodeMissingCommissionFields))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionListResponse(output.Commissions))
}

// Create handles POST /commissions requests.
func (c *CommissionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingCommissionFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), commission.CreateCommissionInput{
		UserID: userID,
		SaleID: uuid.MustParse(req.SaleID),
		Rate:   req.Rate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCommissionResponse(output.Commission))
}

// Approve handles POST /commissions/:id/approve requests.
func (c *CommissionController) Approve(ctx *gin.Context) {
	c.transition(ctx, c.approveUseCase)
}

// Reverse handles POST /commissions/:id/reverse requests.
func (c *CommissionController) Reverse(ctx *gin.Context) {
	c.transition(ctx, c.reverseUseCase)
}

func (c *CommissionController) transition(ctx *gin.Context, useCase *commission.TransitionUseCase) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	commissionID, ok := pathID(ctx, "commission")
	if !ok {
		return
	}

	output, err := useCase.Execute(ctx.Request.Context(), commission.TransitionInput{
		CommissionID: commissionID,
		UserID:       userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionResponse(output.Commission))
}

// Settle handles POST /commissions/:id/settle requests.
func (c *CommissionController) Settle(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	commissionID, ok := pathID(ctx, "commission")
	if !ok {
		return
	}

	var req dto.SettleCommissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingCommissionFields))
		return
	}

	paymentDate, err := dto.ParseOptionalDate(req.PaymentDate)
	if err != nil {
		invalidDate(ctx, "payment_date")
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), commission.SettleCommissionInput{
		CommissionID:      commissionID,
		UserID:            userID,
		ExpenseCategoryID: uuid.MustParse(req.ExpenseCategoryID),
		PaymentDate:       paymentDate,
		PaymentMethod:     req.PaymentMethod,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleCommissionResponse{
		Commission: dto.ToCommissionResponse(output.Commission),
		Expense:    dto.ToExpenseResponse(output.Expense),
		Movement:   dto.ToCashMovementResponse(output.Movement),
	})
}
