package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// CashController handles cash ledger endpoints.
type CashController struct {
	ledgerUseCase      *cash.GetLedgerUseCase
	movementsUseCase   *cash.ListMovementsUseCase
	recalculateUseCase *cash.RecalculateSnapshotsUseCase
}

// NewCashController creates a new cash controller instance.
func NewCashController(
	ledgerUseCase *cash.GetLedgerUseCase,
	movementsUseCase *cash.ListMovementsUseCase,
	recalculateUseCase *cash.RecalculateSnapshotsUseCase,
) *CashController {
	return &CashController{
		ledgerUseCase:      ledgerUseCase,
		movementsUseCase:   movementsUseCase,
		recalculateUseCase: recalculateUseCase,
	}
}

// Ledger handles GET /cash/ledger requests.
func (c *CashController) Ledger(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	startDate, err := dto.ParseDate(ctx.Query("start_date"))
	if err != nil {
		invalidDate(ctx, "start_date")
		return
	}
	endDate, err := dto.ParseDate(ctx.Query("end_date"))
	if err != nil {
		invalidDate(ctx, "end_date")
		return
	}

	output, err := c.ledgerUseCase.Execute(ctx.Request.Context(), cash.GetLedgerInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(output))
}

// Movements handles GET /cash/movements requests.
func (c *CashController) Movements(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	date, err := dto.ParseDate(ctx.Query("date"))
	if err != nil {
		invalidDate(ctx, "date")
		return
	}

	output, err := c.movementsUseCase.Execute(ctx.Request.Context(), cash.ListMovementsInput{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashMovementListResponse(output.Movements))
}

// Recalculate handles POST /cash/recalculate requests.
func (c *CashController) Recalculate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.RecalculateSnapshotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), "")
		return
	}

	fromDate, err := dto.ParseDate(req.FromDate)
	if err != nil {
		invalidDate(ctx, "from_date")
		return
	}

	output, err := c.recalculateUseCase.Execute(ctx.Request.Context(), cash.RecalculateSnapshotsInput{
		UserID:   userID,
		FromDate: fromDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecalculateSnapshotsResponse{
		Checked: output.Checked,
		Updated: output.Updated,
	})
}
