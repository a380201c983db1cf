package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/report"
	"github.com/brecho/backoffice/internal/domain/entity"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase
	monthlyComparisonUseCase *report.GetMonthlyComparisonUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	categoryBreakdownUseCase *report.GetCategoryBreakdownUseCase,
	monthlyComparisonUseCase *report.GetMonthlyComparisonUseCase,
) *ReportController {
	return &ReportController{
		categoryBreakdownUseCase: categoryBreakdownUseCase,
		monthlyComparisonUseCase: monthlyComparisonUseCase,
	}
}

// CategoryBreakdown handles GET /reports/categories requests.
func (c *ReportController) CategoryBreakdown(ctx *gin.Context) {
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

	output, err := c.categoryBreakdownUseCase.Execute(ctx.Request.Context(), report.GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      entity.CategoryType(ctx.DefaultQuery("type", string(entity.CategoryTypeExpense))),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// MonthlyComparison handles GET /reports/monthly requests.
func (c *ReportController) MonthlyComparison(ctx *gin.Context) {
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

	output, err := c.monthlyComparisonUseCase.Execute(ctx.Request.Context(), report.GetMonthlyComparisonInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}
