package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/income"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	createUseCase *income.CreateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := income.ListIncomesInput{
		UserID: userID,
	}

	var err error
	if input.StartDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "start_date")); err != nil {
		invalidDate(ctx, "start_date")
		return
	}
	if input.EndDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "end_date")); err != nil {
		invalidDate(ctx, "end_date")
		return
	}
	if input.CategoryID, err = dto.ParseOptionalUUID(optionalQuery(ctx, "category_id")); err != nil {
		badRequest(ctx, "Invalid category ID format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		invalidDate(ctx, "date")
		return
	}
	categoryID, err := dto.ParseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category ID format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		CategoryID:    categoryID,
		PaymentMethod: req.PaymentMethod,
		Recurrence:    req.ToRecurrence(),
		Notes:         req.Notes,
		Tags:          req.Tags,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.ToIncomeResponse(output.Income)
	if output.Category != nil {
		categoryResponse := dto.ToCategoryResponse(output.Category)
		response.Category = &categoryResponse
	}
	ctx.JSON(http.StatusCreated, response)
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	incomeID, ok := pathID(ctx, "income")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		IncomeID: incomeID,
		UserID:   userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
