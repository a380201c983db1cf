package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/expense"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	createUseCase  *expense.CreateExpenseUseCase
	getUseCase     *expense.GetExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	setPaidUseCase *expense.SetPaidUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	setPaidUseCase *expense.SetPaidUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		setPaidUseCase: setPaidUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /expenses requests.
// Query: start_date, end_date, date_field (due_date|payment_date), paid, category_id.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := expense.ListExpensesInput{
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

	switch field := adapter.ExpenseDateField(ctx.Query("date_field")); field {
	case "", adapter.ExpenseDateDue, adapter.ExpenseDatePayment:
		input.DateField = field
	default:
		badRequest(ctx, "Invalid date_field. Must be 'due_date' or 'payment_date'", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}

	if paidStr := ctx.Query("paid"); paidStr != "" {
		paid, err := strconv.ParseBool(paidStr)
		if err != nil {
			badRequest(ctx, "Invalid paid filter", string(domainerror.ErrCodeMissingEntryFields))
			return
		}
		input.Paid = &paid
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

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		invalidDate(ctx, "due_date")
		return
	}
	paymentDate, err := dto.ParseOptionalDate(req.PaymentDate)
	if err != nil {
		invalidDate(ctx, "payment_date")
		return
	}
	categoryID, err := dto.ParseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category ID format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}
	supplierID, err := dto.ParseOptionalUUID(req.SupplierID)
	if err != nil {
		badRequest(ctx, "Invalid supplier ID format", string(domainerror.ErrCodeSupplierNotFound))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		DueDate:       dueDate,
		Paid:          req.Paid,
		PaymentDate:   paymentDate,
		CategoryID:    categoryID,
		PaymentMethod: req.PaymentMethod,
		Recurrence:    req.ToRecurrence(),
		SupplierID:    supplierID,
		SupplierName:  req.SupplierName,
		Notes:         req.Notes,
		Tags:          req.Tags,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.ToExpenseResponse(output.Expense)
	if output.Category != nil {
		categoryResponse := dto.ToCategoryResponse(output.Category)
		response.Category = &categoryResponse
	}
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:     expenseID,
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		ClearCategory: req.ClearCategory,
		PaymentMethod: req.PaymentMethod,
		ClearSupplier: req.ClearSupplier,
		SupplierName:  req.SupplierName,
		Notes:         req.Notes,
		Tags:          req.Tags,
	}

	var err error
	if input.DueDate, err = dto.ParseOptionalDate(req.DueDate); err != nil {
		invalidDate(ctx, "due_date")
		return
	}
	if input.PaymentDate, err = dto.ParseOptionalDate(req.PaymentDate); err != nil {
		invalidDate(ctx, "payment_date")
		return
	}
	if input.CategoryID, err = dto.ParseOptionalUUID(req.CategoryID); err != nil {
		badRequest(ctx, "Invalid category ID format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}
	if input.SupplierID, err = dto.ParseOptionalUUID(req.SupplierID); err != nil {
		badRequest(ctx, "Invalid supplier ID format", string(domainerror.ErrCodeSupplierNotFound))
		return
	}

	// Recurrence is replaced as a whole when either field is sent
	if req.Recurring != nil || req.Frequency != nil {
		recurrence := entity.Recurrence{Recurring: req.Frequency != nil}
		if req.Recurring != nil {
			recurrence.Recurring = *req.Recurring
		}
		if req.Frequency != nil {
			frequency := entity.Frequency(*req.Frequency)
			recurrence.Frequency = &frequency
		}
		input.Recurrence = &recurrence
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Pay handles POST /expenses/:id/pay requests.
func (c *ExpenseController) Pay(ctx *gin.Context) {
	c.setPaid(ctx, true)
}

// Unpay handles POST /expenses/:id/unpay requests.
func (c *ExpenseController) Unpay(ctx *gin.Context) {
	c.setPaid(ctx, false)
}

func (c *ExpenseController) setPaid(ctx *gin.Context, paid bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	// Body is optional
	var req dto.PayExpenseRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingEntryFields))
			return
		}
	}

	paymentDate, err := dto.ParseOptionalDate(req.PaymentDate)
	if err != nil {
		invalidDate(ctx, "payment_date")
		return
	}

	output, err := c.setPaidUseCase.Execute(ctx.Request.Context(), expense.SetPaidInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		Paid:        paid,
		PaymentDate: paymentDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(ctx *gin.Context, key string) *string {
	value, ok := ctx.GetQuery(key)
	if !ok || value == "" {
		return nil
	}
	return &value
}
