package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/party"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// PartyController handles customer and supplier endpoints.
type PartyController struct {
	createCustomerUseCase *party.CreateCustomerUseCase
	listCustomersUseCase  *party.ListCustomersUseCase
	updateCustomerUseCase *party.UpdateCustomerUseCase
	deleteCustomerUseCase *party.DeleteCustomerUseCase
	createSupplierUseCase *party.CreateSupplierUseCase
	listSuppliersUseCase  *party.ListSuppliersUseCase
	updateSupplierUseCase *party.UpdateSupplierUseCase
	deleteSupplierUseCase *party.DeleteSupplierUseCase
}

// NewPartyController creates a new party controller instance.
func NewPartyController(
	createCustomerUseCase *party.CreateCustomerUseCase,
	listCustomersUseCase *party.ListCustomersUseCase,
	updateCustomerUseCase *party.UpdateCustomerUseCase,
	deleteCustomerUseCase *party.DeleteCustomerUseCase,
	createSupplierUseCase *party.CreateSupplierUseCase,
	listSuppliersUseCase *party.ListSuppliersUseCase,
	updateSupplierUseCase *party.UpdateSupplierUseCase,
	deleteSupplierUseCase *party.DeleteSupplierUseCase,
) *PartyController {
	return &PartyController{
		createCustomerUseCase: createCustomerUseCase,
		listCustomersUseCase:  listCustomersUseCase,
		updateCustomerUseCase: updateCustomerUseCase,
		deleteCustomerUseCase: deleteCustomerUseCase,
		createSupplierUseCase: createSupplierUseCase,
		listSuppliersUseCase:  listSuppliersUseCase,
		updateSupplierUseCase: updateSupplierUseCase,
		deleteSupplierUseCase: deleteSupplierUseCase,
	}
}

// ListCustomers handles GET /customers requests.
func (c *PartyController) ListCustomers(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listCustomersUseCase.Execute(ctx.Request.Context(), party.ListCustomersInput{
		UserID: userID,
		Search: ctx.Query("q"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Customers))
}

// CreateCustomer handles POST /customers requests.
func (c *PartyController) CreateCustomer(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingPartyFields))
		return
	}

	output, err := c.createCustomerUseCase.Execute(ctx.Request.Context(), party.CreateCustomerInput{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// UpdateCustomer handles PATCH /customers/:id requests.
func (c *PartyController) UpdateCustomer(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	customerID, ok := pathID(ctx, "customer")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingPartyFields))
		return
	}

	output, err := c.updateCustomerUseCase.Execute(ctx.Request.Context(), party.UpdateCustomerInput{
		CustomerID: customerID,
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// DeleteCustomer handles DELETE /customers/:id requests.
func (c *PartyController) DeleteCustomer(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	customerID, ok := pathID(ctx, "customer")
	if !ok {
		return
	}

	if err := c.deleteCustomerUseCase.Execute(ctx.Request.Context(), party.DeleteCustomerInput{
		CustomerID: customerID,
		UserID:     userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListSuppliers handles GET /suppliers requests.
func (c *PartyController) ListSuppliers(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listSuppliersUseCase.Execute(ctx.Request.Context(), party.ListSuppliersInput{
		UserID: userID,
		Search: ctx.Query("q"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(output.Suppliers))
}

// CreateSupplier handles POST /suppliers requests.
func (c *PartyController) CreateSupplier(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingPartyFields))
		return
	}

	output, err := c.createSupplierUseCase.Execute(ctx.Request.Context(), party.CreateSupplierInput{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(output.Supplier))
}

// UpdateSupplier handles PATCH /suppliers/:id requests.
func (c *PartyController) UpdateSupplier(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	supplierID, ok := pathID(ctx, "supplier")
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingPartyFields))
		return
	}

	output, err := c.updateSupplierUseCase.Execute(ctx.Request.Context(), party.UpdateSupplierInput{
		SupplierID: supplierID,
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Document:   req.Document,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(output.Supplier))
}

// DeleteSupplier handles DELETE /suppliers/:id requests.
func (c *PartyController) DeleteSupplier(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	supplierID, ok := pathID(ctx, "supplier")
	if !ok {
		return
	}

	if err := c.deleteSupplierUseCase.Execute(ctx.Request.Context(), party.DeleteSupplierInput{
		SupplierID: supplierID,
		UserID:     userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
