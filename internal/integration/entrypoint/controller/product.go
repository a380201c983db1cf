package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/inventory"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// ProductController handles inventory endpoints.
type ProductController struct {
	listUseCase   *inventory.ListProductsUseCase
	createUseCase *inventory.CreateProductUseCase
	getUseCase    *inventory.GetProductUseCase
	updateUseCase *inventory.UpdateProductUseCase
	deleteUseCase *inventory.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *inventory.ListProductsUseCase,
	createUseCase *inventory.CreateProductUseCase,
	getUseCase *inventory.GetProductUseCase,
	updateUseCase *inventory.UpdateProductUseCase,
	deleteUseCase *inventory.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := inventory.ListProductsInput{
		UserID: userID,
		Status: ctx.Query("status"),
	}

	var err error
	if input.SupplierID, err = dto.ParseOptionalUUID(optionalQuery(ctx, "supplier_id")); err != nil {
		badRequest(ctx, "Invalid supplier ID format", string(domainerror.ErrCodeSupplierNotFound))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingProductFields))
		return
	}

	acquiredOn, err := dto.ParseDate(req.AcquiredOn)
	if err != nil {
		invalidDate(ctx, "acquired_on")
		return
	}
	supplierID, err := dto.ParseOptionalUUID(req.SupplierID)
	if err != nil {
		badRequest(ctx, "Invalid supplier ID format", string(domainerror.ErrCodeSupplierNotFound))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), inventory.CreateProductInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		SupplierID:  supplierID,
		CostPrice:   req.CostPrice,
		Price:       req.Price,
		AcquiredOn:  acquiredOn,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	productID, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), inventory.GetProductInput{
		ProductID: productID,
		UserID:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Update handles PATCH /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	productID, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingProductFields))
		return
	}

	input := inventory.UpdateProductInput{
		ProductID:   productID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		CostPrice:   req.CostPrice,
		Price:       req.Price,
	}

	var err error
	if input.AcquiredOn, err = dto.ParseOptionalDate(req.AcquiredOn); err != nil {
		invalidDate(ctx, "acquired_on")
		return
	}
	if input.SupplierID, err = dto.ParseOptionalUUID(req.SupplierID); err != nil {
		badRequest(ctx, "Invalid supplier ID format", string(domainerror.ErrCodeSupplierNotFound))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	productID, ok := pathID(ctx, "product")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), inventory.DeleteProductInput{
		ProductID: productID,
		UserID:    userID,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
