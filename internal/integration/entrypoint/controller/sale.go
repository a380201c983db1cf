package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/application/usecase/sale"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/entrypoint/dto"
)

// SaleController handles seller and sale endpoints.
type SaleController struct {
	createSellerUseCase *sale.CreateSellerUseCase
	listSellersUseCase  *sale.ListSellersUseCase
	updateSellerUseCase *sale.UpdateSellerUseCase
	createSaleUseCase   *sale.CreateSaleUseCase
	listSalesUseCase    *sale.ListSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createSellerUseCase *sale.CreateSellerUseCase,
	listSellersUseCase *sale.ListSellersUseCase,
	updateSellerUseCase *sale.UpdateSellerUseCase,
	createSaleUseCase *sale.CreateSaleUseCase,
	listSalesUseCase *sale.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createSellerUseCase: createSellerUseCase,
		listSellersUseCase:  listSellersUseCase,
		updateSellerUseCase: updateSellerUseCase,
		createSaleUseCase:   createSaleUseCase,
		listSalesUseCase:    listSalesUseCase,
	}
}

// ListSellers handles GET /sellers requests.
func (c *SaleController) ListSellers(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := sale.ListSellersInput{
		UserID: userID,
	}
	if activeStr := ctx.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			badRequest(ctx, "Invalid active filter", string(domainerror.ErrCodeMissingSaleFields))
			return
		}
		input.ActiveOnly = active
	}

	output, err := c.listSellersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSellerListResponse(output.Sellers))
}

// CreateSeller handles POST /sellers requests.
func (c *SaleController) CreateSeller(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	output, err := c.createSellerUseCase.Execute(ctx.Request.Context(), sale.CreateSellerInput{
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSellerResponse(output.Seller))
}

// UpdateSeller handles PATCH /sellers/:id requests.
func (c *SaleController) UpdateSeller(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	sellerID, ok := pathID(ctx, "seller")
	if !ok {
		return
	}

	var req dto.UpdateSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	output, err := c.updateSellerUseCase.Execute(ctx.Request.Context(), sale.UpdateSellerInput{
		SellerID:       sellerID,
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		CommissionRate: req.CommissionRate,
		Active:         req.Active,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSellerResponse(output.Seller))
}

// ListSales handles GET /sales requests.
func (c *SaleController) ListSales(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := sale.ListSalesInput{
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
	if input.SellerID, err = dto.ParseOptionalUUID(optionalQuery(ctx, "seller_id")); err != nil {
		badRequest(ctx, "Invalid seller ID format", string(domainerror.ErrCodeSellerNotFound))
		return
	}

	output, err := c.listSalesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output.Sales))
}

// CreateSale handles POST /sales requests.
func (c *SaleController) CreateSale(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingSaleFields))
		return
	}

	saleDate, err := dto.ParseDate(req.SaleDate)
	if err != nil {
		invalidDate(ctx, "sale_date")
		return
	}
	sellerID, err := dto.ParseOptionalUUID(req.SellerID)
	if err != nil {
		badRequest(ctx, "Invalid seller ID format", string(domainerror.ErrCodeSellerNotFound))
		return
	}
	customerID, err := dto.ParseOptionalUUID(req.CustomerID)
	if err != nil {
		badRequest(ctx, "Invalid customer ID format", string(domainerror.ErrCodeCustomerNotFound))
		return
	}
	productID, err := dto.ParseOptionalUUID(req.ProductID)
	if err != nil {
		badRequest(ctx, "Invalid product ID format", string(domainerror.ErrCodeProductNotFound))
		return
	}

	output, err := c.createSaleUseCase.Execute(ctx.Request.Context(), sale.CreateSaleInput{
		UserID:        userID,
		SellerID:      sellerID,
		CustomerID:    customerID,
		ProductID:     productID,
		CustomerName:  req.CustomerName,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
		SaleDate:      saleDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	response := dto.ToSaleResponse(output.Sale)
	if output.Commission != nil {
		commission := dto.ToCommissionResponse(output.Commission)
		response.Commission = &commission
	}
	ctx.JSON(http.StatusCreated, response)
}
