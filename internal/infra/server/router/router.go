// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/brecho/backoffice/internal/integration/entrypoint/controller"
	"github.com/brecho/backoffice/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	categoryController   *controller.CategoryController
	expenseController    *controller.ExpenseController
	incomeController     *controller.IncomeController
	saleController       *controller.SaleController
	commissionController *controller.CommissionController
	cashController       *controller.CashController
	reportController     *controller.ReportController
	goalController       *controller.GoalController
	partyController      *controller.PartyController
	productController    *controller.ProductController
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	saleController *controller.SaleController,
	commissionController *controller.CommissionController,
	cashController *controller.CashController,
	reportController *controller.ReportController,
	goalController *controller.GoalController,
	partyController *controller.PartyController,
	productController *controller.ProductController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		categoryController:   categoryController,
		expenseController:    expenseController,
		incomeController:     incomeController,
		saleController:       saleController,
		commissionController: commissionController,
		cashController:       cashController,
		reportController:     reportController,
		goalController:       goalController,
		partyController:      partyController,
		productController:    productController,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every route requires authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	expenses := v1.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PATCH("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
		expenses.POST("/:id/pay", r.expenseController.Pay)
		expenses.POST("/:id/unpay", r.expenseController.Unpay)
	}

	incomes := v1.Group("/incomes")
	{
		incomes.GET("", r.incomeController.List)
		incomes.POST("", r.incomeController.Create)
		incomes.DELETE("/:id", r.incomeController.Delete)
	}

	sellers := v1.Group("/sellers")
	{
		sellers.GET("", r.saleController.ListSellers)
		sellers.POST("", r.saleController.CreateSeller)
		sellers.PATCH("/:id", r.saleController.UpdateSeller)
	}

	sales := v1.Group("/sales")
	{
		sales.GET("", r.saleController.ListSales)
		sales.POST("", r.saleController.CreateSale)
	}

	commissions := v1.Group("/commissions")
	{
		commissions.GET("", r.commissionController.List)
		commissions.POST("", r.commissionController.Create)
		commissions.POST("/:id/approve", r.commissionController.Approve)
		commissions.POST("/:id/reverse", r.commissionController.Reverse)
		commissions.POST("/:id/settle", r.commissionController.Settle)
	}

	cash := v1.Group("/cash")
	{
		cash.GET("/ledger", r.cashController.Ledger)
		cash.GET("/movements", r.cashController.Movements)
		cash.POST("/recalculate", r.cashController.Recalculate)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/categories", r.reportController.CategoryBreakdown)
		reports.GET("/monthly", r.reportController.MonthlyComparison)
	}

	goals := v1.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	customers := v1.Group("/customers")
	{
		customers.GET("", r.partyController.ListCustomers)
		customers.POST("", r.partyController.CreateCustomer)
		customers.PATCH("/:id", r.partyController.UpdateCustomer)
		customers.DELETE("/:id", r.partyController.DeleteCustomer)
	}

	suppliers := v1.Group("/suppliers")
	{
		suppliers.GET("", r.partyController.ListSuppliers)
		suppliers.POST("", r.partyController.CreateSupplier)
		suppliers.PATCH("/:id", r.partyController.UpdateSupplier)
		suppliers.DELETE("/:id", r.partyController.DeleteSupplier)
	}

	products := v1.Group("/products")
	{
		products.GET("", r.productController.List)
		products.POST("", r.productController.Create)
		products.GET("/:id", r.productController.Get)
		products.PATCH("/:id", r.productController.Update)
		products.DELETE("/:id", r.productController.Delete)
	}
}
