// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/brecho/backoffice/config"
	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/application/usecase/category"
	"github.com/brecho/backoffice/internal/application/usecase/commission"
	"github.com/brecho/backoffice/internal/application/usecase/expense"
	"github.com/brecho/backoffice/internal/application/usecase/goal"
	"github.com/brecho/backoffice/internal/application/usecase/income"
	"github.com/brecho/backoffice/internal/application/usecase/inventory"
	"github.com/brecho/backoffice/internal/application/usecase/party"
	"github.com/brecho/backoffice/internal/application/usecase/report"
	"github.com/brecho/backoffice/internal/application/usecase/sale"
	"github.com/brecho/backoffice/internal/infra/server/router"
	"github.com/brecho/backoffice/internal/integration/adapters"
	"github.com/brecho/backoffice/internal/integration/email"
	"github.com/brecho/backoffice/internal/integration/email/templates"
	"github.com/brecho/backoffice/internal/integration/entrypoint/controller"
	"github.com/brecho/backoffice/internal/integration/entrypoint/middleware"
	"github.com/brecho/backoffice/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	TokenService adapter.TokenService
	Router       *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil sender disables settlement emails.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	reportCache adapter.ReportCache,
	sender adapter.EmailSender,
	dbHealthChecker func() bool,
) (*Injector, error) {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	sellerRepo := persistence.NewSellerRepository(db)
	saleRepo := persistence.NewSaleRepository(db)
	commissionRepo := persistence.NewCommissionRepository(db)
	cashRepo := persistence.NewCashRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	supplierRepo := persistence.NewSupplierRepository(db)
	productRepo := persistence.NewProductRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	notifier := email.NewService(sender, renderer, cfg.Email.FromName)

	book := cash.NewBook(cashRepo, reportCache).WithDefaultPaymentMethod(cfg.Cash.DefaultPaymentMethod)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, reportCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, reportCache)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, supplierRepo, book)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, supplierRepo, book)
	setPaidUseCase := expense.NewSetPaidUseCase(expenseRepo, book)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, book)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, categoryRepo, book)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, book)

	// Create seller and sale use cases
	createSellerUseCase := sale.NewCreateSellerUseCase(sellerRepo)
	listSellersUseCase := sale.NewListSellersUseCase(sellerRepo)
	updateSellerUseCase := sale.NewUpdateSellerUseCase(sellerRepo)
	createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo, sellerRepo, customerRepo, productRepo, commissionRepo, book)
	listSalesUseCase := sale.NewListSalesUseCase(saleRepo)

	// Create customer and supplier use cases
	createCustomerUseCase := party.NewCreateCustomerUseCase(customerRepo)
	listCustomersUseCase := party.NewListCustomersUseCase(customerRepo)
	updateCustomerUseCase := party.NewUpdateCustomerUseCase(customerRepo)
	deleteCustomerUseCase := party.NewDeleteCustomerUseCase(customerRepo)
	createSupplierUseCase := party.NewCreateSupplierUseCase(supplierRepo)
	listSuppliersUseCase := party.NewListSuppliersUseCase(supplierRepo)
	updateSupplierUseCase := party.NewUpdateSupplierUseCase(supplierRepo)
	deleteSupplierUseCase := party.NewDeleteSupplierUseCase(supplierRepo)

	// Create inventory use cases
	listProductsUseCase := inventory.NewListProductsUseCase(productRepo)
	createProductUseCase := inventory.NewCreateProductUseCase(productRepo, supplierRepo)
	getProductUseCase := inventory.NewGetProductUseCase(productRepo)
	updateProductUseCase := inventory.NewUpdateProductUseCase(productRepo, supplierRepo)
	deleteProductUseCase := inventory.NewDeleteProductUseCase(productRepo)

	// Create commission use cases
	listCommissionsUseCase := commission.NewListCommissionsUseCase(commissionRepo)
	createCommissionUseCase := commission.NewCreateCommissionUseCase(commissionRepo, saleRepo, sellerRepo)
	approveCommissionUseCase := commission.NewApproveCommissionUseCase(commissionRepo)
	reverseCommissionUseCase := commission.NewReverseCommissionUseCase(commissionRepo)
	settleCommissionUseCase := commission.NewSettleCommissionUseCase(
		commissionRepo,
		categoryRepo,
		expenseRepo,
		sellerRepo,
		book,
		notifier,
	).WithNotifyTimeout(cfg.Email.NotifyTimeout)

	// Create cash use cases
	getLedgerUseCase := cash.NewGetLedgerUseCase(cashRepo, cfg.Cash.MaxLedgerDays)
	listMovementsUseCase := cash.NewListMovementsUseCase(cashRepo)
	recalculateSnapshotsUseCase := cash.NewRecalculateSnapshotsUseCase(cashRepo, reportCache)

	// Create report use cases
	categoryBreakdownUseCase := report.NewGetCategoryBreakdownUseCase(expenseRepo, incomeRepo, saleRepo, categoryRepo, reportCache, cfg.Cash.MaxLedgerDays)
	monthlyComparisonUseCase := report.NewGetMonthlyComparisonUseCase(expenseRepo, incomeRepo, saleRepo, reportCache, cfg.Cash.MaxLedgerDays)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, saleRepo, incomeRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, sellerRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, saleRepo, incomeRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		setPaidUseCase,
		deleteExpenseUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		deleteIncomeUseCase,
	)

	saleController := controller.NewSaleController(
		createSellerUseCase,
		listSellersUseCase,
		updateSellerUseCase,
		createSaleUseCase,
		listSalesUseCase,
	)

	commissionController := controller.NewCommissionController(
		listCommissionsUseCase,
		createCommissionUseCase,
		approveCommissionUseCase,
		reverseCommissionUseCase,
		settleCommissionUseCase,
	)

	cashController := controller.NewCashController(
		getLedgerUseCase,
		listMovementsUseCase,
		recalculateSnapshotsUseCase,
	)

	reportController := controller.NewReportController(
		categoryBreakdownUseCase,
		monthlyComparisonUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	partyController := controller.NewPartyController(
		createCustomerUseCase,
		listCustomersUseCase,
		updateCustomerUseCase,
		deleteCustomerUseCase,
		createSupplierUseCase,
		listSuppliersUseCase,
		updateSupplierUseCase,
		deleteSupplierUseCase,
	)

	productController := controller.NewProductController(
		listProductsUseCase,
		createProductUseCase,
		getProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
	)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		categoryController,
		expenseController,
		incomeController,
		saleController,
		commissionController,
		cashController,
		reportController,
		goalController,
		partyController,
		productController,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		TokenService: tokenService,
		Router:       r,
	}, nil
}
