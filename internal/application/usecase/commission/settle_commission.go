package commission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/adapter"
	"github.com/brecho/backoffice/internal/application/usecase/cash"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// SettleCommissionInput represents the input for commission settlement.
type SettleCommissionInput struct {
	CommissionID      uuid.UUID
	UserID            uuid.UUID
	ExpenseCategoryID uuid.UUID
	PaymentDate       *time.Time // Defaults to today
	PaymentMethod     string
}

// SettleCommissionOutput represents the output of commission settlement.
type SettleCommissionOutput struct {
	Commission *entity.Commission
	Expense    *entity.Expense
	Movement   *entity.CashMovement
}

// DefaultNotifyTimeout bounds the seller notification sent after a settlement.
const DefaultNotifyTimeout = 10 * time.Second

// SettleCommissionUseCase pays a commission out of the cash ledger.
//
// The writes are sequential and not transactional: the commission is marked paid
// first, then the expense and the cash movement are created. A failure in either
// of the later writes reverts the commission.
type SettleCommissionUseCase struct {
	commissionRepo adapter.CommissionRepository
	categoryRepo   adapter.CategoryRepository
	expenseRepo    adapter.ExpenseRepository
	sellerRepo     adapter.SellerRepository
	book           *cash.Book
	notifier       adapter.SettlementNotifier
	notifyTimeout  time.Duration
}

// NewSettleCommissionUseCase creates a new SettleCommissionUseCase instance.
// notifier may be nil.
func NewSettleCommissionUseCase(
	commissionRepo adapter.CommissionRepository,
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
	sellerRepo adapter.SellerRepository,
	book *cash.Book,
	notifier adapter.SettlementNotifier,
) *SettleCommissionUseCase {
	return &SettleCommissionUseCase{
		commissionRepo: commissionRepo,
		categoryRepo:   categoryRepo,
		expenseRepo:    expenseRepo,
		sellerRepo:     sellerRepo,
		book:           book,
		notifier:       notifier,
		notifyTimeout:  DefaultNotifyTimeout,
	}
}

// WithNotifyTimeout overrides how long the seller notification may take,
// retries included. Non-positive values keep the current timeout.
func (uc *SettleCommissionUseCase) WithNotifyTimeout(timeout time.Duration) *SettleCommissionUseCase {
	if timeout > 0 {
		uc.notifyTimeout = timeout
	}
	return uc
}

// Execute performs the settlement.
func (uc *SettleCommissionUseCase) Execute(ctx context.Context, input SettleCommissionInput) (*SettleCommissionOutput, error) {
	// Validation reads only, nothing is written before it passes.
	commission, err := findOwned(ctx, uc.commissionRepo, input.CommissionID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := checkSettleable(commission); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, input.UserID, input.ExpenseCategoryID); err != nil {
		return nil, err
	}
	seller := uc.findSeller(ctx, commission.SellerID)

	paymentDate := entity.Today()
	if input.PaymentDate != nil {
		paymentDate = entity.Day(*input.PaymentDate)
	}

	snapshot, err := uc.book.ResolveSnapshot(ctx, input.UserID, paymentDate)
	if err != nil {
		return nil, err
	}

	// Mark paid, conditioned on the status read above.
	original := *commission
	expenseID := uuid.New()
	commission.Status = entity.CommissionStatusPaid
	commission.PaymentDate = &paymentDate
	commission.ExpenseID = &expenseID
	commission.UpdatedAt = time.Now().UTC()

	changed, err := uc.commissionRepo.UpdateStatus(ctx, commission, original.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to mark commission as paid: %w", err)
	}
	if !changed {
		return nil, domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionAlreadyPaid,
			"commission is already paid",
			domainerror.ErrCommissionAlreadyPaid,
		)
	}

	paymentMethod := uc.book.PaymentMethodOr(input.PaymentMethod)
	expense := entity.NewExpense(
		input.UserID,
		expenseDescription(seller),
		commission.Amount,
		paymentDate,
		&input.ExpenseCategoryID,
		paymentMethod,
	)
	expense.ID = expenseID
	if seller != nil {
		expense.SupplierName = seller.Name
	}
	expense.MarkPaid(paymentDate)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, uc.compensate(ctx, commission, &original, nil, fmt.Errorf("failed to create settlement expense: %w", err))
	}

	commissionID := commission.ID
	movement := &entity.CashMovement{
		Direction:     entity.MovementOutflow,
		Amount:        commission.Amount,
		Description:   expense.Description,
		PaymentMethod: paymentMethod,
		ExpenseID:     &expenseID,
		CommissionID:  &commissionID,
	}
	if err := uc.book.RecordMovement(ctx, snapshot, movement); err != nil {
		return nil, uc.compensate(ctx, commission, &original, expense, err)
	}

	uc.notify(ctx, seller, commission)

	return &SettleCommissionOutput{
		Commission: commission,
		Expense:    expense,
		Movement:   movement,
	}, nil
}

func checkSettleable(commission *entity.Commission) error {
	switch commission.Status {
	case entity.CommissionStatusPaid:
		return domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionAlreadyPaid,
			"commission is already paid",
			domainerror.ErrCommissionAlreadyPaid,
		)
	case entity.CommissionStatusReversed:
		return domainerror.NewCommissionError(
			domainerror.ErrCodeCommissionReversed,
			"reversed commissions cannot be settled",
			domainerror.ErrCommissionReversed,
		)
	}
	return nil
}

func (uc *SettleCommissionUseCase) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return fmt.Errorf("failed to find category: %w", err)
	}
	if err != nil || category.UserID != userID || category.Type != entity.CategoryTypeExpense {
		return domainerror.NewCommissionError(
			domainerror.ErrCodeSettlementCategory,
			"settlement category must be one of your expense categories",
			domainerror.ErrSettlementCategoryInvalid,
		)
	}
	return nil
}

// findSeller returns nil when the seller cannot be read; settlement does not depend on it.
func (uc *SettleCommissionUseCase) findSeller(ctx context.Context, sellerID uuid.UUID) *entity.Seller {
	seller, err := uc.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		slog.Warn("Failed to load seller for settlement", "seller_id", sellerID, "error", err)
		return nil
	}
	return seller
}

// compensate reverts the commission to its status before settlement and removes
// the expense when it was already written.
func (uc *SettleCommissionUseCase) compensate(
	ctx context.Context,
	commission, original *entity.Commission,
	expense *entity.Expense,
	cause error,
) error {
	var revertErr error

	revert := *original
	revert.UpdatedAt = time.Now().UTC()
	changed, err := uc.commissionRepo.UpdateStatus(ctx, &revert, entity.CommissionStatusPaid)
	switch {
	case err != nil:
		revertErr = fmt.Errorf("failed to revert commission status: %w", err)
	case !changed:
		revertErr = errors.New("commission status changed during settlement")
	}

	if expense != nil {
		if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
			revertErr = errors.Join(revertErr, fmt.Errorf("failed to delete settlement expense: %w", err))
		}
	}

	if revertErr != nil {
		slog.Error("Commission settlement rollback failed",
			"commission_id", commission.ID,
			"expense_id", commission.ExpenseID,
			"cause", cause,
			"error", revertErr,
		)
		return domainerror.NewCommissionError(
			domainerror.ErrCodeSettlementRollbackFailed,
			"commission settlement failed and could not be reverted",
			errors.Join(domainerror.ErrSettlementRollbackFailed, cause, revertErr),
		)
	}

	*commission = *original
	return domainerror.NewCommissionError(
		domainerror.ErrCodeSettlementFailed,
		"commission settlement failed",
		cause,
	)
}

func (uc *SettleCommissionUseCase) notify(ctx context.Context, seller *entity.Seller, commission *entity.Commission) {
	if uc.notifier == nil || seller == nil || seller.Email == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, uc.notifyTimeout)
	defer cancel()

	err := uc.notifier.NotifyCommissionPaid(ctx, adapter.CommissionPaidNotice{
		SellerName:  seller.Name,
		SellerEmail: seller.Email,
		Amount:      commission.Amount,
		BaseAmount:  commission.BaseAmount,
		Rate:        commission.Rate,
		PaymentDate: *commission.PaymentDate,
	})
	if err != nil {
		slog.Warn("Failed to notify seller of commission payment",
			"commission_id", commission.ID,
			"seller_id", seller.ID,
			"error", err,
		)
	}
}

func expenseDescription(seller *entity.Seller) string {
	if seller == nil {
		return "Comissão"
	}
	return "Comissão - " + seller.Name
}
