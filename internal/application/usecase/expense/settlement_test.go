package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// settled books a paid expense and ties its outflow to a commission, the way
// the commission settlement records it.
func (f *fixture) settled(t *testing.T, paidOn time.Time) (*entity.Expense, uuid.UUID) {
	t.Helper()
	expense := f.create(t, CreateExpenseInput{
		Description: "Comissão Marina",
		Amount:      decimal.NewFromInt(25),
		DueDate:     paidOn,
		Paid:        true,
		PaymentDate: &paidOn,
	})

	commissionID := uuid.New()
	movements := f.cash.Movements(f.userID)
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	movement := movements[0]
	movement.CommissionID = &commissionID
	f.cash.PutMovement(movement)
	return expense, commissionID
}

func assertSettlementLocked(t *testing.T, err error) {
	t.Helper()
	var entryErr *domainerror.EntryError
	if !errors.As(err, &entryErr) || entryErr.Code != domainerror.ErrCodeSettlementExpenseLocked {
		t.Fatalf("expected ErrCodeSettlementExpenseLocked, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrSettlementExpenseLocked) {
		t.Errorf("expected ErrSettlementExpenseLocked sentinel, got %v", err)
	}
}

func (f *fixture) assertSettlementIntact(t *testing.T, commissionID uuid.UUID, paidOn time.Time) {
	t.Helper()
	movements := f.cash.Movements(f.userID)
	if len(movements) != 1 {
		t.Fatalf("expected settlement movement kept, got %d movements", len(movements))
	}
	if movements[0].CommissionID == nil || *movements[0].CommissionID != commissionID {
		t.Errorf("expected commission link kept, got %v", movements[0].CommissionID)
	}
	if !movements[0].Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected movement amount 25, got %s", movements[0].Amount)
	}
	snapshot := f.cash.Snapshot(f.userID, paidOn)
	if !snapshot.OutflowTotal.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected outflow 25, got %s", snapshot.OutflowTotal)
	}
}

func TestUpdateExpense_SettlementAmountIsLocked(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense, commissionID := f.settled(t, paidOn)

	amount := decimal.NewFromInt(999)
	_, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.suppliers, f.book).Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: expense.ID,
		UserID:    f.userID,
		Amount:    &amount,
	})
	assertSettlementLocked(t, err)

	stored, _ := f.expenses.FindByID(context.Background(), expense.ID)
	if !stored.Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected stored amount 25, got %s", stored.Amount)
	}
	f.assertSettlementIntact(t, commissionID, paidOn)
}

func TestUpdateExpense_SettlementPaymentDateIsLocked(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense, commissionID := f.settled(t, paidOn)

	moved := date(2025, time.March, 12)
	_, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.suppliers, f.book).Execute(context.Background(), UpdateExpenseInput{
		ExpenseID:   expense.ID,
		UserID:      f.userID,
		PaymentDate: &moved,
	})
	assertSettlementLocked(t, err)
	f.assertSettlementIntact(t, commissionID, paidOn)
}

func TestUpdateExpense_SettlementNotesAreEditable(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense, commissionID := f.settled(t, paidOn)

	notes := "pago via pix"
	output, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.suppliers, f.book).Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: expense.ID,
		UserID:    f.userID,
		Notes:     &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Expense.Notes != notes {
		t.Errorf("expected notes updated, got %q", output.Expense.Notes)
	}
	f.assertSettlementIntact(t, commissionID, paidOn)
}

func TestSetPaid_SettlementUnpayIsLocked(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense, commissionID := f.settled(t, paidOn)

	_, err := NewSetPaidUseCase(f.expenses, f.book).Execute(context.Background(), SetPaidInput{
		ExpenseID: expense.ID,
		UserID:    f.userID,
		Paid:      false,
	})
	assertSettlementLocked(t, err)

	stored, _ := f.expenses.FindByID(context.Background(), expense.ID)
	if !stored.Paid {
		t.Error("expected expense to stay paid")
	}
	f.assertSettlementIntact(t, commissionID, paidOn)
}

func TestDeleteExpense_SettlementIsLocked(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense, commissionID := f.settled(t, paidOn)

	_, err := NewDeleteExpenseUseCase(f.expenses, f.book).Execute(context.Background(), DeleteExpenseInput{
		ExpenseID: expense.ID,
		UserID:    f.userID,
	})
	assertSettlementLocked(t, err)

	if f.expenses.Count() != 1 {
		t.Errorf("expected expense kept, got %d", f.expenses.Count())
	}
	f.assertSettlementIntact(t, commissionID, paidOn)
}

func TestUpdateExpense_ResyncKeepsMovementLinks(t *testing.T) {
	f := newFixture()
	paidOn := date(2025, time.March, 10)
	expense := f.create(t, CreateExpenseInput{
		Description: "Frete da venda",
		Amount:      decimal.NewFromInt(40),
		DueDate:     paidOn,
		Paid:        true,
		PaymentDate: &paidOn,
	})

	saleID := uuid.New()
	movement := f.cash.Movements(f.userID)[0]
	movement.SaleID = &saleID
	f.cash.PutMovement(movement)

	amount := decimal.NewFromInt(55)
	if _, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.suppliers, f.book).Execute(context.Background(), UpdateExpenseInput{
		ExpenseID: expense.ID,
		UserID:    f.userID,
		Amount:    &amount,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	movements := f.cash.Movements(f.userID)
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	if movements[0].SaleID == nil || *movements[0].SaleID != saleID {
		t.Errorf("expected sale link carried over, got %v", movements[0].SaleID)
	}
	if movements[0].ExpenseID == nil || *movements[0].ExpenseID != expense.ID {
		t.Errorf("expected expense link, got %v", movements[0].ExpenseID)
	}
	if !movements[0].Amount.Equal(amount) {
		t.Errorf("expected amount 55, got %s", movements[0].Amount)
	}
}
