package party

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/brecho/backoffice/internal/application/usecase/usecasetest"
	"github.com/brecho/backoffice/internal/domain/entity"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateCustomerInput
		wantCode domainerror.PartyErrorCode
	}{
		{name: "blank name", input: CreateCustomerInput{Name: "   "}, wantCode: domainerror.ErrCodeMissingPartyFields},
		{name: "long name", input: CreateCustomerInput{Name: strings.Repeat("a", MaxNameLength+1)}, wantCode: domainerror.ErrCodePartyNameTooLong},
		{name: "bad email", input: CreateCustomerInput{Name: "Ana", Email: "ana-at-example"}, wantCode: domainerror.ErrCodeInvalidPartyEmail},
		{name: "long phone", input: CreateCustomerInput{Name: "Ana", Phone: strings.Repeat("9", MaxPhoneLength+1)}, wantCode: domainerror.ErrCodePartyFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := usecasetest.NewCustomerRepository()
			tt.input.UserID = uuid.New()
			_, err := NewCreateCustomerUseCase(repo).Execute(context.Background(), tt.input)
			var partyErr *domainerror.PartyError
			if !errors.As(err, &partyErr) || partyErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
			customers, _ := repo.FindByUser(context.Background(), tt.input.UserID, "")
			if len(customers) != 0 {
				t.Errorf("expected nothing stored, got %d", len(customers))
			}
		})
	}
}

func TestCustomer_Lifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := usecasetest.NewCustomerRepository(entity.NewCustomer(userID, "Beatriz Lima", "bia@example.com", ""))

	created, err := NewCreateCustomerUseCase(repo).Execute(ctx, CreateCustomerInput{
		UserID: userID,
		Name:   " Ana Souza ",
		Email:  "ana@example.com",
		Phone:  "11 99999-0000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Customer.Name != "Ana Souza" {
		t.Errorf("expected trimmed name, got %q", created.Customer.Name)
	}

	listed, err := NewListCustomersUseCase(repo).Execute(ctx, ListCustomersInput{UserID: userID, Search: "souza"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed.Customers) != 1 || listed.Customers[0].ID != created.Customer.ID {
		t.Fatalf("expected search to find Ana only, got %+v", listed.Customers)
	}

	updated, err := NewUpdateCustomerUseCase(repo).Execute(ctx, UpdateCustomerInput{
		CustomerID: created.Customer.ID,
		UserID:     userID,
		Phone:      strPtr(""),
		Notes:      strPtr("prefere pix"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Customer.Phone != "" || updated.Customer.Notes != "prefere pix" || updated.Customer.Email != "ana@example.com" {
		t.Errorf("unexpected update result: %+v", updated.Customer)
	}

	if err := NewDeleteCustomerUseCase(repo).Execute(ctx, DeleteCustomerInput{CustomerID: created.Customer.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all, _ := NewListCustomersUseCase(repo).Execute(ctx, ListCustomersInput{UserID: userID})
	if len(all.Customers) != 1 {
		t.Errorf("expected 1 customer left, got %d", len(all.Customers))
	}
}

func TestCustomer_OtherUserReadsAsNotFound(t *testing.T) {
	ctx := context.Background()
	customer := entity.NewCustomer(uuid.New(), "Ana", "", "")
	repo := usecasetest.NewCustomerRepository(customer)
	stranger := uuid.New()

	_, err := NewUpdateCustomerUseCase(repo).Execute(ctx, UpdateCustomerInput{CustomerID: customer.ID, UserID: stranger, Name: strPtr("Outra")})
	if !errors.Is(err, domainerror.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound on update, got %v", err)
	}
	err = NewDeleteCustomerUseCase(repo).Execute(ctx, DeleteCustomerInput{CustomerID: customer.ID, UserID: stranger})
	if !errors.Is(err, domainerror.ErrCustomerNotFound) {
		t.Errorf("expected ErrCustomerNotFound on delete, got %v", err)
	}

	stored, _ := repo.FindByID(ctx, customer.ID)
	if stored.Name != "Ana" {
		t.Errorf("expected customer untouched, got %q", stored.Name)
	}
}

func TestFindOwnedSupplier_RepositoryFailure(t *testing.T) {
	repo := usecasetest.NewSupplierRepository()
	boom := errors.New("connection reset")
	repo.Fail("FindByID", boom)

	_, err := FindOwnedSupplier(context.Background(), repo, uuid.New(), uuid.New())
	if !errors.Is(err, boom) {
		t.Errorf("expected repository error, got %v", err)
	}
	if errors.Is(err, domainerror.ErrSupplierNotFound) {
		t.Error("repository failure must not read as not found")
	}
}

func TestSupplier_Lifecycle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := usecasetest.NewSupplierRepository()

	_, err := NewCreateSupplierUseCase(repo).Execute(ctx, CreateSupplierInput{
		UserID:   userID,
		Name:     "Bazar da Vila",
		Document: strings.Repeat("1", MaxDocumentLength+1),
	})
	var partyErr *domainerror.PartyError
	if !errors.As(err, &partyErr) || partyErr.Code != domainerror.ErrCodePartyFieldTooLong {
		t.Fatalf("expected ErrCodePartyFieldTooLong, got %v", err)
	}

	created, err := NewCreateSupplierUseCase(repo).Execute(ctx, CreateSupplierInput{
		UserID:   userID,
		Name:     "Bazar da Vila",
		Document: " 12.345.678/0001-90 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Supplier.Document != "12.345.678/0001-90" {
		t.Errorf("expected trimmed document, got %q", created.Supplier.Document)
	}

	listed, _ := NewListSuppliersUseCase(repo).Execute(ctx, ListSuppliersInput{UserID: userID, Search: "0001"})
	if len(listed.Suppliers) != 1 {
		t.Errorf("expected search by document to match, got %d", len(listed.Suppliers))
	}

	updated, err := NewUpdateSupplierUseCase(repo).Execute(ctx, UpdateSupplierInput{
		SupplierID: created.Supplier.ID,
		UserID:     userID,
		Email:      strPtr("contato@bazar.com.br"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Supplier.Email != "contato@bazar.com.br" || updated.Supplier.Name != "Bazar da Vila" {
		t.Errorf("unexpected update result: %+v", updated.Supplier)
	}

	if err := NewDeleteSupplierUseCase(repo).Execute(ctx, DeleteSupplierInput{SupplierID: created.Supplier.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := FindOwnedSupplier(ctx, repo, created.Supplier.ID, userID); !errors.Is(err, domainerror.ErrSupplierNotFound) {
		t.Errorf("expected ErrSupplierNotFound after delete, got %v", err)
	}
}
