package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionPaidNotice carries what a seller is told about a settled commission.
type CommissionPaidNotice struct {
	SellerName  string
	SellerEmail string
	Amount      decimal.Decimal
	BaseAmount  decimal.Decimal
	Rate        decimal.Decimal
	PaymentDate time.Time
}

// SettlementNotifier tells sellers that their commission was paid.
type SettlementNotifier interface {
	NotifyCommissionPaid(ctx context.Context, notice CommissionPaidNotice) error
}
