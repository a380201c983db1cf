// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brecho/backoffice/internal/application/adapter"
	domainerror "github.com/brecho/backoffice/internal/domain/error"
	"github.com/brecho/backoffice/internal/integration/email/templates"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// Service renders and sends settlement notices to sellers.
type Service struct {
	sender      adapter.EmailSender
	renderer    *templates.Renderer
	storeName   string
	maxAttempts int
	retryDelay  time.Duration
}

// NewService creates a new email service. A nil sender disables sending.
func NewService(sender adapter.EmailSender, renderer *templates.Renderer, storeName string) *Service {
	return &Service{
		sender:      sender,
		renderer:    renderer,
		storeName:   storeName,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

// WithRetry overrides how many times a temporary failure is retried.
func (s *Service) WithRetry(maxAttempts int, delay time.Duration) *Service {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	s.maxAttempts = maxAttempts
	s.retryDelay = delay
	return s
}

// NotifyCommissionPaid tells the seller that their commission was paid.
func (s *Service) NotifyCommissionPaid(ctx context.Context, notice adapter.CommissionPaidNotice) error {
	if s.sender == nil {
		return nil
	}

	data := templates.CommissionPaidData{
		StoreName:   s.storeName,
		SellerName:  notice.SellerName,
		Amount:      notice.Amount.StringFixed(2),
		BaseAmount:  notice.BaseAmount.StringFixed(2),
		Rate:        notice.Rate.String(),
		PaymentDate: notice.PaymentDate.Format("02/01/2006"),
	}

	html, text, err := s.renderer.Render(templates.TemplateCommissionPaid, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render commission paid email",
			errors.Join(domainerror.ErrTemplateRenderFailed, err),
		)
	}

	return s.send(ctx, adapter.SendEmailInput{
		To:      notice.SellerEmail,
		Name:    notice.SellerName,
		Subject: fmt.Sprintf("Sua comissão foi paga - %s", s.storeName),
		HTML:    html,
		Text:    text,
		Tag:     "commission_paid",
	})
}

// send delivers the email, retrying temporary failures.
func (s *Service) send(ctx context.Context, input adapter.SendEmailInput) error {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result, err := s.sender.Send(ctx, input)
		if err == nil {
			slog.Info("Email sent successfully", "recipient", input.To, "resend_id", result.ResendID)
			return nil
		}
		lastErr = err

		if domainerror.IsPermanentEmailError(err) {
			break
		}

		if attempt < s.maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retryDelay * time.Duration(attempt)):
			}
		}
	}

	return domainerror.NewEmailError(
		domainerror.ErrCodeEmailSendFailed,
		"failed to send email",
		errors.Join(domainerror.ErrEmailSendFailed, lastErr),
	)
}

// Ensure Service implements adapter.SettlementNotifier.
var _ adapter.SettlementNotifier = (*Service)(nil)
