package email

import (
	"context"
	"errors"
	"testing"

	"github.com/brecho/backoffice/internal/application/adapter"
)

func TestRecipient(t *testing.T) {
	tests := []struct {
		name  string
		input adapter.SendEmailInput
		want  string
	}{
		{name: "with name", input: adapter.SendEmailInput{To: "ana@example.com", Name: "Ana Souza"}, want: "Ana Souza <ana@example.com>"},
		{name: "blank name", input: adapter.SendEmailInput{To: "ana@example.com", Name: "  "}, want: "ana@example.com"},
		{name: "strips brackets", input: adapter.SendEmailInput{To: "ana@example.com", Name: `"Ana" <x>`}, want: "Ana x <ana@example.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recipient(tt.input); got != tt.want {
				t.Errorf("recipient() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: nil, want: false},
		{err: errors.New("[ERROR]: 422 validation_error: invalid `to` field"), want: true},
		{err: errors.New("401 Unauthorized"), want: true},
		{err: errors.New("429 rate_limit_exceeded"), want: false},
		{err: errors.New("503 service unavailable"), want: false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMockEmailSender_SentTo(t *testing.T) {
	sender := NewMockEmailSender()
	svc := newTestService(t, sender)

	if err := svc.NotifyCommissionPaid(context.Background(), testNotice()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := sender.SentTo("marina@example.com"); got != 1 {
		t.Errorf("expected 1 email to marina, got %d", got)
	}
	if got := sender.SentTo("other@example.com"); got != 0 {
		t.Errorf("expected no email to other, got %d", got)
	}
	if tag := sender.SentEmails[0].Tag; tag != "commission_paid" {
		t.Errorf("expected tag commission_paid, got %q", tag)
	}
}
