package cash

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		maxDays  int
		expected error
	}{
		{
			name:    "single day",
			start:   day("2025-03-01"),
			end:     day("2025-03-01"),
			maxDays: 366,
		},
		{
			name:    "exactly at the limit",
			start:   day("2025-01-01"),
			end:     day("2025-12-31"),
			maxDays: 365,
		},
		{
			name:     "missing start date",
			end:      day("2025-03-01"),
			maxDays:  366,
			expected: domainerror.ErrMissingStartDate,
		},
		{
			name:     "missing end date",
			start:    day("2025-03-01"),
			maxDays:  366,
			expected: domainerror.ErrMissingEndDate,
		},
		{
			name:     "end before start",
			start:    day("2025-03-02"),
			end:      day("2025-03-01"),
			maxDays:  366,
			expected: domainerror.ErrInvalidDateRange,
		},
		{
			name:     "one day over the limit",
			start:    day("2025-01-01"),
			end:      day("2026-01-01"),
			maxDays:  365,
			expected: domainerror.ErrDateRangeTooLarge,
		},
		{
			name:    "no limit",
			start:   day("2020-01-01"),
			end:     day("2025-01-01"),
			maxDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.start, tt.end, tt.maxDays)
			if tt.expected == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
