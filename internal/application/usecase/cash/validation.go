package cash

import (
	"fmt"
	"time"

	domainerror "github.com/brecho/backoffice/internal/domain/error"
)

// ValidateRange checks a date range used by ledgers and reports.
// maxDays <= 0 disables the length check.
func ValidateRange(startDate, endDate time.Time, maxDays int) error {
	if startDate.IsZero() {
		return domainerror.NewCashError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if endDate.IsZero() {
		return domainerror.NewCashError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if endDate.Before(startDate) {
		return domainerror.NewCashError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if maxDays > 0 && days > maxDays {
		return domainerror.NewCashError(
			domainerror.ErrCodeDateRangeTooLarge,
			fmt.Sprintf("date range cannot exceed %d days", maxDays),
			domainerror.ErrDateRangeTooLarge,
		)
	}

	return nil
}
