// Package report contains the income and expense report use cases.
package report

import (
	"fmt"
	"time"

	"github.com/brecho/backoffice/internal/domain/entity"
)

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// MonthLabel formats a month as "{month_abbr} {year}" (e.g., "Mar 2025").
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}

// PeriodLabel generates a human-readable label for a date range.
func PeriodLabel(startDate, endDate time.Time) string {
	if startDate.Year() == endDate.Year() && startDate.Month() == endDate.Month() {
		return MonthLabel(startDate)
	}

	startQuarter := (int(startDate.Month())-1)/3 + 1
	endQuarter := (int(endDate.Month())-1)/3 + 1
	if startDate.Year() == endDate.Year() && startQuarter == endQuarter {
		return fmt.Sprintf("T%d %d", startQuarter, startDate.Year())
	}

	return fmt.Sprintf("%s - %s", MonthLabel(startDate), MonthLabel(endDate))
}

// monthStart returns the first day of the month containing date.
func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthSeries returns the first day of every month touched by [startDate, endDate].
func monthSeries(startDate, endDate time.Time) []time.Time {
	var months []time.Time
	last := monthStart(entity.Day(endDate))
	for current := monthStart(entity.Day(startDate)); !current.After(last); current = current.AddDate(0, 1, 0) {
		months = append(months, current)
	}
	return months
}

func monthKey(date time.Time) string {
	return date.Format("2006-01")
}
