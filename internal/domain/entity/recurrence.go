package entity

// Frequency is the recurrence interval of an expense or income.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether the frequency is known.
func (f Frequency) IsValid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly || f == FrequencyYearly
}

// Recurrence describes whether and how often a record repeats.
type Recurrence struct {
	Recurring bool
	Frequency *Frequency
}
