package earning

import (
	"time"

	"github.com/shopspring/decimal"
)

// Earning is a named pay component attached to an employee. Frequency is
// display metadata: the resolver totals amounts without pro-rating.
type Earning struct {
	ID            string
	EmployeeID    string
	Name          string
	Amount        decimal.Decimal
	Frequency     Frequency
	EffectiveDate time.Time
	EndDate       *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Frequency string

const (
	FrequencyHourly    Frequency = "HOURLY"
	FrequencyDaily     Frequency = "DAILY"
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyBiweekly  Frequency = "BIWEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyAnnual    Frequency = "ANNUAL"
	FrequencyOneTime   Frequency = "ONE_TIME"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyHourly, FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual, FrequencyOneTime:
		return true
	}
	return false
}
