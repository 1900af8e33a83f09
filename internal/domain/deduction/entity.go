package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deduction is a custom withholding attached to an employee. The value is a
// tagged variant: either a fixed amount or a percentage of base salary,
// never both. Statutory government contributions are computed from policy,
// not stored as rows here.
type Deduction struct {
	ID            string
	EmployeeID    string
	Name          string
	Kind          Kind
	Value         decimal.Decimal
	Frequency     Frequency
	EffectiveDate time.Time
	EndDate       *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Kind string

const (
	KindFixedAmount Kind = "FIXED_AMOUNT"
	KindPercentage  Kind = "PERCENTAGE"
)

func (k Kind) Valid() bool {
	return k == KindFixedAmount || k == KindPercentage
}

type Frequency string

const (
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyBiweekly Frequency = "BIWEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyOneTime  Frequency = "ONE_TIME"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyOneTime:
		return true
	}
	return false
}

// AmountFor resolves the deduction line for a given base salary.
func (d Deduction) AmountFor(baseSalary decimal.Decimal) decimal.Decimal {
	if d.Kind == KindPercentage {
		return d.Value.Mul(baseSalary).Div(decimal.NewFromInt(100))
	}
	return d.Value
}
