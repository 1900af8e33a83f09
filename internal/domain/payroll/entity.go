package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchStatus enum. Forward lifecycle is DRAFT → PROCESSING → CALCULATED →
// APPROVED → PAID; CANCELLED is terminal and reachable from any pre-PAID state.
type BatchStatus string

const (
	BatchStatusDraft      BatchStatus = "DRAFT"
	BatchStatusProcessing BatchStatus = "PROCESSING"
	BatchStatusCalculated BatchStatus = "CALCULATED"
	BatchStatusApproved   BatchStatus = "APPROVED"
	BatchStatusPaid       BatchStatus = "PAID"
	BatchStatusCancelled  BatchStatus = "CANCELLED"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchStatusDraft, BatchStatusProcessing, BatchStatusCalculated,
		BatchStatusApproved, BatchStatusPaid, BatchStatusCancelled:
		return true
	}
	return false
}

func (s BatchStatus) Terminal() bool {
	return s == BatchStatusPaid || s == BatchStatusCancelled
}

// rank orders the forward lifecycle; CANCELLED sits outside it.
func (s BatchStatus) rank() int {
	switch s {
	case BatchStatusDraft:
		return 0
	case BatchStatusProcessing:
		return 1
	case BatchStatusCalculated:
		return 2
	case BatchStatusApproved:
		return 3
	case BatchStatusPaid:
		return 4
	}
	return -1
}

// CanTransition reports whether a direct status edit from s to target is
// allowed: forward moves only, plus cancellation of any pre-PAID batch.
func (s BatchStatus) CanTransition(target BatchStatus) bool {
	if s == target {
		return true
	}
	if s.Terminal() {
		return false
	}
	if target == BatchStatusCancelled {
		return true
	}
	return target.rank() > s.rank()
}

// PayrollBatch is a named payroll run covering one pay period for a selected
// set of employees.
type PayrollBatch struct {
	ID              string
	Name            string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	PayDate         *time.Time
	Status          BatchStatus
	EmployeeIDs     []string // resolved selection; empty means all active at processing time
	Departments     []string
	SelectAll       bool
	TotalEmployees  int
	TotalGrossPay   decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrollStatus mirrors the batch lifecycle on individual records.
type PayrollStatus string

const (
	PayrollStatusCalculated PayrollStatus = "CALCULATED"
	PayrollStatusApproved   PayrollStatus = "APPROVED"
	PayrollStatusPaid       PayrollStatus = "PAID"
)

// Payroll is one computed row per (batch, employee). Period bounds are
// denormalized from the batch for range queries; the row itself is keyed by
// batch so overlapping batches can never claim each other's rows.
type Payroll struct {
	ID              string
	BatchID         string
	EmployeeID      string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	WorkDays        int
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	BaseSalary      decimal.Decimal
	RegularPay      decimal.Decimal
	OvertimePay     decimal.Decimal
	TotalEarnings   decimal.Decimal
	GovernmentTotal decimal.Decimal
	CustomTotal     decimal.Decimal
	GrossPay        decimal.Decimal
	TaxableIncome   decimal.Decimal
	WithholdingTax  decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          PayrollStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// TaxBracket is one marginal bracket: Rate applies to taxable income above
// Over, up to the next bracket's threshold.
type TaxBracket struct {
	Over decimal.Decimal `json:"over"`
	Rate decimal.Decimal `json:"rate"`
}

// ContributionScheme is one statutory government contribution line:
// min(baseSalary, Cap) × Rate.
type ContributionScheme struct {
	Name string
	Rate decimal.Decimal
	Cap  decimal.Decimal
}

// Policy carries every configurable constant the calculator needs. It is
// loaded from the payroll settings row and passed in explicitly, keeping the
// calculator pure.
type Policy struct {
	SSSRate                 decimal.Decimal
	SSSCap                  decimal.Decimal
	PhilHealthRate          decimal.Decimal
	PhilHealthCap           decimal.Decimal
	PagIbigRate             decimal.Decimal
	PagIbigCap              decimal.Decimal
	OvertimeMultiplier      decimal.Decimal
	StandardMonthlyHours    decimal.Decimal
	StandardDailyHours      decimal.Decimal
	TaxBrackets             []TaxBracket
	CustomDeductionsTaxable bool
}

// Contributions lists the statutory schemes in a fixed order.
func (p Policy) Contributions() []ContributionScheme {
	return []ContributionScheme{
		{Name: "SSS", Rate: p.SSSRate, Cap: p.SSSCap},
		{Name: "PhilHealth", Rate: p.PhilHealthRate, Cap: p.PhilHealthCap},
		{Name: "Pag-IBIG", Rate: p.PagIbigRate, Cap: p.PagIbigCap},
	}
}

// DefaultPolicy returns the statutory defaults used until settings are saved.
func DefaultPolicy() Policy {
	return Policy{
		SSSRate:              decimal.RequireFromString("0.045"),
		SSSCap:               decimal.NewFromInt(25000),
		PhilHealthRate:       decimal.RequireFromString("0.0275"),
		PhilHealthCap:        decimal.NewFromInt(100000),
		PagIbigRate:          decimal.RequireFromString("0.02"),
		PagIbigCap:           decimal.NewFromInt(5000),
		OvertimeMultiplier:   decimal.RequireFromString("1.25"),
		StandardMonthlyHours: decimal.NewFromInt(176),
		StandardDailyHours:   decimal.NewFromInt(8),
		TaxBrackets:          DefaultTaxBrackets(),
	}
}

// DefaultTaxBrackets is the monthly progressive withholding table.
func DefaultTaxBrackets() []TaxBracket {
	return []TaxBracket{
		{Over: decimal.Zero, Rate: decimal.Zero},
		{Over: decimal.RequireFromString("20833"), Rate: decimal.RequireFromString("0.15")},
		{Over: decimal.RequireFromString("33333"), Rate: decimal.RequireFromString("0.20")},
		{Over: decimal.RequireFromString("66667"), Rate: decimal.RequireFromString("0.25")},
		{Over: decimal.RequireFromString("166667"), Rate: decimal.RequireFromString("0.30")},
		{Over: decimal.RequireFromString("666667"), Rate: decimal.RequireFromString("0.35")},
	}
}

// Settings is the persisted form of Policy (single row, upserted).
type Settings struct {
	ID                      string
	SSSRate                 decimal.Decimal
	SSSCap                  decimal.Decimal
	PhilHealthRate          decimal.Decimal
	PhilHealthCap           decimal.Decimal
	PagIbigRate             decimal.Decimal
	PagIbigCap              decimal.Decimal
	OvertimeMultiplier      decimal.Decimal
	StandardMonthlyHours    decimal.Decimal
	StandardDailyHours      decimal.Decimal
	TaxBrackets             []TaxBracket
	CustomDeductionsTaxable bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Policy converts the stored settings into the calculator input.
func (s Settings) Policy() Policy {
	return Policy{
		SSSRate:                 s.SSSRate,
		SSSCap:                  s.SSSCap,
		PhilHealthRate:          s.PhilHealthRate,
		PhilHealthCap:           s.PhilHealthCap,
		PagIbigRate:             s.PagIbigRate,
		PagIbigCap:              s.PagIbigCap,
		OvertimeMultiplier:      s.OvertimeMultiplier,
		StandardMonthlyHours:    s.StandardMonthlyHours,
		StandardDailyHours:      s.StandardDailyHours,
		TaxBrackets:             s.TaxBrackets,
		CustomDeductionsTaxable: s.CustomDeductionsTaxable,
	}
}
