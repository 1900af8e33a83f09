package payroll

import (
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// CalculationInput bundles everything one employee's payroll needs. The
// calculator is pure: all data is loaded up front and no I/O happens here.
type CalculationInput struct {
	Employee    employee.Employee
	PeriodStart time.Time
	PeriodEnd   time.Time
	Attendance  []attendance.Attendance
	Earnings    []earning.Earning
	Deductions  []deduction.Deduction
	Policy      payroll.Policy
}

// DeductionLine is one resolved withholding: statutory contributions and
// custom deductions share the shape.
type DeductionLine struct {
	Name   string
	Amount decimal.Decimal
}

// AggregateAttendance rolls a period of attendance rows into work days and
// hour totals. Only worked statuses count toward work days; rows recorded
// without clock times have nil hour fields and contribute zero hours.
func AggregateAttendance(records []attendance.Attendance) attendance.PeriodSummary {
	summary := attendance.PeriodSummary{
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
	}

	for _, rec := range records {
		if !rec.Status.Worked() {
			continue
		}
		summary.WorkDays++

		if rec.RegularHours != nil {
			summary.RegularHours = summary.RegularHours.Add(*rec.RegularHours)
		}
		if rec.OvertimeHours != nil {
			summary.OvertimeHours = summary.OvertimeHours.Add(*rec.OvertimeHours)
		}
	}

	return summary
}

// ResolveEarnings totals the active earning amounts. Frequency is display
// metadata and does not pro-rate the amount.
func ResolveEarnings(earnings []earning.Earning) decimal.Decimal {
	total := decimal.Zero
	for _, e := range earnings {
		total = total.Add(e.Amount)
	}
	return total
}

// ResolveGovernmentDeductions computes the statutory contribution lines:
// min(baseSalary, cap) × rate for each scheme in the policy.
func ResolveGovernmentDeductions(baseSalary decimal.Decimal, policy payroll.Policy) []DeductionLine {
	lines := make([]DeductionLine, 0, 3)
	for _, scheme := range policy.Contributions() {
		base := baseSalary
		if base.GreaterThan(scheme.Cap) {
			base = scheme.Cap
		}
		lines = append(lines, DeductionLine{Name: scheme.Name, Amount: base.Mul(scheme.Rate)})
	}
	return lines
}

// ResolveCustomDeductions resolves each active custom deduction against the
// base salary (fixed amounts pass through, percentages are of base salary).
func ResolveCustomDeductions(baseSalary decimal.Decimal, deductions []deduction.Deduction) []DeductionLine {
	lines := make([]DeductionLine, 0, len(deductions))
	for _, d := range deductions {
		lines = append(lines, DeductionLine{Name: d.Name, Amount: d.AmountFor(baseSalary)})
	}
	return lines
}

func sumLines(lines []DeductionLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// Withholding walks the marginal brackets: each bracket's rate applies to
// the slice of taxable income between its threshold and the next one.
func Withholding(taxable decimal.Decimal, brackets []payroll.TaxBracket) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return decimal.Zero
	}

	tax := decimal.Zero
	for i, b := range brackets {
		if taxable.LessThanOrEqual(b.Over) {
			break
		}
		upper := taxable
		if i+1 < len(brackets) && taxable.GreaterThan(brackets[i+1].Over) {
			upper = brackets[i+1].Over
		}
		tax = tax.Add(upper.Sub(b.Over).Mul(b.Rate))
	}

	return tax
}

// Calculate produces one payroll row from the input. Intermediates keep full
// precision; only the persisted fields are rounded, to 2 decimal places.
func Calculate(in CalculationInput) payroll.Payroll {
	policy := in.Policy
	baseSalary := in.Employee.BaseSalary

	summary := AggregateAttendance(in.Attendance)

	hourlyRate := baseSalary.Div(policy.StandardMonthlyHours)
	regularPay := hourlyRate.Mul(summary.RegularHours)
	overtimePay := hourlyRate.Mul(policy.OvertimeMultiplier).Mul(summary.OvertimeHours)

	totalEarnings := ResolveEarnings(in.Earnings)
	grossPay := baseSalary.Add(regularPay).Add(overtimePay).Add(totalEarnings)

	government := sumLines(ResolveGovernmentDeductions(baseSalary, policy))
	custom := sumLines(ResolveCustomDeductions(baseSalary, in.Deductions))

	taxable := grossPay.Sub(government)
	if !policy.CustomDeductionsTaxable {
		taxable = taxable.Sub(custom)
	}
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	withholdingTax := Withholding(taxable, policy.TaxBrackets)
	totalDeductions := government.Add(custom).Add(withholdingTax)
	netPay := grossPay.Sub(totalDeductions)

	return payroll.Payroll{
		EmployeeID:      in.Employee.ID,
		PeriodStart:     in.PeriodStart,
		PeriodEnd:       in.PeriodEnd,
		WorkDays:        summary.WorkDays,
		RegularHours:    summary.RegularHours.Round(2),
		OvertimeHours:   summary.OvertimeHours.Round(2),
		BaseSalary:      baseSalary.Round(2),
		RegularPay:      regularPay.Round(2),
		OvertimePay:     overtimePay.Round(2),
		TotalEarnings:   totalEarnings.Round(2),
		GovernmentTotal: government.Round(2),
		CustomTotal:     custom.Round(2),
		GrossPay:        grossPay.Round(2),
		TaxableIncome:   taxable.Round(2),
		WithholdingTax:  withholdingTax.Round(2),
		TotalDeductions: totalDeductions.Round(2),
		NetPay:          netPay.Round(2),
		Status:          payroll.PayrollStatusCalculated,
	}
}
