package payroll

import (
	"testing"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testEmployee(baseSalary string) employee.Employee {
	return employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "EMP-001",
		FullName:     "Maria Santos",
		BaseSalary:   dec(baseSalary),
		Status:       employee.StatusActive,
	}
}

func testPeriod() (time.Time, time.Time) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// ========== ATTENDANCE AGGREGATION ==========

func TestAggregateAttendance_CountsWorkedStatusesOnly(t *testing.T) {
	eight := dec("8")
	four := dec("4")
	two := dec("2")

	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, RegularHours: &eight, OvertimeHours: &two},
		{Status: attendance.StatusLate, RegularHours: &eight},
		{Status: attendance.StatusHalfDay, RegularHours: &four},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusOnLeave},
		{Status: attendance.StatusHoliday},
		{Status: attendance.StatusWeekend},
	}

	summary := AggregateAttendance(records)

	assert.Equal(t, 3, summary.WorkDays)
	assert.True(t, summary.RegularHours.Equal(dec("20")), "got %s", summary.RegularHours)
	assert.True(t, summary.OvertimeHours.Equal(dec("2")), "got %s", summary.OvertimeHours)
}

func TestAggregateAttendance_NilHoursContributeZero(t *testing.T) {
	// A worked day recorded without clock times counts toward work days but
	// adds no hours.
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
	}

	summary := AggregateAttendance(records)

	assert.Equal(t, 2, summary.WorkDays)
	assert.True(t, summary.RegularHours.IsZero())
	assert.True(t, summary.OvertimeHours.IsZero())
}

func TestAggregateAttendance_Empty(t *testing.T) {
	summary := AggregateAttendance(nil)

	assert.Equal(t, 0, summary.WorkDays)
	assert.True(t, summary.RegularHours.IsZero())
	assert.True(t, summary.OvertimeHours.IsZero())
}

// ========== GOVERNMENT CONTRIBUTIONS ==========

func TestResolveGovernmentDeductions_CapsApply(t *testing.T) {
	// At 50k base, SSS and Pag-IBIG hit their caps while PhilHealth does not.
	lines := ResolveGovernmentDeductions(dec("50000"), payroll.DefaultPolicy())
	require.Len(t, lines, 3)

	assert.Equal(t, "SSS", lines[0].Name)
	assert.True(t, lines[0].Amount.Equal(dec("1125")), "SSS got %s", lines[0].Amount)

	assert.Equal(t, "PhilHealth", lines[1].Name)
	assert.True(t, lines[1].Amount.Equal(dec("1375")), "PhilHealth got %s", lines[1].Amount)

	assert.Equal(t, "Pag-IBIG", lines[2].Name)
	assert.True(t, lines[2].Amount.Equal(dec("100")), "Pag-IBIG got %s", lines[2].Amount)
}

func TestResolveGovernmentDeductions_AllCapsSaturated(t *testing.T) {
	// At 200k base every contribution sits on its cap.
	lines := ResolveGovernmentDeductions(dec("200000"), payroll.DefaultPolicy())
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Amount.Equal(dec("1125")), "SSS got %s", lines[0].Amount)
	assert.True(t, lines[1].Amount.Equal(dec("2750")), "PhilHealth got %s", lines[1].Amount)
	assert.True(t, lines[2].Amount.Equal(dec("100")), "Pag-IBIG got %s", lines[2].Amount)
}

func TestResolveGovernmentDeductions_BelowCaps(t *testing.T) {
	lines := ResolveGovernmentDeductions(dec("20000"), payroll.DefaultPolicy())
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Amount.Equal(dec("900")))   // 20000 * 0.045
	assert.True(t, lines[1].Amount.Equal(dec("550")))   // 20000 * 0.0275
	assert.True(t, lines[2].Amount.Equal(dec("100")))   // capped at 5000 * 0.02
}

// ========== CUSTOM DEDUCTIONS ==========

func TestResolveCustomDeductions(t *testing.T) {
	deductions := []deduction.Deduction{
		{Name: "Loan repayment", Kind: deduction.KindFixedAmount, Value: dec("1500")},
		{Name: "Union dues", Kind: deduction.KindPercentage, Value: dec("2")},
	}

	lines := ResolveCustomDeductions(dec("40000"), deductions)
	require.Len(t, lines, 2)

	assert.True(t, lines[0].Amount.Equal(dec("1500")))
	assert.True(t, lines[1].Amount.Equal(dec("800")), "2%% of 40000, got %s", lines[1].Amount)
}

// ========== WITHHOLDING ==========

func TestWithholding_BelowFirstTaxedBracket(t *testing.T) {
	tax := Withholding(dec("20000"), payroll.DefaultTaxBrackets())
	assert.True(t, tax.IsZero(), "got %s", tax)
}

func TestWithholding_MarginalWalk(t *testing.T) {
	// 47400 spans three brackets: 0% up to 20833, 15% to 33333, 20% above.
	tax := Withholding(dec("47400"), payroll.DefaultTaxBrackets())

	expected := dec("12500").Mul(dec("0.15")).
		Add(dec("47400").Sub(dec("33333")).Mul(dec("0.20")))
	assert.True(t, tax.Equal(expected), "got %s want %s", tax, expected)
}

func TestWithholding_TopBracket(t *testing.T) {
	tax := Withholding(dec("700000"), payroll.DefaultTaxBrackets())

	// Full slices of every bracket plus 35% of the excess over 666667.
	expected := dec("195208.35")
	assert.True(t, tax.Equal(expected), "got %s want %s", tax, expected)
}

func TestWithholding_ZeroTaxableOrNoBrackets(t *testing.T) {
	assert.True(t, Withholding(decimal.Zero, payroll.DefaultTaxBrackets()).IsZero())
	assert.True(t, Withholding(dec("-100"), payroll.DefaultTaxBrackets()).IsZero())
	assert.True(t, Withholding(dec("50000"), nil).IsZero())
}

// ========== FULL CALCULATION ==========

func TestCalculate_BaseSalaryOnly(t *testing.T) {
	start, end := testPeriod()
	result := Calculate(CalculationInput{
		Employee:    testEmployee("25000"),
		PeriodStart: start,
		PeriodEnd:   end,
		Policy:      payroll.DefaultPolicy(),
	})

	// Government: 1125 + 687.50 + 100 = 1912.50
	assert.True(t, result.GovernmentTotal.Equal(dec("1912.5")), "got %s", result.GovernmentTotal)
	assert.True(t, result.GrossPay.Equal(dec("25000")))
	assert.True(t, result.TaxableIncome.Equal(dec("23087.5")))
	// (23087.50 - 20833) * 0.15 = 338.175 -> 338.18
	assert.True(t, result.WithholdingTax.Equal(dec("338.18")), "got %s", result.WithholdingTax)
	assert.True(t, result.NetPay.Equal(dec("22749.33")), "got %s", result.NetPay)
	assert.Equal(t, payroll.PayrollStatusCalculated, result.Status)
	assert.Equal(t, 0, result.WorkDays)
}

func TestCalculate_WithHoursAndEarnings(t *testing.T) {
	start, end := testPeriod()
	policy := payroll.DefaultPolicy()
	base := dec("50000")

	regular := dec("160")
	overtime := dec("10")
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, RegularHours: &regular, OvertimeHours: &overtime},
	}
	earnings := []earning.Earning{
		{Name: "Transport allowance", Amount: dec("2000")},
		{Name: "Meal allowance", Amount: dec("1500")},
	}

	result := Calculate(CalculationInput{
		Employee:    testEmployee("50000"),
		PeriodStart: start,
		PeriodEnd:   end,
		Attendance:  records,
		Earnings:    earnings,
		Policy:      policy,
	})

	hourly := base.Div(policy.StandardMonthlyHours)
	wantRegularPay := hourly.Mul(regular).Round(2)
	wantOvertimePay := hourly.Mul(policy.OvertimeMultiplier).Mul(overtime).Round(2)

	assert.Equal(t, 1, result.WorkDays)
	assert.True(t, result.RegularPay.Equal(wantRegularPay), "got %s want %s", result.RegularPay, wantRegularPay)
	assert.True(t, result.OvertimePay.Equal(wantOvertimePay), "got %s want %s", result.OvertimePay, wantOvertimePay)
	assert.True(t, result.TotalEarnings.Equal(dec("3500")))

	// Gross is strictly additive on top of base salary.
	wantGross := base.Add(hourly.Mul(regular)).Add(hourly.Mul(policy.OvertimeMultiplier).Mul(overtime)).Add(dec("3500")).Round(2)
	assert.True(t, result.GrossPay.Equal(wantGross), "got %s want %s", result.GrossPay, wantGross)
}

func TestCalculate_CustomDeductionsReduceTaxable(t *testing.T) {
	start, end := testPeriod()
	policy := payroll.DefaultPolicy()
	deductions := []deduction.Deduction{
		{Name: "Loan", Kind: deduction.KindFixedAmount, Value: dec("3000")},
	}

	nonTaxable := Calculate(CalculationInput{
		Employee: testEmployee("50000"), PeriodStart: start, PeriodEnd: end,
		Deductions: deductions, Policy: policy,
	})

	policy.CustomDeductionsTaxable = true
	taxable := Calculate(CalculationInput{
		Employee: testEmployee("50000"), PeriodStart: start, PeriodEnd: end,
		Deductions: deductions, Policy: policy,
	})

	assert.True(t, nonTaxable.TaxableIncome.LessThan(taxable.TaxableIncome))
	assert.True(t, taxable.TaxableIncome.Sub(nonTaxable.TaxableIncome).Equal(dec("3000")))
	assert.True(t, nonTaxable.WithholdingTax.LessThan(taxable.WithholdingTax))
	assert.True(t, nonTaxable.CustomTotal.Equal(dec("3000")))
	assert.True(t, taxable.CustomTotal.Equal(dec("3000")))
}

func TestCalculate_NetPayCanGoNegative(t *testing.T) {
	start, end := testPeriod()
	result := Calculate(CalculationInput{
		Employee:    testEmployee("1000"),
		PeriodStart: start,
		PeriodEnd:   end,
		Deductions: []deduction.Deduction{
			{Name: "Equipment damage", Kind: deduction.KindFixedAmount, Value: dec("5000")},
		},
		Policy: payroll.DefaultPolicy(),
	})

	// Taxable income is clamped at zero but net pay is not.
	assert.True(t, result.TaxableIncome.IsZero())
	assert.True(t, result.WithholdingTax.IsZero())
	assert.True(t, result.NetPay.IsNegative(), "got %s", result.NetPay)
	assert.True(t, result.NetPay.Equal(dec("-4092.5")), "got %s", result.NetPay)
}

func TestCalculate_DeductionTotalsAddUp(t *testing.T) {
	start, end := testPeriod()
	result := Calculate(CalculationInput{
		Employee:    testEmployee("80000"),
		PeriodStart: start,
		PeriodEnd:   end,
		Deductions: []deduction.Deduction{
			{Name: "HMO top-up", Kind: deduction.KindFixedAmount, Value: dec("1200")},
			{Name: "Savings plan", Kind: deduction.KindPercentage, Value: dec("5")},
		},
		Policy: payroll.DefaultPolicy(),
	})

	sum := result.GovernmentTotal.Add(result.CustomTotal).Add(result.WithholdingTax)
	assert.True(t, result.TotalDeductions.Equal(sum), "got %s want %s", result.TotalDeductions, sum)
	assert.True(t, result.NetPay.Equal(result.GrossPay.Sub(result.TotalDeductions)))
}
