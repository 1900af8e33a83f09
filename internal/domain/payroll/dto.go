package payroll

import (
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== BATCH DTOs ==========

// CreateBatchRequest carries the pay period and exactly one employee
// selector: an explicit ID list, a set of departments, or select_all.
type CreateBatchRequest struct {
	BatchName      string   `json:"batch_name"`
	PayPeriodStart string   `json:"pay_period_start"`
	PayPeriodEnd   string   `json:"pay_period_end"`
	PayDate        *string  `json:"pay_date,omitempty"`
	EmployeeIDs    []string `json:"employee_ids,omitempty"`
	Departments    []string `json:"departments,omitempty"`
	SelectAll      bool     `json:"select_all,omitempty"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchName) {
		errs = append(errs, validator.ValidationError{Field: "batch_name", Message: "is required"})
	}

	start, okStart := validator.IsValidDate(r.PayPeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PayPeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && !start.Before(end) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be after pay_period_start"})
	}
	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be YYYY-MM-DD"})
		}
	}

	selectors := 0
	if len(r.EmployeeIDs) > 0 {
		selectors++
	}
	if len(r.Departments) > 0 {
		selectors++
	}
	if r.SelectAll {
		selectors++
	}
	if selectors == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "one of employee_ids, departments or select_all is required"})
	}
	if selectors > 1 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "employee_ids, departments and select_all are mutually exclusive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed period bounds. Call after Validate.
func (r *CreateBatchRequest) Period() (start, end time.Time, payDate *time.Time) {
	start, _ = validator.IsValidDate(r.PayPeriodStart)
	end, _ = validator.IsValidDate(r.PayPeriodEnd)
	if r.PayDate != nil {
		if d, ok := validator.IsValidDate(*r.PayDate); ok {
			payDate = &d
		}
	}
	return start, end, payDate
}

// UpdateBatchRequest exposes the only editable batch fields: name, pay date
// and status.
type UpdateBatchRequest struct {
	ID        string
	BatchName *string `json:"batch_name,omitempty"`
	PayDate   *string `json:"pay_date,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r *UpdateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BatchName != nil && validator.IsEmpty(*r.BatchName) {
		errs = append(errs, validator.ValidationError{Field: "batch_name", Message: "must not be blank"})
	}
	if r.PayDate != nil {
		if _, ok := validator.IsValidDate(*r.PayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Status != nil && !BatchStatus(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a valid batch status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PayDate         *string         `json:"pay_date,omitempty"`
	Status          string          `json:"status"`
	TotalEmployees  int             `json:"total_employees"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

// ProcessSummary reports per-employee outcomes of one processing run.
// Individual calculation failures are tolerated and counted; persistence
// failures abort the whole run instead.
type ProcessSummary struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type CreateBatchResponse struct {
	Batch   BatchResponse  `json:"batch"`
	Summary ProcessSummary `json:"summary"`
}

// ========== PAYROLL ROW DTOs ==========

type PayrollResponse struct {
	ID              string          `json:"id"`
	BatchID         string          `json:"batch_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeCode    string          `json:"employee_code,omitempty"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	WorkDays        int             `json:"work_days"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	RegularPay      decimal.Decimal `json:"regular_pay"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	GovernmentTotal decimal.Decimal `json:"government_total"`
	CustomTotal     decimal.Decimal `json:"custom_total"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	WithholdingTax  decimal.Decimal `json:"withholding_tax"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Status          string          `json:"status"`
}

type PayrollFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *string
	BatchID    *string
	Limit      int
}

// ========== SETTINGS DTOs ==========

type SettingsResponse struct {
	SSSRate                 decimal.Decimal `json:"sss_rate"`
	SSSCap                  decimal.Decimal `json:"sss_cap"`
	PhilHealthRate          decimal.Decimal `json:"philhealth_rate"`
	PhilHealthCap           decimal.Decimal `json:"philhealth_cap"`
	PagIbigRate             decimal.Decimal `json:"pagibig_rate"`
	PagIbigCap              decimal.Decimal `json:"pagibig_cap"`
	OvertimeMultiplier      decimal.Decimal `json:"overtime_multiplier"`
	StandardMonthlyHours    decimal.Decimal `json:"standard_monthly_hours"`
	StandardDailyHours      decimal.Decimal `json:"standard_daily_hours"`
	TaxBrackets             []TaxBracket    `json:"tax_brackets"`
	CustomDeductionsTaxable bool            `json:"custom_deductions_taxable"`
}

type UpdateSettingsRequest struct {
	SSSRate                 *decimal.Decimal `json:"sss_rate,omitempty"`
	SSSCap                  *decimal.Decimal `json:"sss_cap,omitempty"`
	PhilHealthRate          *decimal.Decimal `json:"philhealth_rate,omitempty"`
	PhilHealthCap           *decimal.Decimal `json:"philhealth_cap,omitempty"`
	PagIbigRate             *decimal.Decimal `json:"pagibig_rate,omitempty"`
	PagIbigCap              *decimal.Decimal `json:"pagibig_cap,omitempty"`
	OvertimeMultiplier      *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	StandardMonthlyHours    *decimal.Decimal `json:"standard_monthly_hours,omitempty"`
	StandardDailyHours      *decimal.Decimal `json:"standard_daily_hours,omitempty"`
	TaxBrackets             []TaxBracket     `json:"tax_brackets,omitempty"`
	CustomDeductionsTaxable *bool            `json:"custom_deductions_taxable,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]*decimal.Decimal{
		"sss_rate":        r.SSSRate,
		"sss_cap":         r.SSSCap,
		"philhealth_rate": r.PhilHealthRate,
		"philhealth_cap":  r.PhilHealthCap,
		"pagibig_rate":    r.PagIbigRate,
		"pagibig_cap":     r.PagIbigCap,
	}
	for field, v := range nonNegative {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.OvertimeMultiplier != nil && r.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "must be at least 1"})
	}
	if r.StandardMonthlyHours != nil && !r.StandardMonthlyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "standard_monthly_hours", Message: "must be positive"})
	}
	if r.StandardDailyHours != nil && !r.StandardDailyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "standard_daily_hours", Message: "must be positive"})
	}
	for i, b := range r.TaxBrackets {
		if b.Rate.IsNegative() || b.Over.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "tax_brackets", Message: "brackets must be non-negative"})
			break
		}
		if i > 0 && !b.Over.GreaterThan(r.TaxBrackets[i-1].Over) {
			errs = append(errs, validator.ValidationError{Field: "tax_brackets", Message: "bracket thresholds must be strictly increasing"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
