package response

import (
	"errors"
	"net/http"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/attendance"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/customer"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/expense"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/invoice"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/settings"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already recorded for this day")

	// Earning and deduction domain errors
	case errors.Is(err, earning.ErrEarningNotFound):
		NotFound(w, "Earning not found")
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrBatchPaid):
		Conflict(w, "Paid batches cannot be deleted")
	case errors.Is(err, payroll.ErrBatchTerminal):
		Conflict(w, "Batch is in a terminal state")
	case errors.Is(err, payroll.ErrInvalidStatusChange):
		Conflict(w, "Batch status can only move forward")
	case errors.Is(err, payroll.ErrEmptyEmployeeSelection):
		Conflict(w, "No employees resolved for this batch")
	case errors.Is(err, payroll.ErrBatchLocked):
		Conflict(w, "Batch is being processed by another request")
	case errors.Is(err, payroll.ErrSettingsNotFound):
		NotFound(w, "Payroll settings not found")

	// Billing domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")
	case errors.Is(err, customer.ErrEmailExists):
		Conflict(w, "Customer email already exists")
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")
	case errors.Is(err, invoice.ErrInvoicePaid):
		Conflict(w, "Paid invoices cannot be deleted")
	case errors.Is(err, invoice.ErrInvalidStatusChange):
		Conflict(w, "Invoice status change is not allowed")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrExpenseAlreadyReviewed):
		Conflict(w, "Expense has already been reviewed")
	case errors.Is(err, expense.ErrExpenseNotApproved):
		Conflict(w, "Only approved expenses can be claimed")
	case errors.Is(err, expense.ErrExpenseAlreadyClaimed):
		Conflict(w, "Expense already belongs to a reimbursement")
	case errors.Is(err, expense.ErrReimbursementNotFound):
		NotFound(w, "Reimbursement not found")
	case errors.Is(err, expense.ErrReimbursementPaid):
		Conflict(w, "Paid reimbursements cannot be modified")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Account settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
