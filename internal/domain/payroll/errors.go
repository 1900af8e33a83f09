package payroll

import "errors"

var (
	ErrBatchNotFound          = errors.New("payroll batch not found")
	ErrPayrollNotFound        = errors.New("payroll record not found")
	ErrBatchPaid              = errors.New("batch is paid and cannot be deleted")
	ErrBatchTerminal          = errors.New("batch is in a terminal state")
	ErrInvalidStatusChange    = errors.New("status change is not a forward transition")
	ErrEmptyEmployeeSelection = errors.New("no employees resolved for this batch")
	ErrSettingsNotFound       = errors.New("payroll settings not found")
	ErrBatchLocked            = errors.New("batch is being processed by another request")
)
