package expense

import "errors"

var (
	ErrExpenseNotFound        = errors.New("expense not found")
	ErrExpenseAlreadyReviewed = errors.New("expense has already been reviewed")
	ErrExpenseNotApproved     = errors.New("expense is not approved")
	ErrExpenseAlreadyClaimed  = errors.New("expense already belongs to a reimbursement")
	ErrReimbursementNotFound  = errors.New("reimbursement not found")
	ErrReimbursementPaid      = errors.New("reimbursement is paid and cannot be modified")
)
