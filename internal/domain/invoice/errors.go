package invoice

import "errors"

var (
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
	ErrInvoicePaid         = errors.New("invoice is paid and cannot be deleted")
	ErrInvalidStatusChange = errors.New("invoice status change is not allowed")
)
