package invoice

import "context"

type InvoiceService interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (InvoiceResponse, error)
	List(ctx context.Context, filter InvoiceFilter) (ListInvoiceResponse, error)
	Update(ctx context.Context, req UpdateInvoiceRequest) (InvoiceResponse, error)
	// Send emails the invoice to the customer and marks it SENT.
	Send(ctx context.Context, id string) (InvoiceResponse, error)
	Delete(ctx context.Context, id string) error
}
