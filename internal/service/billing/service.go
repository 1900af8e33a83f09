package billing

import (
	"context"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/customer"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/invoice"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/settings"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/email"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== CUSTOMERS ==========

type CustomerServiceImpl struct {
	customerRepo customer.CustomerRepository
}

func NewCustomerService(customerRepo customer.CustomerRepository) customer.CustomerService {
	return &CustomerServiceImpl{customerRepo: customerRepo}
}

func (s *CustomerServiceImpl) Create(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	created, err := s.customerRepo.Create(ctx, customer.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: true,
	})
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(created), nil
}

func (s *CustomerServiceImpl) GetByID(ctx context.Context, id string) (customer.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(c), nil
}

func (s *CustomerServiceImpl) List(ctx context.Context, activeOnly bool) ([]customer.CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]customer.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toCustomerResponse(c))
	}
	return responses, nil
}

func (s *CustomerServiceImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	if err := s.customerRepo.Update(ctx, req); err != nil {
		return customer.CustomerResponse{}, err
	}

	updated, err := s.customerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(updated), nil
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

func toCustomerResponse(c customer.Customer) customer.CustomerResponse {
	return customer.CustomerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		IsActive: c.IsActive,
	}
}

// ========== INVOICES ==========

type InvoiceServiceImpl struct {
	invoiceRepo  invoice.InvoiceRepository
	customerRepo customer.CustomerRepository
	settingsRepo settings.SettingsRepository
	emailService email.EmailService
}

func NewInvoiceService(
	invoiceRepo invoice.InvoiceRepository,
	customerRepo customer.CustomerRepository,
	settingsRepo settings.SettingsRepository,
	emailService email.EmailService,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
	}
}

func (s *InvoiceServiceImpl) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	issueDate, _ := validator.IsValidDate(req.IssueDate)
	dueDate, _ := validator.IsValidDate(req.DueDate)

	inv := invoice.Invoice{
		CustomerID: req.CustomerID,
		Number:     req.Number,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Items:      req.Items,
		TaxRate:    decimal.Zero,
		Status:     invoice.StatusDraft,
		Notes:      req.Notes,
	}
	if req.TaxRate != nil {
		inv.TaxRate = *req.TaxRate
	}
	inv.ComputeTotals()

	created, err := s.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toInvoiceResponse(created), nil
}

func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toInvoiceResponse(inv), nil
}

func (s *InvoiceServiceImpl) List(ctx context.Context, filter invoice.InvoiceFilter) (invoice.ListInvoiceResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	invoices, totalCount, err := s.invoiceRepo.List(ctx, filter)
	if err != nil {
		return invoice.ListInvoiceResponse{}, err
	}

	data := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		data = append(data, toInvoiceResponse(inv))
	}

	return invoice.ListInvoiceResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *InvoiceServiceImpl) Update(ctx context.Context, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if req.Status != nil {
		target := invoice.Status(*req.Status)
		if inv.Status == invoice.StatusPaid && target != invoice.StatusPaid {
			return invoice.InvoiceResponse{}, invoice.ErrInvalidStatusChange
		}
		inv.Status = target
	}
	if req.DueDate != nil {
		d, _ := validator.IsValidDate(*req.DueDate)
		inv.DueDate = d
	}
	if len(req.Items) > 0 {
		inv.Items = req.Items
	}
	if req.Notes != nil {
		inv.Notes = req.Notes
	}
	inv.ComputeTotals()

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	updated, err := s.invoiceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return toInvoiceResponse(updated), nil
}

// Send emails the invoice to its customer and moves DRAFT invoices to SENT.
func (s *InvoiceServiceImpl) Send(ctx context.Context, id string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if inv.Status == invoice.StatusCancelled {
		return invoice.InvoiceResponse{}, invoice.ErrInvalidStatusChange
	}

	cust, err := s.customerRepo.GetByID(ctx, inv.CustomerID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	sender, companyName := s.senderProfile(ctx)
	err = s.emailService.SendInvoice(cust.Email, sender, email.InvoiceEmailData{
		CustomerName: cust.Name,
		CompanyName:  companyName,
		Number:       inv.Number,
		IssueDate:    inv.IssueDate.Format(time.DateOnly),
		DueDate:      inv.DueDate.Format(time.DateOnly),
		Total:        inv.Total.StringFixed(2),
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if inv.Status == invoice.StatusDraft {
		if err := s.invoiceRepo.UpdateStatus(ctx, inv.ID, invoice.StatusSent); err != nil {
			return invoice.InvoiceResponse{}, err
		}
		inv.Status = invoice.StatusSent
	}

	return toInvoiceResponse(inv), nil
}

func (s *InvoiceServiceImpl) Delete(ctx context.Context, id string) error {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status == invoice.StatusPaid {
		return invoice.ErrInvoicePaid
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// senderProfile reads the configured sender from account settings, falling
// back to neutral defaults when none are saved.
func (s *InvoiceServiceImpl) senderProfile(ctx context.Context) (email.Sender, string) {
	acct, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return email.Sender{Name: "Billing"}, "Our company"
	}
	return email.Sender{Name: acct.SenderName, Address: acct.SenderEmail}, acct.CompanyName
}

func toInvoiceResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	resp := invoice.InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Number:     inv.Number,
		IssueDate:  inv.IssueDate.Format(time.DateOnly),
		DueDate:    inv.DueDate.Format(time.DateOnly),
		Items:      inv.Items,
		Subtotal:   inv.Subtotal,
		TaxRate:    inv.TaxRate,
		TaxAmount:  inv.TaxAmount,
		Total:      inv.Total,
		Status:     string(inv.Status),
		Notes:      inv.Notes,
	}
	if inv.CustomerName != nil {
		resp.CustomerName = *inv.CustomerName
	}
	return resp
}
