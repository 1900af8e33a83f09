package expense

import (
	"context"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/customer"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/expense"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/jwt"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
	"github.com/ledgerline/backoffice-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type ExpenseServiceImpl struct {
	txManager         postgresql.TxManager
	expenseRepo       expense.ExpenseRepository
	reimbursementRepo expense.ReimbursementRepository
	customerRepo      customer.CustomerRepository
	jwtService        jwt.Service
}

func NewExpenseService(
	txManager postgresql.TxManager,
	expenseRepo expense.ExpenseRepository,
	reimbursementRepo expense.ReimbursementRepository,
	customerRepo customer.CustomerRepository,
	jwtService jwt.Service,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		txManager:         txManager,
		expenseRepo:       expenseRepo,
		reimbursementRepo: reimbursementRepo,
		customerRepo:      customerRepo,
		jwtService:        jwtService,
	}
}

// ========== EXPENSES ==========

func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	identity, err := s.jwtService.IdentityFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	expenseDate, _ := validator.IsValidDate(req.ExpenseDate)
	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Status:      expense.StatusPending,
		SubmittedBy: identity.UserID,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return toExpenseResponse(created), nil
}

func (s *ExpenseServiceImpl) GetByID(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return toExpenseResponse(e), nil
}

func (s *ExpenseServiceImpl) List(ctx context.Context, filter expense.ExpenseFilter) (expense.ListExpenseResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	expenses, totalCount, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		return expense.ListExpenseResponse{}, err
	}

	data := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, toExpenseResponse(e))
	}

	return expense.ListExpenseResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *ExpenseServiceImpl) Approve(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return s.review(ctx, id, expense.StatusApproved)
}

func (s *ExpenseServiceImpl) Reject(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return s.review(ctx, id, expense.StatusRejected)
}

// review transitions a PENDING expense and stamps the reviewer. Reviews are
// one-shot: a reviewed expense cannot be re-reviewed.
func (s *ExpenseServiceImpl) review(ctx context.Context, id string, status expense.Status) (expense.ExpenseResponse, error) {
	identity, err := s.jwtService.IdentityFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if e.Status != expense.StatusPending {
		return expense.ExpenseResponse{}, expense.ErrExpenseAlreadyReviewed
	}

	if err := s.expenseRepo.UpdateReview(ctx, id, status, identity.UserID); err != nil {
		return expense.ExpenseResponse{}, err
	}

	updated, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return toExpenseResponse(updated), nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.ReimbursementID != nil {
		return expense.ErrExpenseAlreadyClaimed
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ========== REIMBURSEMENTS ==========

func (s *ExpenseServiceImpl) CreateReimbursement(ctx context.Context, req expense.CreateReimbursementRequest) (expense.ReimbursementResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ReimbursementResponse{}, err
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return expense.ReimbursementResponse{}, err
	}

	var created expense.Reimbursement
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		expenses, err := s.expenseRepo.GetByIDs(ctx, req.ExpenseIDs)
		if err != nil {
			return err
		}
		if len(expenses) != len(req.ExpenseIDs) {
			return expense.ErrExpenseNotFound
		}

		total := decimal.Zero
		for _, e := range expenses {
			if e.Status != expense.StatusApproved {
				return expense.ErrExpenseNotApproved
			}
			if e.ReimbursementID != nil {
				return expense.ErrExpenseAlreadyClaimed
			}
			total = total.Add(e.Amount)
		}

		created, err = s.reimbursementRepo.Create(ctx, expense.Reimbursement{
			CustomerID:  req.CustomerID,
			Description: req.Description,
			TotalAmount: total,
			Status:      expense.ReimbursementStatusDraft,
			ExpenseIDs:  req.ExpenseIDs,
		})
		if err != nil {
			return err
		}

		return s.expenseRepo.SetReimbursement(ctx, req.ExpenseIDs, created.ID)
	})
	if err != nil {
		return expense.ReimbursementResponse{}, err
	}

	return toReimbursementResponse(created), nil
}

func (s *ExpenseServiceImpl) GetReimbursement(ctx context.Context, id string) (expense.ReimbursementResponse, error) {
	r, err := s.reimbursementRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ReimbursementResponse{}, err
	}
	return toReimbursementResponse(r), nil
}

func (s *ExpenseServiceImpl) ListReimbursements(ctx context.Context) ([]expense.ReimbursementResponse, error) {
	reimbursements, err := s.reimbursementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ReimbursementResponse, 0, len(reimbursements))
	for _, r := range reimbursements {
		responses = append(responses, toReimbursementResponse(r))
	}
	return responses, nil
}

func (s *ExpenseServiceImpl) UpdateReimbursementStatus(ctx context.Context, id, status string) (expense.ReimbursementResponse, error) {
	target := expense.ReimbursementStatus(status)
	if !target.Valid() {
		return expense.ReimbursementResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be DRAFT, SUBMITTED or PAID"},
		}
	}

	r, err := s.reimbursementRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ReimbursementResponse{}, err
	}
	if r.Status == expense.ReimbursementStatusPaid {
		return expense.ReimbursementResponse{}, expense.ErrReimbursementPaid
	}

	if err := s.reimbursementRepo.UpdateStatus(ctx, id, target); err != nil {
		return expense.ReimbursementResponse{}, err
	}

	updated, err := s.reimbursementRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ReimbursementResponse{}, err
	}
	return toReimbursementResponse(updated), nil
}

func (s *ExpenseServiceImpl) DeleteReimbursement(ctx context.Context, id string) error {
	r, err := s.reimbursementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.Status == expense.ReimbursementStatusPaid {
		return expense.ErrReimbursementPaid
	}

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Release the member expenses so they can be claimed again.
		if err := s.expenseRepo.SetReimbursement(ctx, r.ExpenseIDs, ""); err != nil {
			return err
		}
		return s.reimbursementRepo.Delete(ctx, id)
	})
}

func toExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:              e.ID,
		Category:        e.Category,
		Description:     e.Description,
		Amount:          e.Amount,
		ExpenseDate:     e.ExpenseDate.Format(time.DateOnly),
		Status:          string(e.Status),
		SubmittedBy:     e.SubmittedBy,
		ReviewedBy:      e.ReviewedBy,
		ReimbursementID: e.ReimbursementID,
	}
}

func toReimbursementResponse(r expense.Reimbursement) expense.ReimbursementResponse {
	resp := expense.ReimbursementResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Description: r.Description,
		TotalAmount: r.TotalAmount,
		Status:      string(r.Status),
		ExpenseIDs:  r.ExpenseIDs,
	}
	if r.CustomerName != nil {
		resp.CustomerName = *r.CustomerName
	}
	return resp
}
