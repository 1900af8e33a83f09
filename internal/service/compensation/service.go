package compensation

import (
	"context"
	"time"

	"github.com/ledgerline/backoffice-backend-go/internal/domain/deduction"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/earning"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/validator"
)

// EarningServiceImpl manages recurring earnings attached to employees.
type EarningServiceImpl struct {
	earningRepo  earning.EarningRepository
	employeeRepo employee.EmployeeRepository
}

func NewEarningService(earningRepo earning.EarningRepository, employeeRepo employee.EmployeeRepository) earning.EarningService {
	return &EarningServiceImpl{earningRepo: earningRepo, employeeRepo: employeeRepo}
}

func (s *EarningServiceImpl) Create(ctx context.Context, req earning.CreateEarningRequest) (earning.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return earning.EarningResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return earning.EarningResponse{}, err
	}

	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)
	created, err := s.earningRepo.Create(ctx, earning.Earning{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Amount:        req.Amount,
		Frequency:     earning.Frequency(req.Frequency),
		EffectiveDate: effectiveDate,
		EndDate:       parseDate(req.EndDate),
		IsActive:      true,
	})
	if err != nil {
		return earning.EarningResponse{}, err
	}
	return toEarningResponse(created), nil
}

func (s *EarningServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]earning.EarningResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	earnings, err := s.earningRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]earning.EarningResponse, 0, len(earnings))
	for _, e := range earnings {
		responses = append(responses, toEarningResponse(e))
	}
	return responses, nil
}

func (s *EarningServiceImpl) Update(ctx context.Context, req earning.UpdateEarningRequest) (earning.EarningResponse, error) {
	if err := req.Validate(); err != nil {
		return earning.EarningResponse{}, err
	}

	if err := s.earningRepo.Update(ctx, req); err != nil {
		return earning.EarningResponse{}, err
	}

	updated, err := s.earningRepo.GetByID(ctx, req.ID)
	if err != nil {
		return earning.EarningResponse{}, err
	}
	return toEarningResponse(updated), nil
}

func (s *EarningServiceImpl) Delete(ctx context.Context, id string) error {
	return s.earningRepo.Delete(ctx, id)
}

// DeductionServiceImpl manages custom deductions. Statutory contributions are
// policy-driven and never stored as deduction rows.
type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, employeeRepo employee.EmployeeRepository) deduction.DeductionService {
	return &DeductionServiceImpl{deductionRepo: deductionRepo, employeeRepo: employeeRepo}
}

func (s *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deduction.DeductionResponse{}, err
	}

	kind, value := req.Variant()
	effectiveDate, _ := validator.IsValidDate(req.EffectiveDate)
	created, err := s.deductionRepo.Create(ctx, deduction.Deduction{
		EmployeeID:    req.EmployeeID,
		Name:          req.Name,
		Kind:          kind,
		Value:         value,
		Frequency:     deduction.Frequency(req.Frequency),
		EffectiveDate: effectiveDate,
		EndDate:       parseDate(req.EndDate),
		IsActive:      true,
	})
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return toDeductionResponse(created), nil
}

func (s *DeductionServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]deduction.DeductionResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	deductions, err := s.deductionRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]deduction.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		responses = append(responses, toDeductionResponse(d))
	}
	return responses, nil
}

func (s *DeductionServiceImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if err := s.deductionRepo.Update(ctx, req); err != nil {
		return deduction.DeductionResponse{}, err
	}

	updated, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return toDeductionResponse(updated), nil
}

func (s *DeductionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.deductionRepo.Delete(ctx, id)
}

func parseDate(v *string) *time.Time {
	if v == nil {
		return nil
	}
	if d, ok := validator.IsValidDate(*v); ok {
		return &d
	}
	return nil
}

func toEarningResponse(e earning.Earning) earning.EarningResponse {
	resp := earning.EarningResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Amount:        e.Amount,
		Frequency:     string(e.Frequency),
		EffectiveDate: e.EffectiveDate.Format(time.DateOnly),
		IsActive:      e.IsActive,
	}
	if e.EndDate != nil {
		d := e.EndDate.Format(time.DateOnly)
		resp.EndDate = &d
	}
	return resp
}

func toDeductionResponse(d deduction.Deduction) deduction.DeductionResponse {
	resp := deduction.DeductionResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		Name:          d.Name,
		Kind:          string(d.Kind),
		Value:         d.Value,
		Frequency:     string(d.Frequency),
		EffectiveDate: d.EffectiveDate.Format(time.DateOnly),
		IsActive:      d.IsActive,
	}
	if d.EndDate != nil {
		date := d.EndDate.Format(time.DateOnly)
		resp.EndDate = &date
	}
	return resp
}
