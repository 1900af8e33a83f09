package payslip

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/employee"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/payroll"
	"github.com/ledgerline/backoffice-backend-go/internal/domain/settings"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/email"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/pdf"
)

type PayslipServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	batchRepo    payroll.BatchRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
	renderer     pdf.PayslipRenderer
	emailService email.EmailService
}

func NewPayslipService(
	payrollRepo payroll.PayrollRepository,
	batchRepo payroll.BatchRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
	renderer pdf.PayslipRenderer,
	emailService email.EmailService,
) payroll.PayslipService {
	return &PayslipServiceImpl{
		payrollRepo:  payrollRepo,
		batchRepo:    batchRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		renderer:     renderer,
		emailService: emailService,
	}
}

func (s *PayslipServiceImpl) Render(ctx context.Context, payrollID string) ([]byte, string, error) {
	record, emp, companyName, err := s.load(ctx, payrollID)
	if err != nil {
		return nil, "", err
	}

	document, err := s.renderer.RenderPayslip(buildPayslipData(record, emp, companyName))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("payslip-%s-%s-%s.pdf",
		emp.EmployeeCode,
		record.PeriodStart.Format(time.DateOnly),
		uuid.NewString()[:8],
	)
	return document, filename, nil
}

func (s *PayslipServiceImpl) Send(ctx context.Context, payrollID string) error {
	record, emp, companyName, err := s.load(ctx, payrollID)
	if err != nil {
		return err
	}

	batch, err := s.batchRepo.GetByID(ctx, record.BatchID)
	if err != nil {
		return err
	}

	document, filename, err := s.Render(ctx, payrollID)
	if err != nil {
		return err
	}

	sender := email.Sender{Name: "Payroll"}
	if acct, err := s.settingsRepo.Get(ctx); err == nil {
		sender = email.Sender{Name: acct.SenderName, Address: acct.SenderEmail}
	}

	return s.emailService.SendPayslip(emp.Email, sender, email.PayslipEmailData{
		EmployeeName: emp.FullName,
		CompanyName:  companyName,
		BatchName:    batch.Name,
		PeriodStart:  record.PeriodStart.Format(time.DateOnly),
		PeriodEnd:    record.PeriodEnd.Format(time.DateOnly),
		NetPay:       record.NetPay.StringFixed(2),
		Currency:     emp.Currency,
	}, document, filename)
}

func (s *PayslipServiceImpl) load(ctx context.Context, payrollID string) (payroll.Payroll, employee.Employee, string, error) {
	record, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return payroll.Payroll{}, employee.Employee{}, "", err
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return payroll.Payroll{}, employee.Employee{}, "", err
	}

	companyName := "Our company"
	if acct, err := s.settingsRepo.Get(ctx); err == nil && acct.CompanyName != "" {
		companyName = acct.CompanyName
	}

	return record, emp, companyName, nil
}

func buildPayslipData(record payroll.Payroll, emp employee.Employee, companyName string) pdf.PayslipData {
	earnings := []pdf.PayslipLine{
		{Label: "Base salary", Amount: record.BaseSalary.StringFixed(2)},
		{Label: "Regular pay", Amount: record.RegularPay.StringFixed(2)},
		{Label: "Overtime pay", Amount: record.OvertimePay.StringFixed(2)},
		{Label: "Other earnings", Amount: record.TotalEarnings.StringFixed(2)},
	}
	deductions := []pdf.PayslipLine{
		{Label: "Government contributions", Amount: record.GovernmentTotal.StringFixed(2)},
		{Label: "Other deductions", Amount: record.CustomTotal.StringFixed(2)},
		{Label: "Withholding tax", Amount: record.WithholdingTax.StringFixed(2)},
	}

	return pdf.PayslipData{
		CompanyName:  companyName,
		EmployeeName: emp.FullName,
		EmployeeCode: emp.EmployeeCode,
		Department:   emp.Department,
		Position:     emp.Position,
		PeriodStart:  record.PeriodStart.Format(time.DateOnly),
		PeriodEnd:    record.PeriodEnd.Format(time.DateOnly),
		Currency:     emp.Currency,
		WorkDays:     record.WorkDays,
		Earnings:     earnings,
		Deductions:   deductions,
		GrossPay:     record.GrossPay.StringFixed(2),
		NetPay:       record.NetPay.StringFixed(2),
	}
}
