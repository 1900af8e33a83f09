package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ledgerline/backoffice-backend-go/internal/config"
	appHTTP "github.com/ledgerline/backoffice-backend-go/internal/handler/http"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/database"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/email"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/jwt"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/pdf"
	"github.com/ledgerline/backoffice-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ledgerline/backoffice-backend-go/internal/service/attendance"
	billingService "github.com/ledgerline/backoffice-backend-go/internal/service/billing"
	compensationService "github.com/ledgerline/backoffice-backend-go/internal/service/compensation"
	employeeService "github.com/ledgerline/backoffice-backend-go/internal/service/employee"
	expenseService "github.com/ledgerline/backoffice-backend-go/internal/service/expense"
	payrollService "github.com/ledgerline/backoffice-backend-go/internal/service/payroll"
	payslipService "github.com/ledgerline/backoffice-backend-go/internal/service/payslip"
	settingsService "github.com/ledgerline/backoffice-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	earningRepo := postgresql.NewEarningRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	payrollSettingsRepo := postgresql.NewPayrollSettingsRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Algorithm, cfg.JWT.Secret)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	payslipRenderer := pdf.NewPayslipRenderer()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, payrollSettingsRepo)
	earningSvc := compensationService.NewEarningService(earningRepo, employeeRepo)
	deductionSvc := compensationService.NewDeductionService(deductionRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		batchRepo,
		payrollRepo,
		payrollSettingsRepo,
		employeeRepo,
		attendanceRepo,
		earningRepo,
		deductionRepo,
	)
	payslipSvc := payslipService.NewPayslipService(
		payrollRepo,
		batchRepo,
		employeeRepo,
		settingsRepo,
		payslipRenderer,
		emailService,
	)
	customerSvc := billingService.NewCustomerService(customerRepo)
	invoiceSvc := billingService.NewInvoiceService(invoiceRepo, customerRepo, settingsRepo, emailService)
	expenseSvc := expenseService.NewExpenseService(txManager, expenseRepo, reimbursementRepo, customerRepo, jwtService)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Compensation: appHTTP.NewCompensationHandler(earningSvc, deductionSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc, payslipSvc),
		Billing:      appHTTP.NewBillingHandler(customerSvc, invoiceSvc),
		Expense:      appHTTP.NewExpenseHandler(expenseSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
