package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ledgerline/backoffice-backend-go/internal/config"
	"github.com/ledgerline/backoffice-backend-go/internal/handler/http/middleware"
	"github.com/ledgerline/backoffice-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Compensation CompensationHandler
	Payroll      PayrollHandler
	Billing      BillingHandler
	Expense      ExpenseHandler
	Settings     SettingsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ledgerline-backoffice"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.GetByID)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)

				r.Route("/{employeeId}/earnings", func(r chi.Router) {
					r.Get("/", h.Compensation.ListEarnings)
					r.Post("/", h.Compensation.CreateEarning)
				})
				r.Route("/{employeeId}/deductions", func(r chi.Router) {
					r.Get("/", h.Compensation.ListDeductions)
					r.Post("/", h.Compensation.CreateDeduction)
				})
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Put("/{id}", h.Compensation.UpdateEarning)
				r.Delete("/{id}", h.Compensation.DeleteEarning)
			})
			r.Route("/deductions", func(r chi.Router) {
				r.Put("/{id}", h.Compensation.UpdateDeduction)
				r.Delete("/{id}", h.Compensation.DeleteDeduction)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Record)
				r.Get("/{id}", h.Attendance.GetByID)
				r.Put("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.ListPayrolls)
				r.Get("/settings", h.Payroll.GetSettings)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/settings", h.Payroll.UpdateSettings)

					r.Route("/batch", func(r chi.Router) {
						r.Get("/", h.Payroll.ListBatches)
						r.Post("/", h.Payroll.CreateBatch)
						r.Get("/{id}", h.Payroll.GetBatch)
						r.Put("/{id}", h.Payroll.UpdateBatch)
						r.Delete("/{id}", h.Payroll.DeleteBatch)
						r.Post("/{id}/process", h.Payroll.ProcessBatch)
					})
				})

				r.Get("/{id}", h.Payroll.GetPayroll)
				r.Get("/{id}/payslip", h.Payroll.DownloadPayslip)
				r.Post("/{id}/send", h.Payroll.SendPayslip)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Billing.ListCustomers)
				r.Post("/", h.Billing.CreateCustomer)
				r.Get("/{id}", h.Billing.GetCustomer)
				r.Put("/{id}", h.Billing.UpdateCustomer)
				r.Delete("/{id}", h.Billing.DeleteCustomer)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", h.Billing.ListInvoices)
				r.Post("/", h.Billing.CreateInvoice)
				r.Get("/{id}", h.Billing.GetInvoice)
				r.Put("/{id}", h.Billing.UpdateInvoice)
				r.Delete("/{id}", h.Billing.DeleteInvoice)
				r.Post("/{id}/send", h.Billing.SendInvoice)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", h.Expense.List)
				r.Post("/", h.Expense.Create)
				r.Get("/{id}", h.Expense.GetByID)
				r.Delete("/{id}", h.Expense.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Expense.Approve)
					r.Post("/{id}/reject", h.Expense.Reject)
				})
			})

			r.Route("/reimbursements", func(r chi.Router) {
				r.Get("/", h.Expense.ListReimbursements)
				r.Get("/{id}", h.Expense.GetReimbursement)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Expense.CreateReimbursement)
					r.Put("/{id}/status", h.Expense.UpdateReimbursementStatus)
					r.Delete("/{id}", h.Expense.DeleteReimbursement)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Settings.Update)
				})
			})
		})
	})
	return r
}
