package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/auth"
	"github.com/jhoicas/Flota-api/internal/application/billing"
	"github.com/jhoicas/Flota-api/internal/application/reports"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// StorePinger contrato mínimo del almacén para el health check.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	VehicleUC   *usecase.VehicleUseCase
	DriverUC    *usecase.DriverUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	NoteUC      *usecase.NoteUseCase
	PayrollUC   *usecase.PayrollUseCase
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *reports.DashboardUseCase
	GenericRepo repository.GenericRepository
	Store       StorePinger
	JWTSecret   string
}

// Router registra las rutas de la API. Todo lo que no es auth ni health exige
// Bearer token y empresa activa.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público)
	api.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.Store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer token + empresa activa)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireActiveCompany(deps.CompanyUC))

	// Perfil propio
	protected.Get("/auth/profile", authHandler.Profile)
	protected.Patch("/auth/profile", authHandler.UpdateProfile)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Get("/search", vehicleHandler.Search)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Drivers
	drivers := protected.Group("/drivers")
	driverHandler := NewDriverHandler(deps.DriverUC)
	drivers.Post("/", driverHandler.Create)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.GetByID)
	drivers.Put("/:id", driverHandler.Update)
	drivers.Delete("/:id", driverHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/summary", expenseHandler.Summary)
	expenses.Get("/vehicle/:vehicleId", expenseHandler.ListByVehicle)
	expenses.Get("/driver/:driverId", expenseHandler.ListByDriver)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Patch("/:id/status", expenseHandler.UpdateStatus)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Notes
	notes := protected.Group("/notes")
	noteHandler := NewNoteHandler(deps.NoteUC)
	notes.Post("/", noteHandler.Create)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)
	notes.Patch("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)

	// Payroll
	payroll := protected.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	payroll.Get("/summary", payrollHandler.Summary)
	payroll.Get("/export", payrollHandler.Export)
	payroll.Get("/drivers", payrollHandler.Drivers)
	payroll.Post("/", payrollHandler.Create)
	payroll.Get("/", payrollHandler.List)
	payroll.Get("/:id", payrollHandler.GetByID)
	payroll.Put("/:id", payrollHandler.Update)
	payroll.Delete("/:id", payrollHandler.Delete)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Get("/contract/:contractId", invoiceHandler.ListByContract)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Post("/:id/payments", invoiceHandler.AddPayment)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Company profile (admin y manager)
	company := protected.Group("/company", RequireRole(entity.RoleAdmin, entity.RoleManager))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Update)
	company.Patch("/logo", companyHandler.UpdateLogo)
	company.Patch("/about", companyHandler.UpdateAbout)
	company.Patch("/business-hours", companyHandler.UpdateBusinessHours)
	company.Patch("/contact", companyHandler.UpdateContact)
	company.Patch("/social-media", companyHandler.UpdateSocialMedia)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/counts", dashboardHandler.Counts)
	dashboard.Get("/fuel/month", dashboardHandler.FuelMonth)
	dashboard.Get("/fuel/month/by-vehicle", dashboardHandler.FuelMonthByVehicle)
	dashboard.Get("/maintenance/month", dashboardHandler.MaintenanceMonth)
	dashboard.Get("/maintenance/month/by-vehicle", dashboardHandler.MaintenanceMonthByVehicle)

	// Colecciones genéricas (contratos, combustible, mantenimientos, viajes, documentos)
	RegisterGenericRoutes(protected, deps.GenericRepo, GenericResources)
}
