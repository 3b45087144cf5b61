package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Flota-api/internal/application/auth"
	"github.com/jhoicas/Flota-api/internal/application/billing"
	"github.com/jhoicas/Flota-api/internal/application/reports"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/infrastructure/excel"
	"github.com/jhoicas/Flota-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Flota-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Flota-api/internal/infrastructure/reminder"
	httpRouter "github.com/jhoicas/Flota-api/internal/interfaces/http"
	"github.com/jhoicas/Flota-api/pkg/config"
	"github.com/jhoicas/Flota-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	gateway, err := mongodb.NewGateway(cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar MongoDB")
	}
	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	defer cancelConnect()
	if err := gateway.Connect(connectCtx); err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	if err := gateway.EnsureIndexes(connectCtx); err != nil {
		log.Fatal().Err(err).Msg("creación de índices")
	}

	vehicleRepo := mongodb.NewVehicleRepository(gateway)
	driverRepo := mongodb.NewDriverRepository(gateway)
	expenseRepo := mongodb.NewExpenseRepository(gateway)
	noteRepo := mongodb.NewNoteRepository(gateway)
	payrollRepo := mongodb.NewPayrollRepository(gateway)
	invoiceRepo := mongodb.NewInvoiceRepository(gateway)
	contractRepo := mongodb.NewContractRepository(gateway)
	userRepo := mongodb.NewUserRepository(gateway)
	companyRepo := mongodb.NewCompanyRepository(gateway)
	genericRepo := mongodb.NewGenericRepository(gateway)
	reportRepo := mongodb.NewReportRepository(gateway)

	reminderClient := reminder.NewClient(cfg.Reminder.URL)
	payrollExporter := excel.NewPayrollExporter()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	driverUC := usecase.NewDriverUseCase(driverRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, vehicleRepo)
	noteUC := usecase.NewNoteUseCase(noteRepo, reminderClient, log)
	payrollUC := usecase.NewPayrollUseCase(payrollRepo, driverRepo, payrollExporter)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, contractRepo)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, companyRepo, pdfGenerator)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, vehicleRepo, driverRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		VehicleUC:   vehicleUC,
		DriverUC:    driverUC,
		ExpenseUC:   expenseUC,
		NoteUC:      noteUC,
		PayrollUC:   payrollUC,
		UserUC:      userUC,
		CompanyUC:   companyUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		GenericRepo: genericRepo,
		Store:       gateway,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := gateway.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de MongoDB")
	}

	log.Info().Msg("aplicación detenida")
}
