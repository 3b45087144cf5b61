package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// PayrollExporter puerto hacia el generador de la planilla XLSX.
type PayrollExporter interface {
	Export(entries []*entity.PayrollEntry) ([]byte, error)
}

// PayrollUseCase casos de uso de nómina mensual de conductores.
type PayrollUseCase struct {
	repo     repository.PayrollRepository
	drivers  repository.DriverRepository
	exporter PayrollExporter
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(repo repository.PayrollRepository, drivers repository.DriverRepository, exporter PayrollExporter) *PayrollUseCase {
	return &PayrollUseCase{repo: repo, drivers: drivers, exporter: exporter}
}

// Create valida y crea la nómina del mes. El conductor referenciado debe
// existir; la combinación (conductor, mes, año) duplicada devuelve
// domain.ErrDuplicate (índice único). netPay = básico + subsidios − deducciones,
// calculado con aritmética decimal.
func (uc *PayrollUseCase) Create(ctx context.Context, in dto.PayrollRequest) (*entity.PayrollEntry, error) {
	if in.DriverID == "" || in.Month == "" || in.BasicSalary == nil {
		return nil, domain.ErrInvalidInput
	}
	year, month, err := splitMonth(in.Month)
	if err != nil {
		return nil, err
	}
	driver, err := uc.drivers.GetByID(ctx, in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}
	status := entity.PayrollStatusPending
	if in.Status != nil {
		if !entity.ValidPayrollStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		status = *in.Status
	}
	now := time.Now()
	entry := &entity.PayrollEntry{
		DriverID:    driver.ID,
		DriverName:  driver.FullName(),
		EmployeeID:  driver.EmployeeID,
		Month:       month,
		Year:        year,
		BasicSalary: *in.BasicSalary,
		Allowances:  floatOrZero(in.Allowances),
		Deductions:  floatOrZero(in.Deductions),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	entry.NetPay = netPay(entry)
	if status == entity.PayrollStatusPaid {
		entry.PaymentDate = &now
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByID obtiene una nómina. Devuelve (nil, nil) si no existe.
func (uc *PayrollUseCase) GetByID(ctx context.Context, id string) (*entity.PayrollEntry, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todas las nóminas.
func (uc *PayrollUseCase) List(ctx context.Context) ([]*entity.PayrollEntry, error) {
	return uc.repo.List(ctx)
}

// Update lee la nómina, mezcla los campos presentes y la reemplaza. El paso a
// estado "paid" fija paymentDate con la hora actual; netPay se recalcula
// siempre. Devuelve (nil, nil) si el id no existe.
func (uc *PayrollUseCase) Update(ctx context.Context, id string, in dto.PayrollRequest) (*entity.PayrollEntry, error) {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if in.Month != "" {
		year, month, err := splitMonth(in.Month)
		if err != nil {
			return nil, err
		}
		entry.Year = year
		entry.Month = month
	}
	if in.BasicSalary != nil {
		entry.BasicSalary = *in.BasicSalary
	}
	if in.Allowances != nil {
		entry.Allowances = *in.Allowances
	}
	if in.Deductions != nil {
		entry.Deductions = *in.Deductions
	}
	if in.Status != nil {
		if !entity.ValidPayrollStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		if *in.Status == entity.PayrollStatusPaid && entry.Status != entity.PayrollStatusPaid {
			now := time.Now()
			entry.PaymentDate = &now
		}
		entry.Status = *in.Status
	}
	entry.NetPay = netPay(entry)
	entry.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, id, entry)
}

// Delete elimina la nómina. Id inexistente devuelve domain.ErrNotFound.
func (uc *PayrollUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Summary agrupa las nóminas por (año, mes) sumando bruto, deducciones y neto.
// El resultado se ordena por año descendente y luego mes descendente.
func (uc *PayrollUseCase) Summary(ctx context.Context) ([]dto.PayrollMonthSummary, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	type key struct{ year, month int }
	groups := map[key]*dto.PayrollMonthSummary{}
	for _, e := range entries {
		k := key{e.Year, e.Month}
		s, ok := groups[k]
		if !ok {
			s = &dto.PayrollMonthSummary{Year: e.Year, Month: e.Month}
			groups[k] = s
		}
		s.Entries++
		s.TotalAmount = decimal.NewFromFloat(s.TotalAmount).
			Add(decimal.NewFromFloat(e.TotalAmount())).InexactFloat64()
		s.TotalDeductions = decimal.NewFromFloat(s.TotalDeductions).
			Add(decimal.NewFromFloat(e.Deductions)).InexactFloat64()
		s.TotalNetPay = decimal.NewFromFloat(s.TotalNetPay).
			Add(decimal.NewFromFloat(e.NetPay)).InexactFloat64()
	}
	summary := make([]dto.PayrollMonthSummary, 0, len(groups))
	for _, s := range groups {
		summary = append(summary, *s)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Year != summary[j].Year {
			return summary[i].Year > summary[j].Year
		}
		return summary[i].Month > summary[j].Month
	})
	return summary, nil
}

// Drivers lista de conductores para el selector del formulario de nómina.
func (uc *PayrollUseCase) Drivers(ctx context.Context) ([]dto.PayrollDriverOption, error) {
	drivers, err := uc.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]dto.PayrollDriverOption, 0, len(drivers))
	for _, d := range drivers {
		options = append(options, dto.PayrollDriverOption{
			ID:         d.ID.Hex(),
			FullName:   d.FullName(),
			EmployeeID: d.EmployeeID,
		})
	}
	return options, nil
}

// Export genera la planilla XLSX con todas las nóminas.
func (uc *PayrollUseCase) Export(ctx context.Context) ([]byte, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(entries)
}

// splitMonth separa "YYYY-MM" en año y mes.
func splitMonth(s string) (year, month int, err error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("mes inválido %q: %w", s, domain.ErrInvalidInput)
	}
	return t.Year(), int(t.Month()), nil
}

func netPay(e *entity.PayrollEntry) float64 {
	return decimal.NewFromFloat(e.BasicSalary).
		Add(decimal.NewFromFloat(e.Allowances)).
		Sub(decimal.NewFromFloat(e.Deductions)).
		InexactFloat64()
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
