package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// DashboardUseCase reportes del panel: conteos de flota y agregados mensuales
// de gasto por tipo, globales y por vehículo.
type DashboardUseCase struct {
	reports  repository.ReportRepository
	vehicles repository.VehicleRepository
	drivers  repository.DriverRepository
	// now permite fijar el instante de referencia en tests.
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reports repository.ReportRepository, vehicles repository.VehicleRepository, drivers repository.DriverRepository) *DashboardUseCase {
	return &DashboardUseCase{
		reports:  reports,
		vehicles: vehicles,
		drivers:  drivers,
		now:      time.Now,
	}
}

// WithNow fija el reloj del caso de uso. Solo para tests.
func (uc *DashboardUseCase) WithNow(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// MonthBounds devuelve el primer instante del mes de now y el último segundo
// del último día. Ambos límites salen del mismo instante de referencia.
func MonthBounds(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to = from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}

// Counts conteos generales de la flota.
func (uc *DashboardUseCase) Counts(ctx context.Context) (*dto.DashboardCounts, error) {
	vehicles, err := uc.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := uc.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := &dto.DashboardCounts{
		TotalVehicles: int64(len(vehicles)),
		TotalDrivers:  int64(len(drivers)),
	}
	for _, v := range vehicles {
		if v.Status == entity.VehicleStatusActive {
			counts.ActiveVehicles++
		}
	}
	for _, d := range drivers {
		if d.Status == entity.DriverStatusActive {
			counts.ActiveDrivers++
		}
	}
	return counts, nil
}

// MonthlyExpenses agregado del mes en curso para el tipo de gasto dado. Con
// cero registros devuelve la respuesta en ceros con la lista vacía.
func (uc *DashboardUseCase) MonthlyExpenses(ctx context.Context, expenseType string) (*dto.MonthlyExpenseResponse, error) {
	now := uc.now()
	from, to := MonthBounds(now)
	agg, err := uc.reports.AggregateExpenses(ctx, expenseType, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlyExpenseResponse{
		ExpenseType:       expenseType,
		TotalCost:         agg.TotalCost,
		TotalTransactions: agg.TotalTransactions,
		Expenses:          agg.Expenses,
		Month:             int(now.Month()),
		Year:              now.Year(),
	}, nil
}

// MonthlyExpensesByVehicle agregado del mes en curso agrupado por vehículo,
// ordenado por costo total descendente. GrandTotal es la suma de los totales
// de cada grupo, acumulada con aritmética decimal.
func (uc *DashboardUseCase) MonthlyExpensesByVehicle(ctx context.Context, expenseType string) (*dto.MonthlyByVehicleResponse, error) {
	now := uc.now()
	from, to := MonthBounds(now)
	groups, err := uc.reports.AggregateExpensesByVehicle(ctx, expenseType, from, to)
	if err != nil {
		return nil, err
	}
	grandTotal := decimal.Zero
	for _, g := range groups {
		grandTotal = grandTotal.Add(decimal.NewFromFloat(g.TotalCost))
	}
	return &dto.MonthlyByVehicleResponse{
		Vehicles:      groups,
		TotalVehicles: len(groups),
		GrandTotal:    grandTotal.InexactFloat64(),
		Month:         int(now.Month()),
		Year:          now.Year(),
	}, nil
}
