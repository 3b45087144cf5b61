package reports_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Flota-api/internal/application/reports"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	agg      *repository.ExpenseAggregate
	groups   []repository.VehicleExpenseGroup
	gotType  string
	gotFrom  time.Time
	gotTo    time.Time
}

func (f *fakeReportRepo) AggregateExpenses(_ context.Context, expenseType string, from, to time.Time) (*repository.ExpenseAggregate, error) {
	f.gotType, f.gotFrom, f.gotTo = expenseType, from, to
	if f.agg == nil {
		return &repository.ExpenseAggregate{Expenses: []entity.Expense{}}, nil
	}
	return f.agg, nil
}

func (f *fakeReportRepo) AggregateExpensesByVehicle(_ context.Context, expenseType string, from, to time.Time) ([]repository.VehicleExpenseGroup, error) {
	f.gotType, f.gotFrom, f.gotTo = expenseType, from, to
	return f.groups, nil
}

type fakeVehicleRepo struct {
	vehicles []*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(_ context.Context, _ *entity.Vehicle) error { return nil }
func (f *fakeVehicleRepo) GetByID(_ context.Context, _ string) (*entity.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicleRepo) List(_ context.Context) ([]*entity.Vehicle, error) {
	return f.vehicles, nil
}
func (f *fakeVehicleRepo) ListByStatus(_ context.Context, _ string) ([]*entity.Vehicle, error) {
	return nil, nil
}
func (f *fakeVehicleRepo) Update(_ context.Context, _ string, v *entity.Vehicle) (*entity.Vehicle, error) {
	return v, nil
}
func (f *fakeVehicleRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeVehicleRepo) Search(_ context.Context, _ repository.VehicleSearch) ([]*entity.Vehicle, error) {
	return nil, nil
}

type fakeDriverList struct {
	drivers []*entity.Driver
}

func (f *fakeDriverList) Create(_ context.Context, _ *entity.Driver) error { return nil }
func (f *fakeDriverList) GetByID(_ context.Context, _ string) (*entity.Driver, error) {
	return nil, nil
}
func (f *fakeDriverList) List(_ context.Context) ([]*entity.Driver, error) { return f.drivers, nil }
func (f *fakeDriverList) ListByStatus(_ context.Context, _ string) ([]*entity.Driver, error) {
	return nil, nil
}
func (f *fakeDriverList) Update(_ context.Context, _ string, d *entity.Driver) (*entity.Driver, error) {
	return d, nil
}
func (f *fakeDriverList) Delete(_ context.Context, _ string) error { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MonthBounds
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthBounds_PrimerInstanteYUltimoSegundo(t *testing.T) {
	now := time.Date(2026, time.March, 17, 14, 30, 45, 0, time.UTC)
	from, to := reports.MonthBounds(now)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC), to)
}

func TestMonthBounds_FebreroBisiesto(t *testing.T) {
	now := time.Date(2028, time.February, 10, 8, 0, 0, 0, time.UTC)
	from, to := reports.MonthBounds(now)

	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 29, to.Day(), "2028 es bisiesto: febrero termina el 29")
	assert.Equal(t, time.February, to.Month())
}

func TestMonthBounds_Diciembre_CruzaDeAno(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)
	from, to := reports.MonthBounds(now)

	assert.Equal(t, time.December, from.Month())
	assert.Equal(t, 2026, to.Year(), "el límite superior no debe saltar al año siguiente")
	assert.Equal(t, 31, to.Day())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Counts
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardCounts_SeparaActivosDeTotales(t *testing.T) {
	vehicles := []*entity.Vehicle{
		{Status: entity.VehicleStatusActive},
		{Status: entity.VehicleStatusActive},
		{Status: entity.VehicleStatusMaintenance},
	}
	drivers := []*entity.Driver{
		{Status: entity.DriverStatusActive},
		{Status: entity.DriverStatusOnLeave},
	}
	uc := reports.NewDashboardUseCase(&fakeReportRepo{}, &fakeVehicleRepo{vehicles: vehicles}, &fakeDriverList{drivers: drivers})

	counts, err := uc.Counts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), counts.TotalVehicles)
	assert.Equal(t, int64(2), counts.ActiveVehicles)
	assert.Equal(t, int64(2), counts.TotalDrivers)
	assert.Equal(t, int64(1), counts.ActiveDrivers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MonthlyExpenses
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyExpenses_UsaLosLimitesDelMesDelReloj(t *testing.T) {
	repo := &fakeReportRepo{agg: &repository.ExpenseAggregate{
		TotalCost:         1250.5,
		TotalTransactions: 3,
		Expenses:          []entity.Expense{{Amount: 500}, {Amount: 500}, {Amount: 250.5}},
	}}
	clock := time.Date(2026, time.July, 20, 10, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(repo, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpenses(context.Background(), entity.ExpenseTypeFuel)
	require.NoError(t, err)

	assert.Equal(t, entity.ExpenseTypeFuel, repo.gotType)
	assert.Equal(t, 1, repo.gotFrom.Day())
	assert.Equal(t, 31, repo.gotTo.Day())
	assert.Equal(t, 1250.5, resp.TotalCost)
	assert.Equal(t, 3, resp.TotalTransactions)
	assert.Equal(t, 7, resp.Month)
	assert.Equal(t, 2026, resp.Year)
}

func TestMonthlyExpenses_MesSinGastos_RespuestaEnCeros(t *testing.T) {
	clock := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(&fakeReportRepo{}, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpenses(context.Background(), entity.ExpenseTypeMaintenance)
	require.NoError(t, err, "un mes sin gastos no es un error")

	assert.Zero(t, resp.TotalCost)
	assert.Zero(t, resp.TotalTransactions)
	assert.NotNil(t, resp.Expenses, "la lista debe serializarse como [] y no como null")
	assert.Empty(t, resp.Expenses)
	assert.Equal(t, 1, resp.Month)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MonthlyExpensesByVehicle
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyByVehicle_GrandTotalEsLaSumaDeLosGrupos(t *testing.T) {
	groups := []repository.VehicleExpenseGroup{
		{VehicleID: primitive.NewObjectID().Hex(), TotalCost: 800.10, TotalTransactions: 2},
		{VehicleID: primitive.NewObjectID().Hex(), TotalCost: 199.90, TotalTransactions: 1},
		{VehicleID: primitive.NewObjectID().Hex(), TotalCost: 0.30, TotalTransactions: 1},
	}
	clock := time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(&fakeReportRepo{groups: groups}, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpensesByVehicle(context.Background(), entity.ExpenseTypeFuel)
	require.NoError(t, err)

	assert.Equal(t, 1000.30, resp.GrandTotal,
		"la suma decimal no debe arrastrar error de coma flotante")
	assert.Len(t, resp.Vehicles, 3)
	assert.Equal(t, 3, resp.TotalVehicles, "totalVehicles cuenta los grupos del mes")
	assert.Equal(t, 5, resp.Month)
	assert.Equal(t, 2026, resp.Year)
}

func TestMonthlyByVehicle_SinGrupos_GrandTotalCero(t *testing.T) {
	clock := time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(&fakeReportRepo{}, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpensesByVehicle(context.Background(), entity.ExpenseTypeMaintenance)
	require.NoError(t, err)
	assert.Zero(t, resp.GrandTotal)
	assert.Zero(t, resp.TotalVehicles)
	assert.Empty(t, resp.Vehicles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests contrato JSON de los agregados mensuales
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyExpenses_SerializaLaListaBajoLaClaveDelTipo(t *testing.T) {
	clock := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)

	uc := reports.NewDashboardUseCase(&fakeReportRepo{}, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	fuel, err := uc.MonthlyExpenses(context.Background(), entity.ExpenseTypeFuel)
	require.NoError(t, err)
	fuelJSON, err := json.Marshal(fuel)
	require.NoError(t, err)
	assert.Contains(t, string(fuelJSON), `"fuelExpenses":[]`,
		"los gastos de combustible van bajo la clave fuelExpenses")
	assert.NotContains(t, string(fuelJSON), `"expenses"`)

	maint, err := uc.MonthlyExpenses(context.Background(), entity.ExpenseTypeMaintenance)
	require.NoError(t, err)
	maintJSON, err := json.Marshal(maint)
	require.NoError(t, err)
	assert.Contains(t, string(maintJSON), `"maintenanceExpenses":[]`,
		"los gastos de mantenimiento van bajo la clave maintenanceExpenses")
}

func TestMonthlyExpenses_JSONConservaTotalesYPeriodo(t *testing.T) {
	repo := &fakeReportRepo{agg: &repository.ExpenseAggregate{
		TotalCost:         320.75,
		TotalTransactions: 2,
		Expenses:          []entity.Expense{{Amount: 200}, {Amount: 120.75}},
	}}
	clock := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(repo, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpenses(context.Background(), entity.ExpenseTypeFuel)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "totalCost")
	assert.Contains(t, decoded, "totalTransactions")
	assert.Contains(t, decoded, "fuelExpenses")
	assert.Contains(t, decoded, "month")
	assert.Contains(t, decoded, "year")

	var expenses []entity.Expense
	require.NoError(t, json.Unmarshal(decoded["fuelExpenses"], &expenses))
	assert.Len(t, expenses, 2)
}

func TestMonthlyByVehicle_JSONIncluyeTotalVehicles(t *testing.T) {
	groups := []repository.VehicleExpenseGroup{
		{VehicleID: primitive.NewObjectID().Hex(), TotalCost: 100, TotalTransactions: 1},
	}
	clock := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	uc := reports.NewDashboardUseCase(&fakeReportRepo{groups: groups}, &fakeVehicleRepo{}, &fakeDriverList{}).WithNow(fixedClock(clock))

	resp, err := uc.MonthlyExpensesByVehicle(context.Background(), entity.ExpenseTypeFuel)
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalVehicles":1`)
	assert.Contains(t, string(data), `"grandTotal":100`)
}
