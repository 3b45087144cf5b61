package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePayrollRepo struct {
	entries []*entity.PayrollEntry
	created *entity.PayrollEntry
	err     error
}

func (f *fakePayrollRepo) Create(_ context.Context, p *entity.PayrollEntry) error {
	if f.err != nil {
		return f.err
	}
	p.ID = primitive.NewObjectID()
	f.created = p
	f.entries = append(f.entries, p)
	return nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (*entity.PayrollEntry, error) {
	for _, e := range f.entries {
		if e.ID.Hex() == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollRepo) List(_ context.Context) ([]*entity.PayrollEntry, error) {
	return f.entries, f.err
}

func (f *fakePayrollRepo) Update(_ context.Context, _ string, p *entity.PayrollEntry) (*entity.PayrollEntry, error) {
	return p, nil
}

func (f *fakePayrollRepo) Delete(_ context.Context, _ string) error { return f.err }

type fakeDriverRepo struct {
	drivers []*entity.Driver
}

func (f *fakeDriverRepo) Create(_ context.Context, d *entity.Driver) error { return nil }

func (f *fakeDriverRepo) GetByID(_ context.Context, id string) (*entity.Driver, error) {
	for _, d := range f.drivers {
		if d.ID.Hex() == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDriverRepo) List(_ context.Context) ([]*entity.Driver, error) {
	return f.drivers, nil
}

func (f *fakeDriverRepo) ListByStatus(_ context.Context, status string) ([]*entity.Driver, error) {
	var out []*entity.Driver
	for _, d := range f.drivers {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDriverRepo) Update(_ context.Context, _ string, d *entity.Driver) (*entity.Driver, error) {
	return d, nil
}

func (f *fakeDriverRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeExporter struct {
	got   []*entity.PayrollEntry
	bytes []byte
}

func (f *fakeExporter) Export(entries []*entity.PayrollEntry) ([]byte, error) {
	f.got = entries
	return f.bytes, nil
}

func testDriver() *entity.Driver {
	return &entity.Driver{
		ID:         primitive.NewObjectID(),
		FirstName:  "Carlos",
		LastName:   "Mendoza",
		EmployeeID: "EMP-001",
		Status:     entity.DriverStatusActive,
	}
}

func fl(v float64) *float64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPayrollCreate_CalculaNetPayYDenormalizaConductor(t *testing.T) {
	driver := testDriver()
	repo := &fakePayrollRepo{}
	uc := usecase.NewPayrollUseCase(repo, &fakeDriverRepo{drivers: []*entity.Driver{driver}}, &fakeExporter{})

	entry, err := uc.Create(context.Background(), dto.PayrollRequest{
		DriverID:    driver.ID.Hex(),
		Month:       "2026-03",
		BasicSalary: fl(2500000),
		Allowances:  fl(300000),
		Deductions:  fl(150000),
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, 2026, entry.Year)
	assert.Equal(t, 3, entry.Month)
	assert.Equal(t, "Carlos Mendoza", entry.DriverName,
		"el nombre del conductor debe denormalizarse en la nómina")
	assert.Equal(t, "EMP-001", entry.EmployeeID)
	assert.Equal(t, float64(2650000), entry.NetPay,
		"netPay = básico + subsidios − deducciones")
	assert.Equal(t, entity.PayrollStatusPending, entry.Status,
		"sin status explícito la nómina nace pendiente")
	assert.Nil(t, entry.PaymentDate)
	require.NotNil(t, repo.created, "la entrada debe llegar al repositorio")
}

func TestPayrollCreate_StatusPaidFijaPaymentDate(t *testing.T) {
	driver := testDriver()
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{drivers: []*entity.Driver{driver}}, &fakeExporter{})

	status := entity.PayrollStatusPaid
	entry, err := uc.Create(context.Background(), dto.PayrollRequest{
		DriverID:    driver.ID.Hex(),
		Month:       "2026-01",
		BasicSalary: fl(1000),
		Status:      &status,
	})
	require.NoError(t, err)
	assert.NotNil(t, entry.PaymentDate, "una nómina creada como paid debe llevar paymentDate")
}

func TestPayrollCreate_ConductorInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{}, &fakeExporter{})

	_, err := uc.Create(context.Background(), dto.PayrollRequest{
		DriverID:    primitive.NewObjectID().Hex(),
		Month:       "2026-01",
		BasicSalary: fl(1000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayrollCreate_MesMalFormado_RetornaInvalidInput(t *testing.T) {
	driver := testDriver()
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{drivers: []*entity.Driver{driver}}, &fakeExporter{})

	for _, month := range []string{"03-2026", "2026/03", "2026-13", "marzo"} {
		_, err := uc.Create(context.Background(), dto.PayrollRequest{
			DriverID:    driver.ID.Hex(),
			Month:       month,
			BasicSalary: fl(1000),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "mes %q debe rechazarse", month)
	}
}

func TestPayrollCreate_CamposObligatoriosFaltantes(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{}, &fakeExporter{})

	_, err := uc.Create(context.Background(), dto.PayrollRequest{Month: "2026-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestPayrollUpdate_TransicionAPaidFijaPaymentDateYRecalculaNeto(t *testing.T) {
	entry := &entity.PayrollEntry{
		ID:          primitive.NewObjectID(),
		DriverName:  "Carlos Mendoza",
		Month:       2,
		Year:        2026,
		BasicSalary: 1000,
		Deductions:  100,
		NetPay:      900,
		Status:      entity.PayrollStatusPending,
	}
	repo := &fakePayrollRepo{entries: []*entity.PayrollEntry{entry}}
	uc := usecase.NewPayrollUseCase(repo, &fakeDriverRepo{}, &fakeExporter{})

	status := entity.PayrollStatusPaid
	updated, err := uc.Update(context.Background(), entry.ID.Hex(), dto.PayrollRequest{
		Status:     &status,
		Deductions: fl(250),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, entity.PayrollStatusPaid, updated.Status)
	assert.NotNil(t, updated.PaymentDate, "pasar a paid debe fijar paymentDate")
	assert.Equal(t, float64(750), updated.NetPay, "netPay debe recalcularse con las nuevas deducciones")
}

func TestPayrollUpdate_IdInexistente_RetornaNilNil(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{}, &fakeExporter{})

	updated, err := uc.Update(context.Background(), primitive.NewObjectID().Hex(), dto.PayrollRequest{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPayrollUpdate_StatusInvalido_RetornaInvalidInput(t *testing.T) {
	entry := &entity.PayrollEntry{ID: primitive.NewObjectID(), Status: entity.PayrollStatusPending}
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{entries: []*entity.PayrollEntry{entry}}, &fakeDriverRepo{}, &fakeExporter{})

	bad := "cancelado"
	_, err := uc.Update(context.Background(), entry.ID.Hex(), dto.PayrollRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestPayrollSummary_AgrupaPorMesYOrdenaDescendente(t *testing.T) {
	repo := &fakePayrollRepo{entries: []*entity.PayrollEntry{
		{Year: 2025, Month: 12, BasicSalary: 1000, Allowances: 100, Deductions: 50, NetPay: 1050},
		{Year: 2026, Month: 1, BasicSalary: 2000, Deductions: 200, NetPay: 1800},
		{Year: 2026, Month: 1, BasicSalary: 3000, Allowances: 500, Deductions: 300, NetPay: 3200},
		{Year: 2026, Month: 2, BasicSalary: 1500, NetPay: 1500},
	}}
	uc := usecase.NewPayrollUseCase(repo, &fakeDriverRepo{}, &fakeExporter{})

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary, 3)

	// Orden: 2026-02, 2026-01, 2025-12
	assert.Equal(t, 2026, summary[0].Year)
	assert.Equal(t, 2, summary[0].Month)
	assert.Equal(t, 2026, summary[1].Year)
	assert.Equal(t, 1, summary[1].Month)
	assert.Equal(t, 2025, summary[2].Year)
	assert.Equal(t, 12, summary[2].Month)

	enero := summary[1]
	assert.Equal(t, 2, enero.Entries)
	assert.Equal(t, float64(5500), enero.TotalAmount, "bruto = Σ(básico + subsidios)")
	assert.Equal(t, float64(500), enero.TotalDeductions)
	assert.Equal(t, float64(5000), enero.TotalNetPay)
}

func TestPayrollSummary_SinNominas_ListaVacia(t *testing.T) {
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{}, &fakeExporter{})

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestPayrollSummary_FalloDeRepositorio_PropagaError(t *testing.T) {
	repo := &fakePayrollRepo{err: errors.New("mongo: timeout")}
	uc := usecase.NewPayrollUseCase(repo, &fakeDriverRepo{}, &fakeExporter{})

	_, err := uc.Summary(context.Background())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Drivers / Export
// ──────────────────────────────────────────────────────────────────────────────

func TestPayrollDrivers_DevuelveOpcionesDeSelector(t *testing.T) {
	driver := testDriver()
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{}, &fakeDriverRepo{drivers: []*entity.Driver{driver}}, &fakeExporter{})

	options, err := uc.Drivers(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, driver.ID.Hex(), options[0].ID)
	assert.Equal(t, "Carlos Mendoza", options[0].FullName)
	assert.Equal(t, "EMP-001", options[0].EmployeeID)
}

func TestPayrollExport_PasaTodasLasEntradasAlExportador(t *testing.T) {
	entries := []*entity.PayrollEntry{
		{DriverName: "Carlos Mendoza", Month: 1, Year: 2026},
		{DriverName: "Ana Ríos", Month: 1, Year: 2026},
	}
	exporter := &fakeExporter{bytes: []byte("xlsx")}
	uc := usecase.NewPayrollUseCase(&fakePayrollRepo{entries: entries}, &fakeDriverRepo{}, exporter)

	out, err := uc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), out)
	assert.Len(t, exporter.got, 2)
}
