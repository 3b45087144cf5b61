package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Flota-api/internal/application/billing"
	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	created  *entity.Invoice
	payment  *entity.Payment
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	inv.ID = primitive.NewObjectID()
	f.created = inv
	f.invoices = append(f.invoices, inv)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID.Hex() == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) ListByContract(_ context.Context, contractID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.ContractID.Hex() == contractID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) UpdateFields(_ context.Context, id string, set map[string]any) (*entity.Invoice, error) {
	inv, _ := f.GetByID(context.Background(), id)
	if inv == nil {
		return nil, nil
	}
	if v, ok := set["status"].(string); ok {
		inv.Status = v
	}
	if v, ok := set["notes"].(string); ok {
		inv.Notes = v
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) AddPayment(_ context.Context, id string, p entity.Payment) (*entity.Invoice, error) {
	inv, _ := f.GetByID(context.Background(), id)
	if inv == nil {
		return nil, nil
	}
	f.payment = &p
	inv.Payments = append(inv.Payments, p)
	inv.Status = entity.InvoiceStatusPaid
	return inv, nil
}

func (f *fakeInvoiceRepo) MarkSent(_ context.Context, id string, at time.Time) (*entity.Invoice, error) {
	inv, _ := f.GetByID(context.Background(), id)
	if inv == nil {
		return nil, nil
	}
	inv.Status = entity.InvoiceStatusSent
	inv.SentAt = &at
	return inv, nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeInvoiceRepo) Stats(_ context.Context) (*repository.InvoiceStats, error) {
	return &repository.InvoiceStats{}, nil
}

type fakeContractRepo struct {
	existing map[string]bool
	err      error
}

func (f *fakeContractRepo) Exists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.existing[id], nil
}

func validCreateRequest(contractID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ContractID:    contractID,
		InvoiceNumber: "FAC-2026-001",
		IssueDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Items: []entity.InvoiceItem{
			{Description: "Transporte ruta norte", Quantity: 10, UnitPrice: 150.50},
			{Description: "Recargo nocturno", Quantity: 2, UnitPrice: 75.25},
		},
		TaxRate: 19,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_CalculaTotalesConTasaDeImpuesto(t *testing.T) {
	contractID := primitive.NewObjectID().Hex()
	repo := &fakeInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo, &fakeContractRepo{existing: map[string]bool{contractID: true}})

	inv, err := uc.Create(context.Background(), validCreateRequest(contractID))
	require.NoError(t, err)
	require.NotNil(t, inv)

	// subtotal = 10×150.50 + 2×75.25 = 1655.50; tax 19% = 314.55 (redondeado a 2)
	assert.Equal(t, 1655.50, inv.Subtotal)
	assert.Equal(t, 314.55, inv.Tax, "el impuesto debe redondearse a 2 decimales")
	assert.Equal(t, 1970.05, inv.Total)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status, "toda factura nace en draft")
	assert.NotNil(t, inv.Payments, "payments debe inicializarse como arreglo vacío")
	assert.Empty(t, inv.Payments)
}

func TestInvoiceCreate_ContratoInexistente_NoPersisteNada(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo, &fakeContractRepo{existing: map[string]bool{}})

	_, err := uc.Create(context.Background(), validCreateRequest(primitive.NewObjectID().Hex()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, repo.created, "con contrato inexistente la factura no debe llegar al repositorio")
}

func TestInvoiceCreate_ContractIdMalFormado(t *testing.T) {
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{}, &fakeContractRepo{})

	in := validCreateRequest("no-es-un-objectid")
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestInvoiceCreate_SinItems_Rechazada(t *testing.T) {
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{}, &fakeContractRepo{})

	in := validCreateRequest(primitive.NewObjectID().Hex())
	in.Items = nil
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceCreate_CantidadNoPositiva_Rechazada(t *testing.T) {
	contractID := primitive.NewObjectID().Hex()
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{}, &fakeContractRepo{existing: map[string]bool{contractID: true}})

	in := validCreateRequest(contractID)
	in.Items = []entity.InvoiceItem{{Description: "x", Quantity: 0, UnitPrice: 10}}
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddPayment / Send
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPayment_GeneraUUIDYMarcaPagada(t *testing.T) {
	inv := &entity.Invoice{ID: primitive.NewObjectID(), Status: entity.InvoiceStatusSent}
	repo := &fakeInvoiceRepo{invoices: []*entity.Invoice{inv}}
	uc := billing.NewInvoiceUseCase(repo, &fakeContractRepo{})

	updated, err := uc.AddPayment(context.Background(), inv.ID.Hex(), dto.AddPaymentRequest{
		Amount:        500,
		PaymentMethod: "transferencia",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.NotNil(t, repo.payment)
	_, err = uuid.Parse(repo.payment.ID)
	assert.NoError(t, err, "el id del abono debe ser un uuid válido")
	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)
	assert.False(t, repo.payment.Date.IsZero(), "sin fecha explícita se usa la hora actual")
}

func TestAddPayment_MontoNoPositivo_Rechazado(t *testing.T) {
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{}, &fakeContractRepo{})

	_, err := uc.AddPayment(context.Background(), primitive.NewObjectID().Hex(), dto.AddPaymentRequest{
		Amount:        0,
		PaymentMethod: "efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSend_MarcaEnviadaYFijaSentAt(t *testing.T) {
	inv := &entity.Invoice{ID: primitive.NewObjectID(), Status: entity.InvoiceStatusDraft}
	repo := &fakeInvoiceRepo{invoices: []*entity.Invoice{inv}}
	uc := billing.NewInvoiceUseCase(repo, &fakeContractRepo{})

	updated, err := uc.Send(context.Background(), inv.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusSent, updated.Status)
	require.NotNil(t, updated.SentAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_EstadoInvalido_Rechazado(t *testing.T) {
	inv := &entity.Invoice{ID: primitive.NewObjectID()}
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{invoices: []*entity.Invoice{inv}}, &fakeContractRepo{})

	bad := "anulada"
	_, err := uc.Update(context.Background(), inv.ID.Hex(), dto.UpdateInvoiceRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceUpdate_IdInexistente_RetornaNilNil(t *testing.T) {
	uc := billing.NewInvoiceUseCase(&fakeInvoiceRepo{}, &fakeContractRepo{})

	st := entity.InvoiceStatusSent
	inv, err := uc.Update(context.Background(), primitive.NewObjectID().Hex(), dto.UpdateInvoiceRequest{Status: &st})
	require.NoError(t, err)
	assert.Nil(t, inv)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PDFUseCase
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return f.company, nil
}
func (f *fakeCompanyRepo) GetFirst(_ context.Context) (*entity.Company, error) {
	return f.company, nil
}
func (f *fakeCompanyRepo) Update(_ context.Context, _ string, c *entity.Company) (*entity.Company, error) {
	return c, nil
}
func (f *fakeCompanyRepo) SetProfileFields(_ context.Context, _ string, _ map[string]any) (*entity.Company, error) {
	return f.company, nil
}

type fakePDFGenerator struct {
	gotInvoice *entity.Invoice
	gotCompany *entity.Company
}

func (f *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, company *entity.Company) ([]byte, error) {
	f.gotInvoice = inv
	f.gotCompany = company
	return []byte("%PDF-1.7"), nil
}

func TestDownloadInvoicePDF_GeneraArchivoConNombreDeFactura(t *testing.T) {
	inv := &entity.Invoice{ID: primitive.NewObjectID(), InvoiceNumber: "FAC-2026-042"}
	company := &entity.Company{Name: "Transportes Andinos", NIT: "900123456-7"}
	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{invoices: []*entity.Invoice{inv}}, &fakeCompanyRepo{company: company}, gen)

	pdf, filename, err := uc.DownloadInvoicePDF(context.Background(), inv.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	assert.Equal(t, "factura_FAC-2026-042.pdf", filename)
	assert.Equal(t, inv, gen.gotInvoice)
	assert.Equal(t, company, gen.gotCompany)
}

func TestDownloadInvoicePDF_FacturaInexistente_RetornaNotFound(t *testing.T) {
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{}, &fakeCompanyRepo{}, &fakePDFGenerator{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadInvoicePDF_SinEmpresaRegistrada_GeneraIgual(t *testing.T) {
	inv := &entity.Invoice{ID: primitive.NewObjectID(), InvoiceNumber: "FAC-001"}
	gen := &fakePDFGenerator{}
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{invoices: []*entity.Invoice{inv}}, &fakeCompanyRepo{}, gen)

	pdf, _, err := uc.DownloadInvoicePDF(context.Background(), inv.ID.Hex())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Nil(t, gen.gotCompany, "sin empresa el generador recibe nil y omite el encabezado")
}
