package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// InvoiceUseCase facturación contra contratos: CRUD, abonos, envío y
// estadísticas. Los totales se calculan con aritmética decimal a partir de los
// items y la tasa de impuesto.
type InvoiceUseCase struct {
	repo      repository.InvoiceRepository
	contracts repository.ContractRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, contracts repository.ContractRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, contracts: contracts}
}

// Create valida y crea la factura en estado draft. El contrato referenciado
// debe existir (domain.ErrNotFound, nada se persiste); invoiceNumber duplicado
// devuelve domain.ErrDuplicate (índice único).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.InvoiceNumber == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	contractID, err := primitive.ObjectIDFromHex(in.ContractID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	exists, err := uc.contracts.Exists(ctx, in.ContractID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, domain.ErrInvalidInput
		}
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(decimal.NewFromFloat(in.TaxRate)).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(tax)
	now := time.Now()
	inv := &entity.Invoice{
		ContractID:    contractID,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Items:         in.Items,
		Subtotal:      subtotal.InexactFloat64(),
		Tax:           tax.InexactFloat64(),
		Total:         total.InexactFloat64(),
		Notes:         in.Notes,
		Status:        entity.InvoiceStatusDraft,
		Payments:      []entity.Payment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByID obtiene una factura. Devuelve (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todas las facturas, más recientes primero.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*entity.Invoice, error) {
	return uc.repo.List(ctx)
}

// ListByContract lista las facturas del contrato dado.
func (uc *InvoiceUseCase) ListByContract(ctx context.Context, contractID string) ([]*entity.Invoice, error) {
	return uc.repo.ListByContract(ctx, contractID)
}

// Update aplica solo los campos de la whitelist (items, subtotal, tax, total,
// notes, status). Devuelve (nil, nil) si el id no existe.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*entity.Invoice, error) {
	set := map[string]any{"updatedAt": time.Now()}
	if in.Items != nil {
		set["items"] = in.Items
	}
	if in.Subtotal != nil {
		set["subtotal"] = *in.Subtotal
	}
	if in.Tax != nil {
		set["tax"] = *in.Tax
	}
	if in.Total != nil {
		set["total"] = *in.Total
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	if in.Status != nil {
		if !entity.ValidInvoiceStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		set["status"] = *in.Status
	}
	return uc.repo.UpdateFields(ctx, id, set)
}

// AddPayment registra un abono con id uuid propio. Cualquier abono marca la
// factura como pagada: la suma de abonos no se compara contra el total, los
// clientes del API descuentan el saldo por su cuenta.
func (uc *InvoiceUseCase) AddPayment(ctx context.Context, id string, in dto.AddPaymentRequest) (*entity.Invoice, error) {
	if in.Amount <= 0 || in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	payment := entity.Payment{
		ID:            uuid.New().String(),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		TransactionID: in.TransactionID,
		Notes:         in.Notes,
		Date:          date,
	}
	return uc.repo.AddPayment(ctx, id, payment)
}

// Send marca la factura como enviada y fija sentAt.
func (uc *InvoiceUseCase) Send(ctx context.Context, id string) (*entity.Invoice, error) {
	return uc.repo.MarkSent(ctx, id, time.Now())
}

// Delete elimina la factura. Id inexistente devuelve domain.ErrNotFound.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Stats estadísticas globales de facturación agrupadas por estado.
func (uc *InvoiceUseCase) Stats(ctx context.Context) (*repository.InvoiceStats, error) {
	return uc.repo.Stats(ctx)
}
