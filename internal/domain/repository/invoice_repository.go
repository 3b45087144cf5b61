package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// InvoiceStatusGroup conteo y monto total por estado de factura.
type InvoiceStatusGroup struct {
	Status      string  `json:"status" bson:"_id"`
	Count       int     `json:"count" bson:"count"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
}

// InvoiceStats estadísticas globales de facturación.
type InvoiceStats struct {
	ByStatus      []InvoiceStatusGroup `json:"byStatus"`
	TotalInvoices int64                `json:"totalInvoices"`
	TotalAmount   float64              `json:"totalAmount"`
}

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByContract(ctx context.Context, contractID string) ([]*entity.Invoice, error)
	// UpdateFields aplica $set de los campos indicados y devuelve la factura actualizada.
	UpdateFields(ctx context.Context, id string, set map[string]any) (*entity.Invoice, error)
	// AddPayment agrega el pago al arreglo payments y marca la factura como pagada.
	AddPayment(ctx context.Context, id string, p entity.Payment) (*entity.Invoice, error)
	MarkSent(ctx context.Context, id string, at time.Time) (*entity.Invoice, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*InvoiceStats, error)
}

// ContractRepository acceso mínimo a contratos para validar referencias de factura.
// El CRUD de contratos vive en el router genérico de colecciones.
type ContractRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
}
