package billing

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, company *entity.Company) ([]byte, error)
}
