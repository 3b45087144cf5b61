package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, companyRepo repository.CompanyRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo, generator: generator}
}

// DownloadInvoicePDF recupera la factura y la empresa emisora y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	// La empresa emisora es la única registrada; sin registro se genera el PDF
	// sin encabezado de empresa.
	company, err := uc.companyRepo.GetFirst(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
