package dto

import (
	"time"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// CreateInvoiceRequest alta de factura. Subtotal/tax/total se calculan en la
// aplicación a partir de items y taxRate; el cliente no los envía.
type CreateInvoiceRequest struct {
	ContractID    string               `json:"contractId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	IssueDate     time.Time            `json:"issueDate"`
	DueDate       time.Time            `json:"dueDate"`
	Items         []entity.InvoiceItem `json:"items"`
	TaxRate       float64              `json:"taxRate"`
	Notes         string               `json:"notes"`
}

// UpdateInvoiceRequest campos editables de la factura (whitelist).
type UpdateInvoiceRequest struct {
	Items    []entity.InvoiceItem `json:"items"`
	Subtotal *float64             `json:"subtotal"`
	Tax      *float64             `json:"tax"`
	Total    *float64             `json:"total"`
	Notes    *string              `json:"notes"`
	Status   *string              `json:"status"`
}

// AddPaymentRequest registro de un abono sobre la factura.
type AddPaymentRequest struct {
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId"`
	Notes         string     `json:"notes"`
	Date          *time.Time `json:"date"`
}
