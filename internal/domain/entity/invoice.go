package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados válidos para Invoice. El ciclo esperado es draft → sent → paid.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

// InvoiceItem línea de detalle de la factura.
type InvoiceItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    float64 `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
}

// Payment abono registrado sobre una factura. Los pagos se agregan al arreglo
// payments y nunca se eliminan.
type Payment struct {
	ID            string    `json:"id" bson:"id"` // uuid generado por la aplicación
	Amount        float64   `json:"amount" bson:"amount"`
	PaymentMethod string    `json:"paymentMethod" bson:"paymentMethod"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	Notes         string    `json:"notes" bson:"notes"`
	Date          time.Time `json:"date" bson:"date"`
}

// Invoice factura emitida contra un contrato. invoiceNumber es único global
// (índice único en la colección).
type Invoice struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ContractID    primitive.ObjectID `json:"contractId" bson:"contractId"`
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"`
	IssueDate     time.Time          `json:"issueDate" bson:"issueDate"`
	DueDate       time.Time          `json:"dueDate" bson:"dueDate"`
	Items         []InvoiceItem      `json:"items" bson:"items"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Tax           float64            `json:"tax" bson:"tax"`
	Total         float64            `json:"total" bson:"total"`
	Notes         string             `json:"notes" bson:"notes"`
	Status        string             `json:"status" bson:"status"`
	Payments      []Payment          `json:"payments" bson:"payments"`
	SentAt        *time.Time         `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ValidInvoiceStatus indica si s es un estado permitido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}
