package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

var invoiceNext = map[InvoiceStatus]map[InvoiceStatus]bool{
	InvoiceStatusDraft:   {InvoiceStatusSent: true},
	InvoiceStatusSent:    {InvoiceStatusPaid: true, InvoiceStatusPartial: true, InvoiceStatusOverdue: true},
	InvoiceStatusPartial: {InvoiceStatusPaid: true, InvoiceStatusOverdue: true},
	InvoiceStatusOverdue: {InvoiceStatusPaid: true, InvoiceStatusPartial: true},
	InvoiceStatusPaid:    {},
}

// CanTransition reports whether an invoice may move from one status to
// another. paid is terminal: an invoice never regresses to partial.
func (s InvoiceStatus) CanTransition(to InvoiceStatus) bool {
	return invoiceNext[s][to]
}

// Invoice is the billing record tied to exactly one order; OrderID is the
// idempotency key for invoice creation. AmountDueCents never goes below
// zero.
type Invoice struct {
	ID                   string            `json:"id"`
	OrderID              string            `json:"order_id"`
	CustomerID           string            `json:"customer_id"`
	CustomerName         string            `json:"customer_name"`
	CustomerEmail        string            `json:"customer_email"`
	Items                []RentalOrderLine `json:"items"`
	SubtotalCents        int64             `json:"subtotal_cents"`
	TaxCents             int64             `json:"tax_cents"`
	SecurityDepositCents int64             `json:"security_deposit_cents"`
	LateFeeCents         int64             `json:"late_fee_cents"`
	TotalCents           int64             `json:"total_cents"`
	AmountPaidCents      int64             `json:"amount_paid_cents"`
	AmountDueCents       int64             `json:"amount_due_cents"`
	Status               InvoiceStatus     `json:"status"`
	PaymentMethod        PaymentMethod     `json:"payment_method,omitempty"`
	DueDate              time.Time         `json:"due_date"`
	PaidAt               *time.Time        `json:"paid_at,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
}
