package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentRecord is an append-only audit entry for a single payment applied
// to an invoice. The invoice keeps the running totals; records exist so the
// per-payment history is never lost.
type PaymentRecord struct {
	ID          string        `json:"id"`
	InvoiceID   string        `json:"invoice_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	ReceivedAt  time.Time     `json:"received_at"`
}
