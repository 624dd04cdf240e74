package domain

import "time"

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

var quotationNext = map[QuotationStatus]map[QuotationStatus]bool{
	QuotationStatusDraft:    {QuotationStatusSent: true},
	QuotationStatusSent:     {QuotationStatusAccepted: true, QuotationStatusRejected: true, QuotationStatusExpired: true},
	QuotationStatusAccepted: {},
	QuotationStatusRejected: {},
	QuotationStatusExpired:  {},
}

// CanTransition reports whether a quotation may move from one status to
// another. accepted, rejected and expired are terminal.
func (s QuotationStatus) CanTransition(to QuotationStatus) bool {
	return quotationNext[s][to]
}

type Quotation struct {
	ID            string            `json:"id"`
	CustomerID    string            `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Lines         []RentalOrderLine `json:"lines"`
	Status        QuotationStatus   `json:"status"`
	SubtotalCents int64             `json:"subtotal_cents"`
	TaxCents      int64             `json:"tax_cents"`
	TotalCents    int64             `json:"total_cents"`
	ValidUntil    time.Time         `json:"valid_until"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Expired reports whether the quotation's validity deadline has passed.
func (q *Quotation) Expired(now time.Time) bool {
	return now.After(q.ValidUntil)
}
