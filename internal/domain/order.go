package domain

import "time"

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusSent      OrderStatus = "sent"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusDraft:     {OrderStatusSent: true, OrderStatusCancelled: true},
	OrderStatusSent:      {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusActive: true, OrderStatusCancelled: true},
	OrderStatusActive:    {OrderStatusCompleted: true},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from one status to
// another. completed and cancelled are terminal.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return orderNext[s][to]
}

// RentalOrder is the contractual rental derived from an accepted quotation.
// Invariants: LateFeeCents >= 0; ActualReturnDate is set iff the order is
// completed.
type RentalOrder struct {
	ID                   string            `json:"id"`
	CustomerID           string            `json:"customer_id"`
	CustomerName         string            `json:"customer_name"`
	CustomerEmail        string            `json:"customer_email"`
	VendorID             string            `json:"vendor_id"`
	QuotationID          string            `json:"quotation_id,omitempty"`
	Lines                []RentalOrderLine `json:"lines"`
	Status               OrderStatus       `json:"status"`
	SubtotalCents        int64             `json:"subtotal_cents"`
	TaxCents             int64             `json:"tax_cents"`
	TotalCents           int64             `json:"total_cents"`
	SecurityDepositCents int64             `json:"security_deposit_cents"`
	PickupDate           *time.Time        `json:"pickup_date,omitempty"`
	ReturnDate           *time.Time        `json:"return_date,omitempty"`
	ActualReturnDate     *time.Time        `json:"actual_return_date,omitempty"`
	LateFeeCents         int64             `json:"late_fee_cents"`
	Notes                string            `json:"notes"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
