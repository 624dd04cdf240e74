package domain

import "time"

// CartItem is an ephemeral staging line that exists only within a shopping
// session. The product is snapshotted so price recomputation does not need
// a repository round trip; items are converted to RentalOrderLines at
// checkout and discarded.
type CartItem struct {
	Product             Product      `json:"product"`
	Quantity            int32        `json:"quantity"`
	RentalPeriod        RentalPeriod `json:"rental_period"`
	StartDate           time.Time    `json:"start_date"`
	EndDate             time.Time    `json:"end_date"`
	PricePerPeriodCents int64        `json:"price_per_period_cents"`
}
