package domain

import "time"

// RentalRates is the five-tier rate table of a product. All rates are
// non-negative amounts in cents per billing unit.
type RentalRates struct {
	HourlyCents  int64 `json:"hourly_cents"`
	DailyCents   int64 `json:"daily_cents"`
	WeeklyCents  int64 `json:"weekly_cents"`
	MonthlyCents int64 `json:"monthly_cents"`
	YearlyCents  int64 `json:"yearly_cents"`
}

type Product struct {
	ID                   string      `json:"id"`
	VendorID             string      `json:"vendor_id"`
	Name                 string      `json:"name"`
	Description          string      `json:"description"`
	Category             string      `json:"category"`
	CostPriceCents       int64       `json:"cost_price_cents"`
	SalesPriceCents      int64       `json:"sales_price_cents"`
	RentalRates          RentalRates `json:"rental_rates"`
	QuantityOnHand       int32       `json:"quantity_on_hand"`
	QuantityWithCustomer int32       `json:"quantity_with_customer"`
	IsRentable           bool        `json:"is_rentable"`
	IsPublished          bool        `json:"is_published"`
	CreatedAt            time.Time   `json:"created_at"`
}

// QuantityAvailable returns the units not currently out on rent.
// Invariant: 0 <= QuantityWithCustomer <= QuantityOnHand.
func (p *Product) QuantityAvailable() int32 {
	return p.QuantityOnHand - p.QuantityWithCustomer
}
