package domain

import "time"

// RentalPeriod is the billing granularity of a line.
type RentalPeriod string

const (
	PeriodHourly  RentalPeriod = "hourly"
	PeriodDaily   RentalPeriod = "daily"
	PeriodWeekly  RentalPeriod = "weekly"
	PeriodMonthly RentalPeriod = "monthly"
	PeriodYearly  RentalPeriod = "yearly"
)

// ValidPeriod reports whether p is a recognized rental period tier.
func ValidPeriod(p RentalPeriod) bool {
	switch p {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// RentalOrderLine is an immutable pricing snapshot. It belongs to exactly
// one quotation or one order and is never recomputed after creation.
type RentalOrderLine struct {
	ID                  string       `json:"id"`
	ProductID           string       `json:"product_id"`
	ProductName         string       `json:"product_name"`
	Quantity            int32        `json:"quantity"`
	RentalPeriod        RentalPeriod `json:"rental_period"`
	StartDate           time.Time    `json:"start_date"`
	EndDate             time.Time    `json:"end_date"`
	PricePerPeriodCents int64        `json:"price_per_period_cents"`
	TotalPriceCents     int64        `json:"total_price_cents"`
}
