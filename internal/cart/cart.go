package cart

import (
	"fmt"
	"time"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/idgen"
	"rentdesk-backend/internal/pricing"
)

// Cart accumulates priced rental lines for a single shopping session. It is
// client-local state: one cart per session, no repository behind it, not
// safe for concurrent use. Items are keyed by product id and keep insertion
// order; the price on each item is recomputed on every mutation so the cart
// never holds a stale price.
type Cart struct {
	items  []domain.CartItem
	rental config.RentalConfig
	clock  clock.Clock
	ids    idgen.Generator
}

// New returns an empty cart using the given company settings.
func New(rental config.RentalConfig, clk clock.Clock, ids idgen.Generator) *Cart {
	return &Cart{
		rental: rental,
		clock:  clk,
		ids:    ids,
	}
}

// AddItem prices and stores a line for the product. Adding a product that
// is already in the cart overwrites its line rather than duplicating it.
func (c *Cart) AddItem(product domain.Product, quantity int32, period domain.RentalPeriod, start, end time.Time) error {
	perPeriod, err := pricing.Calculate(product.RentalRates, period, 1, start, end)
	if err != nil {
		return fmt.Errorf("pricing cart item %s: %w", product.ID, err)
	}

	item := domain.CartItem{
		Product:             product,
		Quantity:            quantity,
		RentalPeriod:        period,
		StartDate:           start,
		EndDate:             end,
		PricePerPeriodCents: perPeriod,
	}

	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i] = item
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

// ItemUpdate carries the mutable fields of a cart line. Nil fields are left
// unchanged.
type ItemUpdate struct {
	Quantity     *int32
	RentalPeriod *domain.RentalPeriod
	StartDate    *time.Time
	EndDate      *time.Time
}

// UpdateItem applies the update to the product's line and reprices it.
func (c *Cart) UpdateItem(productID string, update ItemUpdate) error {
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		item := c.items[i]
		if update.Quantity != nil {
			item.Quantity = *update.Quantity
		}
		if update.RentalPeriod != nil {
			item.RentalPeriod = *update.RentalPeriod
		}
		if update.StartDate != nil {
			item.StartDate = *update.StartDate
		}
		if update.EndDate != nil {
			item.EndDate = *update.EndDate
		}

		perPeriod, err := pricing.Calculate(item.Product.RentalRates, item.RentalPeriod, 1, item.StartDate, item.EndDate)
		if err != nil {
			return fmt.Errorf("repricing cart item %s: %w", productID, err)
		}
		item.PricePerPeriodCents = perPeriod
		c.items[i] = item
		return nil
	}
	return fmt.Errorf("cart item %s: %w", productID, domain.ErrNotFound)
}

// RemoveItem drops the product's line from the cart.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Quotation creation does not clear the cart;
// callers do so explicitly after checkout.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int32 {
	var n int32
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Subtotal sums pricePerPeriod x quantity across the cart.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, item := range c.items {
		sum += item.PricePerPeriodCents * int64(item.Quantity)
	}
	return sum
}

// Tax applies the configured rate to the subtotal.
func (c *Cart) Tax() int64 {
	return pricing.Tax(c.Subtotal(), c.rental.TaxRatePercent)
}

// Total is subtotal plus tax.
func (c *Cart) Total() int64 {
	return c.Subtotal() + c.Tax()
}

// BuildQuotation snapshots the cart into a draft quotation valid for the
// configured number of days. The snapshot is independent of the cart:
// mutating the cart afterwards never changes an issued quotation.
func (c *Cart) BuildQuotation(customerID, customerName, customerEmail string) domain.Quotation {
	lines := make([]domain.RentalOrderLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, domain.RentalOrderLine{
			ID:                  c.ids.NewID("line"),
			ProductID:           item.Product.ID,
			ProductName:         item.Product.Name,
			Quantity:            item.Quantity,
			RentalPeriod:        item.RentalPeriod,
			StartDate:           item.StartDate,
			EndDate:             item.EndDate,
			PricePerPeriodCents: item.PricePerPeriodCents,
			TotalPriceCents:     item.PricePerPeriodCents * int64(item.Quantity),
		})
	}

	now := c.clock.Now()
	subtotal := c.Subtotal()
	tax := c.Tax()

	return domain.Quotation{
		ID:            c.ids.NewID("quote"),
		CustomerID:    customerID,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Lines:         lines,
		Status:        domain.QuotationStatusDraft,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		ValidUntil:    now.AddDate(0, 0, c.rental.QuotationValidDays),
		CreatedAt:     now,
	}
}
