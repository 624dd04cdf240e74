package repository

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, vendorID string, page, pageSize int32) ([]domain.Product, int32, error)
	// AdjustStock moves units out to (positive delta) or back from
	// (negative delta) customers in one statement, guarded so
	// quantity_with_customer stays within [0, quantity_on_hand]. Returns
	// ErrInsufficientStock when the guard rejects the move.
	AdjustStock(ctx context.Context, id string, delta int32) error
}

type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation) error
	GetByID(ctx context.Context, id string) (*domain.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus) error
	ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Quotation, int32, error)
	// ExpireSent marks every sent quotation whose validity deadline has
	// passed as expired and returns how many were affected.
	ExpireSent(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.RentalOrder) error
	GetByID(ctx context.Context, id string) (*domain.RentalOrder, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetPickup(ctx context.Context, id string, status domain.OrderStatus, pickupDate time.Time) error
	// Settle writes actual return date, late fee and the completed status
	// in a single statement; partial settlement is never observable.
	Settle(ctx context.Context, id string, status domain.OrderStatus, actualReturn time.Time, lateFeeCents int64) error
	ListByCustomer(ctx context.Context, customerID string, status string, page, pageSize int32) ([]domain.RentalOrder, int32, error)
	ListDueForReturn(ctx context.Context, from, to time.Time) ([]domain.RentalOrder, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	// GetByOrderID backs the invoice-creation idempotency key.
	GetByOrderID(ctx context.Context, orderID string) (*domain.Invoice, error)
	UpdatePayment(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
	ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error)
	// MarkOverdue flips unpaid sent/partial invoices past their due date
	// to overdue and returns how many were affected.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, record *domain.PaymentRecord) error
	ListByInvoice(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error)
}
