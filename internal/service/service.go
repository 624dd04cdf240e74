package service

import (
	"context"

	"rentdesk-backend/internal/domain"
)

type ProductService interface {
	AddProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, vendorID string, page, pageSize int32) ([]domain.Product, int32, error)
}

type QuotationService interface {
	CreateQuotation(ctx context.Context, quotation *domain.Quotation) error
	GetQuotation(ctx context.Context, id string) (*domain.Quotation, error)
	SendQuotation(ctx context.Context, id string) (*domain.Quotation, error)
	RejectQuotation(ctx context.Context, id string) (*domain.Quotation, error)
	ConvertToOrder(ctx context.Context, quotationID, vendorID string) (*domain.RentalOrder, error)
	ListQuotations(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Quotation, int32, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id string) (*domain.RentalOrder, error)
	SendOrder(ctx context.Context, id string) (*domain.RentalOrder, error)
	ConfirmOrder(ctx context.Context, id string) (*domain.RentalOrder, error)
	CancelOrder(ctx context.Context, id string) (*domain.RentalOrder, error)
	// Pickup moves a confirmed order to active, stamps the pickup date,
	// moves stock out to the customer and creates the invoice.
	Pickup(ctx context.Context, id string) (*domain.RentalOrder, *domain.Invoice, error)
	// Return settles an active order: late fee, actual return date and
	// completed status in one write, then stock back in.
	Return(ctx context.Context, id string) (*domain.RentalOrder, error)
	ListOrders(ctx context.Context, customerID string, status string, page, pageSize int32) ([]domain.RentalOrder, int32, error)
}

type InvoiceService interface {
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	GetInvoiceForOrder(ctx context.Context, orderID string) (*domain.Invoice, error)
	// CreateForOrder is idempotent on the order id: re-triggering after a
	// crash between order activation and invoice creation is safe.
	CreateForOrder(ctx context.Context, order *domain.RentalOrder) (*domain.Invoice, error)
	ApplyPayment(ctx context.Context, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error)
	ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error)
	ListInvoices(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error)
}

type EmailService interface {
	SendQuotationNotification(ctx context.Context, customerEmail, customerName, quotationID string, totalCents int64) error
	SendOrderConfirmationNotification(ctx context.Context, customerEmail, customerName, orderID string) error
	SendPaymentReceivedNotification(ctx context.Context, customerEmail, customerName, invoiceID string, amountCents int64) error
	SendReturnReminderNotification(ctx context.Context, customerEmail, customerName, orderID string) error
}
