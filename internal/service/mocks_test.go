package service

import (
	"context"
	"time"

	"rentdesk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) List(ctx context.Context, vendorID string, page, pageSize int32) ([]domain.Product, int32, error) {
	args := m.Called(ctx, vendorID, page, pageSize)
	return args.Get(0).([]domain.Product), args.Get(1).(int32), args.Error(2)
}
func (m *MockProductRepo) AdjustStock(ctx context.Context, id string, delta int32) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockQuotationRepo
type MockQuotationRepo struct {
	mock.Mock
}

func (m *MockQuotationRepo) Create(ctx context.Context, quotation *domain.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}
func (m *MockQuotationRepo) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationRepo) UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockQuotationRepo) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Quotation, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Quotation), args.Get(1).(int32), args.Error(2)
}
func (m *MockQuotationRepo) ExpireSent(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.RentalOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.RentalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalOrder), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrderRepo) SetPickup(ctx context.Context, id string, status domain.OrderStatus, pickupDate time.Time) error {
	args := m.Called(ctx, id, status, pickupDate)
	return args.Error(0)
}
func (m *MockOrderRepo) Settle(ctx context.Context, id string, status domain.OrderStatus, actualReturn time.Time, lateFeeCents int64) error {
	args := m.Called(ctx, id, status, actualReturn, lateFeeCents)
	return args.Error(0)
}
func (m *MockOrderRepo) ListByCustomer(ctx context.Context, customerID string, status string, page, pageSize int32) ([]domain.RentalOrder, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.RentalOrder), args.Get(1).(int32), args.Error(2)
}
func (m *MockOrderRepo) ListDueForReturn(ctx context.Context, from, to time.Time) ([]domain.RentalOrder, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.RentalOrder), args.Error(1)
}

// MockInvoiceRepo
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
func (m *MockInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceRepo) UpdatePayment(ctx context.Context, invoice *domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}
func (m *MockInvoiceRepo) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockInvoiceRepo) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Invoice), args.Get(1).(int32), args.Error(2)
}
func (m *MockInvoiceRepo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, record *domain.PaymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuotationNotification(ctx context.Context, customerEmail, customerName, quotationID string, totalCents int64) error {
	args := m.Called(ctx, customerEmail, customerName, quotationID, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderConfirmationNotification(ctx context.Context, customerEmail, customerName, orderID string) error {
	args := m.Called(ctx, customerEmail, customerName, orderID)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceivedNotification(ctx context.Context, customerEmail, customerName, invoiceID string, amountCents int64) error {
	args := m.Called(ctx, customerEmail, customerName, invoiceID, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminderNotification(ctx context.Context, customerEmail, customerName, orderID string) error {
	args := m.Called(ctx, customerEmail, customerName, orderID)
	return args.Error(0)
}

// MockInvoiceService is used by order tests to observe the pickup trigger.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceForOrder(ctx context.Context, orderID string) (*domain.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) CreateForOrder(ctx context.Context, order *domain.RentalOrder) (*domain.Invoice, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ApplyPayment(ctx context.Context, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, amountCents, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Invoice), args.Get(1).(int32), args.Error(2)
}
