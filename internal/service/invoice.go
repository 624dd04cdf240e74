package service

import (
	"context"
	"errors"
	"fmt"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/idgen"
	"rentdesk-backend/internal/repository"
)

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	emailSvc    EmailService
	rental      config.RentalConfig
	clock       clock.Clock
	ids         idgen.Generator
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	emailSvc EmailService,
	rental config.RentalConfig,
	clk clock.Clock,
	ids idgen.Generator,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		emailSvc:    emailSvc,
		rental:      rental,
		clock:       clk,
		ids:         ids,
	}
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) GetInvoiceForOrder(ctx context.Context, orderID string) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByOrderID(ctx, orderID)
}

// CreateForOrder creates the invoice for an activated order. The security
// deposit is collected up front, so the invoice opens with the deposit
// already paid and the rental total still due. Looks up the order id first
// and returns the existing invoice if one exists.
func (s *invoiceService) CreateForOrder(ctx context.Context, order *domain.RentalOrder) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.GetByOrderID(ctx, order.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	inv := &domain.Invoice{
		ID:                   s.ids.NewID("inv"),
		OrderID:              order.ID,
		CustomerID:           order.CustomerID,
		CustomerName:         order.CustomerName,
		CustomerEmail:        order.CustomerEmail,
		Items:                order.Lines,
		SubtotalCents:        order.SubtotalCents,
		TaxCents:             order.TaxCents,
		SecurityDepositCents: order.SecurityDepositCents,
		TotalCents:           order.TotalCents + order.SecurityDepositCents,
		AmountPaidCents:      order.SecurityDepositCents,
		AmountDueCents:       order.TotalCents,
		Status:               domain.InvoiceStatusPartial,
		DueDate:              now.AddDate(0, 0, s.rental.InvoiceDueDays),
		CreatedAt:            now,
	}
	if inv.AmountDueCents == 0 {
		inv.Status = domain.InvoiceStatusPaid
		inv.PaidAt = &now
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ApplyPayment records a payment against an invoice. The amount due clamps
// at zero on overpayment, and a paid invoice never regresses to partial.
func (s *invoiceService) ApplyPayment(ctx context.Context, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("payment of %d cents: %w", amountCents, domain.ErrInvalidAmount)
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == domain.InvoiceStatusPaid {
		return nil, fmt.Errorf("invoice %s already paid: %w", invoiceID, domain.ErrInvalidTransition)
	}

	inv.AmountPaidCents += amountCents
	inv.AmountDueCents = inv.TotalCents - inv.AmountPaidCents
	if inv.AmountDueCents < 0 {
		inv.AmountDueCents = 0
	}

	now := s.clock.Now()
	target := domain.InvoiceStatusPartial
	if inv.AmountDueCents == 0 {
		target = domain.InvoiceStatusPaid
	}
	if inv.Status != target && !inv.Status.CanTransition(target) {
		return nil, fmt.Errorf("invoice %s: %s -> %s: %w", invoiceID, inv.Status, target, domain.ErrInvalidTransition)
	}
	inv.Status = target
	inv.PaymentMethod = method
	if target == domain.InvoiceStatusPaid {
		inv.PaidAt = &now
	}

	if err := s.invoiceRepo.UpdatePayment(ctx, inv); err != nil {
		return nil, err
	}

	record := &domain.PaymentRecord{
		ID:          s.ids.NewID("pay"),
		InvoiceID:   inv.ID,
		AmountCents: amountCents,
		Method:      method,
		ReceivedAt:  now,
	}
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if inv.CustomerEmail != "" {
		_ = s.emailSvc.SendPaymentReceivedNotification(ctx, inv.CustomerEmail, inv.CustomerName, inv.ID, amountCents)
	}
	return inv, nil
}

func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error) {
	return s.invoiceRepo.ListByCustomer(ctx, customerID, page, pageSize)
}
