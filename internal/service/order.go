package service

import (
	"context"
	"fmt"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/pricing"
	"rentdesk-backend/internal/repository"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	invoiceSvc  InvoiceService
	emailSvc    EmailService
	rental      config.RentalConfig
	clock       clock.Clock
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	invoiceSvc InvoiceService,
	emailSvc EmailService,
	rental config.RentalConfig,
	clk clock.Clock,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		invoiceSvc:  invoiceSvc,
		emailSvc:    emailSvc,
		rental:      rental,
		clock:       clk,
	}
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.RentalOrder, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) transition(ctx context.Context, id string, to domain.OrderStatus) (*domain.RentalOrder, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(to) {
		return nil, fmt.Errorf("order %s: %s -> %s: %w", id, o.Status, to, domain.ErrInvalidTransition)
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	o.Status = to
	return o, nil
}

func (s *orderService) SendOrder(ctx context.Context, id string) (*domain.RentalOrder, error) {
	return s.transition(ctx, id, domain.OrderStatusSent)
}

func (s *orderService) ConfirmOrder(ctx context.Context, id string) (*domain.RentalOrder, error) {
	o, err := s.transition(ctx, id, domain.OrderStatusConfirmed)
	if err != nil {
		return nil, err
	}
	if o.CustomerEmail != "" {
		_ = s.emailSvc.SendOrderConfirmationNotification(ctx, o.CustomerEmail, o.CustomerName, o.ID)
	}
	return o, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id string) (*domain.RentalOrder, error) {
	return s.transition(ctx, id, domain.OrderStatusCancelled)
}

// Pickup activates a confirmed order: stamps the pickup date, moves the line
// quantities out to the customer and creates the invoice. Order activation
// and invoice creation are two sequential writes; invoice creation is
// idempotent on the order id, so a crash between them is recovered by
// re-triggering pickup's invoice step.
func (s *orderService) Pickup(ctx context.Context, id string) (*domain.RentalOrder, *domain.Invoice, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !o.Status.CanTransition(domain.OrderStatusActive) {
		return nil, nil, fmt.Errorf("order %s: %s -> active: %w", id, o.Status, domain.ErrInvalidTransition)
	}

	for _, line := range o.Lines {
		if err := s.productRepo.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			return nil, nil, fmt.Errorf("order %s, product %s: %w", id, line.ProductID, err)
		}
	}

	now := s.clock.Now()
	if err := s.orderRepo.SetPickup(ctx, id, domain.OrderStatusActive, now); err != nil {
		return nil, nil, err
	}
	o.Status = domain.OrderStatusActive
	o.PickupDate = &now

	inv, err := s.invoiceSvc.CreateForOrder(ctx, o)
	if err != nil {
		return nil, nil, err
	}
	return o, inv, nil
}

// Return settles an active order. The late fee, actual return date and
// completed status land in one repository write, then the stock comes back.
func (s *orderService) Return(ctx context.Context, id string) (*domain.RentalOrder, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(domain.OrderStatusCompleted) {
		return nil, fmt.Errorf("order %s: %s -> completed: %w", id, o.Status, domain.ErrInvalidTransition)
	}

	now := s.clock.Now()
	var lateFee int64
	if o.ReturnDate != nil {
		lateFee = pricing.LateFee(*o.ReturnDate, now, s.rental.LateFeePerDayCents)
	}

	if err := s.orderRepo.Settle(ctx, id, domain.OrderStatusCompleted, now, lateFee); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatusCompleted
	o.ActualReturnDate = &now
	o.LateFeeCents = lateFee

	for _, line := range o.Lines {
		if err := s.productRepo.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			// The settlement already stands; a stock release failure is an
			// inventory correction, not a reason to fail the return.
			logger.ErrorContext(ctx, "failed to release stock on return",
				"order_id", id, "product_id", line.ProductID, "error", err)
		}
	}
	return o, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID string, status string, page, pageSize int32) ([]domain.RentalOrder, int32, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID, status, page, pageSize)
}
