package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/idgen"
	"rentdesk-backend/internal/pricing"
	"rentdesk-backend/internal/repository"
)

type quotationService struct {
	quotationRepo repository.QuotationRepository
	orderRepo     repository.OrderRepository
	emailSvc      EmailService
	rental        config.RentalConfig
	clock         clock.Clock
	ids           idgen.Generator
}

func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	orderRepo repository.OrderRepository,
	emailSvc EmailService,
	rental config.RentalConfig,
	clk clock.Clock,
	ids idgen.Generator,
) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		orderRepo:     orderRepo,
		emailSvc:      emailSvc,
		rental:        rental,
		clock:         clk,
		ids:           ids,
	}
}

func (s *quotationService) CreateQuotation(ctx context.Context, q *domain.Quotation) error {
	if q.ID == "" {
		q.ID = s.ids.NewID("quote")
	}
	if q.Status == "" {
		q.Status = domain.QuotationStatusDraft
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = s.clock.Now()
	}
	if q.ValidUntil.IsZero() {
		q.ValidUntil = q.CreatedAt.AddDate(0, 0, s.rental.QuotationValidDays)
	}
	return s.quotationRepo.Create(ctx, q)
}

func (s *quotationService) GetQuotation(ctx context.Context, id string) (*domain.Quotation, error) {
	return s.quotationRepo.GetByID(ctx, id)
}

func (s *quotationService) SendQuotation(ctx context.Context, id string) (*domain.Quotation, error) {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.Status.CanTransition(domain.QuotationStatusSent) {
		return nil, fmt.Errorf("quotation %s: %s -> sent: %w", id, q.Status, domain.ErrInvalidTransition)
	}
	if err := s.quotationRepo.UpdateStatus(ctx, id, domain.QuotationStatusSent); err != nil {
		return nil, err
	}
	q.Status = domain.QuotationStatusSent

	if q.CustomerEmail != "" {
		// Notification delivery is best effort; the status change stands
		// either way.
		_ = s.emailSvc.SendQuotationNotification(ctx, q.CustomerEmail, q.CustomerName, q.ID, q.TotalCents)
	}
	return q, nil
}

func (s *quotationService) RejectQuotation(ctx context.Context, id string) (*domain.Quotation, error) {
	q, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !q.Status.CanTransition(domain.QuotationStatusRejected) {
		return nil, fmt.Errorf("quotation %s: %s -> rejected: %w", id, q.Status, domain.ErrInvalidTransition)
	}
	if err := s.quotationRepo.UpdateStatus(ctx, id, domain.QuotationStatusRejected); err != nil {
		return nil, err
	}
	q.Status = domain.QuotationStatusRejected
	return q, nil
}

// ConvertToOrder turns a sent, still-valid quotation into a confirmed order.
// Conversion happens at most once: a quotation that is already accepted
// reports ErrAlreadyConverted instead of producing a second order.
func (s *quotationService) ConvertToOrder(ctx context.Context, quotationID, vendorID string) (*domain.RentalOrder, error) {
	q, err := s.quotationRepo.GetByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if q.Status == domain.QuotationStatusAccepted {
		return nil, fmt.Errorf("quotation %s: %w", quotationID, domain.ErrAlreadyConverted)
	}
	if q.Status != domain.QuotationStatusSent {
		return nil, fmt.Errorf("quotation %s: %s -> accepted: %w", quotationID, q.Status, domain.ErrInvalidTransition)
	}

	now := s.clock.Now()
	if q.Expired(now) {
		if err := s.quotationRepo.UpdateStatus(ctx, quotationID, domain.QuotationStatusExpired); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("quotation %s expired %s: %w",
			quotationID, q.ValidUntil.Format(time.RFC3339), domain.ErrInvalidTransition)
	}

	order := &domain.RentalOrder{
		ID:                   s.ids.NewID("order"),
		CustomerID:           q.CustomerID,
		CustomerName:         q.CustomerName,
		CustomerEmail:        q.CustomerEmail,
		VendorID:             vendorID,
		QuotationID:          q.ID,
		Lines:                copyLines(q.Lines, s.ids),
		Status:               domain.OrderStatusConfirmed,
		SubtotalCents:        q.SubtotalCents,
		TaxCents:             q.TaxCents,
		TotalCents:           q.TotalCents,
		SecurityDepositCents: pricing.SecurityDeposit(q.TotalCents, s.rental.SecurityDepositPercent),
		Notes:                q.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if ret, ok := scheduledReturn(order.Lines); ok {
		order.ReturnDate = &ret
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.quotationRepo.UpdateStatus(ctx, quotationID, domain.QuotationStatusAccepted); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *quotationService) ListQuotations(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Quotation, int32, error) {
	return s.quotationRepo.ListByCustomer(ctx, customerID, page, pageSize)
}

func copyLines(lines []domain.RentalOrderLine, ids idgen.Generator) []domain.RentalOrderLine {
	copied := make([]domain.RentalOrderLine, len(lines))
	for i, line := range lines {
		line.ID = ids.NewID("line")
		copied[i] = line
	}
	return copied
}

// scheduledReturn derives the order-level return date: for each line the
// customer keeps the goods for the full billed span, computed with calendar
// arithmetic rather than the average-day constants pricing uses. The latest
// line wins.
func scheduledReturn(lines []domain.RentalOrderLine) (time.Time, bool) {
	var latest time.Time
	for _, line := range lines {
		d, err := pricing.EstimateDuration(line.RentalPeriod, line.StartDate, line.EndDate)
		if err != nil {
			continue
		}
		end, err := pricing.AddCalendarPeriod(line.StartDate, line.RentalPeriod, int(math.Ceil(d.Units)))
		if err != nil {
			continue
		}
		if end.After(latest) {
			latest = end
		}
	}
	return latest, !latest.IsZero()
}
