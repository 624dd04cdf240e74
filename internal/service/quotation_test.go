package service

import (
	"context"
	"testing"
	"time"

	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testRental = config.RentalConfig{
	TaxRatePercent:         18,
	SecurityDepositPercent: 25,
	LateFeePerDayCents:     50000,
	QuotationValidDays:     7,
	InvoiceDueDays:         7,
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func sentQuotation(totalCents int64, validUntil time.Time) *domain.Quotation {
	start := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	return &domain.Quotation{
		ID:            "quote-1",
		CustomerID:    "cust-1",
		CustomerName:  "Asha Traders",
		CustomerEmail: "asha@example.com",
		Status:        domain.QuotationStatusSent,
		SubtotalCents: totalCents,
		TotalCents:    totalCents,
		ValidUntil:    validUntil,
		Lines: []domain.RentalOrderLine{{
			ID:                  "line-1",
			ProductID:           "prod-1",
			ProductName:         "Scaffolding Set",
			Quantity:            2,
			RentalPeriod:        domain.PeriodDaily,
			StartDate:           start,
			EndDate:             start.AddDate(0, 0, 4),
			PricePerPeriodCents: totalCents / 4,
			TotalPriceCents:     totalCents / 2,
		}},
		CreatedAt: testNow.AddDate(0, 0, -1),
	}
}

func newQuotationService(qRepo *MockQuotationRepo, oRepo *MockOrderRepo, email *MockEmailService) QuotationService {
	return NewQuotationService(qRepo, oRepo, email, testRental, clock.Fixed(testNow), idgen.NewUUIDGenerator())
}

func TestQuotationService_SendQuotation(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	oRepo := new(MockOrderRepo)
	email := new(MockEmailService)
	svc := newQuotationService(qRepo, oRepo, email)
	ctx := context.Background()

	q := sentQuotation(100000, testNow.AddDate(0, 0, 5))
	q.Status = domain.QuotationStatusDraft
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)
	qRepo.On("UpdateStatus", ctx, "quote-1", domain.QuotationStatusSent).Return(nil)
	email.On("SendQuotationNotification", ctx, "asha@example.com", "Asha Traders", "quote-1", int64(100000)).Return(nil)

	res, err := svc.SendQuotation(ctx, "quote-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.QuotationStatusSent, res.Status)
	email.AssertExpectations(t)
}

func TestQuotationService_SendQuotation_InvalidState(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	svc := newQuotationService(qRepo, new(MockOrderRepo), new(MockEmailService))
	ctx := context.Background()

	q := sentQuotation(100000, testNow.AddDate(0, 0, 5))
	q.Status = domain.QuotationStatusRejected
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)

	_, err := svc.SendQuotation(ctx, "quote-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	qRepo.AssertNotCalled(t, "UpdateStatus", ctx, "quote-1", domain.QuotationStatusSent)
}

func TestQuotationService_ConvertToOrder(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	oRepo := new(MockOrderRepo)
	svc := newQuotationService(qRepo, oRepo, new(MockEmailService))
	ctx := context.Background()

	// 23600.00 total at a 25% deposit rate holds 5900.00.
	q := sentQuotation(2360000, testNow.AddDate(0, 0, 5))
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)
	qRepo.On("UpdateStatus", ctx, "quote-1", domain.QuotationStatusAccepted).Return(nil)

	var created *domain.RentalOrder
	oRepo.On("Create", ctx, mock.AnythingOfType("*domain.RentalOrder")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.RentalOrder) }).
		Return(nil)

	order, err := svc.ConvertToOrder(ctx, "quote-1", "vendor-1")
	assert.NoError(t, err)
	assert.Equal(t, created, order)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "quote-1", order.QuotationID)
	assert.Equal(t, "vendor-1", order.VendorID)
	assert.Equal(t, int64(2360000), order.TotalCents)
	assert.Equal(t, int64(590000), order.SecurityDepositCents)
	assert.Equal(t, int64(0), order.LateFeeCents)
	assert.Len(t, order.Lines, 1)
	assert.NotEqual(t, q.Lines[0].ID, order.Lines[0].ID)
	if assert.NotNil(t, order.ReturnDate) {
		// 4 daily units from the line start, calendar arithmetic.
		assert.Equal(t, q.Lines[0].StartDate.AddDate(0, 0, 4), *order.ReturnDate)
	}
}

func TestQuotationService_ConvertToOrder_AlreadyConverted(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	oRepo := new(MockOrderRepo)
	svc := newQuotationService(qRepo, oRepo, new(MockEmailService))
	ctx := context.Background()

	q := sentQuotation(2360000, testNow.AddDate(0, 0, 5))
	q.Status = domain.QuotationStatusAccepted
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)

	_, err := svc.ConvertToOrder(ctx, "quote-1", "vendor-1")
	assert.ErrorIs(t, err, domain.ErrAlreadyConverted)
	oRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestQuotationService_ConvertToOrder_Expired(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	oRepo := new(MockOrderRepo)
	svc := newQuotationService(qRepo, oRepo, new(MockEmailService))
	ctx := context.Background()

	q := sentQuotation(2360000, testNow.AddDate(0, 0, -1))
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)
	qRepo.On("UpdateStatus", ctx, "quote-1", domain.QuotationStatusExpired).Return(nil)

	_, err := svc.ConvertToOrder(ctx, "quote-1", "vendor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	qRepo.AssertExpectations(t)
	oRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
}

func TestQuotationService_ConvertToOrder_Draft(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	svc := newQuotationService(qRepo, new(MockOrderRepo), new(MockEmailService))
	ctx := context.Background()

	q := sentQuotation(2360000, testNow.AddDate(0, 0, 5))
	q.Status = domain.QuotationStatusDraft
	qRepo.On("GetByID", ctx, "quote-1").Return(q, nil)

	_, err := svc.ConvertToOrder(ctx, "quote-1", "vendor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestQuotationService_CreateQuotation_Defaults(t *testing.T) {
	qRepo := new(MockQuotationRepo)
	svc := newQuotationService(qRepo, new(MockOrderRepo), new(MockEmailService))
	ctx := context.Background()

	qRepo.On("Create", ctx, mock.AnythingOfType("*domain.Quotation")).Return(nil)

	q := &domain.Quotation{CustomerID: "cust-1", CustomerName: "Asha Traders"}
	assert.NoError(t, svc.CreateQuotation(ctx, q))
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, domain.QuotationStatusDraft, q.Status)
	assert.Equal(t, testNow, q.CreatedAt)
	assert.Equal(t, testNow.AddDate(0, 0, 7), q.ValidUntil)
}
