package postgres

import (
	"context"
	"testing"

	"rentdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestQuotationRepository_ExpireSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)

	mock.ExpectExec("UPDATE quotations SET status = \\$1").
		WithArgs(domain.QuotationStatusExpired, domain.QuotationStatusSent, repoNow).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.ExpireSent(context.Background(), repoNow)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestQuotationRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)

	mock.ExpectExec("UPDATE quotations SET status = \\$1 WHERE id = \\$2").
		WithArgs(domain.QuotationStatusAccepted, "quote-x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), "quote-x", domain.QuotationStatusAccepted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewQuotationRepository(db)

	q := &domain.Quotation{
		ID:            "quote-1",
		CustomerID:    "cust-1",
		CustomerName:  "Asha Traders",
		CustomerEmail: "asha@example.com",
		Status:        domain.QuotationStatusDraft,
		SubtotalCents: 2000000,
		TaxCents:      360000,
		TotalCents:    2360000,
		ValidUntil:    repoNow.AddDate(0, 0, 7),
		CreatedAt:     repoNow,
		Lines: []domain.RentalOrderLine{
			{ID: "line-1", ProductID: "prod-1", Quantity: 2, RentalPeriod: domain.PeriodDaily},
			{ID: "line-2", ProductID: "prod-2", Quantity: 1, RentalPeriod: domain.PeriodWeekly},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO quotations").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO quotation_lines").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO quotation_lines").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Create(context.Background(), q))
	assert.NoError(t, mock.ExpectationsWereMet())
}
