package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/repository"
)

type quotationRepository struct {
	db *sql.DB
}

func NewQuotationRepository(db *sql.DB) repository.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, q *domain.Quotation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO quotations (id, customer_id, customer_name, customer_email, status, subtotal_cents,
	          tax_cents, total_cents, valid_until, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := tx.ExecContext(ctx, query,
		q.ID, q.CustomerID, q.CustomerName, q.CustomerEmail, q.Status, q.SubtotalCents,
		q.TaxCents, q.TotalCents, q.ValidUntil, q.Notes, q.CreatedAt); err != nil {
		return err
	}

	if err := insertLines(ctx, tx, "quotation_lines", "quotation_id", q.ID, q.Lines); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *quotationRepository) GetByID(ctx context.Context, id string) (*domain.Quotation, error) {
	q := &domain.Quotation{}
	query := `SELECT id, customer_id, customer_name, customer_email, status, subtotal_cents,
	          tax_cents, total_cents, valid_until, notes, created_at FROM quotations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.CustomerID, &q.CustomerName, &q.CustomerEmail, &q.Status, &q.SubtotalCents,
		&q.TaxCents, &q.TotalCents, &q.ValidUntil, &q.Notes, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quotation %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	q.Lines, err = loadLines(ctx, r.db, "quotation_lines", "quotation_id", id)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *quotationRepository) UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE quotations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("quotation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *quotationRepository) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Quotation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, customer_name, customer_email, status, subtotal_cents,
	          tax_cents, total_cents, valid_until, notes, created_at FROM quotations WHERE customer_id = $1`

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM ("+query+") as sub", customerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3"
	rows, err := r.db.QueryContext(ctx, query, customerID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var quotations []domain.Quotation
	for rows.Next() {
		var q domain.Quotation
		if err := rows.Scan(&q.ID, &q.CustomerID, &q.CustomerName, &q.CustomerEmail, &q.Status, &q.SubtotalCents,
			&q.TaxCents, &q.TotalCents, &q.ValidUntil, &q.Notes, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		quotations = append(quotations, q)
	}
	return quotations, count, nil
}

func (r *quotationRepository) ExpireSent(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE quotations SET status = $1 WHERE status = $2 AND valid_until < $3`,
		domain.QuotationStatusExpired, domain.QuotationStatusSent, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
