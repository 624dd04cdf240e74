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

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, customer_id, customer_name, customer_email, vendor_id, quotation_id, status,
	subtotal_cents, tax_cents, total_cents, security_deposit_cents, pickup_date, return_date,
	actual_return_date, late_fee_cents, notes, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, o *domain.RentalOrder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO rental_orders (` + orderColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	if _, err := tx.ExecContext(ctx, query,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerEmail, o.VendorID, o.QuotationID, o.Status,
		o.SubtotalCents, o.TaxCents, o.TotalCents, o.SecurityDepositCents, o.PickupDate, o.ReturnDate,
		o.ActualReturnDate, o.LateFeeCents, o.Notes, o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}

	if err := insertLines(ctx, tx, "order_lines", "order_id", o.ID, o.Lines); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *orderRepository) scanOrder(row interface{ Scan(...interface{}) error }) (*domain.RentalOrder, error) {
	o := &domain.RentalOrder{}
	var quotationID sql.NullString
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.VendorID, &quotationID, &o.Status,
		&o.SubtotalCents, &o.TaxCents, &o.TotalCents, &o.SecurityDepositCents, &o.PickupDate, &o.ReturnDate,
		&o.ActualReturnDate, &o.LateFeeCents, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.QuotationID = quotationID.String
	return o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.RentalOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM rental_orders WHERE id = $1`
	o, err := r.scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	o.Lines, err = loadLines(ctx, r.db, "order_lines", "order_id", id)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, "order", id)
}

func (r *orderRepository) SetPickup(ctx context.Context, id string, status domain.OrderStatus, pickupDate time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_orders SET status = $1, pickup_date = $2, updated_at = $3 WHERE id = $4`,
		status, pickupDate, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, "order", id)
}

func (r *orderRepository) Settle(ctx context.Context, id string, status domain.OrderStatus, actualReturn time.Time, lateFeeCents int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_orders SET status = $1, actual_return_date = $2, late_fee_cents = $3, updated_at = $4 WHERE id = $5`,
		status, actualReturn, lateFeeCents, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, "order", id)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string, status string, page, pageSize int32) ([]domain.RentalOrder, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + orderColumns + ` FROM rental_orders WHERE customer_id = $1`

	args := []interface{}{customerID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM ("+query+") as sub", args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.RentalOrder
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, count, nil
}

func (r *orderRepository) ListDueForReturn(ctx context.Context, from, to time.Time) ([]domain.RentalOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM rental_orders
	          WHERE status = $1 AND return_date >= $2 AND return_date < $3
	          ORDER BY return_date`
	rows, err := r.db.QueryContext(ctx, query, domain.OrderStatusActive, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.RentalOrder
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func requireRow(res sql.Result, kind, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}
