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

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, order_id, customer_id, customer_name, customer_email, subtotal_cents,
	tax_cents, security_deposit_cents, late_fee_cents, total_cents, amount_paid_cents,
	amount_due_cents, status, payment_method, due_date, paid_at, created_at`

func (r *invoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.OrderID, inv.CustomerID, inv.CustomerName, inv.CustomerEmail, inv.SubtotalCents,
		inv.TaxCents, inv.SecurityDepositCents, inv.LateFeeCents, inv.TotalCents, inv.AmountPaidCents,
		inv.AmountDueCents, inv.Status, inv.PaymentMethod, inv.DueDate, inv.PaidAt, inv.CreatedAt)
	return err
}

func (r *invoiceRepository) scanInvoice(row interface{ Scan(...interface{}) error }) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	var method sql.NullString
	err := row.Scan(
		&inv.ID, &inv.OrderID, &inv.CustomerID, &inv.CustomerName, &inv.CustomerEmail, &inv.SubtotalCents,
		&inv.TaxCents, &inv.SecurityDepositCents, &inv.LateFeeCents, &inv.TotalCents, &inv.AmountPaidCents,
		&inv.AmountDueCents, &inv.Status, &method, &inv.DueDate, &inv.PaidAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	inv.PaymentMethod = domain.PaymentMethod(method.String)
	return inv, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := r.scanInvoice(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	inv.Items, err = loadLines(ctx, r.db, "order_lines", "order_id", inv.OrderID)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE order_id = $1`
	inv, err := r.scanInvoice(r.db.QueryRowContext(ctx, query, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("invoice for order %s: %w", orderID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	inv.Items, err = loadLines(ctx, r.db, "order_lines", "order_id", inv.OrderID)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *invoiceRepository) UpdatePayment(ctx context.Context, inv *domain.Invoice) error {
	query := `UPDATE invoices SET amount_paid_cents=$1, amount_due_cents=$2, status=$3,
	          payment_method=$4, paid_at=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query,
		inv.AmountPaidCents, inv.AmountDueCents, inv.Status, inv.PaymentMethod, inv.PaidAt, inv.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "invoice", inv.ID)
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE invoices SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, "invoice", id)
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID string, page, pageSize int32) ([]domain.Invoice, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1`

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

	var invoices []domain.Invoice
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, count, nil
}

func (r *invoiceRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1 WHERE status IN ($2, $3) AND amount_due_cents > 0 AND due_date < $4`,
		domain.InvoiceStatusOverdue, domain.InvoiceStatusSent, domain.InvoiceStatusPartial, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payment_records (id, invoice_id, amount_cents, method, received_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.InvoiceID, rec.AmountCents, rec.Method, rec.ReceivedAt)
	return err
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]domain.PaymentRecord, error) {
	query := `SELECT id, invoice_id, amount_cents, method, received_at
	          FROM payment_records WHERE invoice_id = $1 ORDER BY received_at`
	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := rows.Scan(&rec.ID, &rec.InvoiceID, &rec.AmountCents, &rec.Method, &rec.ReceivedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
