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

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, vendor_id, name, description, category, cost_price_cents, sales_price_cents,
	hourly_cents, daily_cents, weekly_cents, monthly_cents, yearly_cents,
	quantity_on_hand, quantity_with_customer, is_rentable, is_published, created_at`

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (` + productColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.VendorID, p.Name, p.Description, p.Category, p.CostPriceCents, p.SalesPriceCents,
		p.RentalRates.HourlyCents, p.RentalRates.DailyCents, p.RentalRates.WeeklyCents,
		p.RentalRates.MonthlyCents, p.RentalRates.YearlyCents,
		p.QuantityOnHand, p.QuantityWithCustomer, p.IsRentable, p.IsPublished, time.Now())
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Category, &p.CostPriceCents, &p.SalesPriceCents,
		&p.RentalRates.HourlyCents, &p.RentalRates.DailyCents, &p.RentalRates.WeeklyCents,
		&p.RentalRates.MonthlyCents, &p.RentalRates.YearlyCents,
		&p.QuantityOnHand, &p.QuantityWithCustomer, &p.IsRentable, &p.IsPublished, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, description=$2, category=$3, cost_price_cents=$4, sales_price_cents=$5,
	          hourly_cents=$6, daily_cents=$7, weekly_cents=$8, monthly_cents=$9, yearly_cents=$10,
	          quantity_on_hand=$11, is_rentable=$12, is_published=$13 WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Category, p.CostPriceCents, p.SalesPriceCents,
		p.RentalRates.HourlyCents, p.RentalRates.DailyCents, p.RentalRates.WeeklyCents,
		p.RentalRates.MonthlyCents, p.RentalRates.YearlyCents,
		p.QuantityOnHand, p.IsRentable, p.IsPublished, p.ID)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *productRepository) List(ctx context.Context, vendorID string, page, pageSize int32) ([]domain.Product, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + productColumns + ` FROM products`

	args := []interface{}{}
	argIdx := 1
	if vendorID != "" {
		query += fmt.Sprintf(" WHERE vendor_id = $%d", argIdx)
		args = append(args, vendorID)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Category, &p.CostPriceCents, &p.SalesPriceCents,
			&p.RentalRates.HourlyCents, &p.RentalRates.DailyCents, &p.RentalRates.WeeklyCents,
			&p.RentalRates.MonthlyCents, &p.RentalRates.YearlyCents,
			&p.QuantityOnHand, &p.QuantityWithCustomer, &p.IsRentable, &p.IsPublished, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, count, nil
}

func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int32) error {
	// The WHERE guard keeps quantity_with_customer inside
	// [0, quantity_on_hand]; zero rows affected means the move would have
	// violated the invariant (or the product is gone).
	query := `UPDATE products SET quantity_with_customer = quantity_with_customer + $1
	          WHERE id = $2
	            AND quantity_with_customer + $1 >= 0
	            AND quantity_with_customer + $1 <= quantity_on_hand`
	res, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrInsufficientStock)
	}
	return nil
}
