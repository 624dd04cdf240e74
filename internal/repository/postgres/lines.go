package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentdesk-backend/internal/domain"
)

// Quotation and order lines share a shape; only the parent table differs.
// Lines are immutable once written, so there is no update path.

func insertLines(ctx context.Context, tx *sql.Tx, table, parentCol, parentID string, lines []domain.RentalOrderLine) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, %s, product_id, product_name, quantity, rental_period,
	          start_date, end_date, price_per_period_cents, total_price_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, table, parentCol)
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, query,
			line.ID, parentID, line.ProductID, line.ProductName, line.Quantity, line.RentalPeriod,
			line.StartDate, line.EndDate, line.PricePerPeriodCents, line.TotalPriceCents); err != nil {
			return fmt.Errorf("inserting %s: %w", table, err)
		}
	}
	return nil
}

func loadLines(ctx context.Context, db *sql.DB, table, parentCol, parentID string) ([]domain.RentalOrderLine, error) {
	query := fmt.Sprintf(`SELECT id, product_id, product_name, quantity, rental_period,
	          start_date, end_date, price_per_period_cents, total_price_cents
	          FROM %s WHERE %s = $1 ORDER BY id`, table, parentCol)
	rows, err := db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.RentalOrderLine
	for rows.Next() {
		var line domain.RentalOrderLine
		if err := rows.Scan(&line.ID, &line.ProductID, &line.ProductName, &line.Quantity, &line.RentalPeriod,
			&line.StartDate, &line.EndDate, &line.PricePerPeriodCents, &line.TotalPriceCents); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
