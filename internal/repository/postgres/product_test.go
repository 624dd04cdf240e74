package postgres

import (
	"context"
	"testing"

	"rentdesk-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProductRepository_AdjustStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)
	ctx := context.Background()

	t.Run("Moves stock out", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET quantity_with_customer").
			WithArgs(int32(2), "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.AdjustStock(ctx, "prod-1", 2))
	})

	t.Run("Guard rejects over-allocation", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET quantity_with_customer").
			WithArgs(int32(50), "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AdjustStock(ctx, "prod-1", 50)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProductRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
		WithArgs("prod-x").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "prod-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
