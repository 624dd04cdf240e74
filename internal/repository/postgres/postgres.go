package postgres

import (
	"database/sql"

	"rentdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProductRepository
	repository.QuotationRepository
	repository.OrderRepository
	repository.InvoiceRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		ProductRepository:   NewProductRepository(db),
		QuotationRepository: NewQuotationRepository(db),
		OrderRepository:     NewOrderRepository(db),
		InvoiceRepository:   NewInvoiceRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
	}
}
