package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("order x: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("order x: draft -> active: %w", domain.ErrInvalidTransition), http.StatusConflict},
		{fmt.Errorf("quote x: %w", domain.ErrAlreadyConverted), http.StatusConflict},
		{fmt.Errorf("prod x: %w", domain.ErrInsufficientStock), http.StatusConflict},
		{fmt.Errorf("payment of -1: %w", domain.ErrInvalidAmount), http.StatusBadRequest},
		{fmt.Errorf("%w: fortnightly", domain.ErrInvalidPeriod), http.StatusBadRequest},
		{fmt.Errorf("%w", domain.ErrInvalidRange), http.StatusBadRequest},
		{fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error: %v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestPagination(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders?page=3&page_size=50", nil)
	page, pageSize := pagination(r)
	assert.Equal(t, int32(3), page)
	assert.Equal(t, int32(50), pageSize)

	r = httptest.NewRequest(http.MethodGet, "/api/orders?page=-1&page_size=9999", nil)
	page, pageSize = pagination(r)
	assert.Equal(t, int32(1), page)
	assert.Equal(t, int32(20), pageSize)
}

// stubInvoiceService returns canned results for handler tests.
type stubInvoiceService struct {
	service.InvoiceService
	applied *domain.Invoice
	err     error
}

func (s *stubInvoiceService) ApplyPayment(ctx context.Context, invoiceID string, amountCents int64, method domain.PaymentMethod) (*domain.Invoice, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.applied, nil
}

func TestInvoiceHandler_ApplyPayment(t *testing.T) {
	router := mux.NewRouter()
	h := NewInvoiceHandler(&stubInvoiceService{applied: &domain.Invoice{ID: "inv-1", Status: domain.InvoiceStatusPaid}})
	router.HandleFunc("/api/invoices/{id}/payments", h.ApplyPayment).Methods(http.MethodPost)

	body := bytes.NewBufferString(`{"amount_cents": 40000, "method": "upi"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid"`)
}

func TestInvoiceHandler_ApplyPayment_BadBody(t *testing.T) {
	router := mux.NewRouter()
	h := NewInvoiceHandler(&stubInvoiceService{})
	router.HandleFunc("/api/invoices/{id}/payments", h.ApplyPayment).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/invoices/inv-1/payments", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
