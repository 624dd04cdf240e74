package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	invoices service.InvoiceService
}

func NewInvoiceHandler(invoices service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.GetInvoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) GetForOrder(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoices.GetInvoiceForOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AmountCents int64                `json:"amount_cents"`
		Method      domain.PaymentMethod `json:"method"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	inv, err := h.invoices.ApplyPayment(r.Context(), mux.Vars(r)["id"], req.AmountCents, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	records, err := h.invoices.ListPayments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	invoices, total, err := h.invoices.ListInvoices(r.Context(), r.URL.Query().Get("customer_id"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: invoices, Total: total})
}
