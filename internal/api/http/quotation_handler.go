package http

import (
	"net/http"

	"rentdesk-backend/internal/domain"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
)

type QuotationHandler struct {
	quotations service.QuotationService
}

func NewQuotationHandler(quotations service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotations: quotations}
}

func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var q domain.Quotation
	if !decodeBody(w, r, &q) {
		return
	}
	if err := h.quotations.CreateQuotation(r.Context(), &q); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotations.GetQuotation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) Send(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotations.SendQuotation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotations.RejectQuotation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *QuotationHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		VendorID string `json:"vendor_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	order, err := h.quotations.ConvertToOrder(r.Context(), mux.Vars(r)["id"], req.VendorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	quotations, total, err := h.quotations.ListQuotations(r.Context(), r.URL.Query().Get("customer_id"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: quotations, Total: total})
}
