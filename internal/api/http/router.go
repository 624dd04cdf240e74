package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes wires all handlers onto the router under /api.
func RegisterRoutes(router *mux.Router, products *ProductHandler, quotations *QuotationHandler, orders *OrderHandler, invoices *InvoiceHandler) {
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products", products.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", products.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/quotations", quotations.Create).Methods(http.MethodPost)
	api.HandleFunc("/quotations", quotations.List).Methods(http.MethodGet)
	api.HandleFunc("/quotations/{id}", quotations.Get).Methods(http.MethodGet)
	api.HandleFunc("/quotations/{id}/send", quotations.Send).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/reject", quotations.Reject).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/convert", quotations.Convert).Methods(http.MethodPost)

	api.HandleFunc("/orders", orders.List).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", orders.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/send", orders.Send).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/confirm", orders.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/cancel", orders.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/pickup", orders.Pickup).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/return", orders.Return).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/invoice", invoices.GetForOrder).Methods(http.MethodGet)

	api.HandleFunc("/invoices", invoices.List).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}", invoices.Get).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id}/payments", invoices.ApplyPayment).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}/payments", invoices.ListPayments).Methods(http.MethodGet)
}
