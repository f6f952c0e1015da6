package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type CustomerHandler struct {
	customers port.CustomerRepository
}

func NewCustomerHandler(customers port.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lo.Map(customers, func(c domain.Customer, _ int) CustomerDTO {
		return mapCustomerToDTO(c)
	}))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapCustomerToDTO(customer))
}

// Create upserts, an existing customer with the same cedula is overwritten.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.customers.SaveCustomer(r.Context(), mapDTOToCustomer(req))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapCustomerToDTO(customer))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req CustomerDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Cedula = id

	if _, err := h.customers.GetCustomer(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	customer, err := h.customers.SaveCustomer(r.Context(), mapDTOToCustomer(req))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapCustomerToDTO(customer))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
