package http

import (
	"context"
	"net/http"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type CheckoutService interface {
	ProcessCart(ctx context.Context, req domain.CheckoutRequest) (domain.Cart, error)
}

type CartHandler struct {
	carts    port.CartRepository
	checkout CheckoutService
}

func NewCartHandler(carts port.CartRepository, checkout CheckoutService) *CartHandler {
	return &CartHandler{
		carts:    carts,
		checkout: checkout,
	}
}

func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	carts, err := h.carts.ListCarts(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lo.Map(carts, func(c domain.Cart, _ int) CartDTO {
		return mapCartToDTO(c)
	}))
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	cart, err := h.carts.GetCart(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapCartToDTO(cart))
}

// Create stores a cart without invoicing it.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCartRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.ProductoIDs) == 0 {
		handleDomainError(w, r, domain.NewInvalidRequest("at least one product required"))
		return
	}

	cart, err := h.carts.CreateCart(r.Context(), req.IDCliente, req.ProductoIDs)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapCartToDTO(cart))
}

func (h *CartHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessCartRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	cart, err := h.checkout.ProcessCart(r.Context(), mapDTOToCheckoutRequest(req))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapCartToDTO(cart))
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	var req UpdateCartRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	cart, err := h.carts.UpdateCart(r.Context(), id, req.IDCliente)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapCartToDTO(cart))
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	if err := h.carts.DeleteCart(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
