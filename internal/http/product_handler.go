package http

import (
	"net/http"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type ProductHandler struct {
	products port.ProductRepository
}

func NewProductHandler(products port.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lo.Map(products, func(p domain.Product, _ int) ProductDTO {
		return mapProductToDTO(p)
	}))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapProductToDTO(product))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.products.InsertProduct(r.Context(), mapDTOToProduct(req))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapProductToDTO(product))
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	var req ProductDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = id

	product, err := h.products.UpdateProduct(r.Context(), mapDTOToProduct(req))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapProductToDTO(product))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
