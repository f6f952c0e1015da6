package http

import (
	"math"
	"net/http"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
)

type PaymentMethodHandler struct {
	methods port.PaymentMethodRepository
}

func NewPaymentMethodHandler(methods port.PaymentMethodRepository) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods}
}

func (h *PaymentMethodHandler) List(w http.ResponseWriter, r *http.Request) {
	methods, err := h.methods.ListPaymentMethods(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lo.Map(methods, func(pm domain.PaymentMethod, _ int) PaymentMethodDTO {
		return mapPaymentMethodToDTO(pm)
	}))
}

func (h *PaymentMethodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	if id > math.MaxInt32 {
		handleDomainError(w, r, domain.NotFound("payment_method", id))
		return
	}

	method, err := h.methods.GetPaymentMethod(r.Context(), int32(id))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, mapPaymentMethodToDTO(method))
}
