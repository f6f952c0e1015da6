package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceService interface {
	RenderPDF(ctx context.Context, id int64) ([]byte, domain.Invoice, error)
	EmailInvoice(ctx context.Context, id int64, to, subject, body string) error
	Total(ctx context.Context, id int64) (decimal.Decimal, error)
}

type InvoiceHandler struct {
	invoices port.InvoiceRepository
	service  InvoiceService

	// wg tracks emails still being sent after their request returned.
	wg sync.WaitGroup
}

func NewInvoiceHandler(invoices port.InvoiceRepository, service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		service:  service,
	}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.ListInvoices(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, lo.Map(invoices, func(i domain.Invoice, _ int) InvoiceDTO {
		return mapInvoiceToDTO(i)
	}))
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	invoice, err := h.invoices.GetInvoice(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	total, err := h.service.Total(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	dto := mapInvoiceToDTO(invoice)
	dto.Total = total.StringFixedBank(2)

	respondJSON(w, http.StatusOK, dto)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.IDCarrito <= 0 {
		handleDomainError(w, r, domain.NewInvalidRequest("cart id required"))
		return
	}

	invoice, err := h.invoices.CreateInvoice(r.Context(), req.IDCarrito, req.IDMetodoPago)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, mapInvoiceToDTO(invoice))
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	if err := h.invoices.DeleteInvoice(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	data, invoice, err := h.service.RenderPDF(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", invoice.PDFName()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write pdf", "method", "InvoiceHandler.PDF", "id", id, "error", err)
	}
}

// Email accepts the request once the invoice exists; rendering and delivery happen in the background.
func (h *InvoiceHandler) Email(w http.ResponseWriter, r *http.Request) {
	id, ok := parseInt64Param(w, r, "id")
	if !ok {
		return
	}

	var req EmailRequestDTO
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.invoices.GetInvoice(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	requestID := middleware.GetReqID(r.Context())

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		if err := h.service.EmailInvoice(ctx, id, req.To, req.Subject, req.Body); err != nil {
			slog.WarnContext(ctx, "invoice email failed",
				"method", "InvoiceHandler.Email",
				"request_id", requestID,
				"invoice_id", id,
				"error", err)
		}
	}()

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// Wait blocks until background emails finish.
func (h *InvoiceHandler) Wait() {
	h.wg.Wait()
}

