package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/indukitchen/internal/domain"
)

const maxRequestBodySize = 1 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode response", "method", "respondJSON", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError maps domain errors to HTTP statuses, anything unknown is a 500.
func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalid *domain.InvalidRequestError
		missing *domain.ReferentialIntegrityError
	)

	switch {
	case errors.As(err, &invalid):
		respondError(w, http.StatusBadRequest, "invalid_request", invalid.Error())
	case errors.As(err, &missing):
		respondError(w, http.StatusUnprocessableEntity, "referential_integrity", missing.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrConflict):
		respondError(w, http.StatusConflict, "conflict", "resource is referenced or already exists")
	case errors.Is(err, domain.ErrDelivery):
		respondError(w, http.StatusBadGateway, "delivery_failed", "email delivery failed")
	case errors.Is(err, domain.ErrRender):
		logServerError(r, err)
		respondError(w, http.StatusInternalServerError, "render_failed", "invoice rendering failed")
	default:
		logServerError(r, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func logServerError(r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", "handleDomainError",
		"request_id", middleware.GetReqID(r.Context()),
		"path", r.URL.Path,
		"error", err)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}

	return true
}

func parseInt64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_id", fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}

	return id, true
}
