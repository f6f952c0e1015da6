package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterConfig struct {
	RequestTimeout time.Duration
	AllowedOrigins []string

	Observer       RequestObserver
	MetricsHandler http.Handler
}

type Handlers struct {
	Products       *ProductHandler
	Customers      *CustomerHandler
	Carts          *CartHandler
	Invoices       *InvoiceHandler
	PaymentMethods *PaymentMethodHandler
}

func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.Observer != nil {
		r.Use(MetricsMiddleware(cfg.Observer))
	}
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/productos", func(r chi.Router) {
		r.Get("/", h.Products.List)
		r.Post("/", h.Products.Create)
		r.Get("/{id}", h.Products.Get)
		r.Put("/{id}", h.Products.Update)
		r.Delete("/{id}", h.Products.Delete)
	})

	r.Route("/clientes", func(r chi.Router) {
		r.Get("/", h.Customers.List)
		r.Post("/", h.Customers.Create)
		r.Get("/{id}", h.Customers.Get)
		r.Put("/{id}", h.Customers.Update)
		r.Delete("/{id}", h.Customers.Delete)
	})

	r.Route("/carritos", func(r chi.Router) {
		r.Get("/", h.Carts.List)
		r.Post("/", h.Carts.Create)
		r.Post("/procesar", h.Carts.Process)
		r.Get("/{id}", h.Carts.Get)
		r.Put("/{id}", h.Carts.Update)
		r.Delete("/{id}", h.Carts.Delete)
	})

	r.Route("/facturas", func(r chi.Router) {
		r.Get("/", h.Invoices.List)
		r.Post("/", h.Invoices.Create)
		r.Get("/{id}", h.Invoices.Get)
		r.Delete("/{id}", h.Invoices.Delete)
		r.Get("/{id}/pdf", h.Invoices.PDF)
		r.Post("/{id}/email", h.Invoices.Email)
	})

	r.Route("/metodos-pago", func(r chi.Router) {
		r.Get("/", h.PaymentMethods.List)
		r.Get("/{id}", h.PaymentMethods.Get)
	})

	return otelhttp.NewHandler(r, "indukitchen")
}
