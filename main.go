package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/nikolayk812/indukitchen/internal/cache"
	"github.com/nikolayk812/indukitchen/internal/checkout"
	"github.com/nikolayk812/indukitchen/internal/config"
	"github.com/nikolayk812/indukitchen/internal/db"
	h "github.com/nikolayk812/indukitchen/internal/http"
	"github.com/nikolayk812/indukitchen/internal/invoicing"
	"github.com/nikolayk812/indukitchen/internal/metrics"
	"github.com/nikolayk812/indukitchen/internal/notify"
	"github.com/nikolayk812/indukitchen/internal/port"
	"github.com/nikolayk812/indukitchen/internal/render"
	"github.com/nikolayk812/indukitchen/internal/repository"
	"github.com/nikolayk812/indukitchen/internal/template"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("indukitchen stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("db.Migrate: %w", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	products := repository.NewProduct(pool)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("redis is not reachable, product reads fall through to postgres",
				"method", "main.run",
				"addr", cfg.RedisAddr,
				"error", err)
		}

		products = cache.NewProductRepository(products, cache.NewRedisCache(client, cfg.ProductCacheTTL))
	}

	notifier, err := newNotifier(cfg)
	if err != nil {
		return fmt.Errorf("newNotifier: %w", err)
	}

	emails, err := template.NewEngine()
	if err != nil {
		return fmt.Errorf("template.NewEngine: %w", err)
	}

	invoices := repository.NewInvoice(pool)
	renderer := render.NewPDFRenderer(render.Config{
		LogoPath: cfg.LogoPath,
		Timeout:  cfg.RenderTimeout,
		Compress: true,
	})

	invoiceService, err := invoicing.NewService(invoices, renderer, notifier, emails)
	if err != nil {
		return fmt.Errorf("invoicing.NewService: %w", err)
	}

	checkoutService, err := checkout.NewService(repository.NewTransactor(pool), invoiceService, metrics.NewCheckoutMetrics(reg))
	if err != nil {
		return fmt.Errorf("checkout.NewService: %w", err)
	}

	invoiceHandler := h.NewInvoiceHandler(invoices, invoiceService)

	router := h.NewRouter(h.RouterConfig{
		RequestTimeout: cfg.RequestTimeout,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Observer:       metrics.NewServerMetrics(reg),
		MetricsHandler: metrics.Handler(reg),
	}, h.Handlers{
		Products:       h.NewProductHandler(products),
		Customers:      h.NewCustomerHandler(repository.NewCustomer(pool)),
		Carts:          h.NewCartHandler(repository.NewCart(pool), checkoutService),
		Invoices:       invoiceHandler,
		PaymentMethods: h.NewPaymentMethodHandler(repository.NewPaymentMethod(pool)),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "method", "main.run", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down", "method", "main.run")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	// in-flight invoice emails still use the pool
	invoiceHandler.Wait()

	slog.Info("server exited", "method", "main.run")

	return nil
}

func newNotifier(cfg config.Config) (port.Notifier, error) {
	var transport notify.Transport = notify.LogTransport{}

	if cfg.SendGridAPIKey != "" {
		sg, err := notify.NewSendGridTransport(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName)
		if err != nil {
			return nil, fmt.Errorf("notify.NewSendGridTransport: %w", err)
		}
		transport = sg
	} else {
		slog.Warn("SENDGRID_API_KEY is not set, invoice emails are only logged", "method", "main.newNotifier")
	}

	mailerCfg := notify.DefaultMailerConfig()
	mailerCfg.SendTimeout = cfg.SendTimeout

	mailer, err := notify.NewMailer(transport, mailerCfg)
	if err != nil {
		return nil, fmt.Errorf("notify.NewMailer: %w", err)
	}

	return mailer, nil
}
