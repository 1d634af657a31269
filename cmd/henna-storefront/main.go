package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adnanmuhammad4393/henna-storefront/internal/api/handlers"
	"github.com/adnanmuhammad4393/henna-storefront/internal/api/middleware"
	"github.com/adnanmuhammad4393/henna-storefront/internal/cart"
	"github.com/adnanmuhammad4393/henna-storefront/internal/catalog"
	"github.com/adnanmuhammad4393/henna-storefront/internal/checkout"
	"github.com/adnanmuhammad4393/henna-storefront/internal/config"
	"github.com/adnanmuhammad4393/henna-storefront/internal/health"
	"github.com/adnanmuhammad4393/henna-storefront/internal/metrics"
	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/adnanmuhammad4393/henna-storefront/internal/notification"
	"github.com/adnanmuhammad4393/henna-storefront/pkg/razorpay"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Product catalog
	products, err := catalog.Load(cfg.Store.CatalogPath)
	if err != nil {
		slog.Error("failed to load product catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Notification sinks: log always, business email when configured
	notifier := notification.NewLogNotifier(logger)
	if cfg.SendGrid.APIKey != "" && cfg.SendGrid.BusinessEmail != "" {
		notifier = notification.NewMultiNotifier(
			notifier,
			notification.NewEmailNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, cfg.SendGrid.BusinessEmail, logger),
		)
	}

	store := cart.NewStore(notifier)

	// Active payment strategy is a deployment choice, never a runtime one
	var strategy checkout.PaymentStrategy

	switch cfg.Checkout.Strategy {
	case string(models.StrategyUPIDeepLink):
		strategy = checkout.NewUPIStrategy(cfg.UPI.PayeeAddress, cfg.UPI.PayeeName)
	case string(models.StrategyGateway):
		gatewayClient := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
		strategy = checkout.NewGatewayStrategy(gatewayClient, cfg.Razorpay.KeyID, cfg.Store.Name, cfg.Razorpay.ThemeColor, cfg.Razorpay.CreateGatewayOrder)
	default:
		slog.Error("unknown checkout strategy", slog.String("strategy", cfg.Checkout.Strategy))
		os.Exit(1)
	}

	orchestrator := checkout.NewOrchestrator(store, strategy, notifier, cfg.Store.WhatsAppNumber, cfg.Checkout.AttemptTimeout)

	cartHandler := handlers.NewCartHandler(store, products)
	productHandler := handlers.NewProductHandler(products)
	checkoutHandler := handlers.NewCheckoutHandler(orchestrator)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("failed to set up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized",
		slog.String("env", cfg.Env),
		slog.String("strategy", cfg.Checkout.Strategy),
		slog.Int("products", len(products.List())),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/sessions", cartHandler.CreateSession())
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("GET /api/v1/cart/summary", cartHandler.Summary())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/cart/saved", cartHandler.SaveForLater())
	routerMux.HandleFunc("POST /api/v1/cart/saved/{id}/move", cartHandler.MoveToCart())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Open())
	routerMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.State())
	routerMux.HandleFunc("POST /api/v1/checkout/details", checkoutHandler.SubmitDetails())
	routerMux.HandleFunc("POST /api/v1/checkout/confirm", checkoutHandler.Confirm())
	routerMux.HandleFunc("POST /api/v1/checkout/callback", checkoutHandler.GatewayCallback())
	routerMux.HandleFunc("POST /api/v1/checkout/dismiss", checkoutHandler.GatewayDismiss())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = metrics.Middleware(routerMux)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "henna-storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("shutdown signal received, stopping the server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("server shut down gracefully")
	}
}
