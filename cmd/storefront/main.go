package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/backend"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/ratelimit"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Storefront API
//	@version					1.0
//	@description				Backend for the storefront single-page app: cart sync, catalog, favorites, checkout and account.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	ProfileToken
//	@in							header
//	@name						Authorization
//	@description				Profile token issued in the X-Profile-Token header, sent as "Bearer <token>".
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Settings store
	conns, err := storage.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error opening the settings store", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := conns.Close(); err != nil {
			slog.Error("⚠️ Error closing the settings store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Settings store closed")
		}
	}()

	// Backend API
	api, err := backend.NewClient(cfg.Backend.BaseURL, backend.NewHTTPClient(cfg.Backend.Timeout))
	if err != nil {
		slog.Error("❌ Invalid backend configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiter := ratelimit.Disabled()
	if conns.Redis != nil {
		limiter = ratelimit.NewRedisLimiter(conns.Redis, cfg.RateConfig)
	}

	notifier := service.NewLogNotifier()
	if cfg.SendGrid.APIKey != "" {
		notifier = service.NewEmailNotifier(sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}

	identityService := service.NewIdentityService(api, cfg.Identity)
	cartService := service.NewCartService(api, identityService, cfg.Storage)
	catalogService := service.NewCatalogService(api, cfg.Catalog)
	favoritesService := service.NewFavoritesService(api)
	checkoutService := service.NewCheckoutService(cartService, api, api, notifier)
	accountService := service.NewAccountService(api, api, limiter)

	sessionHandler := handlers.NewSessionHandler(identityService)
	cartHandler := handlers.NewCartHandler(cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	accountHandler := handlers.NewAccountHandler(accountService, cartService)

	profileSession := middleware.NewProfileSession(cfg.Security, conns.Store)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Backend:  api,
		Redis:    conns.Redis != nil,
		Postgres: conns.DB != nil,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver), slog.String("backend", cfg.Backend.BaseURL))

	// API routes
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/v1/session", sessionHandler.GetSession())

	apiMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	apiMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	apiMux.HandleFunc("POST /api/v1/cart/sync", cartHandler.SyncCart())
	apiMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	apiMux.HandleFunc("PUT /api/v1/cart/items/{id}", cartHandler.UpdateItem())
	apiMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	apiMux.HandleFunc("POST /api/v1/cart/toggle", cartHandler.TogglePanel())
	apiMux.HandleFunc("POST /api/v1/cart/open", cartHandler.OpenPanel())
	apiMux.HandleFunc("POST /api/v1/cart/close", cartHandler.ClosePanel())

	apiMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	apiMux.HandleFunc("GET /api/v1/products/featured", catalogHandler.FeaturedProducts())
	apiMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	apiMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	apiMux.HandleFunc("GET /api/v1/categories/{id}/products", catalogHandler.CategoryProducts())

	apiMux.HandleFunc("GET /api/v1/favorites", favoritesHandler.ListFavorites())
	apiMux.HandleFunc("POST /api/v1/favorites/toggle", favoritesHandler.ToggleFavorite())
	apiMux.HandleFunc("GET /api/v1/favorites/{id}", favoritesHandler.IsFavorite())

	apiMux.HandleFunc("GET /api/v1/checkout", checkoutHandler.GetState())
	apiMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.PlaceOrder())
	apiMux.HandleFunc("POST /api/v1/checkout/contact", checkoutHandler.SubmitContact())
	apiMux.HandleFunc("POST /api/v1/checkout/shipping", checkoutHandler.SubmitShipping())
	apiMux.HandleFunc("POST /api/v1/checkout/back", checkoutHandler.Back())

	apiMux.HandleFunc("POST /api/v1/account/login", accountHandler.Login())
	apiMux.HandleFunc("POST /api/v1/account/register", accountHandler.Register())
	apiMux.HandleFunc("POST /api/v1/account/logout", accountHandler.Logout())
	apiMux.HandleFunc("GET /api/v1/account/profile", accountHandler.GetProfile())
	apiMux.HandleFunc("PUT /api/v1/account/profile", accountHandler.UpdateProfile())
	apiMux.HandleFunc("GET /api/v1/account/orders", accountHandler.ListOrders())
	apiMux.HandleFunc("GET /api/v1/account/orders/{id}", accountHandler.GetOrder())
	apiMux.HandleFunc("POST /api/v1/account/orders/{id}/cancel", accountHandler.CancelOrder())

	// Middleware chaining: only API routes get a profile session
	var apiHandler http.Handler = apiMux
	apiHandler = metrics.Middleware(apiMux)(apiHandler)
	apiHandler = profileSession.Handle(apiHandler)

	routerMux := http.NewServeMux()
	routerMux.Handle("/api/v1/", apiHandler)
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = routerMux
	handler = middleware.CORS(cfg.CORS.AllowOrigins)(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() { // Starts the HTTP server in a new goroutine so it doesn't block the main thread.

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}
