package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopstack/storefront-api/internal/api/handler"
	"github.com/shopstack/storefront-api/internal/api/middleware"
	"github.com/shopstack/storefront-api/internal/auth"
	"github.com/shopstack/storefront-api/internal/core/service"
	"github.com/shopstack/storefront-api/internal/infrastructure/chat"
	"github.com/shopstack/storefront-api/internal/infrastructure/config"
	mongostore "github.com/shopstack/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/shopstack/storefront-api/internal/infrastructure/db/redis"
	"github.com/shopstack/storefront-api/internal/infrastructure/payment"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Single coherent CORS policy: one configured origin, credentials
	// enabled so the session cookie crosses.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	searchCache := redisstore.NewSearchCache(rdb)

	accountService := service.NewAccountService(userRepo, codec, log)
	catalogService := service.NewCatalogService(productRepo, searchCache, log)
	checkoutService := service.NewStripeCheckoutService(payment.NewStripeClient(payment.Config{
		SecretKey:  cfg.Stripe.SecretKey,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}), log)
	chatService := service.NewChatProxyService(chat.NewMistralClient(chat.Config{
		APIKey: cfg.Mistral.APIKey,
		Model:  cfg.Mistral.Model,
	}), log)

	authHandler := handler.NewAuthHandler(accountService, codec.TTL(), cfg.IsProduction())
	productHandler := handler.NewProductHandler(catalogService)
	paymentHandler := handler.NewPaymentHandler(checkoutService)
	chatHandler := handler.NewChatHandler(chatService)
	requireAuth := middleware.Auth(codec)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, requireAuth)

	// --- Catalog / payment / chat ---
	e.GET("/api/products/search", productHandler.Search)
	e.POST("/api/v1/payment/create-checkout-session", paymentHandler.CreateCheckoutSession)
	e.POST("/api/v1/chat", chatHandler.Chat)

	// --- Health probes and ops (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
