package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/popsolutions/odoo-api-server/docs"
	"github.com/popsolutions/odoo-api-server/internal/api/handler"
	"github.com/popsolutions/odoo-api-server/internal/api/middleware"
	"github.com/popsolutions/odoo-api-server/internal/core/service"
	mongodb "github.com/popsolutions/odoo-api-server/internal/infrastructure/db/mongo"
	redisdb "github.com/popsolutions/odoo-api-server/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// validatorName selects the validator configuration used by the login and
// verification flow ("api" in the default deployment).
func NewRouter(db *mongo.Database, rdb *redis.Client, validatorName string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// CORS answers OPTIONS preflights with an empty success before any
	// authentication runs.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("odoo_api"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	partners := mongodb.NewPartnerRepository(db)
	products := mongodb.NewProductRepository(db)
	orders := mongodb.NewSaleOrderRepository(db)
	terms := mongodb.NewPaymentTermRepository(db)
	validators := mongodb.NewValidatorRepository(db)
	params := redisdb.NewParamCache(rdb, mongodb.NewParamRepository(db))

	registry := service.NewRegistry(validators, params, users, log)
	authService := service.NewAuthService(users, partners, registry, validatorName, log)
	partnerService := service.NewPartnerService(partners, params, log)
	productService := service.NewProductService(products, log)
	saleOrderService := service.NewSaleOrderService(orders, products, terms, log)

	authHandler := handler.NewAuthHandler(authService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	productHandler := handler.NewProductHandler(productService)
	saleOrderHandler := handler.NewSaleOrderHandler(saleOrderService)

	auth := middleware.Auth(registry, validatorName)

	// --- Auth routes ---
	g := e.Group("/api")
	g.POST("/auth_jwt", authHandler.Login) // public
	g.GET("/auth_jwt/whoami", authHandler.Whoami, auth)

	// --- Products ---
	g.GET("/product", productHandler.List, auth)
	g.GET("/product/categories", productHandler.Categories, auth)
	g.GET("/product/:id", productHandler.Get, auth)
	g.GET("/product/:id/image", productHandler.Image) // public, read-only

	// --- Partners ---
	g.GET("/res_partner", partnerHandler.List, auth)
	g.POST("/res_partner", partnerHandler.Create, auth)
	g.GET("/res_partner/:id", partnerHandler.Get, auth)
	g.GET("/res_partner/country/:country_id/state/:state_id/cities", partnerHandler.Cities, auth)

	// --- Sale orders ---
	g.GET("/sale_order", saleOrderHandler.List, auth)
	g.POST("/sale_order", saleOrderHandler.Create, auth)
	g.GET("/sale_order/payment_terms", saleOrderHandler.PaymentTerms, auth)
	g.GET("/sale_order/:id", saleOrderHandler.Get, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness) // pings mongo and redis

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
