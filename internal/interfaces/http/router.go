package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/golden-store/internal/application/auth"
	"github.com/jhoicas/golden-store/internal/application/catalog"
	"github.com/jhoicas/golden-store/internal/application/usecase"
	"github.com/jhoicas/golden-store/pkg/logger"
	"github.com/jhoicas/golden-store/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	StoreUC      *usecase.StoreUseCase
	CatalogUC    *catalog.ExportUseCase
	Bootstrapper Bootstrapper
	DB           Pinger
	Metrics      *metrics.Metrics // opcional
	Log          *logger.Logger
	JWTSecret    string
	AllowOrigins string
}

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name    string
	Swagger fiber.Handler // opcional; se monta si no es nil
}

// NewApp construye la app Fiber con middlewares globales, health, métricas y rutas /api.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: fiberErrorHandler(deps.Log),
	})

	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, If-None-Match",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	if cfg.Swagger != nil {
		app.Use(cfg.Swagger)
	}

	app.Get("/health", Health)
	if deps.DB != nil {
		app.Get("/ready", Ready(deps.DB, deps.Log))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API. Todo /api pasa primero por el bootstrap.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", BootstrapMiddleware(deps.Bootstrapper, deps.Log))
	requireAdmin := AuthMiddleware(deps.JWTSecret)

	// Auth (público) y perfil (protegido)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/admin/me", requireAdmin, authHandler.Me)
	api.Put("/admin/me", requireAdmin, authHandler.UpdateMe)

	// Products: lectura pública, escritura protegida
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	api.Get("/products", productHandler.List)
	api.Get("/products/:idOrSlug", productHandler.Get)
	api.Post("/products", requireAdmin, productHandler.Create)
	api.Put("/products/:id", requireAdmin, productHandler.Update)
	api.Delete("/products/:id", requireAdmin, productHandler.Delete)

	// Store settings
	storeHandler := NewStoreHandler(deps.StoreUC, deps.Log)
	api.Get("/store/settings", storeHandler.Get)
	api.Put("/store/settings", requireAdmin, storeHandler.Update)

	// Catalog: feed público, PDF protegido
	if deps.CatalogUC != nil {
		catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Metrics, deps.Log)
		api.Get("/catalog/feed.xml", catalogHandler.Feed)
		api.Get("/catalog/catalog.pdf", requireAdmin, catalogHandler.PDF)
	}
}
