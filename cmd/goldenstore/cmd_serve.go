package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/golden-store/internal/application/auth"
	"github.com/jhoicas/golden-store/internal/application/bootstrap"
	"github.com/jhoicas/golden-store/internal/application/catalog"
	"github.com/jhoicas/golden-store/internal/application/usecase"
	"github.com/jhoicas/golden-store/internal/infrastructure/feed"
	"github.com/jhoicas/golden-store/internal/infrastructure/pdf"
	"github.com/jhoicas/golden-store/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/golden-store/internal/interfaces/http"
	"github.com/jhoicas/golden-store/pkg/config"
	"github.com/jhoicas/golden-store/pkg/metrics"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "aplicar migraciones pendientes antes de arrancar (solo postgres)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := boot()
	if err != nil {
		return err
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")
	if cfg.JWT.Secret == config.DefaultJWTSecret && cfg.App.Env == "production" {
		log.Warn().Msg("JWT_SECRET no configurado: usando el secreto por defecto")
	}

	ctx := cmd.Context()
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	if serveMigrate && st.pool != nil {
		if _, err := postgres.Migrate(ctx, st.pool, log); err != nil {
			return err
		}
	}

	productUC := usecase.NewProductUseCase(st.products, cfg.Catalog.SlugMaxAttempts)
	storeUC := usecase.NewStoreUseCase(st.tx)
	exportUC := catalog.NewExportUseCase(productUC, storeUC, pdf.NewCatalogRenderer(), feed.NewBuilder(), cfg.Catalog.PublicURL)
	authUC := auth.NewAuthUseCase(st.admins, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	bootstrapper := bootstrap.New(st.admins, st.tx, bootstrap.Config{
		Username: cfg.Admin.DefaultUsername,
		Password: cfg.Admin.DefaultPassword,
	}, log)

	// Arranque en caliente; si falla, el primer request a /api lo reintenta.
	if err := bootstrapper.Ensure(ctx); err != nil {
		log.Error().Err(err).Msg("bootstrap inicial")
	}

	var swaggerHandler fiber.Handler
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		// Swagger UI: http://localhost:<port>/docs
		swaggerHandler = swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Golden Store API",
		})
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger no disponible")
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name, Swagger: swaggerHandler}, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		StoreUC:      storeUC,
		CatalogUC:    exportUC,
		Bootstrapper: bootstrapper,
		DB:           st,
		Metrics:      metrics.New(),
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
