package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/application/billing"
	infracache "github.com/jhoicas/Facturas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Facturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Facturas-api/internal/interfaces/http"
	"github.com/jhoicas/Facturas-api/pkg/config"
	"github.com/jhoicas/Facturas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Pool compartido del proceso: se construye una vez y lo reusan todos los handlers.
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Cache de vistas: Redis si está configurado, no-op si no.
	var viewCache billing.ViewCache = infracache.NopViewCache{}
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisViewCache(ctx, cfg.Redis, log)
		defer redisCache.Close()
		viewCache = redisCache
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, viewCache, log)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:   invoiceUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
	})

	// Apagado ordenado con SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}

	log.Info().Msg("aplicación detenida")
}
