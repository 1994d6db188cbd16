package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/smartshoe/pos-api/internal/application/analytics"
	"github.com/smartshoe/pos-api/internal/application/auth"
	appsales "github.com/smartshoe/pos-api/internal/application/sales"
	"github.com/smartshoe/pos-api/internal/application/usecase"
	"github.com/smartshoe/pos-api/internal/infrastructure/cache"
	infrapdf "github.com/smartshoe/pos-api/internal/infrastructure/pdf"
	"github.com/smartshoe/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/smartshoe/pos-api/internal/interfaces/http"
	"github.com/smartshoe/pos-api/pkg/config"
	"github.com/smartshoe/pos-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de reportes: Redis si hay dirección configurada, noop si no.
	var reportCache cache.ReportCache = cache.NoopReportCache{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, reportes sin cache")
		} else {
			defer redisCache.Close()
			reportCache = redisCache
			log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de reportes en Redis")
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, brandRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, productRepo)
	createSaleUC := appsales.NewCreateSaleUseCase(txRunner)
	salesUC := appsales.NewSalesUseCase(saleRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(
		analyticsRepo, saleRepo, productRepo, cfg.Report.LowStockThreshold,
	)
	reportsUC := appanalytics.NewReportsUseCase(
		analyticsRepo, productRepo, reportCache,
		appanalytics.Targets{
			Monthly: cfg.Report.MonthlyTarget,
			Daily:   cfg.Report.DailyTarget,
		},
		cfg.Report.LowStockThreshold,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmartShoe POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		CatalogUC:    catalogUC,
		InventoryUC:  inventoryUC,
		CreateSaleUC: createSaleUC,
		SalesUC:      salesUC,
		DashboardUC:  dashboardUC,
		ReportsUC:    reportsUC,
		Renderer:     infrapdf.NewInvoiceRenderer(),
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

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
}
