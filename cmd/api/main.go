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

	_ "github.com/comandaplus/pos-api/docs"
	"github.com/comandaplus/pos-api/internal/application/availability"
	"github.com/comandaplus/pos-api/internal/application/notification"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/application/usecase"
	"github.com/comandaplus/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/comandaplus/pos-api/internal/interfaces/http"
	"github.com/comandaplus/pos-api/pkg/config"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// @title        ComandaPlus POS API
// @version      1.0
// @description  Motor de consistencia de inventario de ingredientes para el POS de restaurante: ledger de stock, deducción por pedido, alertas y disponibilidad del catálogo.
// @BasePath     /
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

	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	historyRepo := postgres.NewStockHistoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	prefRepo := postgres.NewNotificationPreferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notification.NewNotifier(ingredientRepo, userRepo, notifRepo, prefRepo, cfg.Stock, log)
	engine := stock.NewEngine(txRunner, notifier, log)
	validator := stock.NewValidator(stock.NewResolver(recipeRepo), ingredientRepo, log)
	auditUC := stock.NewAuditUseCase(ingredientRepo, historyRepo)
	syncUC := availability.NewSyncUseCase(productRepo, recipeRepo, ingredientRepo, historyRepo, cfg.Stock.SyncLookbackMinutes, log)
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, historyRepo, engine)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ComandaPlus POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC: ingredientUC,
		Engine:       engine,
		Validator:    validator,
		AuditUC:      auditUC,
		SyncUC:       syncUC,
		Log:          log,
	})

	// Barrido periódico de disponibilidad: recalcula los productos cuyos
	// ingredientes tuvieron movimientos dentro de la ventana de lookback.
	syncCtx, stopSync := context.WithCancel(ctx)
	defer stopSync()
	if cfg.Stock.SyncIntervalMinutes > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Stock.SyncIntervalMinutes) * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-syncCtx.Done():
					return
				case <-ticker.C:
					report, err := syncUC.SyncBatch(syncCtx, cfg.Stock.SyncLookbackMinutes)
					if err != nil {
						log.Error().Err(err).Msg("barrido de disponibilidad")
						continue
					}
					if report.Scanned > 0 {
						log.Info().
							Int("scanned", report.Scanned).
							Int("enabled", report.Enabled).
							Int("disabled", report.Disabled).
							Msg("barrido de disponibilidad")
					}
				}
			}
		}()
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopSync()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
