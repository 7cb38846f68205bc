package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandaplus/pos-api/internal/application/availability"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/application/usecase"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC *usecase.IngredientUseCase
	Engine       *stock.Engine
	Validator    *stock.Validator
	AuditUC      *stock.AuditUseCase
	SyncUC       *availability.SyncUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ingredientes (administración + operaciones manuales de stock)
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.Engine, deps.AuditUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Post("/:id/restock", ingredientHandler.Restock)
	ingredients.Post("/:id/adjust", ingredientHandler.Adjust)
	ingredients.Get("/:id/history", ingredientHandler.History)
	ingredients.Get("/:id/audit", ingredientHandler.Audit)

	// Stock (validación consultiva + hooks del ciclo de pedidos)
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Validator, deps.Engine, deps.AuditUC, deps.Log)
	stockGroup.Post("/validate", stockHandler.Validate)
	stockGroup.Post("/orders/:orderId/deduct", stockHandler.DeductOrder)
	stockGroup.Post("/orders/:orderId/restore", stockHandler.RestoreOrder)
	stockGroup.Get("/orders/:orderId/history", stockHandler.OrderHistory)

	// Disponibilidad del catálogo
	availabilityGroup := api.Group("/availability")
	availabilityHandler := NewAvailabilityHandler(deps.SyncUC)
	availabilityGroup.Post("/sync", availabilityHandler.Sync)
	availabilityGroup.Get("/products", availabilityHandler.Products)
}
