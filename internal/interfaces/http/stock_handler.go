package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/pkg/logger"
)

// StockHandler expone la validación consultiva y los hooks del ciclo de
// pedidos. Los hooks son la frontera catch-and-log del motor: registran la
// falla y responden 202 igual, porque la contabilidad de ingredientes nunca
// veta un pedido ya aceptado ni una anulación.
type StockHandler struct {
	validator *stock.Validator
	engine    *stock.Engine
	audit     *stock.AuditUseCase
	log       *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(validator *stock.Validator, engine *stock.Engine, audit *stock.AuditUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{validator: validator, engine: engine, audit: audit, log: log.Component("stock-handler")}
}

// Validate godoc
// @Summary      Validar stock para un pedido candidato
// @Description  Clasifica el pedido como cumplible o no contra el stock actual, con detalle de faltantes y cota de porciones. Consultivo: no reserva stock.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateStockRequest  true  "Líneas (product_id, quantity)"
// @Success      200   {object}  dto.StockValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/validate [post]
func (h *StockHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]stock.OrderLine, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, stock.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	result := h.validator.Validate(c.Context(), items)

	out := dto.StockValidationResponse{
		Fulfillable: result.Fulfillable,
		MaxPortions: result.MaxPortions,
	}
	for _, m := range result.Missing {
		out.Missing = append(out.Missing, dto.ShortageDetailResponse{
			IngredientID:   m.IngredientID,
			IngredientName: m.IngredientName,
			Unit:           m.Unit,
			Have:           m.Have,
			Need:           m.Need,
			Shortage:       m.Shortage,
		})
	}
	return c.JSON(out)
}

// DeductOrder godoc
// @Summary      Descontar ingredientes de un pedido creado
// @Description  Hook del ciclo de pedidos. Responde 202 aunque la deducción falle: el pedido es la fuente de verdad y el ledger se reconcilia por auditoría.
// @Tags         stock
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      202  {object}  dto.AcceptedResponse
// @Router       /api/stock/orders/{orderId}/deduct [post]
func (h *StockHandler) DeductOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if err := h.engine.DeductForOrder(c.Context(), orderID); err != nil {
		h.log.Error().Err(err).Str("order_id", orderID).Msg("deducción de stock falló; el pedido continúa")
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.AcceptedResponse{Status: "accepted", OrderID: orderID})
}

// RestoreOrder godoc
// @Summary      Restaurar ingredientes de un pedido anulado
// @Description  Hook del ciclo de pedidos. Responde 202 aunque la restauración falle; la falla queda registrada para reconciliación.
// @Tags         stock
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      202  {object}  dto.AcceptedResponse
// @Router       /api/stock/orders/{orderId}/restore [post]
func (h *StockHandler) RestoreOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if err := h.engine.RestoreForOrder(c.Context(), orderID); err != nil {
		h.log.Error().Err(err).Str("order_id", orderID).Msg("restauración de stock falló; la anulación continúa")
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.AcceptedResponse{Status: "accepted", OrderID: orderID})
}

// OrderHistory godoc
// @Summary      Movimientos de stock de un pedido
// @Description  Lista lo que el pedido descontó o devolvió al ledger. Vacío cuando el hook falló y se tragó el error: la ausencia de movimientos es la señal para reconciliar.
// @Tags         stock
// @Produce      json
// @Param        orderId  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderHistoryResponse
// @Router       /api/stock/orders/{orderId}/history [get]
func (h *StockHandler) OrderHistory(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	entries, err := h.audit.OrderTrail(c.Context(), orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.OrderHistoryResponse{OrderID: orderID, Items: make([]dto.StockHistoryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Items = append(out.Items, dto.StockHistoryResponse{
			ID:            e.ID,
			IngredientID:  e.IngredientID,
			Type:          e.Type,
			Quantity:      e.Quantity,
			PreviousStock: e.PreviousStock,
			NewStock:      e.NewStock,
			OrderID:       e.OrderID,
			CreatedBy:     e.CreatedBy,
			CreatedAt:     e.CreatedAt,
		})
	}
	return c.JSON(out)
}
