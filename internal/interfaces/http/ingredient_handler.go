package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/application/stock"
	"github.com/comandaplus/pos-api/internal/application/usecase"
	"github.com/comandaplus/pos-api/internal/domain"
)

// IngredientHandler administración de ingredientes y operaciones manuales de
// stock (reabastecimiento, conteo físico, historial, auditoría).
type IngredientHandler struct {
	uc     *usecase.IngredientUseCase
	engine *stock.Engine
	audit  *stock.AuditUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase, engine *stock.Engine, audit *stock.AuditUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc, engine: engine, audit: audit}
}

// Create godoc
// @Summary      Crear ingrediente
// @Description  Da de alta un ingrediente. El stock inicial se registra como primer reabastecimiento manual.
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Ingrediente"
// @Success      201  {object}  dto.IngredientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y unidad válidos son obligatorios; cantidades no negativas"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un ingrediente con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredientes
// @Produce      json
// @Param        limit             query  int   false  "Límite (máx 100)"
// @Param        offset            query  int   false  "Desplazamiento"
// @Param        include_inactive  query  bool  false  "Incluir desactivados"
// @Success      200  {object}  dto.IngredientListResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	includeInactive := c.QueryBool("include_inactive", false)

	out, err := h.uc.List(c.Context(), includeInactive, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingrediente por ID
// @Tags         ingredientes
// @Produce      json
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingrediente
// @Description  Edita metadatos. El stock no se edita por aquí: use restock o adjust.
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.UpdateIngredientRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un ingrediente con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reabastecer ingrediente
// @Description  Suma la cantidad recibida al stock y deja registro manual_restock en el historial.
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.RestockRequest  true  "Cantidad recibida"
// @Success      200  {object}  dto.StockOperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/restock [post]
func (h *IngredientHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	newStock, err := h.engine.Restock(c.Context(), id, in.Quantity, in.CreatedBy)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad debe ser mayor que cero"})
		}
		if err == domain.ErrIngredientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockOperationResponse{IngredientID: id, NewStock: newStock})
}

// Adjust godoc
// @Summary      Ajustar stock por conteo físico
// @Description  Fija el stock al valor contado y registra la diferencia como adjustment.
// @Tags         ingredientes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ingrediente"
// @Param        body  body  dto.AdjustStockRequest  true  "Valor contado"
// @Success      200  {object}  dto.StockOperationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/adjust [post]
func (h *IngredientHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	newStock, err := h.engine.Adjust(c.Context(), id, in.Quantity, in.CreatedBy)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el valor contado no puede ser negativo"})
		}
		if err == domain.ErrIngredientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockOperationResponse{IngredientID: id, NewStock: newStock})
}

// History godoc
// @Summary      Historial de stock de un ingrediente
// @Description  Registros del historial append-only, más reciente primero.
// @Tags         ingredientes
// @Produce      json
// @Param        id      path   string  true   "ID del ingrediente"
// @Param        limit   query  int     false  "Límite (máx 100)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.StockHistoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/history [get]
func (h *IngredientHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.History(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		if err == domain.ErrIngredientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Audit godoc
// @Summary      Auditar el ledger de un ingrediente
// @Description  Reproduce el historial completo y lo compara con el stock vivo; verifica la cadena previous/new registro a registro.
// @Tags         ingredientes
// @Produce      json
// @Param        id  path  string  true  "ID del ingrediente"
// @Success      200  {object}  dto.LedgerAuditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/audit [get]
func (h *IngredientHandler) Audit(c *fiber.Ctx) error {
	report, err := h.audit.AuditLedger(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrIngredientNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LedgerAuditResponse{
		IngredientID:   report.IngredientID,
		IngredientName: report.IngredientName,
		LiveStock:      report.LiveStock,
		ReplayedStock:  report.ReplayedStock,
		Consistent:     report.Consistent,
		ChainOK:        report.ChainOK,
		BrokenIndex:    report.BrokenIndex,
		Entries:        report.Entries,
	})
}
