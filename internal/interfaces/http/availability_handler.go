package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandaplus/pos-api/internal/application/availability"
	"github.com/comandaplus/pos-api/internal/application/dto"
	"github.com/comandaplus/pos-api/internal/domain"
)

// AvailabilityHandler sincronización y consulta de la bandera available del
// catálogo.
type AvailabilityHandler struct {
	sync *availability.SyncUseCase
}

// NewAvailabilityHandler construye el handler.
func NewAvailabilityHandler(sync *availability.SyncUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{sync: sync}
}

// Sync godoc
// @Summary      Sincronizar disponibilidad del catálogo
// @Description  Con product_id recalcula la bandera de ese producto; sin él corre el lote sobre los productos con movimientos de stock en la ventana.
// @Tags         disponibilidad
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncAvailabilityRequest  true  "Alcance de la corrida"
// @Success      200  {object}  dto.SyncReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/availability/sync [post]
func (h *AvailabilityHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if in.ProductID != "" {
		detail, err := h.sync.SyncOne(c.Context(), in.ProductID)
		if err != nil {
			if err == domain.ErrNotFound {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		out := dto.SyncReportResponse{Scanned: 1}
		if detail.Before != detail.After {
			if detail.After {
				out.Enabled = 1
			} else {
				out.Disabled = 1
			}
		}
		out.Details = []dto.ProductSyncDetailResponse{{
			ProductID: detail.ProductID,
			Name:      detail.Name,
			Before:    detail.Before,
			After:     detail.After,
		}}
		return c.JSON(out)
	}

	report, err := h.sync.SyncBatch(c.Context(), in.SinceMinutes)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.SyncReportResponse{
		Scanned:  report.Scanned,
		Enabled:  report.Enabled,
		Disabled: report.Disabled,
	}
	for _, d := range report.Details {
		out.Details = append(out.Details, dto.ProductSyncDetailResponse{
			ProductID: d.ProductID,
			Name:      d.Name,
			Before:    d.Before,
			After:     d.After,
		})
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Listar banderas de disponibilidad
// @Tags         disponibilidad
// @Produce      json
// @Param        limit   query  int  false  "Límite (máx 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ProductAvailabilityListResponse
// @Router       /api/availability/products [get]
func (h *AvailabilityHandler) Products(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	flags, err := h.sync.ListFlags(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductAvailabilityResponse, 0, len(flags))
	for _, f := range flags {
		items = append(items, dto.ProductAvailabilityResponse{
			ProductID: f.ProductID,
			Name:      f.Name,
			Available: f.Available,
		})
	}
	return c.JSON(dto.ProductAvailabilityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}
