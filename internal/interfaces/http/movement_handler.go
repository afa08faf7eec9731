package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/application/inventory"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/ledger"
	"github.com/jhoicas/control-stock/internal/domain/repository"
)

// historyDefaultLimit cantidad de movimientos del historial por defecto.
const historyDefaultLimit = 50

// MovementHandler maneja el registro de movimientos y la vista de historial.
type MovementHandler struct {
	uc    *inventory.RegisterMovementUseCase
	store repository.StockStore
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.RegisterMovementUseCase, store repository.StockStore) *MovementHandler {
	return &MovementHandler{uc: uc, store: store}
}

// Register godoc
// @Summary      Registrar movimiento (IN/OUT/ADJUST)
// @Description  Valida el borrador completo y lo anexa al ledger de forma
// @Description  atómica. El rol del token gatea la creación según el tipo.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type, qty, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse  "lista completa de mensajes en details"
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	mov, snap, err := h.uc.Register(GetRole(c), GetUser(c), ledger.Draft{
		ProductID: in.ProductID,
		Type:      in.Type,
		Qty:       in.Qty.String(),
		Note:      in.Note,
	})
	if err != nil {
		if ve := domain.AsValidationError(err); ve != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "el movimiento no pasó la validación",
				Details: ve.Messages,
			})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "tu rol no puede crear este tipo de movimiento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(*mov, snap.Products))
}

// History godoc
// @Summary      Historial de movimientos (últimos N, más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad máxima (default 50)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", historyDefaultLimit)
	if limit <= 0 {
		limit = historyDefaultLimit
	}

	s := h.store.Snapshot()
	out := make([]dto.MovementResponse, 0, limit)
	// El ledger está en orden de inserción; el historial se muestra al revés.
	for i := len(s.Movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, dto.ToMovementResponse(s.Movements[i], s.Products))
	}
	return c.JSON(out)
}
