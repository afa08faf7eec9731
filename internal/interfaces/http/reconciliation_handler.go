package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/application/inventory"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/infrastructure/export"
)

// ReconciliationHandler expone el conteo físico y la reposición sugerida.
type ReconciliationHandler struct {
	count   *inventory.CountUseCase
	restock *inventory.RestockUseCase
	pdf     *export.RestockPDFGenerator
}

// NewReconciliationHandler construye el handler.
func NewReconciliationHandler(count *inventory.CountUseCase, restock *inventory.RestockUseCase, pdf *export.RestockPDFGenerator) *ReconciliationHandler {
	return &ReconciliationHandler{count: count, restock: restock, pdf: pdf}
}

func countFilters(c *fiber.Ctx) inventory.CountFilters {
	return inventory.CountFilters{
		OnlyActive: c.QueryBool("only_active", true),
		OnlyLow:    c.QueryBool("only_low", false),
		Category:   c.Query("category"),
	}
}

// CountPlan godoc
// @Summary      Plan de conteo físico
// @Tags         reconciliation
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool    false  "Solo productos activos (default true)"
// @Param        only_low     query  bool    false  "Solo stock bajo"
// @Param        category     query  string  false  "Categoría normalizada; vacío o ALL = todas"
// @Success      200  {array}  dto.CountRowDTO
// @Router       /api/reconciliation/count [get]
func (h *ReconciliationHandler) CountPlan(c *fiber.Ctx) error {
	return c.JSON(h.count.Plan(countFilters(c), nil))
}

// ConfirmCount godoc
// @Summary      Confirmar conteo físico
// @Description  Anexa un ADJUST por cada fila con diferencia, en lote todo o
// @Description  nada: si algún ajuste no valida, no se anexa ninguno.
// @Tags         reconciliation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmCountRequest  true  "product_id → conteo observado"
// @Success      200   {object}  dto.ConfirmCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reconciliation/count [post]
func (h *ReconciliationHandler) ConfirmCount(c *fiber.Ctx) error {
	var in dto.ConfirmCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.count.Confirm(GetRole(c), GetUser(c), countFilters(c), in.Counts)
	if err != nil {
		if ve := domain.AsValidationError(err); ve != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "el conteo tiene filas inválidas; no se aplicó ningún ajuste",
				Details: ve.Messages,
			})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "tu rol no puede ajustar stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RestockPlan godoc
// @Summary      Lista de reposición sugerida
// @Tags         reconciliation
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RestockRowDTO
// @Router       /api/reconciliation/restock [get]
func (h *ReconciliationHandler) RestockPlan(c *fiber.Ctx) error {
	return c.JSON(h.restock.Plan())
}

// ConfirmRestock godoc
// @Summary      Marcar una fila de reposición como comprada
// @Description  Registra un IN por la cantidad sugerida (o la pisada por el
// @Description  operador). Cada fila es una confirmación independiente.
// @Tags         reconciliation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmRestockRequest  true  "product_id y qty opcional"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/reconciliation/restock [post]
func (h *ReconciliationHandler) ConfirmRestock(c *fiber.Ctx) error {
	var in dto.ConfirmRestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, snap, err := h.restock.Confirm(GetRole(c), GetUser(c), in.ProductID, in.Qty)
	if err != nil {
		if ve := domain.AsValidationError(err); ve != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "la compra no pasó la validación",
				Details: ve.Messages,
			})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "tu rol no puede registrar compras"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(*mov, snap.Products))
}

// RestockPDF godoc
// @Summary      Lista de reposición en PDF
// @Tags         reconciliation
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reconciliation/restock/pdf [get]
func (h *ReconciliationHandler) RestockPDF(c *fiber.Ctx) error {
	raw, err := h.pdf.Generate(h.restock.Plan(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lista-reposicion.pdf"`)
	return c.Send(raw)
}
