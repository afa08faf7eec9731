package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-stock/internal/application/analytics"
)

// DashboardHandler expone las vistas derivadas del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen operativo y capital en stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// SalesHistory godoc
// @Summary      Ventas por ventana día/semana/mes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesHistoryDTO
// @Router       /api/sales-history [get]
func (h *DashboardHandler) SalesHistory(c *fiber.Ctx) error {
	return c.JSON(h.uc.SalesHistory(time.Now()))
}
