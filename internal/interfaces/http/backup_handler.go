package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/control-stock/internal/application/backup"
	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
)

// BackupHandler exporta el snapshot completo (admin-only).
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar backup del catálogo y el ledger
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Param        format  query  string  false  "json (default) o xml"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	raw, contentType, err := h.uc.Export(GetRole(c), c.Query("format"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo admin puede exportar backups"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato no soportado: usar json o xml"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(raw)
}
