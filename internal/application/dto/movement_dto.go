package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/movements.
// Qty viaja como json.Number: parsearla (y rechazar decimales) es parte de la
// validación del dominio, no del binding.
type RegisterMovementRequest struct {
	ProductID string      `json:"product_id"`
	Type      string      `json:"type"`
	Qty       json.Number `json:"qty"`
	Note      string      `json:"note"`
}

// MovementResponse representación HTTP de un movimiento del ledger.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Qty         int       `json:"qty"`
	Note        string    `json:"note,omitempty"`
	User        string    `json:"user"`
	At          time.Time `json:"at"`
}

// ToMovementResponse resuelve el nombre del producto para la vista de
// historial. Una referencia huérfana se muestra, no se oculta.
func ToMovementResponse(m entity.Movement, products []entity.Product) MovementResponse {
	name := "Producto no encontrado"
	for _, p := range products {
		if p.ID == m.ProductID {
			name = p.Name + " (" + p.SKU + ")"
			break
		}
	}
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: name,
		Type:        m.Type,
		Qty:         m.Qty,
		Note:        m.Note,
		User:        m.User,
		At:          m.CreatedAt,
	}
}
