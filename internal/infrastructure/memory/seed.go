package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// seedFile formato del archivo JSON de datos iniciales.
type seedFile struct {
	Products  []seedProduct  `json:"products"`
	Movements []seedMovement `json:"movements"`
}

type seedProduct struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Active      *bool           `json:"active"` // ausente = activo
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	TargetStock *int            `json:"target_stock"`
}

type seedMovement struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Qty       int    `json:"qty"`
	Note      string `json:"note"`
	User      string `json:"user"`
	At        string `json:"at"` // RFC 3339; inválido = movimiento sin fecha
}

// NewFromSeedFile construye el store con el contenido de un archivo seed.
// Un timestamp que no parsea deja el movimiento sin fecha (se omite del
// historial de ventas, no del fold de stock).
func NewFromSeedFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("seed: parsear %s: %w", path, err)
	}

	products := make([]entity.Product, 0, len(f.Products))
	for _, sp := range f.Products {
		active := true
		if sp.Active != nil {
			active = *sp.Active
		}
		products = append(products, entity.Product{
			ID:          sp.ID,
			SKU:         sp.SKU,
			Name:        sp.Name,
			Category:    sp.Category,
			Active:      active,
			Cost:        sp.Cost,
			Price:       sp.Price,
			MinStock:    sp.MinStock,
			TargetStock: sp.TargetStock,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		})
	}

	movements := make([]entity.Movement, 0, len(f.Movements))
	for _, sm := range f.Movements {
		at, err := time.Parse(time.RFC3339, sm.At)
		if err != nil {
			at = time.Time{}
		}
		movements = append(movements, entity.Movement{
			ID:        sm.ID,
			ProductID: sm.ProductID,
			Type:      sm.Type,
			Qty:       sm.Qty,
			Note:      sm.Note,
			User:      sm.User,
			CreatedAt: at,
		})
	}

	return NewWithData(products, movements), nil
}
