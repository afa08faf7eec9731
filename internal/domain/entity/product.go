package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoriaSinAsignar categoría normalizada para productos sin categoría.
const CategoriaSinAsignar = "Sin categoría"

// Product representa un producto del catálogo.
// El stock actual NUNCA se guarda aquí: se deriva del ledger de movimientos.
type Product struct {
	ID          string
	SKU         string
	Name        string
	Category    string
	Active      bool
	Cost        decimal.Decimal // costo unitario de compra
	Price       decimal.Decimal // precio de venta
	MinStock    int             // umbral de alerta de stock bajo
	TargetStock *int            // stock objetivo de reposición; nil = usar MinStock
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizedCategory devuelve la categoría con trim; vacía se normaliza a "Sin categoría".
func (p Product) NormalizedCategory() string {
	c := strings.TrimSpace(p.Category)
	if c == "" {
		return CategoriaSinAsignar
	}
	return c
}

// RestockTarget devuelve el stock objetivo efectivo: TargetStock si está
// definido y es no negativo, si no MinStock.
func (p Product) RestockTarget() int {
	if p.TargetStock != nil && *p.TargetStock >= 0 {
		return *p.TargetStock
	}
	return p.MinStock
}
