package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Metrics resume el estado operativo y financiero del inventario.
// Solo considera productos activos; los inactivos quedan fuera de alertas y
// valuación aunque sus movimientos sigan en el ledger.
type Metrics struct {
	TotalProducts   int             // productos activos
	LowStockCount   int             // activos con stock <= MinStock (frontera inclusiva)
	Valuation       decimal.Decimal // Σ cost × stock
	PotentialMargin decimal.Decimal // Σ (price − cost) × stock
}

// ComputeMetrics calcula las métricas sobre el mapa de stock ya derivado.
func ComputeMetrics(products []entity.Product, stockByID map[string]int) Metrics {
	m := Metrics{
		Valuation:       decimal.Zero,
		PotentialMargin: decimal.Zero,
	}
	for _, p := range products {
		if !p.Active {
			continue
		}
		s := stockByID[p.ID]
		m.TotalProducts++
		// Un producto exactamente en el mínimo ya cuenta como stock bajo.
		if s <= p.MinStock {
			m.LowStockCount++
		}
		qty := decimal.NewFromInt(int64(s))
		m.Valuation = m.Valuation.Add(p.Cost.Mul(qty))
		m.PotentialMargin = m.PotentialMargin.Add(p.Price.Sub(p.Cost).Mul(qty))
	}
	return m
}

// IsLowStock indica si un producto activo está en alerta de stock bajo.
func IsLowStock(p entity.Product, stockByID map[string]int) bool {
	return p.Active && stockByID[p.ID] <= p.MinStock
}
