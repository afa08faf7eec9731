package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Bucket acumula ventas dentro de una ventana temporal.
type Bucket struct {
	Gross decimal.Decimal // Σ price × qty
	Cost  decimal.Decimal // Σ cost × qty
	Net   decimal.Decimal // Gross − Cost
}

// SalesHistory agrupa las ventas en tres ventanas acumulativas ancladas a
// "ahora": día (desde medianoche), semana (desde el lunes 00:00 más reciente)
// y mes (desde el día 1 a las 00:00).
type SalesHistory struct {
	Day   Bucket
	Week  Bucket
	Month Bucket
}

func zeroBucket() Bucket {
	return Bucket{Gross: decimal.Zero, Cost: decimal.Zero, Net: decimal.Zero}
}

func (b *Bucket) add(gross, cost decimal.Decimal) {
	b.Gross = b.Gross.Add(gross)
	b.Cost = b.Cost.Add(cost)
	b.Net = b.Gross.Sub(b.Cost)
}

// ComputeSalesHistory recorre los movimientos OUT y acumula el bruto
// (price × qty) y el costo (cost × qty) en cada bucket cuya ventana contiene el
// timestamp del movimiento. now es el ancla de las ventanas y se inyecta para
// que el cálculo sea puro y testeable.
//
// Movimientos huérfanos (producto eliminado) o sin timestamp se omiten; son
// una condición de calidad de datos recuperable, no un error fatal.
func ComputeSalesHistory(products []entity.Product, movements []entity.Movement, now time.Time) SalesHistory {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Lunes 00:00 más reciente: time.Weekday arranca en domingo.
	weekStart := dayStart.AddDate(0, 0, -((int(dayStart.Weekday()) + 6) % 7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	h := SalesHistory{Day: zeroBucket(), Week: zeroBucket(), Month: zeroBucket()}
	for _, m := range movements {
		if m.Type != entity.MovementTypeOut {
			continue
		}
		p, ok := byID[m.ProductID]
		if !ok {
			continue
		}
		if m.CreatedAt.IsZero() || m.CreatedAt.After(now) {
			continue
		}
		qty := decimal.NewFromInt(int64(m.Qty))
		gross := p.Price.Mul(qty)
		cost := p.Cost.Mul(qty)

		if !m.CreatedAt.Before(dayStart) {
			h.Day.add(gross, cost)
		}
		if !m.CreatedAt.Before(weekStart) {
			h.Week.add(gross, cost)
		}
		if !m.CreatedAt.Before(monthStart) {
			h.Month.add(gross, cost)
		}
	}
	return h
}
