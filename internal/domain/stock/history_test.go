package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// Ancla fija: miércoles 15/07/2026 a las 15:00.
// La semana arranca el lunes 13/07 00:00 y el mes el 01/07 00:00.
var ahora = time.Date(2026, 7, 15, 15, 0, 0, 0, time.UTC)

func venta(productID string, qty int, at time.Time) entity.Movement {
	return entity.Movement{
		ID:        "out-" + at.Format("02T15"),
		ProductID: productID,
		Type:      entity.MovementTypeOut,
		Qty:       qty,
		CreatedAt: at,
	}
}

func bucketEquals(t *testing.T, b stock.Bucket, gross, cost int64, label string) {
	t.Helper()
	assert.True(t, b.Gross.Equal(decimal.NewFromInt(gross)),
		"%s: gross esperado %d, fue %s", label, gross, b.Gross)
	assert.True(t, b.Cost.Equal(decimal.NewFromInt(cost)),
		"%s: cost esperado %d, fue %s", label, cost, b.Cost)
	assert.True(t, b.Net.Equal(decimal.NewFromInt(gross-cost)),
		"%s: net esperado %d, fue %s", label, gross-cost, b.Net)
}

// Una venta de hoy entra en los tres buckets (las ventanas son acumulativas).
func TestComputeSalesHistory_VentaDeHoy_EnLosTresBuckets(t *testing.T) {
	p := producto("P1", 5, 100, 40)
	movs := []entity.Movement{venta("P1", 3, ahora.Add(-2*time.Hour))}

	h := stock.ComputeSalesHistory([]entity.Product{p}, movs, ahora)

	bucketEquals(t, h.Day, 300, 120, "día")
	bucketEquals(t, h.Week, 300, 120, "semana")
	bucketEquals(t, h.Month, 300, 120, "mes")
}

// Una venta de ayer queda fuera del día pero dentro de semana y mes.
func TestComputeSalesHistory_VentaDeAyer_FueraDelDia(t *testing.T) {
	p := producto("P1", 5, 100, 40)
	ayer := ahora.AddDate(0, 0, -1)
	h := stock.ComputeSalesHistory([]entity.Product{p}, []entity.Movement{venta("P1", 1, ayer)}, ahora)

	bucketEquals(t, h.Day, 0, 0, "día")
	bucketEquals(t, h.Week, 100, 40, "semana")
	bucketEquals(t, h.Month, 100, 40, "mes")
}

// El domingo anterior queda fuera de la semana (la semana corta en lunes 00:00)
// pero dentro del mes.
func TestComputeSalesHistory_DomingoAnterior_FueraDeLaSemana(t *testing.T) {
	p := producto("P1", 5, 100, 40)
	domingo := time.Date(2026, 7, 12, 20, 0, 0, 0, time.UTC)
	h := stock.ComputeSalesHistory([]entity.Product{p}, []entity.Movement{venta("P1", 2, domingo)}, ahora)

	bucketEquals(t, h.Day, 0, 0, "día")
	bucketEquals(t, h.Week, 0, 0, "semana")
	bucketEquals(t, h.Month, 200, 80, "mes")
}

// Una venta del mes pasado no suma en ningún bucket.
func TestComputeSalesHistory_MesPasado_FueraDeTodo(t *testing.T) {
	p := producto("P1", 5, 100, 40)
	junio := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)
	h := stock.ComputeSalesHistory([]entity.Product{p}, []entity.Movement{venta("P1", 2, junio)}, ahora)

	bucketEquals(t, h.Day, 0, 0, "día")
	bucketEquals(t, h.Week, 0, 0, "semana")
	bucketEquals(t, h.Month, 0, 0, "mes")
}

// Los IN/ADJUST no son ventas; huérfanos y movimientos sin fecha se omiten.
func TestComputeSalesHistory_SoloVentasConProductoYFecha(t *testing.T) {
	p := producto("P1", 5, 100, 40)
	movs := []entity.Movement{
		{ID: "in", ProductID: "P1", Type: entity.MovementTypeIn, Qty: 10, CreatedAt: ahora},
		{ID: "adj", ProductID: "P1", Type: entity.MovementTypeAdjust, Qty: 5, CreatedAt: ahora},
		venta("FANTASMA", 4, ahora),        // producto eliminado del catálogo
		{ID: "sin-fecha", ProductID: "P1", Type: entity.MovementTypeOut, Qty: 2}, // timestamp inválido
		venta("P1", 1, ahora.Add(-time.Hour)),
	}

	h := stock.ComputeSalesHistory([]entity.Product{p}, movs, ahora)

	bucketEquals(t, h.Day, 100, 40, "día")
}
