// Package stock implementa el motor de derivación: el stock actual, las
// métricas del negocio y el historial de ventas se recalculan siempre desde el
// ledger completo de movimientos. No hay caché incremental: el fold sobre el
// ledger en orden de inserción es la fuente de verdad.
package stock

import (
	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Compute deriva el stock actual por producto como fold izquierdo del ledger
// desde cero, en orden de inserción:
//
//	IN     → stock += qty
//	OUT    → stock -= qty
//	ADJUST → stock = qty (sobrescribe el acumulado previo)
//
// Función pura: el resultado depende solo de la secuencia ordenada de
// movimientos. Movimientos huérfanos (producto ya no existe en el catálogo) se
// ignoran de forma defensiva en vez de romper la derivación. Todo producto sin
// movimientos queda con stock 0. No se aplica clamp: un resultado negativo solo
// puede aparecer si alguien saltó el validador.
func Compute(products []entity.Product, movements []entity.Movement) map[string]int {
	stockByID := make(map[string]int, len(products))
	for _, p := range products {
		stockByID[p.ID] = 0
	}
	for _, m := range movements {
		if _, ok := stockByID[m.ProductID]; !ok {
			continue // huérfano: el producto fue eliminado del catálogo
		}
		switch m.Type {
		case entity.MovementTypeIn:
			stockByID[m.ProductID] += m.Qty
		case entity.MovementTypeOut:
			stockByID[m.ProductID] -= m.Qty
		case entity.MovementTypeAdjust:
			stockByID[m.ProductID] = m.Qty
		}
	}
	return stockByID
}

// Available devuelve el stock derivado de un producto, 0 si no tiene entrada.
func Available(stockByID map[string]int, productID string) int {
	return stockByID[productID]
}
