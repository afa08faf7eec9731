// Package ledger contiene el borrador de movimiento y su validador.
// El validador evalúa TODAS las reglas y junta todos los mensajes que fallan
// (sin cortocircuito) para que el cliente muestre todas las correcciones de
// una vez.
package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Draft es un movimiento propuesto, todavía sin id, usuario ni timestamp.
// Qty llega como texto tal cual lo tipeó el operador; parsearlo es parte de la
// validación.
type Draft struct {
	ProductID string
	Type      string
	Qty       string
	Note      string
}

// ParseQty intenta convertir la cantidad del borrador a entero.
// Devuelve (0, false) si no es un número o no es entero.
func (d Draft) ParseQty() (int, bool) {
	raw := strings.TrimSpace(d.Qty)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Validate aplica las reglas estructurales y de negocio sobre el borrador.
// Lista vacía = borrador válido. La suficiencia de stock para OUT depende del
// estado derivado del ledger y la agrega el caso de uso orquestador a esta
// misma lista.
func Validate(draft Draft, products []entity.Product) []string {
	var errs []string

	found := false
	for _, p := range products {
		if p.ID == draft.ProductID {
			found = true
			break
		}
	}
	if !found {
		errs = append(errs, "El producto seleccionado no existe.")
	}

	if !entity.ValidMovementType(draft.Type) {
		errs = append(errs, fmt.Sprintf("El tipo de movimiento %q no es válido.", draft.Type))
	}

	qty, ok := draft.ParseQty()
	switch {
	case !ok:
		errs = append(errs, "La cantidad debe ser un número entero.")
	case draft.Type == entity.MovementTypeAdjust:
		if qty < 0 {
			errs = append(errs, "El stock final debe ser un entero mayor o igual a 0.")
		}
	default:
		// IN y OUT son deltas estrictamente positivos. Un tipo desconocido ya
		// generó su propio mensaje; igual exigimos cantidad positiva.
		if qty <= 0 {
			errs = append(errs, "La cantidad debe ser un entero mayor a 0.")
		}
	}

	return errs
}

// InsufficientStockMessage arma el mensaje de venta sin stock suficiente,
// nombrando lo pedido y lo disponible.
func InsufficientStockMessage(requested, available int) string {
	return fmt.Sprintf("No puedes vender %d u. porque solo hay %d en stock.", requested, available)
}
