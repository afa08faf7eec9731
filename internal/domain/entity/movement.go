package entity

import "time"

// Tipos de movimiento del ledger (value object conceptual).
const (
	MovementTypeIn     = "IN"     // entrada (compra)
	MovementTypeOut    = "OUT"    // salida (venta)
	MovementTypeAdjust = "ADJUST" // ajuste: Qty es el stock final absoluto
)

// ValidMovementType indica si el tipo es uno de los tres conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}

// Movement es un evento del ledger. Inmutable una vez creado: nunca se edita
// ni se borra, el stock actual es siempre el fold del ledger en orden.
//
// Qty es un delta estrictamente positivo para IN/OUT; para ADJUST es el nivel
// de stock resultante absoluto (>= 0), no un delta.
type Movement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT, ADJUST
	Qty       int
	Note      string
	User      string
	CreatedAt time.Time
}
