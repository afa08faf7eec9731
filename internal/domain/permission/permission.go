// Package permission define la tabla estática de capacidades por rol.
// La verificación se hace DENTRO del caso de uso que registra movimientos
// (el rol viaja como parámetro explícito): ningún movimiento entra al ledger
// sin autorización, sin depender de la disciplina del caller HTTP.
package permission

import "github.com/jhoicas/control-stock/internal/domain/entity"

// Roles de sesión conocidos.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// Action es una operación sujeta a permisos.
type Action string

const (
	MovementCreateIn     Action = "movement:create:in"
	MovementCreateOut    Action = "movement:create:out"
	MovementCreateAdjust Action = "movement:create:adjust"
	BackupExport         Action = "backup:export"
)

// capabilities tabla rol → acciones permitidas. Registrar una venta (OUT)
// está permitido a todo rol autenticado, por eso no figura aquí.
var capabilities = map[string]map[Action]bool{
	RoleAdmin: {
		MovementCreateIn:     true,
		MovementCreateAdjust: true,
		BackupExport:         true,
	},
	RoleBodeguero: {
		MovementCreateIn:     true,
		MovementCreateAdjust: true,
	},
	RoleVendedor: {},
}

// Can indica si el rol puede ejecutar la acción.
func Can(role string, action Action) bool {
	if action == MovementCreateOut {
		return true
	}
	return capabilities[role][action]
}

// ForMovementType mapea un tipo de movimiento a la acción que lo gatea.
func ForMovementType(movementType string) Action {
	switch movementType {
	case entity.MovementTypeIn:
		return MovementCreateIn
	case entity.MovementTypeAdjust:
		return MovementCreateAdjust
	default:
		return MovementCreateOut
	}
}
