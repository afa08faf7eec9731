// Package inventory orquesta la escritura del ledger: el gate de permisos, el
// validador y la verificación de suficiencia se ejecutan dentro del punto de
// serialización del store, así un movimiento o entra completo y autorizado o
// no entra.
package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/ledger"
	"github.com/jhoicas/control-stock/internal/domain/permission"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// RegisterMovementUseCase registra movimientos en el ledger.
// El chequeo de permisos vive acá adentro, con el rol como parámetro
// explícito: la capa HTTP no puede saltárselo.
type RegisterMovementUseCase struct {
	store repository.StockStore
	now   func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(store repository.StockStore) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{store: store, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RegisterMovementUseCase) WithClock(now func() time.Time) *RegisterMovementUseCase {
	uc.now = now
	return uc
}

// Register valida y anexa un movimiento de forma atómica.
//
// Orden: gate de permisos por tipo → validación estructural (todos los
// mensajes) → suficiencia de stock para OUT contra el mapa derivado fresco.
// Cualquier lista de errores no vacía bloquea el append; nunca queda un
// movimiento a medias. Devuelve el movimiento creado y el snapshot resultante.
func (uc *RegisterMovementUseCase) Register(role, user string, draft ledger.Draft) (*entity.Movement, repository.Snapshot, error) {
	if !permission.Can(role, permission.ForMovementType(draft.Type)) {
		return nil, repository.Snapshot{}, domain.ErrForbidden
	}

	var created entity.Movement
	snap, err := uc.store.Transact(func(s repository.Snapshot) ([]entity.Movement, error) {
		errs := ledger.Validate(draft, s.Products)

		// La suficiencia depende del estado del ledger, por eso se evalúa acá
		// (bajo el lock) y no en el validador puro.
		if qty, ok := draft.ParseQty(); ok && draft.Type == entity.MovementTypeOut {
			available := stock.Available(stock.Compute(s.Products, s.Movements), draft.ProductID)
			if qty > available {
				errs = append(errs, ledger.InsufficientStockMessage(qty, available))
			}
		}
		if len(errs) > 0 {
			return nil, &domain.ValidationError{Messages: errs}
		}

		qty, _ := draft.ParseQty()
		created = entity.Movement{
			ID:        uuid.New().String(),
			ProductID: draft.ProductID,
			Type:      draft.Type,
			Qty:       qty,
			Note:      strings.TrimSpace(draft.Note),
			User:      user,
			CreatedAt: uc.now(),
		}
		return []entity.Movement{created}, nil
	})
	if err != nil {
		return nil, repository.Snapshot{}, err
	}
	return &created, snap, nil
}
