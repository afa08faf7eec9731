package inventory

import (
	"strconv"
	"strings"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/ledger"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// NoteRestock nota fija de las compras generadas desde la lista de reposición.
const NoteRestock = "Reposicion"

// RestockUseCase arma la lista de reposición sugerida y confirma compras
// fila por fila (cada confirmación es un IN independiente).
type RestockUseCase struct {
	store    repository.StockStore
	register *RegisterMovementUseCase
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(store repository.StockStore, register *RegisterMovementUseCase) *RestockUseCase {
	return &RestockUseCase{store: store, register: register}
}

// SuggestedQty cantidad sugerida de compra: lo que falta para llegar al stock
// objetivo (TargetStock, o MinStock si no hay objetivo), nunca negativa.
func SuggestedQty(p entity.Product, current int) int {
	if diff := p.RestockTarget() - current; diff > 0 {
		return diff
	}
	return 0
}

// Plan lista los productos activos con stock estrictamente por debajo del
// mínimo, en orden alfabético. Las filas ya repuestas (stock >= mínimo) salen
// solas de la lista en la siguiente derivación.
func (uc *RestockUseCase) Plan() []dto.RestockRowDTO {
	s := uc.store.Snapshot()
	stockByID := stock.Compute(s.Products, s.Movements)

	low := make([]entity.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if p.Active && stockByID[p.ID] < p.MinStock {
			low = append(low, p)
		}
	}
	sortByName(low)

	rows := make([]dto.RestockRowDTO, 0, len(low))
	for _, p := range low {
		current := stockByID[p.ID]
		rows = append(rows, dto.RestockRowDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Current:   current,
			MinStock:  p.MinStock,
			Target:    p.RestockTarget(),
			Suggested: SuggestedQty(p, current),
		})
	}
	return rows
}

// Confirm registra la compra de una fila. qty permite pisar la sugerencia;
// vacía usa la cantidad sugerida. Pasa por Register, así hereda el gate de
// permisos (crear IN) y la validación completa.
func (uc *RestockUseCase) Confirm(role, user, productID, qty string) (*entity.Movement, repository.Snapshot, error) {
	if strings.TrimSpace(qty) == "" {
		s := uc.store.Snapshot()
		stockByID := stock.Compute(s.Products, s.Movements)
		for _, p := range s.Products {
			if p.ID == productID {
				qty = strconv.Itoa(SuggestedQty(p, stockByID[p.ID]))
				break
			}
		}
	}
	return uc.register.Register(role, user, ledger.Draft{
		ProductID: productID,
		Type:      entity.MovementTypeIn,
		Qty:       qty,
		Note:      NoteRestock,
	})
}
