package inventory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/ledger"
	"github.com/jhoicas/control-stock/internal/domain/permission"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// NoteCount nota fija de los ajustes generados por conteo físico.
const NoteCount = "Conteo"

// CountFilters acota el alcance del conteo físico.
type CountFilters struct {
	OnlyActive bool
	OnlyLow    bool
	Category   string // vacío o "ALL" = todas
}

// CountUseCase implementa el conteo físico: diff entre el conteo observado y
// el stock derivado, y la emisión de los ADJUST correctivos.
type CountUseCase struct {
	store repository.StockStore
	now   func() time.Time
}

// NewCountUseCase construye el caso de uso.
func NewCountUseCase(store repository.StockStore) *CountUseCase {
	return &CountUseCase{store: store, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *CountUseCase) WithClock(now func() time.Time) *CountUseCase {
	uc.now = now
	return uc
}

// filterProducts aplica los filtros y devuelve los productos en orden
// alfabético (colación española), que es también el orden de ajuste.
func filterProducts(s repository.Snapshot, f CountFilters, stockByID map[string]int) []entity.Product {
	out := make([]entity.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if f.OnlyActive && !p.Active {
			continue
		}
		if f.OnlyLow && stockByID[p.ID] > p.MinStock {
			continue
		}
		if f.Category != "" && f.Category != "ALL" && p.NormalizedCategory() != f.Category {
			continue
		}
		out = append(out, p)
	}
	sortByName(out)
	return out
}

// parseCount interpreta el conteo tipeado por el operador; vacío o no
// parseable equivale al stock derivado (fila sin ajuste).
func parseCount(raw string, fallback int) int {
	if v, ok := (ledger.Draft{Qty: raw}).ParseQty(); ok {
		return v
	}
	return fallback
}

// Plan arma las filas del conteo: stock derivado, conteo observado y diff.
// Una fila con diff 0 está saldada y no genera ajuste.
func (uc *CountUseCase) Plan(f CountFilters, counts map[string]string) []dto.CountRowDTO {
	s := uc.store.Snapshot()
	stockByID := stock.Compute(s.Products, s.Movements)

	products := filterProducts(s, f, stockByID)
	rows := make([]dto.CountRowDTO, 0, len(products))
	for _, p := range products {
		current := stockByID[p.ID]
		real := parseCount(counts[p.ID], current)
		rows = append(rows, dto.CountRowDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Category:  p.NormalizedCategory(),
			Current:   current,
			Real:      real,
			Diff:      real - current,
		})
	}
	return rows
}

// Confirm anexa un ADJUST (qty = conteo observado, absoluto) por cada fila con
// diff distinto de cero, en orden alfabético. El lote es todo o nada: se
// validan todos los ajustes contra el mismo snapshot y, si alguno falla, no se
// anexa ninguno.
func (uc *CountUseCase) Confirm(role, user string, f CountFilters, counts map[string]string) (dto.ConfirmCountResponse, error) {
	if !permission.Can(role, permission.MovementCreateAdjust) {
		return dto.ConfirmCountResponse{}, domain.ErrForbidden
	}

	var adjusted int
	snap, err := uc.store.Transact(func(s repository.Snapshot) ([]entity.Movement, error) {
		stockByID := stock.Compute(s.Products, s.Movements)

		var movs []entity.Movement
		var errs []string
		for _, p := range filterProducts(s, f, stockByID) {
			current := stockByID[p.ID]
			real := parseCount(counts[p.ID], current)
			if real == current {
				continue // fila saldada
			}
			draft := ledger.Draft{
				ProductID: p.ID,
				Type:      entity.MovementTypeAdjust,
				Qty:       strconv.Itoa(real),
				Note:      NoteCount,
			}
			if rowErrs := ledger.Validate(draft, s.Products); len(rowErrs) > 0 {
				for _, msg := range rowErrs {
					errs = append(errs, fmt.Sprintf("%s: %s", p.Name, msg))
				}
				continue
			}
			movs = append(movs, entity.Movement{
				ID:        uuid.New().String(),
				ProductID: p.ID,
				Type:      entity.MovementTypeAdjust,
				Qty:       real,
				Note:      NoteCount,
				User:      user,
				CreatedAt: uc.now(),
			})
		}
		if len(errs) > 0 {
			return nil, &domain.ValidationError{Messages: errs}
		}
		adjusted = len(movs)
		return movs, nil
	})
	if err != nil {
		return dto.ConfirmCountResponse{}, err
	}
	return dto.ConfirmCountResponse{Adjusted: adjusted, Version: snap.Version}, nil
}
