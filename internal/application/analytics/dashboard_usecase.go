// Package analytics expone las vistas derivadas de negocio: resumen del
// dashboard e historial de ventas. Todo se recalcula desde el ledger en cada
// consulta; no hay estado propio.
package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// DashboardUseCase arma el resumen operativo/financiero y el historial.
type DashboardUseCase struct {
	store repository.StockStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.StockStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary métricas del inventario más la lista de stock crítico
// (activos con stock <= mínimo, de menor a mayor stock).
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryDTO {
	s := uc.store.Snapshot()
	stockByID := stock.Compute(s.Products, s.Movements)
	m := stock.ComputeMetrics(s.Products, stockByID)

	critical := make([]dto.CriticalProductDTO, 0)
	for _, p := range s.Products {
		if !stock.IsLowStock(p, stockByID) {
			continue
		}
		critical = append(critical, dto.CriticalProductDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Category:  p.NormalizedCategory(),
			Stock:     stockByID[p.ID],
			MinStock:  p.MinStock,
		})
	}
	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].Stock < critical[j].Stock
	})

	return dto.DashboardSummaryDTO{
		TotalProducts:   m.TotalProducts,
		LowStockCount:   m.LowStockCount,
		Valuation:       m.Valuation,
		PotentialMargin: m.PotentialMargin,
		Critical:        critical,
	}
}

// SalesHistory buckets día/semana/mes anclados a now.
func (uc *DashboardUseCase) SalesHistory(now time.Time) dto.SalesHistoryDTO {
	s := uc.store.Snapshot()
	h := stock.ComputeSalesHistory(s.Products, s.Movements, now)
	return dto.SalesHistoryDTO{
		Day:   dto.SalesBucketDTO{Gross: h.Day.Gross, Cost: h.Day.Cost, Net: h.Day.Net},
		Week:  dto.SalesBucketDTO{Gross: h.Week.Gross, Cost: h.Week.Cost, Net: h.Week.Net},
		Month: dto.SalesBucketDTO{Gross: h.Month.Gross, Cost: h.Month.Cost, Net: h.Month.Net},
	}
}
