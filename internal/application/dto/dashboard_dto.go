package dto

import "github.com/shopspring/decimal"

// CriticalProductDTO fila de la lista de stock crítico del dashboard.
type CriticalProductDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"min_stock"`
}

// DashboardSummaryDTO resumen operativo y de capital del inventario.
type DashboardSummaryDTO struct {
	TotalProducts   int                  `json:"total_products"`
	LowStockCount   int                  `json:"low_stock_count"`
	Valuation       decimal.Decimal      `json:"valuation"`
	PotentialMargin decimal.Decimal      `json:"potential_margin"`
	Critical        []CriticalProductDTO `json:"critical"`
}

// SalesBucketDTO ventana acumulativa de ventas.
type SalesBucketDTO struct {
	Gross decimal.Decimal `json:"gross"`
	Cost  decimal.Decimal `json:"cost"`
	Net   decimal.Decimal `json:"net"`
}

// SalesHistoryDTO historial de ventas por ventana día/semana/mes.
type SalesHistoryDTO struct {
	Day   SalesBucketDTO `json:"day"`
	Week  SalesBucketDTO `json:"week"`
	Month SalesBucketDTO `json:"month"`
}
