package dto

// CountRowDTO fila del conteo físico: stock derivado vs. conteo observado.
type CountRowDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Current   int    `json:"current"` // stock derivado del ledger
	Real      int    `json:"real"`    // conteo observado (default: Current)
	Diff      int    `json:"diff"`    // Real − Current; 0 = fila saldada
}

// ConfirmCountRequest body para POST /api/reconciliation/count.
// Counts mapea product_id → conteo observado tal cual lo tipeó el operador;
// vacío o no parseable equivale al stock derivado (sin ajuste).
type ConfirmCountRequest struct {
	Counts map[string]string `json:"counts"`
}

// ConfirmCountResponse resultado del conteo confirmado.
type ConfirmCountResponse struct {
	Adjusted int    `json:"adjusted"` // movimientos ADJUST anexados
	Version  uint64 `json:"version"`
}

// RestockRowDTO fila de la lista de reposición sugerida.
type RestockRowDTO struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Current   int    `json:"current"`
	MinStock  int    `json:"min_stock"`
	Target    int    `json:"target"`    // TargetStock o MinStock
	Suggested int    `json:"suggested"` // max(0, Target − Current)
}

// ConfirmRestockRequest body para POST /api/reconciliation/restock.
// Qty permite pisar la cantidad sugerida; vacía = usar la sugerida.
type ConfirmRestockRequest struct {
	ProductID string `json:"product_id"`
	Qty       string `json:"qty"`
}
