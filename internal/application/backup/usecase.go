// Package backup exporta un snapshot completo del agregado (catálogo +
// ledger) para resguardo externo. Operación exclusiva del rol admin.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/permission"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/infrastructure/export"
)

// Formatos de exportación soportados.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// UseCase arma el backup en el formato pedido.
type UseCase struct {
	store repository.StockStore
	now   func() time.Time
}

// New construye el caso de uso.
func New(store repository.StockStore) *UseCase {
	return &UseCase{store: store, now: time.Now}
}

// jsonBackup estructura del backup JSON.
type jsonBackup struct {
	ExportedAt time.Time     `json:"exported_at"`
	Version    uint64        `json:"version"`
	Products   []jsonProduct `json:"products"`
	Movements  []jsonMov     `json:"movements"`
}

type jsonProduct struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Active      bool   `json:"active"`
	Cost        string `json:"cost"`
	Price       string `json:"price"`
	MinStock    int    `json:"min_stock"`
	TargetStock *int   `json:"target_stock,omitempty"`
}

type jsonMov struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Qty       int       `json:"qty"`
	Note      string    `json:"note,omitempty"`
	User      string    `json:"user"`
	At        time.Time `json:"at"`
}

// Export genera el backup. Devuelve el cuerpo y su content type.
// El gate BackupExport se verifica acá: exportar es admin-only.
func (uc *UseCase) Export(role, format string) ([]byte, string, error) {
	if !permission.Can(role, permission.BackupExport) {
		return nil, "", domain.ErrForbidden
	}
	s := uc.store.Snapshot()

	switch format {
	case "", FormatJSON:
		b := jsonBackup{
			ExportedAt: uc.now(),
			Version:    s.Version,
			Products:   make([]jsonProduct, 0, len(s.Products)),
			Movements:  make([]jsonMov, 0, len(s.Movements)),
		}
		for _, p := range s.Products {
			b.Products = append(b.Products, jsonProduct{
				ID:          p.ID,
				SKU:         p.SKU,
				Name:        p.Name,
				Category:    p.Category,
				Active:      p.Active,
				Cost:        p.Cost.String(),
				Price:       p.Price.String(),
				MinStock:    p.MinStock,
				TargetStock: p.TargetStock,
			})
		}
		for _, m := range s.Movements {
			b.Movements = append(b.Movements, jsonMov{
				ID:        m.ID,
				ProductID: m.ProductID,
				Type:      m.Type,
				Qty:       m.Qty,
				Note:      m.Note,
				User:      m.User,
				At:        m.CreatedAt,
			})
		}
		raw, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("backup json: %w", err)
		}
		return raw, "application/json", nil

	case FormatXML:
		raw, err := export.BuildBackupXML(s, uc.now())
		if err != nil {
			return nil, "", fmt.Errorf("backup xml: %w", err)
		}
		return raw, "application/xml", nil

	default:
		return nil, "", domain.ErrInvalidInput
	}
}
