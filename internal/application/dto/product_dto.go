package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	TargetStock *int            `json:"target_stock,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Active      *bool            `json:"active,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty"`
	TargetStock *int             `json:"target_stock,omitempty"`
}

// ProductResponse representación HTTP de un producto, con su stock derivado.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Active      bool            `json:"active"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock"`
	TargetStock *int            `json:"target_stock,omitempty"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToProductResponse arma la respuesta con el stock ya derivado.
func ToProductResponse(p entity.Product, stock int) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Category:    p.NormalizedCategory(),
		Active:      p.Active,
		Cost:        p.Cost,
		Price:       p.Price,
		MinStock:    p.MinStock,
		TargetStock: p.TargetStock,
		Stock:       stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
