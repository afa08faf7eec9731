// Package catalog casos de uso CRUD del catálogo de productos.
// El stock nunca se edita acá: se deriva del ledger de movimientos.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/domain/stock"
)

// ProductUseCase CRUD de productos sobre el StockStore.
type ProductUseCase struct {
	store repository.StockStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.StockStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create da de alta un producto activo. Cost y Price no negativos; no hay
// regla que obligue Price >= Cost.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.LessThan(decimal.Zero) || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || (in.TargetStock != nil && *in.TargetStock < 0) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	p := entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Category:    in.Category,
		Active:      true,
		Cost:        in.Cost,
		Price:       in.Price,
		MinStock:    in.MinStock,
		TargetStock: in.TargetStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.store.CreateProduct(p); err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(p, 0) // producto nuevo, sin movimientos
	return &resp, nil
}

// List devuelve el catálogo completo con el stock derivado de cada producto.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	s := uc.store.Snapshot()
	stockByID := stock.Compute(s.Products, s.Movements)

	out := make([]dto.ProductResponse, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, dto.ToProductResponse(p, stockByID[p.ID]))
	}
	return out
}

// GetByID obtiene un producto por id con su stock derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, ok := uc.store.GetProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	s := uc.store.Snapshot()
	stockByID := stock.Compute(s.Products, s.Movements)
	resp := dto.ToProductResponse(*p, stockByID[p.ID])
	return &resp, nil
}

// Update modifica atributos editables; el id es inmutable. Desactivar un
// producto lo saca de alertas y reconciliación pero sus movimientos siguen
// siendo válidos para el historial.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, ok := uc.store.GetProduct(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Cost = *in.Cost
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.MinStock = *in.MinStock
	}
	if in.TargetStock != nil {
		if *in.TargetStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.TargetStock = in.TargetStock
	}
	if err := uc.store.UpdateProduct(*p); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}
