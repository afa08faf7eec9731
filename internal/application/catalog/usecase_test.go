package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/application/catalog"
	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/infrastructure/memory"
)

func altaValida() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:      "SKU-1",
		Name:     "Yerba",
		Category: "Almacén",
		Cost:     decimal.NewFromInt(40),
		Price:    decimal.NewFromInt(100),
		MinStock: 5,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func decPtr(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AltaActivaConStockCero(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())

	p, err := uc.Create(altaValida())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID, "el id se genera en el alta")
	assert.True(t, p.Active, "un producto nuevo nace activo")
	assert.Zero(t, p.Stock, "sin movimientos el stock derivado es 0")
}

func TestCreate_Invalidos(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())

	casos := map[string]func(*dto.CreateProductRequest){
		"sin sku":           func(r *dto.CreateProductRequest) { r.SKU = "" },
		"sin nombre":        func(r *dto.CreateProductRequest) { r.Name = "" },
		"costo negativo":    func(r *dto.CreateProductRequest) { r.Cost = decimal.NewFromInt(-1) },
		"precio negativo":   func(r *dto.CreateProductRequest) { r.Price = decimal.NewFromInt(-1) },
		"mínimo negativo":   func(r *dto.CreateProductRequest) { r.MinStock = -1 },
		"objetivo negativo": func(r *dto.CreateProductRequest) { r.TargetStock = intPtr(-1) },
	}
	for nombre, romper := range casos {
		t.Run(nombre, func(t *testing.T) {
			in := altaValida()
			romper(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// No hay regla Price >= Cost: vender a pérdida es decisión del negocio.
func TestCreate_PrecioMenorAlCostoEsValido(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())

	in := altaValida()
	in.Price = decimal.NewFromInt(10)
	in.Cost = decimal.NewFromInt(40)

	_, err := uc.Create(in)
	assert.NoError(t, err)
}

func TestCreate_SKUDuplicado(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())
	_, err := uc.Create(altaValida())
	require.NoError(t, err)

	otra := altaValida()
	otra.Name = "Yerba Premium"
	_, err = uc.Create(otra)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestList_IncluyeStockDerivado(t *testing.T) {
	store := memory.New()
	uc := catalog.NewProductUseCase(store)
	creado, err := uc.Create(altaValida())
	require.NoError(t, err)

	_, err = store.Transact(func(s repository.Snapshot) ([]entity.Movement, error) {
		return []entity.Movement{{ID: "m1", ProductID: creado.ID, Type: entity.MovementTypeIn, Qty: 7}}, nil
	})
	require.NoError(t, err)

	list := uc.List()
	require.Len(t, list, 1)
	assert.Equal(t, 7, list[0].Stock)

	got, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Stock)

	_, err = uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ParcialYValidado(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())
	creado, err := uc.Create(altaValida())
	require.NoError(t, err)

	actual, err := uc.Update(creado.ID, dto.UpdateProductRequest{
		Name:  strPtr("Yerba Premium"),
		Price: decPtr(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "Yerba Premium", actual.Name)
	assert.True(t, actual.Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "Almacén", actual.Category, "los campos no enviados no se tocan")

	_, err = uc.Update(creado.ID, dto.UpdateProductRequest{Cost: decPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Desactivar no borra: el producto sigue en el catálogo completo.
func TestUpdate_Desactivar(t *testing.T) {
	uc := catalog.NewProductUseCase(memory.New())
	creado, err := uc.Create(altaValida())
	require.NoError(t, err)

	actual, err := uc.Update(creado.ID, dto.UpdateProductRequest{Active: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, actual.Active)
	assert.Len(t, uc.List(), 1)
}
