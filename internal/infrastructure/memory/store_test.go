package memory_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/repository"
	"github.com/jhoicas/control-stock/internal/infrastructure/memory"
)

func productoBase(id, sku string) entity.Product {
	return entity.Product{
		ID:       id,
		SKU:      sku,
		Name:     "Yerba",
		Active:   true,
		Price:    decimal.NewFromInt(100),
		Cost:     decimal.NewFromInt(40),
		MinStock: 5,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot
// ──────────────────────────────────────────────────────────────────────────────

// El snapshot es una copia: mutarlo no toca el estado interno del store.
func TestSnapshot_EsCopia(t *testing.T) {
	s := memory.NewWithData(
		[]entity.Product{productoBase("P1", "SKU-1")},
		[]entity.Movement{{ID: "m1", ProductID: "P1", Type: entity.MovementTypeIn, Qty: 10}},
	)

	snap := s.Snapshot()
	snap.Products[0].Name = "pisado"
	snap.Movements[0].Qty = 999

	fresco := s.Snapshot()
	assert.Equal(t, "Yerba", fresco.Products[0].Name)
	assert.Equal(t, 10, fresco.Movements[0].Qty)
}

func TestNewWithData_NoRetieneAliasing(t *testing.T) {
	products := []entity.Product{productoBase("P1", "SKU-1")}
	s := memory.NewWithData(products, nil)

	products[0].Name = "pisado"

	assert.Equal(t, "Yerba", s.Snapshot().Products[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transact
// ──────────────────────────────────────────────────────────────────────────────

func TestTransact_AnexaYSubeVersion(t *testing.T) {
	s := memory.NewWithData([]entity.Product{productoBase("P1", "SKU-1")}, nil)

	snap, err := s.Transact(func(cur repository.Snapshot) ([]entity.Movement, error) {
		return []entity.Movement{
			{ID: "m1", ProductID: "P1", Type: entity.MovementTypeIn, Qty: 10},
			{ID: "m2", ProductID: "P1", Type: entity.MovementTypeOut, Qty: 3},
		}, nil
	})

	require.NoError(t, err)
	assert.Len(t, snap.Movements, 2, "el lote se anexa completo")
	assert.Equal(t, uint64(1), snap.Version, "un lote = un incremento de versión")
}

// Si fn devuelve error, el ledger y la versión quedan intactos.
func TestTransact_ErrorNoMuta(t *testing.T) {
	s := memory.NewWithData([]entity.Product{productoBase("P1", "SKU-1")}, nil)
	boom := errors.New("boom")

	_, err := s.Transact(func(cur repository.Snapshot) ([]entity.Movement, error) {
		return []entity.Movement{{ID: "m1", ProductID: "P1", Type: entity.MovementTypeIn, Qty: 10}}, boom
	})

	assert.ErrorIs(t, err, boom)
	snap := s.Snapshot()
	assert.Empty(t, snap.Movements)
	assert.Zero(t, snap.Version)
}

func TestTransact_SinMovimientosNoSubeVersion(t *testing.T) {
	s := memory.New()

	snap, err := s.Transact(func(cur repository.Snapshot) ([]entity.Movement, error) {
		return nil, nil
	})

	require.NoError(t, err)
	assert.Zero(t, snap.Version)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_DuplicadoPorIDoSKU(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.CreateProduct(productoBase("P1", "SKU-1")))

	assert.ErrorIs(t, s.CreateProduct(productoBase("P1", "SKU-2")), domain.ErrDuplicate, "id repetido")
	assert.ErrorIs(t, s.CreateProduct(productoBase("P2", "SKU-1")), domain.ErrDuplicate, "sku repetido")
	require.NoError(t, s.CreateProduct(productoBase("P2", "SKU-2")))
}

func TestUpdateProduct_PreservaCreatedAt(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.CreateProduct(productoBase("P1", "SKU-1")))
	original, ok := s.GetProduct("P1")
	require.True(t, ok)

	editado := productoBase("P1", "SKU-1")
	editado.Name = "Yerba Premium"
	require.NoError(t, s.UpdateProduct(editado))

	actual, ok := s.GetProduct("P1")
	require.True(t, ok)
	assert.Equal(t, "Yerba Premium", actual.Name)
	assert.Equal(t, original.CreatedAt, actual.CreatedAt)
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	s := memory.New()
	assert.ErrorIs(t, s.UpdateProduct(productoBase("P1", "SKU-1")), domain.ErrNotFound)
}

func TestGetProduct_DevuelveCopia(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.CreateProduct(productoBase("P1", "SKU-1")))

	p, ok := s.GetProduct("P1")
	require.True(t, ok)
	p.Name = "pisado"

	again, _ := s.GetProduct("P1")
	assert.Equal(t, "Yerba", again.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seed
// ──────────────────────────────────────────────────────────────────────────────

func TestNewFromSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := `{
		"products": [
			{"id": "P1", "sku": "SKU-1", "name": "Yerba", "cost": "40", "price": "100", "min_stock": 5},
			{"id": "P2", "sku": "SKU-2", "name": "Azúcar", "active": false, "cost": "20", "price": "50", "min_stock": 4}
		],
		"movements": [
			{"id": "m1", "product_id": "P1", "type": "IN", "qty": 10, "user": "Admin", "at": "2026-07-01T10:00:00Z"},
			{"id": "m2", "product_id": "P1", "type": "OUT", "qty": 3, "user": "Ana", "at": "sin-fecha"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	s, err := memory.NewFromSeedFile(path)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Products, 2)
	assert.True(t, snap.Products[0].Active, "active ausente = activo")
	assert.False(t, snap.Products[1].Active)
	assert.True(t, snap.Products[0].Price.Equal(decimal.NewFromInt(100)))

	require.Len(t, snap.Movements, 2)
	assert.False(t, snap.Movements[0].CreatedAt.IsZero())
	assert.True(t, snap.Movements[1].CreatedAt.IsZero(), "timestamp inválido = movimiento sin fecha")
}

func TestNewFromSeedFile_ArchivoRoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := memory.NewFromSeedFile(path)
	assert.Error(t, err)

	_, err = memory.NewFromSeedFile(filepath.Join(t.TempDir(), "no-existe.json"))
	assert.Error(t, err)
}
