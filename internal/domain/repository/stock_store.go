// Package repository define los puertos de persistencia del dominio.
// El core es agnóstico al almacenamiento: opera sobre el agregado en memoria
// que el colaborador le entrega.
package repository

import "github.com/jhoicas/control-stock/internal/domain/entity"

// Snapshot es una vista inmutable y versionada del agregado
// {productos, movimientos}. Cada append incrementa Version.
type Snapshot struct {
	Products  []entity.Product
	Movements []entity.Movement
	Version   uint64
}

// StockStore es el contenedor del estado. Transact es el punto de
// serialización exigido por el motor: ejecuta fn bajo el lock de escritura con
// el snapshot vigente y agrega en bloque los movimientos que fn devuelve.
// Si fn retorna error no se agrega nada (todo o nada).
//
// El ledger es append-only: no existe operación para editar ni borrar
// movimientos.
type StockStore interface {
	// Snapshot devuelve una copia consistente del estado actual.
	Snapshot() Snapshot

	// Transact valida-y-agrega de forma atómica. fn recibe el snapshot
	// bloqueado y devuelve los movimientos a anexar al ledger.
	Transact(fn func(s Snapshot) ([]entity.Movement, error)) (Snapshot, error)

	// CreateProduct agrega un producto nuevo; ErrDuplicate si el id o el SKU
	// ya existen.
	CreateProduct(p entity.Product) error

	// UpdateProduct reemplaza los atributos editables de un producto;
	// ErrNotFound si el id no existe.
	UpdateProduct(p entity.Product) error

	// GetProduct busca un producto por id.
	GetProduct(id string) (*entity.Product, bool)
}
