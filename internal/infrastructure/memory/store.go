// Package memory implementa el StockStore como agregado versionado en memoria.
// Es el único escritor del ledger: todas las mutaciones pasan por el lock de
// escritura, que es el punto de serialización de la secuencia
// validar-y-anexar.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/repository"
)

// Store agregado {products, movements, version} protegido por RWMutex.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	movements []entity.Movement
	version   uint64
}

// New crea un store vacío.
func New() *Store {
	return &Store{}
}

// NewWithData crea un store sembrado con catálogo y ledger iniciales
// (por ejemplo desde un archivo seed). Copia las slices: el caller no retiene
// aliasing sobre el estado interno.
func NewWithData(products []entity.Product, movements []entity.Movement) *Store {
	s := &Store{
		products:  make([]entity.Product, len(products)),
		movements: make([]entity.Movement, len(movements)),
	}
	copy(s.products, products)
	copy(s.movements, movements)
	return s
}

// Snapshot devuelve una copia consistente del estado actual.
func (s *Store) Snapshot() repository.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() repository.Snapshot {
	snap := repository.Snapshot{
		Products:  make([]entity.Product, len(s.products)),
		Movements: make([]entity.Movement, len(s.movements)),
		Version:   s.version,
	}
	copy(snap.Products, s.products)
	copy(snap.Movements, s.movements)
	return snap
}

// Transact ejecuta fn bajo el lock de escritura y anexa en bloque los
// movimientos devueltos. Si fn falla, el ledger queda intacto y la versión no
// cambia.
func (s *Store) Transact(fn func(snap repository.Snapshot) ([]entity.Movement, error)) (repository.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	movs, err := fn(s.snapshotLocked())
	if err != nil {
		return repository.Snapshot{}, err
	}
	if len(movs) > 0 {
		s.movements = append(s.movements, movs...)
		s.version++
	}
	return s.snapshotLocked(), nil
}

// CreateProduct agrega un producto; id y SKU deben ser únicos en el catálogo.
func (s *Store) CreateProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == p.ID || (p.SKU != "" && existing.SKU == p.SKU) {
			return domain.ErrDuplicate
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	s.products = append(s.products, p)
	s.version++
	return nil
}

// UpdateProduct reemplaza los atributos editables del producto con el mismo id.
// El id es estable durante toda la vida del producto.
func (s *Store) UpdateProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if existing.ID != p.ID {
			continue
		}
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = time.Now()
		s.products[i] = p
		s.version++
		return nil
	}
	return domain.ErrNotFound
}

// GetProduct busca un producto por id.
func (s *Store) GetProduct(id string) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, true
		}
	}
	return nil, false
}
