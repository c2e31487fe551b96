package catalog

import (
	"sync"

	"github.com/cockroachdb/errors"
)

var ErrNotFound = errors.New("product not found")

// Store holds the active catalog in memory. Products are shared read-only;
// Replace swaps the whole list wholesale so earlier List snapshots stay valid.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore(seed []Product) *Store {
	s := &Store{products: make([]Product, 0, len(seed))}
	s.products = append(s.products, seed...)
	return s
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) GetByUUID(uuid string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.UUID == uuid {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Replace swaps the active catalog for the provided list.
func (s *Store) Replace(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make([]Product, 0, len(products))
	s.products = append(s.products, products...)
}
