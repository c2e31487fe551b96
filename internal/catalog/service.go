package catalog

import (
	"context"
	"log/slog"
)

// Fetcher is satisfied by *Client; tests substitute a stub.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// Service owns the active catalog. It starts on the bundled fallback and
// performs exactly one remote load per process lifetime; there is no polling
// and no automatic retry.
type Service struct {
	store  *Store
	client Fetcher
}

func NewService(store *Store, client Fetcher) *Service {
	return &Service{store: store, client: client}
}

// Load replaces the fallback catalog with the remote one. On any failure the
// fallback stays active and the error is returned for the warning banner;
// browsing is never blocked.
func (s *Service) Load(ctx context.Context) error {
	products, err := s.client.Fetch(ctx)
	if err != nil {
		slog.Warn("catalog load failed, keeping bundled inventory", "error", err)
		return err
	}
	s.store.Replace(products)
	slog.Info("catalog loaded", "products", len(products))
	return nil
}

func (s *Service) List(query, category string) []Product {
	return Filter(s.store.List(), query, category)
}

func (s *Service) GetByUUID(uuid string) (Product, error) {
	return s.store.GetByUUID(uuid)
}
