package cart

import (
	"github.com/cockroachdb/errors"

	"github.com/jvdzdigital/storefront/internal/catalog"
)

var ErrUnknownProduct = errors.New("unknown product")

// Service orchestrates cart operations against the active catalog.
type Service struct {
	ledger  *Ledger
	catalog *catalog.Service
}

func NewService(ledger *Ledger, cat *catalog.Service) *Service {
	return &Service{ledger: ledger, catalog: cat}
}

// Add resolves the product in the active catalog and adds it to the ledger.
func (s *Service) Add(uuid string) ([]Line, error) {
	p, err := s.catalog.GetByUUID(uuid)
	if err != nil {
		return nil, errors.Mark(err, ErrUnknownProduct)
	}
	s.ledger.Add(p)
	return s.ledger.Lines(), nil
}

func (s *Service) AdjustQuantity(uuid string, delta int) []Line {
	s.ledger.AdjustQuantity(uuid, delta)
	return s.ledger.Lines()
}

func (s *Service) Remove(uuid string) []Line {
	s.ledger.Remove(uuid)
	return s.ledger.Lines()
}

func (s *Service) Lines() []Line {
	return s.ledger.Lines()
}

func (s *Service) Total() int {
	return s.ledger.Total()
}
