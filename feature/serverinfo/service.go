package serverinfo

import (
	"fmt"

	"github.com/Kappa-h/fibulopedia/core/content"

	"go.uber.org/zap"
)

// ErrRateUnknown reports a request for a rate the server does not define.
var ErrRateUnknown = fmt.Errorf("unknown rate")

// Service exposes the server information document.
type Service struct {
	store  *content.Store
	logger *zap.Logger
}

// NewService creates a new server info service.
func NewService(store *content.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Info returns the server info document.
func (s *Service) Info() (content.ServerInfo, error) {
	return s.store.ServerInfo()
}

// Rate returns a single server rate by name (exp, loot, skill, magic).
func (s *Service) Rate(name string) (float64, error) {
	info, err := s.store.ServerInfo()
	if err != nil {
		return 0, err
	}
	rate, ok := info.Rates[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRateUnknown, name)
	}
	return rate, nil
}
