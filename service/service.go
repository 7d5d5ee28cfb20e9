package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/neurotab/neurotab/catalog"
	"github.com/viant/afs"
)

// Option configures the Service.
type Option func(*Service)

// WithClock sets the time source used when stamping reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service exposes reusable operations for catalog analysis, extraction,
// splitting, and figure rendering.
type Service struct {
	fs       afs.Service
	now      func() time.Time
	mu       sync.Mutex
	catalogs map[string]*catalog.Catalog
}

// NewService creates a new Service.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		fs:       afs.New(),
		now:      time.Now,
		catalogs: map[string]*catalog.Catalog{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ensureCatalog loads a catalog once per location and reuses it across
// operations.
func (s *Service) ensureCatalog(ctx context.Context, URL string) (*catalog.Catalog, error) {
	if URL == "" {
		return nil, fmt.Errorf("catalog location required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.catalogs[URL]; ok {
		return cached, nil
	}
	cat, err := catalog.Load(ctx, URL)
	if err != nil {
		return nil, err
	}
	s.catalogs[URL] = cat
	return cat, nil
}

func ensureLogf(logf func(format string, args ...any)) func(format string, args ...any) {
	if logf != nil {
		return logf
	}
	return func(format string, args ...any) {}
}
