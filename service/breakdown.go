package service

import (
	"context"

	"github.com/neurotab/neurotab/catalog"
	"github.com/neurotab/neurotab/report"
)

// Prices prints the consumer price breakdown.
func (s *Service) Prices(ctx context.Context, req *BreakdownRequest) (*BreakdownResult, error) {
	return s.breakdown(ctx, req, report.Prices)
}

// Clinical prints the clinical certification breakdown.
func (s *Service) Clinical(ctx context.Context, req *BreakdownRequest) (*BreakdownResult, error) {
	return s.breakdown(ctx, req, report.Clinical)
}

// Industrial prints the industrial and workplace usage breakdown.
func (s *Service) Industrial(ctx context.Context, req *BreakdownRequest) (*BreakdownResult, error) {
	return s.breakdown(ctx, req, report.Industrial)
}

func (s *Service) breakdown(ctx context.Context, req *BreakdownRequest, build func(*catalog.Catalog) string) (*BreakdownResult, error) {
	cat, err := s.ensureCatalog(ctx, req.CatalogURL)
	if err != nil {
		return nil, err
	}
	text := build(cat)
	ensureLogf(req.Logf)("%s", text)
	return &BreakdownResult{Devices: cat.Len(), Text: text}, nil
}
