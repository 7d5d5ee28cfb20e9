package service

import (
	"context"

	"github.com/neurotab/neurotab/figures"
)

// Figures renders the timeline and trend charts for the catalog.
func (s *Service) Figures(ctx context.Context, req *FiguresRequest) (*FiguresResult, error) {
	cat, err := s.ensureCatalog(ctx, req.CatalogURL)
	if err != nil {
		return nil, err
	}
	renderer := figures.New(figures.WithLogf(ensureLogf(req.Logf)))
	saved, err := renderer.RenderAll(ctx, cat, req.DestURL)
	if err != nil {
		return nil, err
	}
	return &FiguresResult{Files: saved}, nil
}
