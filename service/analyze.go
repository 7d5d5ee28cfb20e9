package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/neurotab/neurotab/report"
	"github.com/viant/afs/file"
)

// Analyze loads the catalog, renders the full report with the advanced
// metrics, and stores it at the requested location.
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalyzeResult, error) {
	logf := ensureLogf(req.Logf)
	logf("Carregando dados...\n")
	cat, err := s.ensureCatalog(ctx, req.CatalogURL)
	if err != nil {
		return nil, err
	}
	logf("Total de linhas: %d\n", cat.Len())
	logf("Gerando relatório com métricas avançadas...\n")

	currentYear := req.CurrentYear
	if currentYear == 0 {
		currentYear = 2026
	}
	text := report.Table(cat, s.now(), currentYear)
	if req.ReportURL != "" {
		if err := s.fs.Upload(ctx, req.ReportURL, file.DefaultFileOsMode, strings.NewReader(text)); err != nil {
			return nil, fmt.Errorf("failed to save report: %w", err)
		}
		logf("\n✅ Relatório salvo em: %s\n", req.ReportURL)
	}
	logf("\n%s\n", strings.Repeat("=", 60))
	logf("%s\n", text)
	return &AnalyzeResult{ReportURL: req.ReportURL, Devices: cat.Len(), Report: text}, nil
}
