package service

import (
	"github.com/neurotab/neurotab/extract"
)

// AnalyzeRequest defines inputs for the full catalog report.
type AnalyzeRequest struct {
	CatalogURL  string
	ReportURL   string
	CurrentYear int
	Logf        func(format string, args ...any)
}

// AnalyzeResult captures the report outcome.
type AnalyzeResult struct {
	ReportURL string
	Devices   int
	Report    string
}

// BreakdownRequest defines inputs for the console style analyses.
type BreakdownRequest struct {
	CatalogURL string
	Logf       func(format string, args ...any)
}

// BreakdownResult carries a console style analysis.
type BreakdownResult struct {
	Devices int
	Text    string
}

// ExtractRequest defines inputs for the PDF to JSON conversion.
type ExtractRequest struct {
	SourceURL    string
	DestURL      string
	Include      []string
	Exclude      []string
	MaxSizeBytes int64
	Workers      int
	Logf         func(format string, args ...any)
}

// ExtractResult captures the conversion outcome.
type ExtractResult struct {
	Summary *extract.Summary
	Stats   extract.Stats
}

// SplitRequest defines inputs for splitting an extracted document.
type SplitRequest struct {
	SourceURL string
	DestURL   string
	Logf      func(format string, args ...any)
}

// SplitResult lists the files a split produced.
type SplitResult struct {
	Files []string
}

// FiguresRequest defines inputs for figure rendering.
type FiguresRequest struct {
	CatalogURL string
	DestURL    string
	Logf       func(format string, args ...any)
}

// FiguresResult lists the rendered figure locations.
type FiguresResult struct {
	Files []string
}
