package figures

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/neurotab/neurotab/catalog"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gonum.org/v1/plot/vg"
)

// File names of the rendered charts.
const (
	ScatterFile = "timeline_scatter.png"
	BarsFile    = "timeline_bar.png"
	TrendsFile  = "temporal_trends.png"
)

// Renderer draws the manuscript figures and stores them as PNG artifacts.
type Renderer struct {
	fs   afs.Service
	logf func(format string, args ...interface{})
}

// Option customizes a renderer.
type Option func(*Renderer)

// WithLogf routes console output.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(r *Renderer) {
		if logf != nil {
			r.logf = logf
		}
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	ret := &Renderer{
		fs: afs.New(),
		logf: func(format string, args ...interface{}) {
			fmt.Printf(format, args...)
		},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// RenderAll draws the timeline scatter, the annual bar chart and the
// temporal trends panel into destURL and returns their locations.
func (r *Renderer) RenderAll(ctx context.Context, cat *catalog.Catalog, destURL string) ([]string, error) {
	r.logf("Carregando dados...\n")
	points := timelinePoints(cat)
	r.logf("Total de dispositivos com ano: %d\n", len(points))
	r.logf("\nGerando figuras...\n")

	var saved []string

	scatter, err := timelineScatter(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", ScatterFile, err)
	}
	data, err := renderPNG(scatter, 14*vg.Inch, 8*vg.Inch)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", ScatterFile, err)
	}
	URL, err := r.save(ctx, destURL, ScatterFile, data)
	if err != nil {
		return nil, err
	}
	saved = append(saved, URL)

	bars, err := annualBars(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", BarsFile, err)
	}
	if data, err = renderPNG(bars, 12*vg.Inch, 6*vg.Inch); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", BarsFile, err)
	}
	if URL, err = r.save(ctx, destURL, BarsFile, data); err != nil {
		return nil, err
	}
	saved = append(saved, URL)

	panel, err := trendsPanel(trendData(cat, points))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", TrendsFile, err)
	}
	if data, err = renderTiledPNG(panel, 12*vg.Inch, 10*vg.Inch); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", TrendsFile, err)
	}
	if URL, err = r.save(ctx, destURL, TrendsFile, data); err != nil {
		return nil, err
	}
	saved = append(saved, URL)

	banner := strings.Repeat("=", 60)
	r.logf("\n%s\n", banner)
	r.logf("FIGURAS GERADAS:\n")
	r.logf("%s\n", banner)
	for i, location := range saved {
		r.logf("%d. %s\n", i+1, location)
	}
	r.logf("\n✅ Todas as figuras foram salvas em: %s\n", destURL)
	return saved, nil
}

func (r *Renderer) save(ctx context.Context, destURL, name string, data []byte) (string, error) {
	URL := url.Join(destURL, name)
	if err := r.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	r.logf("✅ Salvo: %s\n", URL)
	return URL, nil
}
