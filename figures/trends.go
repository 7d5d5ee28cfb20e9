package figures

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/neurotab/neurotab/catalog"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// trendWindows are the market periods the manuscript compares.
var trendWindows = []struct {
	from, to int
	label    string
}{
	{2008, 2014, "2008-2014"},
	{2015, 2018, "2015-2018"},
	{2019, 2022, "2019-2022"},
	{2023, 2025, "2023-2025"},
}

// trendSeries carries the per-period aggregates drawn on the panel.
type trendSeries struct {
	labels    []string
	devices   []float64
	channels  []float64
	bluetooth []float64
	wifi      []float64
}

// trendData aggregates the catalog per period. Device counts follow the
// timeline year while channel and connectivity rates only consider rows
// whose year cell is plainly numeric.
func trendData(cat *catalog.Catalog, points []point) *trendSeries {
	series := &trendSeries{}
	for _, window := range trendWindows {
		series.labels = append(series.labels, window.label)

		entered := 0
		for _, pt := range points {
			if pt.year >= window.from && pt.year <= window.to {
				entered++
			}
		}
		series.devices = append(series.devices, float64(entered))

		var channels []float64
		total, bluetooth, wifi := 0, 0, 0
		for _, device := range cat.Devices {
			year, ok := device.LaunchYearStrict()
			if !ok || year < window.from || year > window.to {
				continue
			}
			total++
			if n, ok := catalog.FirstNumber(device.Channels()); ok {
				channels = append(channels, float64(n))
			}
			conn := strings.ToLower(device.Connectivity())
			if conn != "" {
				if strings.Contains(conn, "bluetooth") || strings.Contains(conn, "ble") {
					bluetooth++
				}
				if strings.Contains(conn, "wifi") || strings.Contains(conn, "wi-fi") || strings.Contains(conn, "wlan") {
					wifi++
				}
			}
		}
		series.channels = append(series.channels, meanOf(channels))
		series.bluetooth = append(series.bluetooth, share(bluetooth, total))
		series.wifi = append(series.wifi, share(wifi, total))
	}
	return series
}

// trendsPanel lays out the four period charts on one canvas.
func trendsPanel(series *trendSeries) ([][]*plot.Plot, error) {
	devices, err := periodBars("A) New Devices per Period", "Number of Devices", series.labels, series.devices)
	if err != nil {
		return nil, err
	}
	channels, err := periodLine("B) Average Channel Count Evolution", "Average Channel Count", series.labels, series.channels, colorFNIRS, "%.1f")
	if err != nil {
		return nil, err
	}
	bluetooth, err := periodLine("C) Bluetooth Adoption Rate", "Percentage (%)", series.labels, series.bluetooth, colorGreen, "%.0f%%")
	if err != nil {
		return nil, err
	}
	bluetooth.Y.Min, bluetooth.Y.Max = 0, 100
	wifi, err := periodLine("D) Wi-Fi Adoption Rate", "Percentage (%)", series.labels, series.wifi, colorVR, "%.0f%%")
	if err != nil {
		return nil, err
	}
	wifi.Y.Min, wifi.Y.Max = 0, 100
	return [][]*plot.Plot{{devices, channels}, {bluetooth, wifi}}, nil
}

func periodBars(title, yLabel string, labels []string, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.NRGBA{}
	grid.Horizontal.Color = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x66}
	p.Add(grid)

	bar, err := plotter.NewBarChart(plotter.Values(values), vg.Points(22))
	if err != nil {
		return nil, err
	}
	bar.Color = colorEEG
	bar.LineStyle.Color = color.White
	p.Add(bar)

	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = strconv.Itoa(int(v))
	}
	if err := annotate(p, values, texts, vg.Points(3)); err != nil {
		return nil, err
	}

	p.NominalX(labels...)
	p.Y.Min = 0
	if max := maxOf(values); max > 0 {
		p.Y.Max = max * 1.2
	}
	return p, nil
}

func periodLine(title, yLabel string, labels []string, values []float64, c color.NRGBA, format string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.NRGBA{}
	grid.Horizontal.Color = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x66}
	p.Add(grid)

	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, markers, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	markers.GlyphStyle = draw.GlyphStyle{Color: c, Radius: vg.Points(5), Shape: draw.CircleGlyph{}}
	p.Add(line, markers)

	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = fmt.Sprintf(format, v)
	}
	if err := annotate(p, values, texts, vg.Points(10)); err != nil {
		return nil, err
	}

	p.NominalX(labels...)
	return p, nil
}

// annotate writes one value label above each category position.
func annotate(p *plot.Plot, values []float64, texts []string, raise vg.Length) error {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	labels.Offset = vg.Point{X: vg.Points(-6), Y: raise}
	p.Add(labels)
	return nil
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

func share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
