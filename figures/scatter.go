package figures

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// legendEntries names the technology classes shown on the timeline legend.
var legendEntries = []struct {
	name  string
	color color.NRGBA
}{
	{"EEG", colorEEG},
	{"fNIRS", colorFNIRS},
	{"VR + EEG", colorVR},
	{"AR + EEG", colorAR},
}

type bubbleSeries struct {
	xys   plotter.XYs
	radii []vg.Length
}

// timelineScatter builds the bubble chart of market entries. Devices from
// the same year spread vertically across the lane and the bubble area
// follows the study count.
func timelineScatter(points []point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Timeline of Wireless Brain Monitoring Devices (2008-2025)\nBubble size proportional to number of studies"
	p.X.Label.Text = "Year of Market Entry"
	p.Y.Label.Text = "Device Distribution"

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.NRGBA{}
	grid.Vertical.Color = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x66}
	p.Add(grid)

	midline, err := plotter.NewLine(plotter.XYs{{X: 2007, Y: 0.5}, {X: 2026, Y: 0.5}})
	if err != nil {
		return nil, err
	}
	midline.LineStyle.Color = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x4d}
	midline.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(midline)

	years := make([]int, 0)
	grouped := make(map[int][]point)
	for _, pt := range points {
		if _, ok := grouped[pt.year]; !ok {
			years = append(years, pt.year)
		}
		grouped[pt.year] = append(grouped[pt.year], pt)
	}
	sort.Ints(years)

	buckets := make(map[color.NRGBA]*bubbleSeries)
	var labelXYs plotter.XYs
	var labelTexts []string
	for _, year := range years {
		group := grouped[year]
		lanes := spread(len(group))
		for i, device := range group {
			c := techColor(device.tech)
			bucket := buckets[c]
			if bucket == nil {
				bucket = &bubbleSeries{}
				buckets[c] = bucket
			}
			xy := plotter.XY{X: float64(year), Y: lanes[i]}
			bucket.xys = append(bucket.xys, xy)
			bucket.radii = append(bucket.radii, bubbleRadius(device.studies))
			if device.studies > 50 {
				labelXYs = append(labelXYs, xy)
				labelTexts = append(labelTexts, device.model)
			}
		}
	}
	for _, entry := range scatterPalette {
		if err := addBubbles(p, entry.color, buckets[entry.color]); err != nil {
			return nil, err
		}
	}
	if err := addBubbles(p, colorNeutral, buckets[colorNeutral]); err != nil {
		return nil, err
	}

	if len(labelTexts) > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelTexts})
		if err != nil {
			return nil, err
		}
		labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
		p.Add(labels)
	}

	for _, entry := range legendEntries {
		thumb, err := plotter.NewScatter(plotter.XYs{})
		if err != nil {
			return nil, err
		}
		thumb.GlyphStyle = draw.GlyphStyle{Color: entry.color, Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
		p.Legend.Add(entry.name, thumb)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Min, p.X.Max = 2007, 2026
	p.Y.Min, p.Y.Max = 0, 1
	p.X.Tick.Marker = yearTicks(2008, 2025, 2)
	p.Y.Tick.Marker = plot.ConstantTicks(nil)
	return p, nil
}

func addBubbles(p *plot.Plot, c color.NRGBA, series *bubbleSeries) error {
	if series == nil {
		return nil
	}
	scatter, err := plotter.NewScatter(series.xys)
	if err != nil {
		return err
	}
	fill := translucent(c)
	radii := series.radii
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: fill, Radius: radii[i], Shape: draw.CircleGlyph{}}
	}
	p.Add(scatter)
	return nil
}

// bubbleRadius converts a study count into a glyph radius. The bubble area
// is clamped so sparsely studied devices stay visible and heavily studied
// ones do not flood the lane.
func bubbleRadius(studies int) vg.Length {
	area := float64(studies) * 0.5
	if area < 30 {
		area = 30
	}
	if area > 200 {
		area = 200
	}
	return vg.Points(math.Sqrt(area / math.Pi))
}

func translucent(c color.NRGBA) color.NRGBA {
	c.A = 0xb2
	return c
}

func yearTicks(from, to, step int) plot.ConstantTicks {
	var ticks []plot.Tick
	for year := from; year <= to; year += step {
		ticks = append(ticks, plot.Tick{Value: float64(year), Label: strconv.Itoa(year)})
	}
	return plot.ConstantTicks(ticks)
}
