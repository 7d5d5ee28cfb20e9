// Package figures renders the timeline and trend charts that accompany the
// manuscript revision.
package figures

import (
	"image/color"
	"strings"

	"github.com/neurotab/neurotab/catalog"
)

var (
	colorEEG     = color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	colorFNIRS   = color.NRGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
	colorVR      = color.NRGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff}
	colorAR      = color.NRGBA{R: 0x1a, G: 0xbc, B: 0x9c, A: 0xff}
	colorNeutral = color.NRGBA{R: 0x95, G: 0xa5, B: 0xa6, A: 0xff}
	colorGreen   = color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
)

// scatterPalette maps technology fragments to bubble colors, checked in
// order by substring.
var scatterPalette = []struct {
	key   string
	color color.NRGBA
}{
	{"EEG", colorEEG},
	{"fNIRS", colorFNIRS},
	{"VR ", colorVR},
	{"AR ", colorAR},
}

// barPalette colors the stacked bars by exact technology name.
var barPalette = map[string]color.NRGBA{
	"EEG":   colorEEG,
	"fNIRS": colorFNIRS,
	"VR":    colorVR,
	"AR":    colorAR,
}

// point is one device bubble on the timeline.
type point struct {
	model   string
	year    int
	tech    string
	studies int
}

// timelinePoints keeps the devices that carry a market entry year. The
// technology label is the part before the first "+".
func timelinePoints(cat *catalog.Catalog) []point {
	var points []point
	for _, device := range cat.Devices {
		year, ok := device.FirstYear()
		if !ok {
			continue
		}
		studies, _ := catalog.FirstNumber(device.Studies())
		points = append(points, point{
			model:   truncateRunes(device.Label(), 30),
			year:    year,
			tech:    strings.TrimSpace(strings.Split(device.Technology(), "+")[0]),
			studies: studies,
		})
	}
	return points
}

func techColor(tech string) color.NRGBA {
	for _, entry := range scatterPalette {
		if strings.Contains(tech, entry.key) {
			return entry.color
		}
	}
	return colorNeutral
}

func barColor(tech string) color.NRGBA {
	if c, ok := barPalette[tech]; ok {
		return c
	}
	return colorNeutral
}

// spread distributes n same-year bubbles across the vertical lane.
func spread(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0.1}
	}
	step := 0.8 / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.1 + float64(i)*step
	}
	return out
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func maxOf(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
