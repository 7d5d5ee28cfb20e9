package stats

import (
	"math"
	"sort"

	"github.com/neurotab/neurotab/catalog"
	"gonum.org/v1/gonum/integrate"
)

// ArticleRate is the publication pace of one device since its launch.
type ArticleRate struct {
	Model   string
	Studies int
	Years   int
	PerYear float64
}

// ArticlesPerYear ranks devices by studies per year of market presence.
// Devices without studies or without a launch year are omitted.
func ArticlesPerYear(cat *catalog.Catalog, currentYear int) []ArticleRate {
	var out []ArticleRate
	for _, device := range cat.Devices {
		studies, ok := device.StudyCount()
		if !ok || studies == 0 {
			continue
		}
		year, ok := device.LaunchYear()
		if !ok {
			continue
		}
		active := currentYear - year
		if active <= 0 {
			continue
		}
		rate := float64(studies) / float64(active)
		out = append(out, ArticleRate{
			Model:   device.Label(),
			Studies: studies,
			Years:   active,
			PerYear: math.Round(rate*100) / 100,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PerYear > out[j].PerYear })
	return out
}

// Concentration describes how unevenly studies distribute across devices.
// X and Y hold the Lorenz curve points from the least to the most cited
// device, without an origin point.
type Concentration struct {
	Gini  float64
	X, Y  []float64
	N     int
	Total int
}

// StudyConcentration builds the Lorenz curve over per-device study counts
// and derives the Gini coefficient from the area under it. It returns nil
// when fewer than two devices carry study counts.
func StudyConcentration(cat *catalog.Catalog) *Concentration {
	var studies []int
	total := 0
	for _, device := range cat.Devices {
		if n, ok := device.StudyCount(); ok {
			studies = append(studies, n)
			total += n
		}
	}
	if len(studies) < 2 || total == 0 {
		return nil
	}
	sort.Ints(studies)
	n := len(studies)
	x := make([]float64, n)
	y := make([]float64, n)
	cum := 0
	for i, v := range studies {
		cum += v
		x[i] = float64(i+1) / float64(n)
		y[i] = float64(cum) / float64(total)
	}
	area := integrate.Trapezoidal(x, y)
	gini := 1 - 2*area
	return &Concentration{
		Gini:  math.Round(gini*10000) / 10000,
		X:     x,
		Y:     y,
		N:     n,
		Total: total,
	}
}

// TopShare returns the percentage of all studies held by devices above the
// given population quantile; TopShare(0.8) reports the top 20%.
func (c *Concentration) TopShare(quantile float64) float64 {
	idx := int(quantile * float64(c.N))
	if idx >= c.N {
		idx = c.N - 1
	}
	return (1 - c.Y[idx]) * 100
}
