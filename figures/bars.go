package figures

import (
	"image/color"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// annualBars builds the stacked bar chart of market entries per year, one
// layer per technology.
func annualBars(points []point) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Annual Distribution of New Brain Monitoring Devices (2008-2025)"
	p.X.Label.Text = "Year of Market Entry"
	p.Y.Label.Text = "Number of Devices"

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.NRGBA{}
	grid.Horizontal.Color = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x66}
	p.Add(grid)

	counts := make(map[string]map[int]int)
	var years []int
	seen := make(map[int]bool)
	for _, pt := range points {
		if counts[pt.tech] == nil {
			counts[pt.tech] = make(map[int]int)
		}
		counts[pt.tech][pt.year]++
		if !seen[pt.year] {
			seen[pt.year] = true
			years = append(years, pt.year)
		}
	}
	sort.Ints(years)

	techs := make([]string, 0, len(counts))
	for tech := range counts {
		techs = append(techs, tech)
	}
	sort.Strings(techs)

	var prev *plotter.BarChart
	for _, tech := range techs {
		values := make(plotter.Values, len(years))
		for i, year := range years {
			values[i] = float64(counts[tech][year])
		}
		bar, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return nil, err
		}
		bar.Color = barColor(tech)
		bar.LineStyle.Color = color.White
		bar.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bar.StackOn(prev)
		}
		p.Add(bar)
		p.Legend.Add(tech, bar)
		prev = bar
	}

	labels := make([]string, len(years))
	for i, year := range years {
		labels[i] = strconv.Itoa(year)
	}
	p.NominalX(labels...)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Y.Min = 0
	return p, nil
}
