// Package stats computes the descriptive analyses of the device catalog
// that feed the manuscript revision reports.
package stats

import (
	"sort"
	"strings"

	"github.com/neurotab/neurotab/catalog"
)

// YearCount is the number of devices first seen in one year.
type YearCount struct {
	Year  int
	Count int
}

// YearSummary describes launch years. Only fully numeric cells count;
// annotated years are reported as missing.
type YearSummary struct {
	With    int
	Without int
	Min     int
	Max     int
	PerYear []YearCount
}

// PriceSummary describes list prices. Empty cells are ignored entirely;
// non-empty cells that do not parse count as missing.
type PriceSummary struct {
	With    int
	Without int
	Min     float64
	Max     float64
	Mean    float64
}

// RangeSummary describes an integer-valued column.
type RangeSummary struct {
	N    int
	Min  int
	Max  int
	Mean float64
}

// StudySummary describes the studies-found column.
type StudySummary struct {
	N     int
	Total int
	Min   int
	Max   int
	Mean  float64
}

// Summary aggregates the basic catalog analyses.
type Summary struct {
	DeviceCount   int
	Years         YearSummary
	Manufacturers []string
	Countries     []CountItem
	Technologies  []CountItem
	Prices        PriceSummary
	Channels      RangeSummary
	Studies       StudySummary
}

// Summarize computes the basic analyses in one pass over the catalog.
func Summarize(cat *catalog.Catalog) *Summary {
	s := &Summary{DeviceCount: cat.Len()}

	var years []int
	perYear := map[int]int{}
	manufacturers := map[string]bool{}
	var countries, technologies []string
	var prices []float64
	var channels, studies []int

	for _, device := range cat.Devices {
		if year, ok := device.LaunchYearStrict(); ok {
			years = append(years, year)
			perYear[year]++
		} else {
			s.Years.Without++
		}

		if name := cleanCell(device.Manufacturer()); name != "" {
			manufacturers[name] = true
		}
		if origin := cleanCell(device.Origin()); origin != "" {
			countries = append(countries, origin)
		}
		if tech := cleanCell(device.Technology()); tech != "" {
			technologies = append(technologies, tech)
		}

		if strings.TrimSpace(device.Price()) != "" {
			if price, ok := device.PriceUSD(); ok {
				prices = append(prices, price)
			} else {
				s.Prices.Without++
			}
		}

		if n, ok := device.ChannelCount(); ok {
			channels = append(channels, n)
		}
		if n, ok := device.StudyCount(); ok {
			studies = append(studies, n)
		}
	}

	s.Years.With = len(years)
	if len(years) > 0 {
		sort.Ints(years)
		s.Years.Min = years[0]
		s.Years.Max = years[len(years)-1]
	}
	for year, count := range perYear {
		s.Years.PerYear = append(s.Years.PerYear, YearCount{Year: year, Count: count})
	}
	sort.Slice(s.Years.PerYear, func(i, j int) bool {
		return s.Years.PerYear[i].Year < s.Years.PerYear[j].Year
	})

	for name := range manufacturers {
		s.Manufacturers = append(s.Manufacturers, name)
	}
	sort.Strings(s.Manufacturers)

	s.Countries = countsOf(countries)
	s.Technologies = countsOf(technologies)

	s.Prices.With = len(prices)
	if len(prices) > 0 {
		sort.Float64s(prices)
		s.Prices.Min = prices[0]
		s.Prices.Max = prices[len(prices)-1]
		s.Prices.Mean = mean(prices)
	}

	s.Channels = intRange(channels)
	s.Studies.N = len(studies)
	if len(studies) > 0 {
		r := intRange(studies)
		s.Studies.Min = r.Min
		s.Studies.Max = r.Max
		s.Studies.Mean = r.Mean
		for _, n := range studies {
			s.Studies.Total += n
		}
	}
	return s
}

func intRange(values []int) RangeSummary {
	r := RangeSummary{N: len(values)}
	if len(values) == 0 {
		return r
	}
	r.Min, r.Max = values[0], values[0]
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	r.Mean = meanInt(values)
	return r
}

// cleanCell trims a cell and folds line breaks into spaces so multi-line
// names list on one line.
func cleanCell(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.Join(strings.Fields(value), " ")
	return value
}
