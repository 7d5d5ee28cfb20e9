package stats

import (
	"sort"

	"github.com/neurotab/neurotab/catalog"
)

var priceBandOrder = []string{
	"< $200", "$200 - $500", "$500 - $1000", "$1000 - $2000",
	"$2000 - $5000", "$5000 - $10000", "> $10000",
}

// PricedDevice pairs a device label with its parsed price.
type PricedDevice struct {
	Model string
	Price float64
}

// PriceBreakdown groups catalog prices into market bands and tiers.
type PriceBreakdown struct {
	Total    int
	Priced   int
	Unpriced int
	Bands    []CountItem
	Budget   []PricedDevice
	MidRange []PricedDevice
	Premium  []PricedDevice
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
}

// Prices buckets every parseable price into bands and the three market
// tiers discussed in the manuscript.
func Prices(cat *catalog.Catalog) *PriceBreakdown {
	b := &PriceBreakdown{Total: cat.Len()}
	bandCounts := map[string]int{}
	var values []float64

	for _, device := range cat.Devices {
		price, ok := device.PriceUSD()
		if !ok {
			continue
		}
		b.Priced++
		values = append(values, price)
		bandCounts[priceBand(price)]++

		priced := PricedDevice{Model: device.Label(), Price: price}
		switch {
		case price < 500:
			b.Budget = append(b.Budget, priced)
		case price < 2000:
			b.MidRange = append(b.MidRange, priced)
		default:
			b.Premium = append(b.Premium, priced)
		}
	}

	b.Unpriced = b.Total - b.Priced
	b.Bands = allCounts(bandCounts, priceBandOrder)
	sortPriced(b.Budget)
	sortPriced(b.MidRange)
	sortPriced(b.Premium)

	if len(values) > 0 {
		sort.Float64s(values)
		b.Min = values[0]
		b.Max = values[len(values)-1]
		b.Mean = mean(values)
		b.Median = values[len(values)/2]
	}
	return b
}

func priceBand(price float64) string {
	switch {
	case price < 200:
		return "< $200"
	case price < 500:
		return "$200 - $500"
	case price < 1000:
		return "$500 - $1000"
	case price < 2000:
		return "$1000 - $2000"
	case price < 5000:
		return "$2000 - $5000"
	case price < 10000:
		return "$5000 - $10000"
	default:
		return "> $10000"
	}
}

func sortPriced(devices []PricedDevice) {
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Price < devices[j].Price
	})
}
