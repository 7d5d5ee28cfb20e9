package stats

import (
	"fmt"

	"github.com/neurotab/neurotab/catalog"
)

// Period is one market window of the trend analysis.
type Period struct {
	Label string
	Start int
	End   int
}

// DefaultPeriods are the market windows discussed in the manuscript.
var DefaultPeriods = []Period{
	{Label: "2008-2014", Start: 2008, End: 2014},
	{Label: "2015-2018", Start: 2015, End: 2018},
	{Label: "2019-2022", Start: 2019, End: 2022},
	{Label: "2023-2025", Start: 2023, End: 2025},
}

// PeriodTrend aggregates devices launched inside one period.
type PeriodTrend struct {
	Period            Period
	Devices           int
	AvgChannels       float64
	ChannelN          int
	AvgPrice          float64
	PriceN            int
	AvgCostPerChannel float64
	CostN             int
	BluetoothPct      float64
	WiFiPct           float64
}

// Trends buckets devices into launch periods and summarizes each window.
// A device lands in the first period containing its launch year; years
// outside every window are dropped.
func Trends(cat *catalog.Catalog, periods []Period) []PeriodTrend {
	if len(periods) == 0 {
		periods = DefaultPeriods
	}
	out := make([]PeriodTrend, len(periods))
	channels := make([][]int, len(periods))
	prices := make([][]float64, len(periods))
	bluetooth := make([]int, len(periods))
	wifi := make([]int, len(periods))

	for i := range periods {
		out[i].Period = periods[i]
	}

	for _, device := range cat.Devices {
		year, ok := device.LaunchYear()
		if !ok {
			continue
		}
		idx := -1
		for i, p := range periods {
			if year >= p.Start && year <= p.End {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		out[idx].Devices++
		if n, ok := device.ChannelCount(); ok {
			channels[idx] = append(channels[idx], n)
		}
		if price, ok := device.PriceUSD(); ok {
			prices[idx] = append(prices[idx], price)
		}
		if hasBluetooth(device.Connectivity()) {
			bluetooth[idx]++
		}
		if hasWiFi(device.Connectivity()) {
			wifi[idx]++
		}
	}

	for i := range out {
		out[i].ChannelN = len(channels[i])
		out[i].AvgChannels = meanInt(channels[i])
		out[i].PriceN = len(prices[i])
		out[i].AvgPrice = mean(prices[i])
		out[i].AvgCostPerChannel, out[i].CostN = costPerChannel(channels[i], prices[i])
		out[i].BluetoothPct = pct(bluetooth[i], out[i].Devices)
		out[i].WiFiPct = pct(wifi[i], out[i].Devices)
	}
	return out
}

// costPerChannel pairs the period's channel and price samples by position.
// The lists are collected independently, so the pairing truncates to the
// shorter one.
func costPerChannel(channels []int, prices []float64) (float64, int) {
	n := len(channels)
	if len(prices) < n {
		n = len(prices)
	}
	var costs []float64
	for i := 0; i < n; i++ {
		if channels[i] > 0 {
			costs = append(costs, prices[i]/float64(channels[i]))
		}
	}
	return mean(costs), len(costs)
}

// String renders a compact window description for logs.
func (p Period) String() string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}
