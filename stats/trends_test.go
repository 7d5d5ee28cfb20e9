package stats

import (
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func TestTrends(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColYear, catalog.ColChannels, catalog.ColPrice, catalog.ColConnectivity},
		{"Alpha", "2016", "8", "400", "Bluetooth 4.2"},
		{"Beta", "2017", "16", "800", "Wi-Fi"},
		{"Gamma", "2018", "---", "1200", "BLE + WiFi"},
		{"Delta", "2020", "32", "---", "USB only"},
		{"Epsilon", "1999", "4", "100", "Bluetooth"},
		{"Zeta", "---", "4", "100", "Bluetooth"},
	})

	trends := Trends(cat, nil)
	if len(trends) != 4 {
		t.Fatalf("expected 4 periods, got %d", len(trends))
	}

	second := trends[1]
	if second.Period.Label != "2015-2018" || second.Devices != 3 {
		t.Fatalf("unexpected 2015-2018 window: %+v", second)
	}
	if second.ChannelN != 2 || !almostEqual(second.AvgChannels, 12) {
		t.Fatalf("channels: %+v", second)
	}
	if second.PriceN != 3 || !almostEqual(second.AvgPrice, 800) {
		t.Fatalf("prices: %+v", second)
	}
	if !almostEqual(second.BluetoothPct, 200.0/3) || !almostEqual(second.WiFiPct, 200.0/3) {
		t.Fatalf("connectivity: %+v", second)
	}

	third := trends[2]
	if third.Devices != 1 || third.PriceN != 0 || third.ChannelN != 1 {
		t.Fatalf("unexpected 2019-2022 window: %+v", third)
	}
	if first := trends[0]; first.Devices != 0 {
		t.Fatalf("expected empty 2008-2014 window, got %+v", first)
	}
}

func TestCostPerChannel_PositionalPairing(t *testing.T) {
	// Channel and price samples are collected independently per window, so
	// the third price has no channel partner and drops out.
	avg, n := costPerChannel([]int{8, 16}, []float64{400, 800, 1200})
	if n != 2 {
		t.Fatalf("n=%d want 2", n)
	}
	if !almostEqual(avg, 50) {
		t.Fatalf("avg=%v want 50", avg)
	}
}

func TestCostPerChannel_SkipsZeroChannels(t *testing.T) {
	avg, n := costPerChannel([]int{0, 10}, []float64{500, 500})
	if n != 1 || !almostEqual(avg, 50) {
		t.Fatalf("avg=%v n=%d", avg, n)
	}
}

func TestPeriodString(t *testing.T) {
	if got := (Period{Start: 2019, End: 2022}).String(); got != "2019-2022" {
		t.Fatalf("got %q", got)
	}
	if got := (Period{Label: "early", Start: 1, End: 2}).String(); got != "early" {
		t.Fatalf("got %q", got)
	}
}
