package figures

import (
	"image/color"
	"math"
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func testCatalog(t *testing.T, rows [][]string) *catalog.Catalog {
	t.Helper()
	cat := catalog.FromRows("test", rows)
	if cat.Len() == 0 {
		t.Fatalf("fixture catalog is empty")
	}
	return cat
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimelinePoints(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColYear, catalog.ColTechnology, catalog.ColStudies},
		{"Alpha\nwireless headset", "2014", "EEG + fNIRS", "120 (PubMed)"},
		{"Beta", "2019 (est.)", "fNIRS", "---"},
		{"Gamma", "---", "EEG", "50"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", "2021", "VR + EEG", "8"},
	})

	points := timelinePoints(cat)
	want := []point{
		{model: "Alpha", year: 2014, tech: "EEG", studies: 120},
		{model: "Beta", year: 2019, tech: "fNIRS", studies: 0},
		{model: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123", year: 2021, tech: "VR", studies: 8},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d: %+v", len(want), len(points), points)
	}
	for i, pt := range points {
		if pt != want[i] {
			t.Fatalf("point %d: got %+v, want %+v", i, pt, want[i])
		}
	}
}

func TestTechColor(t *testing.T) {
	cases := []struct {
		name string
		tech string
		want color.NRGBA
	}{
		{"eeg", "EEG", colorEEG},
		{"eeg fragment wins over vr", "VR EEG", colorEEG},
		{"fnirs", "fNIRS", colorFNIRS},
		{"vr with trailing space", "VR Headset", colorVR},
		{"bare vr stays neutral", "VR", colorNeutral},
		{"unknown", "MEG", colorNeutral},
	}
	for _, tc := range cases {
		if got := techColor(tc.tech); got != tc.want {
			t.Fatalf("%s: techColor(%q)=%v, want %v", tc.name, tc.tech, got, tc.want)
		}
	}
}

func TestSpread(t *testing.T) {
	if got := spread(0); got != nil {
		t.Fatalf("spread(0)=%v, want nil", got)
	}
	if got := spread(1); len(got) != 1 || got[0] != 0.1 {
		t.Fatalf("spread(1)=%v, want [0.1]", got)
	}
	got := spread(3)
	want := []float64{0.1, 0.5, 0.9}
	if len(got) != len(want) {
		t.Fatalf("spread(3)=%v", got)
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("spread(3)[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestBubbleRadius(t *testing.T) {
	floor := bubbleRadius(0)
	if got := bubbleRadius(40); got != floor {
		t.Fatalf("counts under the floor share the minimum radius: %v vs %v", got, floor)
	}
	ceiling := bubbleRadius(400)
	if got := bubbleRadius(5000); got != ceiling {
		t.Fatalf("counts over the ceiling share the maximum radius: %v vs %v", got, ceiling)
	}
	mid := bubbleRadius(100)
	if !(floor < mid && mid < ceiling) {
		t.Fatalf("radius should grow with the study count: %v %v %v", floor, mid, ceiling)
	}
}

func TestTrendData(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColYear, catalog.ColTechnology, catalog.ColChannels, catalog.ColConnectivity},
		{"Alpha", "2016", "EEG", "8", "Bluetooth 5.0"},
		{"Beta", "2017 (announced)", "EEG", "16", "Wi-Fi"},
		{"Gamma", "2018", "fNIRS", "---", "BLE"},
		{"Delta", "2024", "EEG", "32", "WLAN"},
		{"Epsilon", "---", "EEG", "4", "Bluetooth"},
	})

	series := trendData(cat, timelinePoints(cat))
	if len(series.labels) != 4 || series.labels[1] != "2015-2018" {
		t.Fatalf("unexpected period labels: %v", series.labels)
	}
	if !almostEqual(series.devices[1], 3) {
		t.Fatalf("2015-2018 devices=%v, want 3", series.devices[1])
	}
	// Beta's annotated year cell drops it from the channel and connectivity
	// aggregates even though the timeline counts it.
	if !almostEqual(series.channels[1], 8) {
		t.Fatalf("2015-2018 channels=%v, want 8", series.channels[1])
	}
	if !almostEqual(series.bluetooth[1], 100) || !almostEqual(series.wifi[1], 0) {
		t.Fatalf("2015-2018 connectivity: bt=%v wifi=%v", series.bluetooth[1], series.wifi[1])
	}
	if !almostEqual(series.devices[3], 1) || !almostEqual(series.wifi[3], 100) {
		t.Fatalf("2023-2025 window: devices=%v wifi=%v", series.devices[3], series.wifi[3])
	}
	if !almostEqual(series.devices[0], 0) || !almostEqual(series.channels[0], 0) {
		t.Fatalf("2008-2014 window should stay empty: %+v", series)
	}
}
