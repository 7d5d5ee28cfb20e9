package stats

import (
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

func TestSortCounts_Deterministic(t *testing.T) {
	items := []CountItem{{Label: "b", Count: 2}, {Label: "a", Count: 2}, {Label: "c", Count: 5}}
	sortCounts(items)
	if items[0].Label != "c" || items[1].Label != "a" || items[2].Label != "b" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestConnectivityPredicates(t *testing.T) {
	if !hasBluetooth("Bluetooth 5.2 LE") || !hasBluetooth("BLE") {
		t.Fatalf("bluetooth not detected")
	}
	if hasBluetooth("Wi-Fi only") {
		t.Fatalf("false bluetooth")
	}
	if !hasWiFi("Wi-Fi") || !hasWiFi("WiFi + BT") || !hasWiFi("WLAN 802.11") {
		t.Fatalf("wifi not detected")
	}
	if hasWiFi("Bluetooth") {
		t.Fatalf("false wifi")
	}
}
