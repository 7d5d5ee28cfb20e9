package stats

import (
	"sort"
	"strings"
)

// CountItem is one labeled bucket of a distribution.
type CountItem struct {
	Label string
	Count int
}

// sortCounts orders buckets by count descending, then label, so repeated
// runs print identically.
func sortCounts(items []CountItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
}

// countsOf folds a label sequence into ordered buckets.
func countsOf(labels []string) []CountItem {
	counts := map[string]int{}
	for _, label := range labels {
		counts[label]++
	}
	items := make([]CountItem, 0, len(counts))
	for label, count := range counts {
		items = append(items, CountItem{Label: label, Count: count})
	}
	sortCounts(items)
	return items
}

// orderedCounts keeps fixed bucket order, dropping empty buckets.
func orderedCounts(counts map[string]int, order []string) []CountItem {
	var items []CountItem
	for _, label := range order {
		if counts[label] > 0 {
			items = append(items, CountItem{Label: label, Count: counts[label]})
		}
	}
	return items
}

// allCounts keeps fixed bucket order, including empty buckets.
func allCounts(counts map[string]int, order []string) []CountItem {
	items := make([]CountItem, 0, len(order))
	for _, label := range order {
		items = append(items, CountItem{Label: label, Count: counts[label]})
	}
	return items
}

// sortedCounts orders map buckets by count descending, then label.
func sortedCounts(counts map[string]int) []CountItem {
	items := make([]CountItem, 0, len(counts))
	for label, count := range counts {
		items = append(items, CountItem{Label: label, Count: count})
	}
	sortCounts(items)
	return items
}

// sortedAllCounts keeps every named bucket, ordered by count descending.
func sortedAllCounts(counts map[string]int, order []string) []CountItem {
	items := allCounts(counts, order)
	sortCounts(items)
	return items
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

// pct returns the share of part in total as a percentage.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// hasBluetooth reports Bluetooth-class connectivity.
func hasBluetooth(connectivity string) bool {
	c := strings.ToLower(connectivity)
	return strings.Contains(c, "bluetooth") || strings.Contains(c, "ble")
}

// hasWiFi reports Wi-Fi-class connectivity.
func hasWiFi(connectivity string) bool {
	c := strings.ToLower(connectivity)
	return strings.Contains(c, "wifi") || strings.Contains(c, "wi-fi") || strings.Contains(c, "wlan")
}
