package stats

import (
	"strings"
	"unicode"

	"github.com/neurotab/neurotab/catalog"
)

var formFactors = []string{"Headset", "Headband", "Cap", "Adhesive", "Earphones", "Headphones", "In-Ear"}

var sensorOrder = []string{"Dry", "Semi-Dry", "Wet (gel/saline)", "Hybrid", "Optodes (fNIRS)", "Unknown"}

var wirelessOrder = []string{"Bluetooth/BLE", "Wi-Fi", "RF 2.4 GHz", "Unknown"}

var auxFeatures = []struct {
	label    string
	keywords []string
}{
	{label: "IMU/Accelerometer", keywords: []string{"imu", "accelerometer", "motion"}},
	{label: "Heart Rate/HRV/PPG", keywords: []string{"hr", "hrv", "ppg", "heart"}},
	{label: "EMG", keywords: []string{"emg"}},
	{label: "EOG (Eye)", keywords: []string{"eog", "eye"}},
	{label: "GSR/EDA", keywords: []string{"gsr", "eda"}},
	{label: "Respiration", keywords: []string{"resp"}},
	{label: "Temperature", keywords: []string{"temp"}},
	{label: "SpO2", keywords: []string{"spo"}},
}

// IndustrialProfile is a device suited to workplace monitoring.
type IndustrialProfile struct {
	Model string
	Type  string
	Price string
}

// IndustrialBreakdown groups the wearability facts that decide
// suitability for workplace monitoring. Form factors sort by count;
// wireless keeps transport order including empty buckets.
type IndustrialBreakdown struct {
	Total       int
	FormFactors []CountItem
	Sensors     []CountItem
	Wireless    []CountItem
	Auxiliary   []CountItem
	Profiles    []IndustrialProfile
}

// Industrial buckets form factors, sensor classes, wireless transports and
// auxiliary sensors across the catalog.
func Industrial(cat *catalog.Catalog) *IndustrialBreakdown {
	b := &IndustrialBreakdown{Total: cat.Len()}
	formCounts := map[string]int{}
	sensorCounts := map[string]int{}
	wirelessCounts := map[string]int{}
	auxCounts := map[string]int{}

	for _, device := range cat.Devices {
		if form := simplifyForm(device.Type()); form != "" {
			formCounts[form]++
		}

		sensorCounts[sensorClass(device.SensorType())]++

		conn := strings.ToLower(strings.TrimSpace(device.Connectivity()))
		if hasBluetooth(conn) {
			wirelessCounts["Bluetooth/BLE"]++
		}
		if hasWiFi(conn) {
			wirelessCounts["Wi-Fi"]++
		}
		if strings.Contains(conn, "rf") && strings.Contains(conn, "2.4") {
			wirelessCounts["RF 2.4 GHz"]++
		}
		if conn == "" || conn == "---" {
			wirelessCounts["Unknown"]++
		}

		aux := strings.ToLower(device.Auxiliary())
		for _, feature := range auxFeatures {
			for _, keyword := range feature.keywords {
				if strings.Contains(aux, keyword) {
					auxCounts[feature.label]++
					break
				}
			}
		}

		sensor := strings.ToLower(device.SensorType())
		deviceType := strings.ToLower(strings.TrimSpace(device.Type()))
		dry := strings.Contains(sensor, "dry") || strings.Contains(sensor, "semi")
		wireless := hasBluetooth(conn) || hasWiFi(conn)
		physio := strings.Contains(aux, "imu") || strings.Contains(aux, "accelerometer") ||
			strings.Contains(aux, "hr") || strings.Contains(aux, "ppg")
		wearable := strings.Contains(deviceType, "headset") ||
			strings.Contains(deviceType, "headband") || strings.Contains(deviceType, "earphone")
		if dry && wireless && (physio || wearable) {
			b.Profiles = append(b.Profiles, IndustrialProfile{
				Model: device.Label(),
				Type:  titleCase(deviceType),
				Price: device.Price(),
			})
		}
	}

	b.FormFactors = sortedCounts(formCounts)
	b.Sensors = orderedCounts(sensorCounts, sensorOrder)
	b.Wireless = allCounts(wirelessCounts, wirelessOrder)
	b.Auxiliary = sortedAllCounts(auxCounts, auxLabels())
	return b
}

// simplifyForm maps free-text form descriptions onto the known factors,
// keeping the raw value when none matches. Empty cells report nothing.
func simplifyForm(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	v := strings.ToLower(value)
	for _, factor := range formFactors {
		if strings.Contains(v, strings.ToLower(factor)) {
			return factor
		}
	}
	return value
}

// sensorClass assigns one exclusive electrode class per device.
func sensorClass(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	dry := strings.Contains(v, "dry")
	semi := strings.Contains(v, "semi")
	hybrid := strings.Contains(v, "hybrid")
	switch {
	case dry && !semi && !hybrid:
		return "Dry"
	case semi:
		return "Semi-Dry"
	case strings.Contains(v, "wet"), strings.Contains(v, "gel"), strings.Contains(v, "saline"):
		return "Wet (gel/saline)"
	case hybrid:
		return "Hybrid"
	case strings.Contains(v, "optode"):
		return "Optodes (fNIRS)"
	default:
		return "Unknown"
	}
}

func auxLabels() []string {
	labels := make([]string, len(auxFeatures))
	for i, feature := range auxFeatures {
		labels[i] = feature.label
	}
	return labels
}

// titleCase capitalizes the letter after every non-letter boundary.
func titleCase(s string) string {
	prev := false
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) {
			prev = false
			return r
		}
		if prev {
			return unicode.ToLower(r)
		}
		prev = true
		return unicode.ToUpper(r)
	}, s)
}
