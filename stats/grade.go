package stats

import (
	"strings"

	"github.com/neurotab/neurotab/catalog"
)

// Grade is the market tier of a device.
type Grade string

const (
	GradeConsumer Grade = "Consumer"
	GradeResearch Grade = "Research"
	GradeClinical Grade = "Clinical"
)

var clinicalMarkers = []string{"fda", "medical", "clinical", "ce mark", "certified"}

// Classify assigns a market tier. Certification markers win outright;
// otherwise price, channel count and electrode type decide, defaulting
// to research grade.
func Classify(device *catalog.Device) Grade {
	aux := strings.ToLower(device.Auxiliary())
	for _, marker := range clinicalMarkers {
		if strings.Contains(aux, marker) {
			return GradeClinical
		}
	}

	price, hasPrice := device.PriceUSD()
	channels, hasChannels := device.ChannelCount()
	sensor := strings.ToLower(device.SensorType())

	if (hasPrice && price > 2000) ||
		(hasChannels && channels > 16) ||
		(strings.Contains(sensor, "wet") && strings.Contains(sensor, "gel")) {
		return GradeResearch
	}
	if (hasPrice && price < 500) ||
		(hasChannels && channels <= 8) ||
		strings.Contains(sensor, "dry") || strings.Contains(sensor, "semi") {
		return GradeConsumer
	}
	return GradeResearch
}

// DeviceGrade labels one device with its tier.
type DeviceGrade struct {
	Model string
	Grade Grade
}

// GradeBreakdown summarizes tiers across the catalog.
type GradeBreakdown struct {
	Devices []DeviceGrade
	Counts  map[Grade]int
	Total   int
}

// ClassifyAll grades every device in catalog order.
func ClassifyAll(cat *catalog.Catalog) *GradeBreakdown {
	b := &GradeBreakdown{Counts: map[Grade]int{}, Total: cat.Len()}
	for _, device := range cat.Devices {
		grade := Classify(device)
		b.Devices = append(b.Devices, DeviceGrade{Model: device.Label(), Grade: grade})
		b.Counts[grade]++
	}
	return b
}

// Pct returns the share of one tier.
func (b *GradeBreakdown) Pct(grade Grade) float64 {
	return pct(b.Counts[grade], b.Total)
}
