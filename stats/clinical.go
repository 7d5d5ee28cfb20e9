package stats

import (
	"strings"

	"github.com/neurotab/neurotab/catalog"
)

var certificationMarkers = []string{
	"fda", "ce ", "medical", "clinical", "cleared", "approved", "certification", "certified",
}

var (
	samplingOrder = []string{"< 256 Hz", "256 - 500 Hz", "500 - 1000 Hz", "1 - 2 kHz", "> 2 kHz", "Not specified"}
	adcOrder      = []string{"≤ 14-bit", "16-bit", "24-bit", "32-bit", "Not specified"}
	syncOrder     = []string{"LSL", "SDK", "API", "TCP/UDP", "None/Unknown"}
)

// CertifiedDevice is a catalog row whose text mentions a certification.
type CertifiedDevice struct {
	Model     string
	Auxiliary string
}

// ClinicalProfile is a device meeting the signal-quality bar for
// clinical use.
type ClinicalProfile struct {
	Model  string
	RateHz int
	Bits   int
	Sync   string
}

// ClinicalBreakdown groups the signal-quality and regulatory facts that
// decide clinical applicability. Sampling and ADC keep every bucket in
// range order; raw access and synchronization sort by count.
type ClinicalBreakdown struct {
	Total     int
	Certified []CertifiedDevice
	RawAccess []CountItem
	Sampling  []CountItem
	ADC       []CountItem
	Sync      []CountItem
	Profiles  []ClinicalProfile
}

// Clinical scans the catalog for certification mentions and buckets raw
// data access, sampling rate, ADC resolution and synchronization options.
func Clinical(cat *catalog.Catalog) *ClinicalBreakdown {
	b := &ClinicalBreakdown{Total: cat.Len()}
	rawCounts := map[string]int{}
	rateCounts := map[string]int{}
	adcCounts := map[string]int{}
	syncCounts := map[string]int{}

	for _, device := range cat.Devices {
		row := device.RowText()
		for _, marker := range certificationMarkers {
			if strings.Contains(row, marker) {
				b.Certified = append(b.Certified, CertifiedDevice{
					Model:     device.Label(),
					Auxiliary: cleanCell(device.Auxiliary()),
				})
				break
			}
		}

		rawCounts[rawAccessBucket(device.RawAccess())]++

		hz, okHz := device.SamplingRateHz()
		rateCounts[samplingBucket(hz, okHz)]++

		bits, okBits := device.ADCBits()
		adcCounts[adcBucket(bits, okBits)]++

		countSyncFeatures(device.Sync(), syncCounts)

		raw := strings.ToLower(device.RawAccess())
		sync := strings.TrimSpace(device.Sync())
		if okBits && bits >= 24 && okHz && hz >= 500 &&
			strings.Contains(raw, "available") &&
			sync != "" && sync != "---" {
			b.Profiles = append(b.Profiles, ClinicalProfile{
				Model:  device.Label(),
				RateHz: int(hz),
				Bits:   bits,
				Sync:   truncateRunes(cleanCell(sync), 30),
			})
		}
	}

	b.RawAccess = sortedCounts(rawCounts)
	b.Sampling = allCounts(rateCounts, samplingOrder)
	b.ADC = allCounts(adcCounts, adcOrder)
	b.Sync = sortedAllCounts(syncCounts, syncOrder)
	return b
}

func rawAccessBucket(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.Contains(v, "available"):
		return "Available"
	case strings.Contains(v, "partial"):
		return "Partial"
	case strings.Contains(v, "requires"), strings.Contains(v, "license"):
		return "Requires License"
	case v == "", v == "---":
		return "Not specified"
	default:
		return "Other"
	}
}

func samplingBucket(hz float64, ok bool) string {
	switch {
	case !ok:
		return "Not specified"
	case hz < 256:
		return "< 256 Hz"
	case hz <= 500:
		return "256 - 500 Hz"
	case hz <= 1000:
		return "500 - 1000 Hz"
	case hz <= 2000:
		return "1 - 2 kHz"
	default:
		return "> 2 kHz"
	}
}

func adcBucket(bits int, ok bool) string {
	switch {
	case !ok:
		return "Not specified"
	case bits <= 14:
		return "≤ 14-bit"
	case bits <= 16:
		return "16-bit"
	case bits <= 24:
		return "24-bit"
	default:
		return "32-bit"
	}
}

// countSyncFeatures tallies transport options; one cell may mention several.
func countSyncFeatures(value string, counts map[string]int) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == "---" {
		counts["None/Unknown"]++
		return
	}
	if strings.Contains(v, "lsl") {
		counts["LSL"]++
	}
	if strings.Contains(v, "sdk") {
		counts["SDK"]++
	}
	if strings.Contains(v, "api") {
		counts["API"]++
	}
	if strings.Contains(v, "tcp") || strings.Contains(v, "udp") {
		counts["TCP/UDP"]++
	}
}
