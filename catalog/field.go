package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	digitRuns    = regexp.MustCompile(`\d+`)
	samplingExpr = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(k?hz)`)
	adcExpr      = regexp.MustCompile(`(\d+)-?bit`)
)

// Keywords that mark programmatic access to recorded data.
var openAccessKeywords = []string{"open", "sdk", "api", "lsl", "free"}

// Numbers returns every decimal digit run found in the value.
func Numbers(value string) []int {
	matches := digitRuns.FindAllString(value, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// MaxNumber returns the largest digit run in the value. Cells like
// "8-16 (dry)" report the upper bound.
func MaxNumber(value string) (int, bool) {
	nums := Numbers(value)
	if len(nums) == 0 {
		return 0, false
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return max, true
}

// FirstNumber returns the first digit run in the value.
func FirstNumber(value string) (int, bool) {
	nums := Numbers(value)
	if len(nums) == 0 {
		return 0, false
	}
	return nums[0], true
}

// StrictNumber parses the whole cell as a number, rejecting values that
// carry annotations.
func StrictNumber(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ParsePrice extracts a positive price from a cell, tolerating currency
// punctuation and comparison prefixes. Placeholders report no price.
func ParsePrice(value string) (float64, bool) {
	s := strings.NewReplacer(">", "", "<", "", ",", "", "$", "").Replace(value)
	s = strings.TrimSpace(s)
	switch s {
	case "---", "-", "", "nan":
		return 0, false
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// ParseSamplingRateHz returns the highest sampling rate mentioned in the
// cell, normalized to Hz.
func ParseSamplingRateHz(value string) (float64, bool) {
	matches := samplingExpr.FindAllStringSubmatch(value, -1)
	if len(matches) == 0 {
		return 0, false
	}
	best := 0.0
	found := false
	for _, m := range matches {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.EqualFold(m[2], "khz") {
			n *= 1000
		}
		if !found || n > best {
			best = n
		}
		found = true
	}
	return best, found
}

// ParseADCBits returns the converter resolution mentioned in the cell.
func ParseADCBits(value string) (int, bool) {
	m := adcExpr.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ChannelCount reports the channel count, taking the upper bound of ranges.
func (d *Device) ChannelCount() (int, bool) {
	return MaxNumber(d.Channels())
}

// StudyCount reports how many studies reference the device.
func (d *Device) StudyCount() (int, bool) {
	return MaxNumber(d.Studies())
}

// PriceUSD reports the list price when one parses.
func (d *Device) PriceUSD() (float64, bool) {
	return ParsePrice(d.Price())
}

// LaunchYear reports the largest digit run of the year cell. Cells with
// annotations such as "2018 (rev. 2021)" yield the revision year.
func (d *Device) LaunchYear() (int, bool) {
	return MaxNumber(d.Year())
}

// FirstYear reports the leading digit run of the year cell, the market
// entry used on the timeline.
func (d *Device) FirstYear() (int, bool) {
	return FirstNumber(d.Year())
}

// LaunchYearStrict reports the year only when the whole cell is numeric.
func (d *Device) LaunchYearStrict() (int, bool) {
	return StrictNumber(d.Year())
}

// SamplingRateHz reports the highest sampling rate of the device.
func (d *Device) SamplingRateHz() (float64, bool) {
	return ParseSamplingRateHz(d.SamplingRate())
}

// ADCBits reports the ADC resolution of the device.
func (d *Device) ADCBits() (int, bool) {
	return ParseADCBits(d.ADC())
}

// OpenAPI reports whether the software, synchronization or raw-access
// cells advertise programmatic data access.
func (d *Device) OpenAPI() bool {
	combined := strings.ToLower(d.Software() + " " + d.Sync() + " " + d.RawAccess())
	for _, keyword := range openAccessKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

// DryElectrode reports whether the sensor cell mentions dry electrodes.
func (d *Device) DryElectrode() bool {
	return strings.Contains(strings.ToLower(d.SensorType()), "dry")
}
