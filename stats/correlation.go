package stats

import (
	"math"

	"github.com/neurotab/neurotab/catalog"
	"gonum.org/v1/gonum/stat"
)

// Correlation is a Pearson coefficient over paired device fields.
type Correlation struct {
	R float64
	N int
}

// Direction names the sign of the relationship.
func (c *Correlation) Direction() string {
	if c.R < 0 {
		return "negativa"
	}
	return "positiva"
}

// Strength names the magnitude of the relationship.
func (c *Correlation) Strength() string {
	abs := math.Abs(c.R)
	switch {
	case abs > 0.5:
		return "forte"
	case abs > 0.3:
		return "moderada"
	default:
		return "fraca"
	}
}

// Correlations holds the adoption-factor coefficients. Entries are nil
// when fewer than three pairs exist.
type Correlations struct {
	PriceStudies    *Correlation
	ChannelsStudies *Correlation
	OpenAPIStudies  *Correlation
	DryStudies      *Correlation
}

// Correlate computes Pearson correlations between study counts and price,
// channel count, open data access, and dry-electrode availability. Price
// and channel pairs drop devices missing either value; the binary factors
// pair against every device with a study count.
func Correlate(cat *catalog.Catalog) *Correlations {
	var priceX, priceY []float64
	var chanX, chanY []float64
	var openX, openY []float64
	var dryX, dryY []float64

	for _, device := range cat.Devices {
		studies, ok := device.StudyCount()
		if !ok {
			continue
		}
		s := float64(studies)
		if price, ok := device.PriceUSD(); ok {
			priceX = append(priceX, price)
			priceY = append(priceY, s)
		}
		if channels, ok := device.ChannelCount(); ok {
			chanX = append(chanX, float64(channels))
			chanY = append(chanY, s)
		}
		openX = append(openX, boolToFloat(device.OpenAPI()))
		openY = append(openY, s)
		dryX = append(dryX, boolToFloat(device.DryElectrode()))
		dryY = append(dryY, s)
	}

	return &Correlations{
		PriceStudies:    pearson(priceX, priceY),
		ChannelsStudies: pearson(chanX, chanY),
		OpenAPIStudies:  pearson(openX, openY),
		DryStudies:      pearson(dryX, dryY),
	}
}

func pearson(x, y []float64) *Correlation {
	if len(x) <= 2 {
		return nil
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return nil
	}
	return &Correlation{R: math.Round(r*10000) / 10000, N: len(x)}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
