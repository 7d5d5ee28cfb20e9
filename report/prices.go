package report

import (
	"fmt"
	"strings"

	"github.com/neurotab/neurotab/catalog"
	"github.com/neurotab/neurotab/stats"
)

const (
	sectionBanner = "============================================================"
	pricesBanner  = "=================================================="
)

// Prices renders the price-band distribution, the tier listings and the
// aggregate price statistics.
func Prices(cat *catalog.Catalog) string {
	b := stats.Prices(cat)

	var out strings.Builder
	fmt.Fprintf(&out, "Total de dispositivos: %d\n\n", b.Total)
	fmt.Fprintf(&out, "Dispositivos com preço: %d\n", b.Priced)
	fmt.Fprintf(&out, "Dispositivos sem preço: %d\n\n", b.Unpriced)

	fmt.Fprintf(&out, "%s\nDISTRIBUIÇÃO DE PREÇOS\n%s\n", pricesBanner, pricesBanner)
	for _, band := range b.Bands {
		pct := 0.0
		if b.Priced > 0 {
			pct = 100 * float64(band.Count) / float64(b.Priced)
		}
		fmt.Fprintf(&out, "%s | %2d dispositivos (%5.1f%%) %s\n",
			padRight(band.Label, 15), band.Count, pct, bar(pct))
	}

	fmt.Fprintf(&out, "\n%s\nDISPOSITIVOS POR FAIXA DE PREÇO\n%s\n", pricesBanner, pricesBanner)
	fmt.Fprintf(&out, "\n📗 DISPOSITIVOS < $500:\n")
	for _, device := range b.Budget {
		fmt.Fprintf(&out, "   $%s - %s\n", money(device.Price), device.Model)
	}
	fmt.Fprintf(&out, "\n📙 DISPOSITIVOS $500 - $2000:\n")
	for _, device := range b.MidRange {
		fmt.Fprintf(&out, "   $%s - %s\n", money(device.Price), device.Model)
	}
	fmt.Fprintf(&out, "\n📕 DISPOSITIVOS >= $2000:\n")
	for _, device := range b.Premium {
		fmt.Fprintf(&out, "   $%s - %s\n", money(device.Price), device.Model)
	}

	fmt.Fprintf(&out, "\n%s\nESTATÍSTICAS\n%s\n", pricesBanner, pricesBanner)
	fmt.Fprintf(&out, "Mínimo:  $%s\n", money(b.Min))
	fmt.Fprintf(&out, "Máximo:  $%s\n", money(b.Max))
	fmt.Fprintf(&out, "Média:   $%s\n", money(b.Mean))
	fmt.Fprintf(&out, "Mediana: $%s\n", money(b.Median))
	return out.String()
}
