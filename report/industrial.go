package report

import (
	"fmt"
	"strings"

	"github.com/neurotab/neurotab/catalog"
	"github.com/neurotab/neurotab/stats"
)

// Industrial renders the wearability distributions behind the workplace
// monitoring discussion.
func Industrial(cat *catalog.Catalog) string {
	b := stats.Industrial(cat)

	var out strings.Builder
	fmt.Fprintf(&out, "Total de dispositivos: %d\n\n", b.Total)

	fmt.Fprintf(&out, "%s\nTIPOS DE DISPOSITIVO (Form Factor)\n%s\n", sectionBanner, sectionBanner)
	for _, item := range b.FormFactors {
		pct := 0.0
		if b.Total > 0 {
			pct = 100 * float64(item.Count) / float64(b.Total)
		}
		fmt.Fprintf(&out, "%s | %2d (%5.1f%%) %s\n", padRight(item.Label, 15), item.Count, pct, bar(pct))
	}

	writeCountSection(&out, "TIPO DE SENSOR (Setup Time)", b.Sensors, b.Total, 20)
	writeCountSection(&out, "CONECTIVIDADE WIRELESS", b.Wireless, b.Total, 15)
	writeCountSection(&out, "CAPACIDADES AUXILIARES (Industrial-Relevant)", b.Auxiliary, b.Total, 20)

	fmt.Fprintf(&out, "\n%s\nDISPOSITIVOS COM PERFIL INDUSTRIAL\n(Dry/Semi-Dry + Wireless + IMU ou HR)\n%s\n", sectionBanner, sectionBanner)
	fmt.Fprintf(&out, "\nEncontrados: %d dispositivos\n\n", len(b.Profiles))
	for i, profile := range b.Profiles {
		if i == 15 {
			break
		}
		fmt.Fprintf(&out, "  %s | %s | %s\n",
			padRight(profile.Model, 30), padRight(profile.Type, 15), profile.Price)
	}
	return out.String()
}
