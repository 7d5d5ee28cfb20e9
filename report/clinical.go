package report

import (
	"fmt"
	"strings"

	"github.com/neurotab/neurotab/catalog"
	"github.com/neurotab/neurotab/stats"
)

// Clinical renders the certification scan and the signal-quality
// distributions behind the clinical-applicability discussion.
func Clinical(cat *catalog.Catalog) string {
	b := stats.Clinical(cat)

	var out strings.Builder
	fmt.Fprintf(&out, "Total de dispositivos: %d\n\n", b.Total)

	fmt.Fprintf(&out, "%s\nDISPOSITIVOS COM CERTIFICAÇÃO MÉDICA\n%s\n", sectionBanner, sectionBanner)
	pct := 0.0
	if b.Total > 0 {
		pct = 100 * float64(len(b.Certified)) / float64(b.Total)
	}
	fmt.Fprintf(&out, "\nEncontrados: %d dispositivos (%.1f%%)\n\n", len(b.Certified), pct)
	for _, device := range b.Certified {
		fmt.Fprintf(&out, "  %s | %s...\n", padRight(device.Model, 30), truncateRunes(device.Auxiliary, 50))
	}

	writeCountSection(&out, "ACESSO A DADOS BRUTOS (Raw Data)", b.RawAccess, b.Total, 20)
	writeCountSection(&out, "SAMPLING RATE (Resolução Temporal)", b.Sampling, b.Total, 20)
	writeCountSection(&out, "RESOLUÇÃO ADC (Qualidade de Sinal)", b.ADC, b.Total, 20)
	writeCountSection(&out, "SINCRONIZAÇÃO DE DADOS (Integração)", b.Sync, b.Total, 20)

	fmt.Fprintf(&out, "\n%s\nDISPOSITIVOS COM PERFIL CLÍNICO\n(24-bit + >=500 Hz + Raw Data + Sincronização)\n%s\n", sectionBanner, sectionBanner)
	fmt.Fprintf(&out, "\nEncontrados: %d dispositivos\n\n", len(b.Profiles))
	for i, profile := range b.Profiles {
		if i == 15 {
			break
		}
		fmt.Fprintf(&out, "  %s | %s | %s | %s\n",
			padRight(profile.Model, 30),
			padRight(fmt.Sprintf("%dHz", profile.RateHz), 8),
			padRight(fmt.Sprintf("%d-bit", profile.Bits), 6),
			profile.Sync)
	}
	return out.String()
}

// writeCountSection renders one banner-headed bucket distribution with
// histogram bars, percentages over the whole catalog.
func writeCountSection(out *strings.Builder, title string, items []stats.CountItem, total, width int) {
	fmt.Fprintf(out, "\n%s\n%s\n%s\n", sectionBanner, title, sectionBanner)
	for _, item := range items {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(item.Count) / float64(total)
		}
		fmt.Fprintf(out, "%s | %2d (%5.1f%%) %s\n", padRight(item.Label, width), item.Count, pct, bar(pct))
	}
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
