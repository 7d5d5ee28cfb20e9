package report

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/neurotab/neurotab/catalog"
	"github.com/neurotab/neurotab/stats"
	"github.com/viant/afs/url"
)

const (
	tableBanner = "================================================================================"
	tableRule   = "------------------------------------------"
)

// Table renders the full analysis report over the device catalog: basic
// distributions, the reviewer metrics and the manuscript placeholders.
func Table(cat *catalog.Catalog, generated time.Time, currentYear int) string {
	summary := stats.Summarize(cat)
	rates := stats.ArticlesPerYear(cat, currentYear)
	conc := stats.StudyConcentration(cat)
	correlations := stats.Correlate(cat)
	trends := stats.Trends(cat, nil)
	grades := stats.ClassifyAll(cat)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\nRELATÓRIO DE ANÁLISE DA TABELA DE DISPOSITIVOS\n%s\n", tableBanner, tableBanner)
	fmt.Fprintf(&b, "Gerado em: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Arquivo fonte: %s\n", path.Base(url.Path(cat.Source)))
	fmt.Fprintf(&b, "Total de dispositivos: %d\n", cat.Len())

	fmt.Fprintf(&b, "\n%s\nPARTE 1: ANÁLISES BÁSICAS\n%s\n", tableBanner, tableBanner)

	fmt.Fprintf(&b, "\n📅 ANOS DE LANÇAMENTO\n%s\n", tableRule)
	fmt.Fprintf(&b, "Dispositivos com ano: %d\n", summary.Years.With)
	fmt.Fprintf(&b, "Dispositivos sem ano: %d\n", summary.Years.Without)
	fmt.Fprintf(&b, "Período: %d - %d\n", summary.Years.Min, summary.Years.Max)
	fmt.Fprintf(&b, "\nDistribuição por ano:\n")
	for _, yc := range summary.Years.PerYear {
		fmt.Fprintf(&b, "  %d: %d dispositivos\n", yc.Year, yc.Count)
	}

	fmt.Fprintf(&b, "\n🏭 FABRICANTES: %d únicos\n", len(summary.Manufacturers))
	fmt.Fprintf(&b, "🌍 PAÍSES: %d países\n", len(summary.Countries))
	fmt.Fprintf(&b, "\nPrincipais países:\n")
	for i, item := range summary.Countries {
		if i == 10 {
			break
		}
		fmt.Fprintf(&b, "  %s: %d dispositivos\n", item.Label, item.Count)
	}

	fmt.Fprintf(&b, "\n🔬 TECNOLOGIAS\n")
	for _, item := range summary.Technologies {
		fmt.Fprintf(&b, "  %s: %d dispositivos\n", item.Label, item.Count)
	}

	fmt.Fprintf(&b, "\n💰 PREÇOS (USD)\n%s\n", tableRule)
	fmt.Fprintf(&b, "Com preço: %d | Sem preço: %d\n", summary.Prices.With, summary.Prices.Without)
	fmt.Fprintf(&b, "Mínimo: $%s | Máximo: $%s | Média: $%s\n",
		money(summary.Prices.Min), money(summary.Prices.Max), money(summary.Prices.Mean))

	fmt.Fprintf(&b, "\n📡 CANAIS\n%s\n", tableRule)
	fmt.Fprintf(&b, "Mínimo: %d | Máximo: %d | Média: %.1f\n",
		summary.Channels.Min, summary.Channels.Max, summary.Channels.Mean)

	fmt.Fprintf(&b, "\n📊 ESTUDOS ENCONTRADOS\n%s\n", tableRule)
	fmt.Fprintf(&b, "Total: %d | Média: %.1f | Máx: %d\n",
		summary.Studies.Total, summary.Studies.Mean, summary.Studies.Max)

	fmt.Fprintf(&b, "\n%s\nPARTE 2: MÉTRICAS DOS REVISORES\n%s\n", tableBanner, tableBanner)

	fmt.Fprintf(&b, "\n📈 R1C1 + R3C5: ARTIGOS POR ANO (TOP 20)\n%s\n", tableRule)
	for i, rate := range rates {
		if i == 20 {
			break
		}
		fmt.Fprintf(&b, "  %2d. %s | %6.2f art/ano | (%d / %d anos)\n",
			i+1, padRight(rate.Model, 40), rate.PerYear, rate.Studies, rate.Years)
	}

	fmt.Fprintf(&b, "\n📉 R3C3: CURVA DE LORENZ E COEFICIENTE DE GINI\n%s\n", tableRule)
	if conc != nil {
		interpretation := "Distribuição mais equilibrada"
		if conc.Gini > 0.5 {
			interpretation = "Alta concentração (poucos dispositivos dominam)"
		}
		fmt.Fprintf(&b, "Coeficiente de Gini: %s\n", floatText(conc.Gini))
		fmt.Fprintf(&b, "Interpretação: %s\n", interpretation)
		fmt.Fprintf(&b, "\nPontos significativos:\n")
		fmt.Fprintf(&b, "- 80%% dos dispositivos contribuem com ~%d%% das citações\n", int(conc.TopShare(0.8)))
		top5 := 0
		for i, rate := range rates {
			if i == 5 {
				break
			}
			top5 += rate.Studies
		}
		fmt.Fprintf(&b, "- Top 5 dispositivos: %d estudos (%.1f%% do total)\n",
			top5, 100*float64(top5)/float64(conc.Total))
	} else {
		fmt.Fprintf(&b, "Coeficiente de Gini: ---\n")
		fmt.Fprintf(&b, "Interpretação: Distribuição mais equilibrada\n")
	}

	fmt.Fprintf(&b, "\n🔗 R3C3: CORRELAÇÕES\n%s\n", tableRule)
	for _, row := range correlationRows(correlations) {
		if row.c == nil {
			continue
		}
		fmt.Fprintf(&b, "  %s:\n    r = %s (n=%d) → Correlação %s\n",
			row.title, floatText(row.c.R), row.c.N, row.c.Direction())
	}

	fmt.Fprintf(&b, "\n⏳ R3C5: TENDÊNCIAS TEMPORAIS\n%s\n", tableRule)
	fmt.Fprintf(&b, "%s | %s | %s | %s | %s | %s | %s\n",
		padRight("Período", 15), padRight("Disp.", 6), padRight("Canais", 8),
		padRight("Preço", 10), padRight("$/Canal", 10), padRight("BT%", 6), padRight("WiFi%", 6))
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 85))
	for _, trend := range trends {
		fmt.Fprintf(&b, "%s | %-6d | %-8.1f | $%-9.0f | $%-9.0f | %-5.1f%% | %-5.1f%%\n",
			padRight(trend.Period.Label, 15), trend.Devices, trend.AvgChannels,
			trend.AvgPrice, trend.AvgCostPerChannel, trend.BluetoothPct, trend.WiFiPct)
	}

	fmt.Fprintf(&b, "\n🏷️ R1C2 + R3C4: CLASSIFICAÇÃO POR GRADE\n%s\n", tableRule)
	fmt.Fprintf(&b, "Consumer-grade:  %3d dispositivos (%.1f%%)\n",
		grades.Counts[stats.GradeConsumer], grades.Pct(stats.GradeConsumer))
	fmt.Fprintf(&b, "Research-grade:  %3d dispositivos (%.1f%%)\n",
		grades.Counts[stats.GradeResearch], grades.Pct(stats.GradeResearch))
	fmt.Fprintf(&b, "Clinical-grade:  %3d dispositivos (%.1f%%)\n",
		grades.Counts[stats.GradeClinical], grades.Pct(stats.GradeClinical))
	fmt.Fprintf(&b, "\nCritérios utilizados:\n")
	fmt.Fprintf(&b, "- Consumer: <$500, ≤8 canais, eletrodos secos\n")
	fmt.Fprintf(&b, "- Research: >$2000, >16 canais, eletrodos gel\n")
	fmt.Fprintf(&b, "- Clinical: Certificação FDA/CE, uso médico declarado\n")

	fmt.Fprintf(&b, "\n%s\nPARTE 3: RESUMO PARA O ARTIGO\n%s\n", tableBanner, tableBanner)
	fmt.Fprintf(&b, "\n📝 PLACEHOLDERS PARA ABSTRACT:\n")
	fmt.Fprintf(&b, "   [X] dispositivos = %d\n", cat.Len())
	fmt.Fprintf(&b, "   [Y] fabricantes = %d\n", len(summary.Manufacturers))
	fmt.Fprintf(&b, "   [N] países = %d\n", len(summary.Countries))

	fmt.Fprintf(&b, "\n📝 MÉTRICAS PRONTAS PARA INSERIR:\n")
	if conc != nil {
		fmt.Fprintf(&b, "   ✅ Gini = %s (distribuição concentrada)\n", floatText(conc.Gini))
	}
	if len(rates) > 0 {
		fmt.Fprintf(&b, "   ✅ Top dispositivo: %s com %s art/ano\n", rates[0].Model, floatText(rates[0].PerYear))
	}
	fmt.Fprintf(&b, "   ✅ Período analisado: %d-%d\n", summary.Years.Min, summary.Years.Max)
	fmt.Fprintf(&b, "   ✅ Tendência canais: %.0f → %.0f (crescimento)\n",
		trends[0].AvgChannels, trends[len(trends)-1].AvgChannels)
	fmt.Fprintf(&b, "   ✅ Wireless: %.0f%% Bluetooth em %s\n",
		trends[len(trends)-1].BluetoothPct, trends[len(trends)-1].Period.Label)

	fmt.Fprintf(&b, "\n📝 CORRELAÇÕES PARA DISCUSSION:\n")
	for _, row := range correlationRows(correlations) {
		if row.c == nil {
			continue
		}
		fmt.Fprintf(&b, "   - %s: r=%s (%s)\n", row.key, floatText(row.c.R), row.c.Strength())
	}

	fmt.Fprintf(&b, "\n%s\n", tableBanner)
	return b.String()
}

type correlationRow struct {
	title string
	key   string
	c     *stats.Correlation
}

func correlationRows(c *stats.Correlations) []correlationRow {
	return []correlationRow{
		{title: "Price Vs Adoption", key: "price vs adoption", c: c.PriceStudies},
		{title: "Channels Vs Adoption", key: "channels vs adoption", c: c.ChannelsStudies},
		{title: "Open Api Vs Adoption", key: "open api vs adoption", c: c.OpenAPIStudies},
		{title: "Dry Electrode Vs Adoption", key: "dry electrode vs adoption", c: c.DryStudies},
	}
}
