package renderer

import (
	"fmt"
	"io"

	"github.com/mvbarbosa/patrimonio"
)

// Tracking renders a plan-vs-actual reconciliation as a markdown report.
func Tracking(w io.Writer, res *patrimonio.TrackingResult) {
	fmt.Fprintf(w, "# Acompanhamento do Plano\n\n")
	fmt.Fprintf(w, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))

	writeRow(w, "", "")
	writeSeparator(w, 2)
	writeRow(w, "Baseline", res.Baseline.String())
	writeRow(w, "Patrimônio planejado hoje", res.PlannedToday.String())
	writeRow(w, "Patrimônio real hoje", res.ActualToday.String())
	writeRow(w, "Delta", res.Delta.SignedString())
	writeRow(w, "Retorno acumulado", res.AccumulatedReturnPct.SignedString())
	writeRow(w, "Inflação acumulada", res.AccumulatedInflationPct.SignedString())

	if len(res.Years) > 0 {
		fmt.Fprintf(w, "\n## Resumo Anual\n\n")
		writeRow(w, "Ano", "Aporte planejado", "Aporte real", "Retorno", "Inflação")
		writeSeparator(w, 5)
		for _, y := range res.Years {
			writeRow(w,
				fmt.Sprintf("%d", y.Year),
				y.Planned.String(),
				y.Actual.String(),
				y.ReturnPct.SignedString(),
				y.InflationPct.SignedString(),
			)
		}
	}

	fmt.Fprintf(w, "\n## Projeção Re-ancorada\n\n")
	writeRow(w, "", "Como planejado", "Ajustada ao real")
	writeSeparator(w, 3)
	writeRow(w, "Capital na aposentadoria",
		res.Planned.KPIs.CapitalAtRetirement.String(),
		res.Adjusted.KPIs.CapitalAtRetirement.String())
	writeRow(w, "Renda sustentável",
		res.Planned.KPIs.SustainableIncome.String(),
		res.Adjusted.KPIs.SustainableIncome.String())
	writeRow(w, "Cobertura da meta",
		res.Planned.KPIs.CoveragePct.String(),
		res.Adjusted.KPIs.CoveragePct.String())
}
