package renderer

import (
	"fmt"
	"io"

	"github.com/mvbarbosa/patrimonio"
)

// Simulation renders a projection result as a markdown report.
func Simulation(w io.Writer, scenario patrimonio.ScenarioInput, res *patrimonio.SimulationResult) {
	fmt.Fprintf(w, "# Projeção Patrimonial\n\n")
	fmt.Fprintf(w, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))

	k := res.KPIs
	fmt.Fprintf(w, "## Indicadores\n\n")
	writeRow(w, "", "")
	writeSeparator(w, 2)
	writeRow(w, "Capital na aposentadoria", k.CapitalAtRetirement.String())
	writeRow(w, "Renda mensal sustentável", k.SustainableIncome.String())
	writeRow(w, "Capital necessário", k.RequiredCapital.String())
	writeRow(w, "Cobertura da meta", k.CoveragePct.String())
	writeRow(w, "Liquidez", k.LiquidityPct.String())
	writeRow(w, "Score patrimonial", fmt.Sprintf("%.0f / 100", k.WealthScore))

	fmt.Fprintf(w, "\n## Evolução\n\n")
	writeRow(w, "Idade", "Patrimônio líquido", "Patrimônio total")
	writeSeparator(w, 3)
	for i, p := range res.Series {
		keep := i == 0 || i == len(res.Series)-1 ||
			p.Age == scenario.RetirementAge ||
			p.Age%seriesStride == 0
		if !keep {
			continue
		}
		writeRow(w, fmt.Sprintf("%d", p.Age), p.Wealth.String(), p.TotalWealth.String())
	}

	fmt.Fprintf(w, "\n")
	Succession(w, res.Succession)
}
