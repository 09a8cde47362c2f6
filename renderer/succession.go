package renderer

import (
	"fmt"
	"io"

	"github.com/mvbarbosa/patrimonio"
)

// Succession renders the estate cost estimate as a markdown section.
func Succession(w io.Writer, s patrimonio.SuccessionSnapshot) {
	fmt.Fprintf(w, "## Sucessão\n\n")
	writeRow(w, "", "")
	writeSeparator(w, 2)
	writeRow(w, "Patrimônio financeiro", s.Financial.String())
	writeRow(w, "Patrimônio imobilizado", s.Illiquid.String())
	writeRow(w, "Previdência", s.Wrapper.String())
	writeRow(w, "ITCMD estimado", s.TransferTax.String())
	writeRow(w, "Honorários", s.Legal.String())
	writeRow(w, "Custas administrativas", s.Administrative.String())
	writeRow(w, "**Custo total**", "**"+s.TotalCost.String()+"**")
	writeRow(w, "Liquidez disponível", s.AvailableLiquidity.String())
	writeRow(w, "Gap de liquidez", s.LiquidityGap.String())
}
