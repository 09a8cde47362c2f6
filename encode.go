package patrimonio

// JSON encoding of the result objects. Field order and names match the wire
// format the chart and PDF collaborators already consume (hence the
// Portuguese keys).

func (k KPISnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("capitalNaAposentadoria", k.CapitalAtRetirement)
	w.Append("rendaSustentavel", k.SustainableIncome)
	w.Append("capitalNecessario", k.RequiredCapital)
	w.Append("coberturaMetaPct", float64(k.CoveragePct))
	w.Append("scorePatrimonial", k.WealthScore)
	w.Append("liquidezPct", float64(k.LiquidityPct))
	w.Append("baselineWealthBRL", k.BaselineWealth)
	return w.MarshalJSON()
}

func (p SimulationPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("idade", p.Age)
	w.Append("patrimonio", p.Wealth)
	w.Append("patrimonioTotal", p.TotalWealth)
	return w.MarshalJSON()
}

func (s SuccessionSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("financeiro", s.Financial)
	w.Append("imobilizado", s.Illiquid)
	w.Append("previdencia", s.Wrapper)
	w.Append("itcmd", s.TransferTax)
	w.Append("honorarios", s.Legal)
	w.Append("custas", s.Administrative)
	w.Append("custoTotal", s.TotalCost)
	w.Append("liquidezDisponivel", s.AvailableLiquidity)
	w.Append("gapLiquidez", s.LiquidityGap)
	return w.MarshalJSON()
}

func (r SimulationResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kpis", r.KPIs)
	w.Append("serie", r.Series)
	w.Append("sucessao", r.Succession)
	return w.MarshalJSON()
}

func (y YearSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ano", y.Year)
	w.Append("aportePlanejado", y.Planned)
	w.Append("aporteReal", y.Actual)
	w.Append("retornoPct", float64(y.ReturnPct))
	w.Append("inflacaoPct", float64(y.InflationPct))
	return w.MarshalJSON()
}

func (t TrackingResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("baseline", t.Baseline)
	w.Append("planejadoHoje", t.PlannedToday)
	w.Append("realHoje", t.ActualToday)
	w.Append("delta", t.Delta)
	w.Append("retornoAcumuladoPct", float64(t.AccumulatedReturnPct))
	w.Append("inflacaoAcumuladaPct", float64(t.AccumulatedInflationPct))
	w.Append("projecaoPlanejada", t.Planned)
	w.Append("projecaoAjustada", t.Adjusted)
	w.Optional("anos", t.Years)
	return w.MarshalJSON()
}
