package patrimonio

// SimulationPoint is one year of the projected wealth series.
type SimulationPoint struct {
	Age         int
	Wealth      Money // financial + wrapper, the compounding principal
	TotalWealth Money // Wealth + illiquid assets
}

// KPISnapshot is the derived read-only aggregate of one simulation run. It is
// computed once per run and superseded, never patched, by the next run.
type KPISnapshot struct {
	CapitalAtRetirement Money
	SustainableIncome   Money // monthly, at the assumed real rate
	RequiredCapital     Money // to fund the desired income perpetually
	CoveragePct         Percent
	WealthScore         float64 // composite 0-100
	LiquidityPct        Percent
	BaselineWealth      Money // opening liquid wealth, seeds reconciliation
}

// SimulationResult is the full output of one run.
type SimulationResult struct {
	KPIs       KPISnapshot
	Series     []SimulationPoint
	Succession SuccessionSnapshot
}

// Wealth-score blend weights. Coverage dominates, liquidity tempers it, and a
// positive real rate earns a flat bonus; the sum is clamped to [0, 100].
const (
	scoreCoverageWeight  = 0.6
	scoreLiquidityWeight = 0.3
	scoreRealRateBonus   = 10.0
)

// baselineWealth returns the opening liquid wealth of a scenario: financial
// plus wrapper totals of the normalized assets at the scenario's own
// (unstressed) rates. The simulator and the reconciliation engine both start
// from this exact figure, including the repairs normalization applies.
func baselineWealth(s ScenarioInput) Money {
	s = s.normalized()
	a := s.Assumptions.normalized()
	return Aggregate(s.Assets, a.FXRates).Liquid()
}

// Run projects the scenario's wealth month by month from the current age to
// the life-expectancy age and derives the retirement KPIs. A run is a pure
// function of its inputs: it retains no state and never mutates the scenario.
func Run(scenario ScenarioInput, stress bool) *SimulationResult {
	s := scenario.normalized()
	assumptions := s.Assumptions.normalized()
	if stress {
		assumptions = assumptions.Stressed()
	}

	nominal := Rate(assumptions.NominalReturn)
	inflation := Rate(assumptions.Inflation)
	real := RealRate(nominal, inflation)
	monthly := real.Monthly()
	factor := monthly.Factor()

	totals := Aggregate(s.Assets, assumptions.FXRates)
	principal := totals.Liquid()
	illiquid := totals.Illiquid

	series := make([]SimulationPoint, 0, s.LifeExpectancy-s.CurrentAge+1)
	for age := s.CurrentAge; age <= s.LifeExpectancy; age++ {
		for m := 0; m < 12; m++ {
			if age <= s.ContributionEndAge {
				c := ResolveContribution(age, s.Contribution, s.Rules)
				principal = principal.Add(c).ClampZero()
			}
			principal = principal.Mul(factor)
			if age >= s.RetirementAge && s.DesiredIncome.IsPositive() {
				principal = principal.Sub(s.DesiredIncome).ClampZero()
			}
		}
		for _, ev := range s.CashIns {
			if ev.Age == age {
				principal = principal.Add(ev.Amount)
			}
		}
		for _, g := range s.Goals {
			// Cosmetic goals are markers only; they never touch the series.
			if g.Impacting && g.Age == age {
				principal = principal.Sub(g.Amount).ClampZero()
			}
		}
		series = append(series, SimulationPoint{
			Age:         age,
			Wealth:      principal,
			TotalWealth: principal.Add(illiquid),
		})
	}

	kpis := deriveKPIs(s, series, real, totals)
	kpis.BaselineWealth = baselineWealth(scenario)

	// The succession estimate always uses the unstressed asset snapshot.
	unstressed := s.Assumptions.normalized()
	succession := EstimateSuccession(s.Assets, unstressed.FXRates, s.Succession, s.Wrapper)

	return &SimulationResult{KPIs: kpis, Series: series, Succession: succession}
}

func deriveKPIs(s ScenarioInput, series []SimulationPoint, real Rate, totals Totals) KPISnapshot {
	var kpis KPISnapshot
	if len(series) == 0 {
		return kpis
	}

	// Capital at the retirement-age point, or the last point when retirement
	// is beyond the simulated horizon.
	capital := series[len(series)-1].Wealth
	for _, p := range series {
		if p.Age == s.RetirementAge {
			capital = p.Wealth
			break
		}
	}
	kpis.CapitalAtRetirement = capital
	kpis.LiquidityPct = totals.LiquidityPct()

	// A zero or negative real rate disables the perpetuity math: the
	// dependent KPIs are zero, never a division fault.
	if real > 0 {
		kpis.SustainableIncome = capital.Mul(Q(float64(real))).Div(Q(12))
		if s.DesiredIncome.IsPositive() {
			annual := s.DesiredIncome.Mul(Q(12))
			kpis.RequiredCapital = annual.Div(Q(float64(real)))
		}
	}
	if kpis.RequiredCapital.IsPositive() {
		kpis.CoveragePct = Percent(100 * capital.AsFloat() / kpis.RequiredCapital.AsFloat())
	}

	score := scoreCoverageWeight*float64(kpis.CoveragePct.Clamp(0, 100)) +
		scoreLiquidityWeight*float64(kpis.LiquidityPct.Clamp(0, 100))
	if real > 0 {
		score += scoreRealRateBonus
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	kpis.WealthScore = score

	return kpis
}
