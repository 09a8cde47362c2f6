package patrimonio

import (
	"errors"
	"sort"

	"github.com/mvbarbosa/patrimonio/ym"
)

// ErrNoTrackingData is returned when there is no history to reconcile. The
// engine never substitutes the baseline projection for a missing
// reconciliation.
var ErrNoTrackingData = errors.New("patrimonio: no tracking records to reconcile")

// TrackingRecord is one actually-reported month. The list is owned by the
// caller and consumed read-only here.
type TrackingRecord struct {
	Month        ym.Month
	Planned      Money   // contribution the plan called for
	Actual       Money   // contribution actually made
	ReturnPct    float64 // actual monthly return, in percent
	InflationPct float64 // actual monthly inflation, in percent
}

// YearSummary compares plan and reality over one calendar year of records.
type YearSummary struct {
	Year         int
	Planned      Money
	Actual       Money
	ReturnPct    Percent // compounded actual return over the year's records
	InflationPct Percent
}

// TrackingResult is the output of a reconciliation: today's wealth on both
// tracks, and two re-anchored forward projections under identical future
// assumptions.
type TrackingResult struct {
	Baseline     Money // common origin of both tracks
	PlannedToday Money
	ActualToday  Money
	Delta        Money // ActualToday - PlannedToday

	AccumulatedReturnPct    Percent
	AccumulatedInflationPct Percent

	Planned  *SimulationResult // re-anchored run seeded with PlannedToday
	Adjusted *SimulationResult // re-anchored run seeded with ActualToday

	Years []YearSummary
}

// reanchored returns a copy of the scenario whose assets are replaced by a
// single financial BRL asset holding the given wealth. Everything else is
// kept, so the two reruns stay comparable under the same future assumptions.
func (s ScenarioInput) reanchored(wealth Money) ScenarioInput {
	s.Assets = []Asset{{Value: wealth, Currency: CurBRL, Class: ClassFinancial}}
	return s
}

// Reconcile folds the reported history into today's real and plan-implied
// wealth and produces the two re-anchored projections. The scenario and the
// records are never mutated.
//
// The planned track compounds at the simulator's own assumed monthly real
// rate, not the reported one: it isolates "did the client follow the plan"
// from "did the market perform as assumed".
func Reconcile(scenario ScenarioInput, records []TrackingRecord) (*TrackingResult, error) {
	if len(records) == 0 {
		return nil, ErrNoTrackingData
	}

	// Callers must supply chronological records; sorting a copy keeps the
	// fold well-defined anyway without touching the caller's slice.
	sorted := make([]TrackingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Month.Before(sorted[j].Month)
	})

	assumptions := scenario.Assumptions.normalized()
	real := RealRate(Rate(assumptions.NominalReturn), Rate(assumptions.Inflation))
	planFactor := real.Monthly().Factor()

	baseline := baselineWealth(scenario)
	actual, planned := baseline, baseline
	accReturn, accInflation := 1.0, 1.0

	var years []YearSummary
	for _, rec := range sorted {
		actual = actual.Add(rec.Actual).Mul(Q(1 + rec.ReturnPct/100)).ClampZero()
		planned = planned.Add(rec.Planned).Mul(planFactor).ClampZero()
		accReturn *= 1 + rec.ReturnPct/100
		accInflation *= 1 + rec.InflationPct/100

		y := rec.Month.Year()
		if len(years) == 0 || years[len(years)-1].Year != y {
			years = append(years, YearSummary{Year: y})
		}
		ys := &years[len(years)-1]
		ys.Planned = ys.Planned.Add(rec.Planned)
		ys.Actual = ys.Actual.Add(rec.Actual)
		ys.ReturnPct = compoundPct(ys.ReturnPct, rec.ReturnPct)
		ys.InflationPct = compoundPct(ys.InflationPct, rec.InflationPct)
	}

	return &TrackingResult{
		Baseline:                baseline,
		PlannedToday:            planned,
		ActualToday:             actual,
		Delta:                   actual.Sub(planned),
		AccumulatedReturnPct:    Percent(100 * (accReturn - 1)),
		AccumulatedInflationPct: Percent(100 * (accInflation - 1)),
		Planned:                 Run(scenario.reanchored(planned), false),
		Adjusted:                Run(scenario.reanchored(actual), false),
		Years:                   years,
	}, nil
}

// compoundPct chains one more monthly percentage onto an accumulated one:
// products of (1+rate) terms, not a sum.
func compoundPct(acc Percent, monthly float64) Percent {
	return Percent(100 * ((1+float64(acc)/100)*(1+monthly/100) - 1))
}
