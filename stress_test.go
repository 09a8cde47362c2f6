package patrimonio

import (
	"math"
	"testing"
)

func TestStressed_Defaults(t *testing.T) {
	a := Assumptions{NominalReturn: 0.10, Inflation: 0.04}.normalized().Stressed()

	if math.Abs(a.Inflation-0.06) > 1e-12 {
		t.Errorf("Inflation = %v, want 0.06", a.Inflation)
	}
	if math.Abs(a.NominalReturn-0.08) > 1e-12 {
		t.Errorf("NominalReturn = %v, want 0.08", a.NominalReturn)
	}
	// With no scenario table, the hard-coded defaults are shocked too.
	if got, want := a.FXRates[CurUSD], 5.00*1.15; math.Abs(got-want) > 1e-9 {
		t.Errorf("FXRates[USD] = %v, want %v", got, want)
	}
}

func TestStressed_OverrideRateForms(t *testing.T) {
	// Stress overrides are user-supplied rates like any other: "2" and
	// "0.02" both mean two percentage points.
	pct := Assumptions{
		NominalReturn:    0.10,
		Inflation:        0.04,
		InflationPenalty: 2,
		ReturnPenalty:    2,
		FXShock:          15,
	}.normalized().Stressed()
	frac := Assumptions{
		NominalReturn:    0.10,
		Inflation:        0.04,
		InflationPenalty: 0.02,
		ReturnPenalty:    0.02,
		FXShock:          0.15,
	}.normalized().Stressed()

	if math.Abs(pct.Inflation-frac.Inflation) > 1e-12 {
		t.Errorf("Inflation: percent form %v, fraction form %v", pct.Inflation, frac.Inflation)
	}
	if math.Abs(pct.NominalReturn-frac.NominalReturn) > 1e-12 {
		t.Errorf("NominalReturn: percent form %v, fraction form %v", pct.NominalReturn, frac.NominalReturn)
	}
	if math.Abs(pct.FXRates[CurUSD]-frac.FXRates[CurUSD]) > 1e-9 {
		t.Errorf("FXRates[USD]: percent form %v, fraction form %v", pct.FXRates[CurUSD], frac.FXRates[CurUSD])
	}
	if math.Abs(pct.Inflation-0.06) > 1e-12 {
		t.Errorf("Inflation = %v, want 0.06 with a 2 pp penalty", pct.Inflation)
	}
}
