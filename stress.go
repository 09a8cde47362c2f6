package patrimonio

// Default stress magnitudes, used when the scenario does not set its own.
const (
	defaultInflationPenalty = 0.02 // added to annual inflation
	defaultReturnPenalty    = 0.02 // subtracted from annual nominal return
	defaultFXShock          = 0.15 // each FX rate multiplied by (1 + shock)
)

// Stressed derives the adverse-scenario assumptions: inflation up, nominal
// return down, foreign currencies more expensive. Purely a value transform;
// the receiver is expected to be already normalized.
func (a Assumptions) Stressed() Assumptions {
	// Overrides are user-supplied rates, so "2" and "0.02" both mean 2 pp.
	inflationPenalty := float64(NormalizeRate(a.InflationPenalty))
	if inflationPenalty == 0 {
		inflationPenalty = defaultInflationPenalty
	}
	returnPenalty := float64(NormalizeRate(a.ReturnPenalty))
	if returnPenalty == 0 {
		returnPenalty = defaultReturnPenalty
	}
	shock := float64(NormalizeRate(a.FXShock))
	if shock == 0 {
		shock = defaultFXShock
	}

	a.Inflation += inflationPenalty
	a.NominalReturn -= returnPenalty

	// Shock the defaults too when the scenario carries no table of its own,
	// so a stress run never converts at pre-stress rates.
	base := a.FXRates
	if len(base) == 0 {
		base = defaultFXRates
	}
	fx := make(map[Currency]float64, len(base))
	for c, r := range base {
		fx[c] = r * (1 + shock)
	}
	a.FXRates = fx
	return a
}
