package patrimonio

// SuccessionSnapshot is the per-run estate cost estimate. It depends only on
// the assets, the succession configuration and the jurisdiction rate table;
// the age-stepped simulation never feeds into it.
type SuccessionSnapshot struct {
	Financial Money
	Illiquid  Money
	Wrapper   Money

	TransferTax    Money
	Legal          Money
	Administrative Money
	TotalCost      Money

	AvailableLiquidity Money
	LiquidityGap       Money // max(0, TotalCost - AvailableLiquidity)
}

// itcmdByState holds the transfer-tax (ITCMD) rate per UF. States missing
// from the table fall back to defaultTransferTax.
var itcmdByState = map[string]float64{
	"SP": 0.04,
	"RJ": 0.045,
	"MG": 0.05,
	"RS": 0.06,
	"PR": 0.04,
	"SC": 0.08,
	"BA": 0.035,
	"PE": 0.08,
	"GO": 0.04,
	"DF": 0.04,
	"CE": 0.08,
}

// Default cost rates over the estate base.
const (
	defaultTransferTax = 0.04
	defaultLegalRate   = 0.06 // inventory legal fees
	defaultAdminRate   = 0.02 // registry and court costs
	maxCostRate        = 0.20 // malformed overrides are clamped, not rejected
)

// costRate resolves one configured rate: a positive override (accepted as a
// fraction or a percentage) clamped to [0, maxCostRate], else the default.
func costRate(override, def float64) Quantity {
	r := def
	if override > 0 {
		r = float64(NormalizeRate(override))
	}
	if r < 0 {
		r = 0
	}
	if r > maxCostRate {
		r = maxCostRate
	}
	return Q(r)
}

// EstimateSuccession computes the estimated transfer-tax, legal and
// administrative costs of passing the estate on, and the liquidity shortfall
// versus the assets heirs can actually reach.
//
// Wrapper assets are excluded from the cost base when the wrapper is outside
// the estate; TaxWrapperAssets independently re-applies transfer tax to them
// even then. The wrapper transfer tax uses the general estate rate; there is
// no separate wrapper rate field.
func EstimateSuccession(assets []Asset, fx map[Currency]float64, cfg SuccessionConfig, wrapper WrapperConfig) SuccessionSnapshot {
	totals := Aggregate(assets, fx)

	stateDefault := defaultTransferTax
	if r, ok := itcmdByState[cfg.State]; ok {
		stateDefault = r
	}
	taxRate := costRate(cfg.TransferTaxRate, stateDefault)
	legalRate := costRate(cfg.LegalRate, defaultLegalRate)
	adminRate := costRate(cfg.AdminRate, defaultAdminRate)

	base := totals.Financial.Add(totals.Illiquid)
	if !wrapper.OutsideEstate {
		base = base.Add(totals.Wrapper)
	}

	tax := base.Mul(taxRate)
	if wrapper.OutsideEstate && wrapper.TaxWrapperAssets {
		tax = tax.Add(totals.Wrapper.Mul(taxRate))
	}
	legal := base.Mul(legalRate)
	admin := base.Mul(adminRate)
	total := tax.Add(legal).Add(admin)

	liquidity := totals.Financial
	if wrapper.OutsideEstate {
		// Outside the inventory the wrapper pays out directly to the
		// beneficiaries, so it counts as reachable liquidity.
		liquidity = liquidity.Add(totals.Wrapper)
	}

	return SuccessionSnapshot{
		Financial:          totals.Financial,
		Illiquid:           totals.Illiquid,
		Wrapper:            totals.Wrapper,
		TransferTax:        tax,
		Legal:              legal,
		Administrative:     admin,
		TotalCost:          total,
		AvailableLiquidity: liquidity,
		LiquidityGap:       total.Sub(liquidity).ClampZero(),
	}
}
