package patrimonio

import "testing"

// estateAssets is a fixture with every bucket populated.
func estateAssets(t *testing.T) []Asset {
	t.Helper()
	return []Asset{
		{Value: R(400_000), Currency: CurBRL, Class: ClassFinancial},
		{Value: R(600_000), Currency: CurBRL, Class: ClassRealEstate},
		{Value: R(200_000), Currency: CurBRL, Class: ClassWrapper, Kind: VGBL},
	}
}

func TestEstimateSuccession_WrapperFlagsAreOrthogonal(t *testing.T) {
	assets := estateAssets(t)
	cfg := SuccessionConfig{State: "SP"} // 4% ITCMD

	testCases := []struct {
		name       string
		wrapper    WrapperConfig
		wantTax    float64
		wantLiquid float64
	}{
		{
			// wrapper outside the estate, untaxed: base is 1,000,000
			name:       "outside untaxed",
			wrapper:    WrapperConfig{OutsideEstate: true},
			wantTax:    1_000_000 * 0.04,
			wantLiquid: 400_000 + 200_000,
		},
		{
			// still outside the base, but transfer tax reaches the wrapper
			name:       "outside but taxed",
			wrapper:    WrapperConfig{OutsideEstate: true, TaxWrapperAssets: true},
			wantTax:    1_000_000*0.04 + 200_000*0.04,
			wantLiquid: 400_000 + 200_000,
		},
		{
			// wrapper inside the estate: part of the base, not extra-taxed
			name:       "inside",
			wrapper:    WrapperConfig{OutsideEstate: false},
			wantTax:    1_200_000 * 0.04,
			wantLiquid: 400_000,
		},
		{
			// TaxWrapperAssets is redundant when the wrapper is already in the base
			name:       "inside and taxed",
			wrapper:    WrapperConfig{OutsideEstate: false, TaxWrapperAssets: true},
			wantTax:    1_200_000 * 0.04,
			wantLiquid: 400_000,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateSuccession(assets, nil, cfg, tc.wrapper)
			if !near(got.TransferTax, tc.wantTax) {
				t.Errorf("TransferTax = %s, want %v", got.TransferTax, tc.wantTax)
			}
			if !near(got.AvailableLiquidity, tc.wantLiquid) {
				t.Errorf("AvailableLiquidity = %s, want %v", got.AvailableLiquidity, tc.wantLiquid)
			}
		})
	}
}

func TestEstimateSuccession_RateOverridesAndClamping(t *testing.T) {
	assets := []Asset{{Value: R(1_000_000), Currency: CurBRL, Class: ClassFinancial}}
	wrapper := WrapperConfig{OutsideEstate: true}

	// Percentage-form override means the same as the fraction form.
	a := EstimateSuccession(assets, nil, SuccessionConfig{TransferTaxRate: 8}, wrapper)
	b := EstimateSuccession(assets, nil, SuccessionConfig{TransferTaxRate: 0.08}, wrapper)
	if !a.TransferTax.Equal(b.TransferTax) {
		t.Errorf("override 8 gives %s, override 0.08 gives %s", a.TransferTax, b.TransferTax)
	}
	if !near(a.TransferTax, 80_000) {
		t.Errorf("TransferTax = %s, want 80000", a.TransferTax)
	}

	// A malformed 45% override is clamped to the 20% bound, not rejected.
	c := EstimateSuccession(assets, nil, SuccessionConfig{TransferTaxRate: 45}, wrapper)
	if !near(c.TransferTax, 200_000) {
		t.Errorf("clamped TransferTax = %s, want 200000", c.TransferTax)
	}
}

func TestEstimateSuccession_StateTable(t *testing.T) {
	assets := []Asset{{Value: R(100_000), Currency: CurBRL, Class: ClassFinancial}}
	wrapper := WrapperConfig{OutsideEstate: true}

	sc := EstimateSuccession(assets, nil, SuccessionConfig{State: "SC"}, wrapper) // 8%
	if !near(sc.TransferTax, 8_000) {
		t.Errorf("SC TransferTax = %s, want 8000", sc.TransferTax)
	}

	// An unknown UF falls back to the default rate.
	xx := EstimateSuccession(assets, nil, SuccessionConfig{State: "XX"}, wrapper)
	if !near(xx.TransferTax, 4_000) {
		t.Errorf("unknown state TransferTax = %s, want 4000", xx.TransferTax)
	}
}

func TestEstimateSuccession_LiquidityGap(t *testing.T) {
	// Mostly illiquid estate: costs exceed reachable liquidity.
	assets := []Asset{
		{Value: R(50_000), Currency: CurBRL, Class: ClassFinancial},
		{Value: R(2_000_000), Currency: CurBRL, Class: ClassRealEstate},
	}
	got := EstimateSuccession(assets, nil, SuccessionConfig{State: "SP"}, WrapperConfig{OutsideEstate: true})

	// base 2,050,000 at 4% + 6% + 2% = 246,000 against 50,000 of liquidity.
	if !near(got.TotalCost, 246_000) {
		t.Errorf("TotalCost = %s, want 246000", got.TotalCost)
	}
	if !near(got.LiquidityGap, 196_000) {
		t.Errorf("LiquidityGap = %s, want 196000", got.LiquidityGap)
	}

	// Liquidity covering the cost: the gap floors at zero.
	rich := EstimateSuccession(
		[]Asset{{Value: R(5_000_000), Currency: CurBRL, Class: ClassFinancial}},
		nil, SuccessionConfig{State: "SP"}, WrapperConfig{OutsideEstate: true})
	if !rich.LiquidityGap.IsZero() {
		t.Errorf("LiquidityGap = %s, want zero when liquidity covers the cost", rich.LiquidityGap)
	}
}
