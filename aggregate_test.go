package patrimonio

import (
	"math"
	"testing"
)

// near reports whether a Money value is within a cent of the expected float.
func near(m Money, want float64) bool {
	return math.Abs(m.AsFloat()-want) < 0.01
}

func TestAggregate_Buckets(t *testing.T) {
	assets := []Asset{
		{Value: R(100_000), Currency: CurBRL, Class: ClassFinancial},
		{Value: R(500_000), Currency: CurBRL, Class: ClassRealEstate},
		{Value: R(80_000), Currency: CurBRL, Class: ClassVehicle},
		{Value: R(50_000), Currency: CurBRL, Class: ClassWrapper, Kind: PGBL},
		{Value: R(30_000), Currency: CurBRL, Class: ClassWrapper, Kind: VGBL},
	}
	got := Aggregate(assets, nil)

	if !near(got.Financial, 100_000) {
		t.Errorf("Financial = %s, want 100000", got.Financial)
	}
	if !near(got.Illiquid, 580_000) {
		t.Errorf("Illiquid = %s, want 580000", got.Illiquid)
	}
	if !near(got.Wrapper, 80_000) {
		t.Errorf("Wrapper = %s, want 80000", got.Wrapper)
	}
	if !near(got.ByKind[PGBL], 50_000) || !near(got.ByKind[VGBL], 30_000) {
		t.Errorf("ByKind = %v, want PGBL 50000 / VGBL 30000", got.ByKind)
	}
	if !near(got.Grand(), 760_000) {
		t.Errorf("Grand() = %s, want 760000", got.Grand())
	}
	if !near(got.Liquid(), 180_000) {
		t.Errorf("Liquid() = %s, want 180000", got.Liquid())
	}
}

func TestAggregate_CurrencyConversion(t *testing.T) {
	fx := map[Currency]float64{CurUSD: 5.20}
	assets := []Asset{
		{Value: M(10_000, "USD"), Currency: CurUSD, Class: ClassFinancial},         // scenario rate
		{Value: M(1_000, "EUR"), Currency: CurEUR, Class: ClassFinancial},          // default rate
		{Value: M(2_000, "XXX"), Currency: Currency("XXX"), Class: ClassFinancial}, // unknown: 1:1
	}
	got := Aggregate(assets, fx)

	want := 10_000*5.20 + 1_000*5.40 + 2_000*1.0
	if !near(got.Financial, want) {
		t.Errorf("Financial = %s, want %v", got.Financial, want)
	}
}

func TestAggregate_LiquidityPct(t *testing.T) {
	assets := []Asset{
		{Value: R(250_000), Currency: CurBRL, Class: ClassFinancial},
		{Value: R(750_000), Currency: CurBRL, Class: ClassRealEstate},
	}
	got := Aggregate(assets, nil).LiquidityPct()
	if !got.Equal(25) {
		t.Errorf("LiquidityPct() = %s, want 25.00%%", got)
	}

	// No assets at all: zero, not NaN.
	if got := Aggregate(nil, nil).LiquidityPct(); got != 0 {
		t.Errorf("LiquidityPct() of empty assets = %v, want 0", got)
	}
}
