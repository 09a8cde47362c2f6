package patrimonio

import (
	"math"
	"testing"
)

func TestNormalizeRate(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want Rate
	}{
		{"percentage form", 10, 0.10},
		{"fraction form", 0.10, 0.10},
		{"already normalized is a no-op", 0.9, 0.9},
		{"negative percentage", -5, -0.05},
		{"negative fraction", -0.05, -0.05},
		{"zero", 0, 0},
		{"NaN falls back to zero", math.NaN(), 0},
		{"infinity falls back to zero", math.Inf(1), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeRate(tc.in)
			if math.Abs(float64(got-tc.want)) > 1e-12 {
				t.Errorf("NormalizeRate(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeRate_SameEconomicRate(t *testing.T) {
	// "10" and "0.10" are the same ten percent.
	if NormalizeRate(10) != NormalizeRate(0.10) {
		t.Errorf("NormalizeRate(10) = %v != NormalizeRate(0.10) = %v", NormalizeRate(10), NormalizeRate(0.10))
	}
}

func TestRealRate(t *testing.T) {
	got := RealRate(0.10, 0.04)
	want := 1.10/1.04 - 1
	if math.Abs(float64(got)-want) > 1e-12 {
		t.Errorf("RealRate(0.10, 0.04) = %v, want %v", got, want)
	}

	// Degenerate inflation never divides by zero.
	if got := RealRate(0.10, -1); got != 0 {
		t.Errorf("RealRate(0.10, -1) = %v, want 0", got)
	}
}

func TestRateMonthly(t *testing.T) {
	monthly := Rate(0.12).Monthly()
	// Compounding the monthly rate 12 times recovers the annual rate.
	annual := math.Pow(1+float64(monthly), 12) - 1
	if math.Abs(annual-0.12) > 1e-12 {
		t.Errorf("compounding Monthly() 12 times = %v, want 0.12", annual)
	}
	if monthly <= 0 || monthly >= 0.01 {
		t.Errorf("Monthly() of 12%% a year = %v, expected just under 1%% a month", monthly)
	}
}
