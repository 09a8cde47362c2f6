package patrimonio

import "math"

// Rate is a compounding rate expressed as a fraction (0.10 is 10% a year).
type Rate float64

// NormalizeRate interprets a user-supplied rate. Any magnitude greater than 1
// is taken as a percentage and divided by 100, so "10" and "0.10" both mean
// ten percent. Already-fractional values pass through unchanged, and NaN or
// infinite inputs fall back to zero.
func NormalizeRate(r float64) Rate {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 || r < -1 {
		return Rate(r / 100)
	}
	return Rate(r)
}

// RealRate composes a nominal rate with inflation per Fisher:
// (1+nominal)/(1+inflation) - 1.
func RealRate(nominal, inflation Rate) Rate {
	if inflation <= -1 {
		return 0
	}
	return Rate((1+float64(nominal))/(1+float64(inflation)) - 1)
}

// Monthly converts an annual compounding rate to its monthly equivalent:
// (1+annual)^(1/12) - 1.
func (r Rate) Monthly() Rate {
	if r <= -1 {
		return -1
	}
	return Rate(math.Pow(1+float64(r), 1.0/12.0) - 1)
}

// Factor returns the growth factor (1+r) as a Quantity, ready to scale Money.
func (r Rate) Factor() Quantity { return Q(1 + float64(r)) }

func (r Rate) Percent() Percent { return Percent(100 * float64(r)) }
