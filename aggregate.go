package patrimonio

// Totals is the result of aggregating a scenario's assets into the reporting
// currency, bucketed by class.
type Totals struct {
	Financial Money
	Illiquid  Money
	Wrapper   Money
	ByKind    map[WrapperKind]Money
}

// Grand returns the sum of every bucket.
func (t Totals) Grand() Money {
	return t.Financial.Add(t.Illiquid).Add(t.Wrapper)
}

// Liquid returns the compounding principal of a simulation: financial plus
// retirement-wrapper assets. Illiquid assets are excluded.
func (t Totals) Liquid() Money {
	return t.Financial.Add(t.Wrapper)
}

// LiquidityPct returns the share of the grand total held in financial assets.
func (t Totals) LiquidityPct() Percent {
	grand := t.Grand()
	if grand.IsZero() {
		return 0
	}
	return Percent(100 * t.Financial.AsFloat() / grand.AsFloat())
}

// effectiveRate returns the BRL conversion rate for a currency: 1 for BRL,
// the scenario-supplied rate when present, a hard-coded default otherwise.
// Never an error; an unknown currency converts at 1:1.
func effectiveRate(c Currency, fx map[Currency]float64) Quantity {
	if c == CurBRL || c == "" {
		return Q(1)
	}
	if r, ok := fx[c]; ok && r > 0 {
		return Q(r)
	}
	if r, ok := defaultFXRates[c]; ok {
		return Q(r)
	}
	return Q(1)
}

// Aggregate converts every asset to the reporting currency and buckets the
// totals. Pure: no asset is counted twice, no currency is dropped.
func Aggregate(assets []Asset, fx map[Currency]float64) Totals {
	t := Totals{ByKind: make(map[WrapperKind]Money)}
	for _, a := range assets {
		v := M(a.Value.value, string(CurBRL)).Mul(effectiveRate(a.Currency, fx))
		switch {
		case a.Class == ClassWrapper:
			t.Wrapper = t.Wrapper.Add(v)
			t.ByKind[a.Kind] = t.ByKind[a.Kind].Add(v)
		case a.Class.Illiquid():
			t.Illiquid = t.Illiquid.Add(v)
		default:
			t.Financial = t.Financial.Add(v)
		}
	}
	return t
}
