package patrimonio

// Currency identifies the native currency of an asset. BRL is the reporting
// currency; every KPI and series value is expressed in it.
type Currency string

const (
	CurBRL Currency = "BRL"
	CurUSD Currency = "USD"
	CurEUR Currency = "EUR"
	CurGBP Currency = "GBP"
)

// defaultFXRates are the fallback BRL rates used when a scenario omits a
// currency from its own table. Conversion never fails: an unknown currency
// converts at 1:1 rather than being dropped.
var defaultFXRates = map[Currency]float64{
	CurUSD: 5.00,
	CurEUR: 5.40,
	CurGBP: 6.30,
}

// AssetClass buckets an asset for aggregation and succession purposes.
type AssetClass string

const (
	ClassFinancial  AssetClass = "financial"
	ClassRealEstate AssetClass = "real-estate"
	ClassVehicle    AssetClass = "vehicle"
	ClassBusiness   AssetClass = "business"
	ClassOther      AssetClass = "other"
	ClassWrapper    AssetClass = "previdencia"
)

// Illiquid reports whether the class belongs to the illiquid bucket. Illiquid
// assets never compound; they only widen the total-wealth figure.
func (c AssetClass) Illiquid() bool {
	switch c {
	case ClassRealEstate, ClassVehicle, ClassBusiness, ClassOther:
		return true
	}
	return false
}

// WrapperKind is the tax regime of a retirement-wrapper asset.
type WrapperKind string

const (
	PGBL WrapperKind = "PGBL"
	VGBL WrapperKind = "VGBL"
)

// Asset is one holding of the client, in its native currency.
type Asset struct {
	Value    Money
	Currency Currency
	Class    AssetClass
	Kind     WrapperKind // only meaningful for ClassWrapper
}

// ContributionRule is a time-ranged override of the base monthly
// contribution. Rules may overlap; resolution is in contribution.go.
type ContributionRule struct {
	StartAge   int
	EndAge     int // inclusive; zero means open-ended (runs to MaxAge)
	Monthly    Money
	Withdrawal bool // a withdrawal rule is coerced to a negative amount
	Enabled    bool
}

// Goal is a future objective. Only impacting goals subtract from simulated
// wealth; cosmetic ones are display markers and never touch the series.
type Goal struct {
	Age       int
	Amount    Money
	Impacting bool
}

// CashInEvent is a one-time external inflow applied at the stated age.
type CashInEvent struct {
	Age    int
	Amount Money
}

// RiskProfile selects the default nominal annual return.
type RiskProfile string

const (
	Conservador RiskProfile = "conservador"
	Moderado    RiskProfile = "moderado"
	Arrojado    RiskProfile = "arrojado"
)

var defaultNominalReturn = map[RiskProfile]float64{
	Conservador: 0.08,
	Moderado:    0.10,
	Arrojado:    0.12,
}

// Assumptions holds the macro-economic inputs of a scenario.
type Assumptions struct {
	Profile       RiskProfile
	NominalReturn float64 // annual; zero falls back to the profile default
	Inflation     float64 // annual
	FXRates       map[Currency]float64

	// Stress perturbation magnitudes; zero falls back to the defaults in
	// stress.go.
	InflationPenalty float64
	ReturnPenalty    float64
	FXShock          float64
}

// SuccessionConfig configures the estate cost estimate.
type SuccessionConfig struct {
	State           string  // two-letter UF, keys the ITCMD rate table
	TransferTaxRate float64 // override; zero takes the state default
	LegalRate       float64 // override; zero takes the default
	AdminRate       float64 // override; zero takes the default
}

// WrapperConfig controls how retirement-wrapper assets participate in the
// estate. The two flags are orthogonal: a wrapper outside the estate can
// still be transfer-taxed when TaxWrapperAssets is set.
type WrapperConfig struct {
	OutsideEstate    bool
	TaxWrapperAssets bool
}

// MaxAge bounds every age field of a scenario.
const MaxAge = 120

// ScenarioInput is the complete description of one client scenario. It is a
// value: a simulation run is a pure function of one ScenarioInput and never
// mutates it.
type ScenarioInput struct {
	CurrentAge         int
	ContributionEndAge int
	RetirementAge      int
	LifeExpectancy     int

	// Cash-flow amounts are read at face value in the reporting currency
	// (BRL); only Asset values carry a convertible currency of their own.
	Contribution  Money // base monthly contribution
	DesiredIncome Money // desired monthly income at retirement

	Assumptions Assumptions
	Assets      []Asset
	Rules       []ContributionRule
	Goals       []Goal
	CashIns     []CashInEvent
	Succession  SuccessionConfig
	Wrapper     WrapperConfig
}

func clampAge(a int) int {
	if a < 0 {
		return 0
	}
	if a > MaxAge {
		return MaxAge
	}
	return a
}

// normalized returns a copy with ages clamped and defaulted, withdrawal rules
// sign-coerced, open-ended rule ranges resolved, and negative asset values
// floored at zero. The rest of the engine operates on the strict result.
func (s ScenarioInput) normalized() ScenarioInput {
	s.CurrentAge = clampAge(s.CurrentAge)
	s.RetirementAge = clampAge(s.RetirementAge)
	if s.RetirementAge == 0 {
		s.RetirementAge = 65
	}
	s.LifeExpectancy = clampAge(s.LifeExpectancy)
	if s.LifeExpectancy == 0 {
		s.LifeExpectancy = 90
	}
	if s.LifeExpectancy < s.CurrentAge {
		s.LifeExpectancy = s.CurrentAge
	}
	s.ContributionEndAge = clampAge(s.ContributionEndAge)
	if s.ContributionEndAge == 0 {
		s.ContributionEndAge = s.RetirementAge
	}

	s.Contribution = s.Contribution.reporting()
	s.DesiredIncome = s.DesiredIncome.reporting()

	rules := make([]ContributionRule, len(s.Rules))
	for i, r := range s.Rules {
		r.StartAge = clampAge(r.StartAge)
		if r.EndAge == 0 {
			r.EndAge = MaxAge
		}
		r.EndAge = clampAge(r.EndAge)
		r.Monthly = r.Monthly.reporting()
		if r.Withdrawal && r.Monthly.IsPositive() {
			r.Monthly = r.Monthly.Neg()
		}
		rules[i] = r
	}
	s.Rules = rules

	goals := make([]Goal, len(s.Goals))
	for i, g := range s.Goals {
		g.Age = clampAge(g.Age)
		g.Amount = g.Amount.reporting()
		goals[i] = g
	}
	s.Goals = goals

	cashIns := make([]CashInEvent, len(s.CashIns))
	for i, ev := range s.CashIns {
		ev.Age = clampAge(ev.Age)
		ev.Amount = ev.Amount.reporting()
		cashIns[i] = ev
	}
	s.CashIns = cashIns

	assets := make([]Asset, len(s.Assets))
	for i, a := range s.Assets {
		if a.Value.IsNegative() {
			a.Value = Money{}
		}
		if a.Currency == "" {
			a.Currency = CurBRL
		}
		if a.Class == "" {
			a.Class = ClassFinancial
		}
		assets[i] = a
	}
	s.Assets = assets

	return s
}

// normalized applies rate normalization and profile defaults to a copy of
// the assumptions.
func (a Assumptions) normalized() Assumptions {
	if a.Profile == "" {
		a.Profile = Moderado
	}
	if a.NominalReturn == 0 {
		a.NominalReturn = defaultNominalReturn[a.Profile]
	}
	a.NominalReturn = float64(NormalizeRate(a.NominalReturn))
	a.Inflation = float64(NormalizeRate(a.Inflation))
	return a
}
