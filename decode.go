package patrimonio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mvbarbosa/patrimonio/ym"
)

// The advisor-facing forms grew many spellings for the same logical field
// over time. This decoder is the single normalization pass that maps any
// accepted alias onto the canonical typed ScenarioInput; past this boundary
// the engine is strictly typed. Missing or malformed values fall back to
// documented defaults, never to an error.

// jget returns the first alias present in the JSON object.
func jget(obj any, aliases ...string) (any, bool) {
	for _, a := range aliases {
		v, err := jsonpath.Get("$."+a, obj)
		if err != nil || v == nil {
			continue
		}
		return v, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func jfloat(obj any, def float64, aliases ...string) float64 {
	if v, ok := jget(obj, aliases...); ok {
		if f, ok := toFloat(v); ok {
			return f
		}
	}
	return def
}

func jint(obj any, def int, aliases ...string) int {
	return int(jfloat(obj, float64(def), aliases...))
}

func jbool(obj any, def bool, aliases ...string) bool {
	if v, ok := jget(obj, aliases...); ok {
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(t); err == nil {
				return b
			}
		case float64:
			return t != 0
		}
	}
	return def
}

func jstring(obj any, def string, aliases ...string) string {
	if v, ok := jget(obj, aliases...); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func jmoney(obj any, aliases ...string) Money {
	return R(jfloat(obj, 0, aliases...))
}

func jlist(obj any, aliases ...string) []any {
	for _, a := range aliases {
		v, err := jsonpath.Get("$."+a, obj)
		if err != nil {
			continue
		}
		if list, ok := v.([]any); ok {
			return list
		}
	}
	return nil
}

func jobject(obj any, aliases ...string) map[string]any {
	for _, a := range aliases {
		v, err := jsonpath.Get("$."+a, obj)
		if err != nil {
			continue
		}
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// DecodeScenario reads a scenario from its permissive JSON form. Only
// syntactically invalid JSON is an error; unknown or malformed fields
// resolve to their defaults.
func DecodeScenario(r io.Reader) (ScenarioInput, error) {
	var obj any
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return ScenarioInput{}, fmt.Errorf("decoding scenario: %w", err)
	}

	s := ScenarioInput{
		CurrentAge:         jint(obj, 30, "currentAge", "idadeAtual", "idade"),
		ContributionEndAge: jint(obj, 0, "contributionEndAge", "idadeFimAportes", "fimAportes"),
		RetirementAge:      jint(obj, 65, "retirementAge", "idadeAposentadoria", "aposentadoria"),
		LifeExpectancy:     jint(obj, 90, "lifeExpectancy", "expectativaVida", "expectativa"),
		Contribution:       jmoney(obj, "monthlyContribution", "aporteMensal", "contribution", "aporte"),
		DesiredIncome:      jmoney(obj, "desiredIncome", "rendaDesejada", "rendaMensalDesejada"),
	}

	if a := jobject(obj, "assumptions", "premissas"); a != nil {
		s.Assumptions = Assumptions{
			Profile:       RiskProfile(jstring(a, "", "profile", "perfil", "perfilRisco")),
			NominalReturn: jfloat(a, 0, "nominalReturn", "retornoNominal", "rentabilidadeAnual"),
			Inflation:     jfloat(a, 0, "inflation", "inflacao", "inflacaoAnual"),
		}
		if fx := jobject(a, "fxRates", "cambio", "taxasCambio"); fx != nil {
			rates := make(map[Currency]float64)
			for c, v := range fx {
				if f, ok := toFloat(v); ok {
					rates[Currency(c)] = f
				}
			}
			s.Assumptions.FXRates = rates
		}
	}

	for _, item := range jlist(obj, "assets", "ativos") {
		s.Assets = append(s.Assets, Asset{
			Value:    jmoney(item, "value", "valor", "amount"),
			Currency: Currency(jstring(item, string(CurBRL), "currency", "moeda")),
			Class:    assetClass(jstring(item, string(ClassFinancial), "class", "classe", "tipo", "bucket")),
			Kind:     WrapperKind(jstring(item, "", "kind", "regime", "subtipo", "wrapperSubtype")),
		})
	}

	for _, item := range jlist(obj, "contributionRules", "regrasAporte", "rules", "regras") {
		s.Rules = append(s.Rules, ContributionRule{
			StartAge:   jint(item, 0, "startAge", "idadeInicio", "inicio"),
			EndAge:     jint(item, 0, "endAge", "idadeFim", "fim"),
			Monthly:    jmoney(item, "monthlyAmount", "valorMensal", "monthly", "valor"),
			Withdrawal: jbool(item, false, "withdrawal", "resgate", "retirada"),
			Enabled:    jbool(item, true, "enabled", "ativo", "habilitado"),
		})
	}

	for _, item := range jlist(obj, "goals", "objetivos", "metas") {
		kind := jstring(item, "", "kind", "tipo")
		impacting := jbool(item, kind != "cosmetic", "impacting", "impacta")
		if kind == "cosmetic" {
			impacting = false
		}
		s.Goals = append(s.Goals, Goal{
			Age:       jint(item, 0, "age", "idade"),
			Amount:    jmoney(item, "amount", "valor"),
			Impacting: impacting,
		})
	}

	for _, item := range jlist(obj, "cashInEvents", "entradas", "eventosEntrada") {
		ev := CashInEvent{
			Age:    jint(item, 0, "age", "idade"),
			Amount: jmoney(item, "amount", "valor"),
		}
		if ev.Amount.IsPositive() {
			s.CashIns = append(s.CashIns, ev)
		}
	}

	if c := jobject(obj, "succession", "sucessao"); c != nil {
		s.Succession = SuccessionConfig{
			State:           jstring(c, "", "state", "uf", "estado"),
			TransferTaxRate: jfloat(c, 0, "transferTaxRate", "itcmd", "aliquotaItcmd"),
			LegalRate:       jfloat(c, 0, "legalRate", "honorarios", "custoAdvocaticio"),
			AdminRate:       jfloat(c, 0, "adminRate", "custas", "custoAdministrativo"),
		}
	}

	if c := jobject(obj, "wrapperSuccession", "previdencia", "configPrevidencia"); c != nil {
		s.Wrapper = WrapperConfig{
			OutsideEstate:    jbool(c, true, "outsideEstate", "foraInventario", "foraDoInventario"),
			TaxWrapperAssets: jbool(c, false, "taxWrapperAssets", "tributarPrevidencia"),
		}
	} else {
		// the common case: previdência passes outside the inventory
		s.Wrapper = WrapperConfig{OutsideEstate: true}
	}

	return s, nil
}

// assetClass maps the many class spellings onto the fixed taxonomy.
func assetClass(s string) AssetClass {
	switch s {
	case "financial", "financeiro", "liquido":
		return ClassFinancial
	case "real-estate", "realEstate", "imovel", "imobilizado":
		return ClassRealEstate
	case "vehicle", "veiculo":
		return ClassVehicle
	case "business", "empresa", "participacao":
		return ClassBusiness
	case "previdencia", "wrapper", "retirement-wrapper":
		return ClassWrapper
	case "other", "outro", "outros":
		return ClassOther
	}
	return ClassFinancial
}

// DecodeTracking reads the reported monthly history. It accepts either a
// top-level array or an object with a records list, and a month either split
// into (year, month) fields or as a "2025-07" string.
func DecodeTracking(r io.Reader) ([]TrackingRecord, error) {
	var obj any
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, fmt.Errorf("decoding tracking records: %w", err)
	}

	items, ok := obj.([]any)
	if !ok {
		items = jlist(obj, "records", "registros", "historico")
	}

	var records []TrackingRecord
	for _, item := range items {
		rec := TrackingRecord{
			Planned:      jmoney(item, "plannedContribution", "aportePlanejado", "planejado"),
			Actual:       jmoney(item, "actualContribution", "aporteReal", "real"),
			ReturnPct:    jfloat(item, 0, "actualMonthlyReturnPct", "retornoPct", "retornoMensalPct"),
			InflationPct: jfloat(item, 0, "actualMonthlyInflationPct", "inflacaoPct", "inflacaoMensalPct"),
		}
		if ms := jstring(item, "", "month", "mes"); ms != "" {
			if m, err := ym.Parse(ms); err == nil {
				rec.Month = m
			}
		}
		if rec.Month.IsZero() {
			year := jint(item, 0, "year", "ano")
			month := jint(item, 1, "month", "mes")
			rec.Month = ym.New(year, time.Month(month))
		}
		records = append(records, rec)
	}
	return records, nil
}
