package patrimonio

// ResolveContribution returns the effective monthly cash flow at the given
// age. Enabled rules whose range contains the age (inclusive on both ends)
// override the base amount; when several overlap, the one with the greatest
// StartAge wins, regardless of slice order. With no matching rule the base
// amount is returned unchanged, never zero.
//
// This is the single resolver used by the simulator and every alternative
// scenario; there is deliberately no second copy of this logic.
func ResolveContribution(age int, base Money, rules []ContributionRule) Money {
	best := -1
	for i, r := range rules {
		if !r.Enabled {
			continue
		}
		if age < r.StartAge || age > r.EndAge {
			continue
		}
		if best < 0 || r.StartAge > rules[best].StartAge {
			best = i
		}
	}
	if best < 0 {
		return base
	}
	return rules[best].Monthly
}
