package giltladder

// IncomeSummary is the at-a-glance income and tax picture of a computed
// ladder, combined with the investor's other pension income.
type IncomeSummary struct {
	LadderIncome       Money
	OtherPensionIncome Money
	GrossIncome        Money
	Liability          Money
	NetIncome          Money
	EffectiveRate      Percent
	TargetIncome       Money
	NetVsTarget        Money   // net income minus target
	NetVsTargetPct     Percent // same, as a percentage of the target
}

// NewIncomeSummary derives the income summary from a ladder result.
func NewIncomeSummary(result *LadderResult, input PortfolioInput) *IncomeSummary {
	s := &IncomeSummary{
		LadderIncome:       result.ProjectedAnnualIncome,
		OtherPensionIncome: input.OtherPensionIncome,
		GrossIncome:        result.Tax.GrossIncome,
		Liability:          result.Tax.Liability,
		NetIncome:          result.Tax.NetIncome,
		EffectiveRate:      result.Tax.EffectiveRate,
		TargetIncome:       input.TargetAnnualIncome,
		NetVsTarget:        result.Tax.NetIncome.Sub(input.TargetAnnualIncome),
	}
	if input.TargetAnnualIncome.IsPositive() {
		s.NetVsTargetPct = s.NetVsTarget.PercentOf(input.TargetAnnualIncome)
	}
	return s
}

func (s *IncomeSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ladderIncome", s.LadderIncome)
	if s.OtherPensionIncome.IsPositive() {
		w.Append("otherPensionIncome", s.OtherPensionIncome)
	}
	w.Append("grossIncome", s.GrossIncome)
	w.Append("liability", s.Liability)
	w.Append("netIncome", s.NetIncome)
	w.Append("effectiveRate", float64(s.EffectiveRate))
	w.Append("targetIncome", s.TargetIncome)
	w.Append("netVsTarget", s.NetVsTarget)
	return w.MarshalJSON()
}
