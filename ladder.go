package giltladder

// Account is the tax wrapper funding a rung.
type Account string

const (
	SIPP Account = "SIPP"
	ISA  Account = "ISA"
)

// LadderSpec carries the caller-supplied assumptions of a ladder
// computation: the yield curve and tax schedule are required, the rest
// default to zero.
type LadderSpec struct {
	Curve           YieldCurve
	Tax             *TaxPolicy
	ISAYieldPremium Percent // extra yield on ISA rungs (corporate bonds vs gilts)
	CashBuffer      Percent // share of each account kept liquid, not laddered
}

func (s LadderSpec) validate(years int) error {
	if s.Curve == nil {
		return misconfigured("Curve", "missing yield curve")
	}
	if pc, ok := s.Curve.(pointsCurve); ok && pc.len() < years {
		return misconfigured("Curve", "points curve shorter than the ladder")
	}
	if err := s.Tax.Validate(); err != nil {
		return err
	}
	if s.ISAYieldPremium < 0 {
		return misconfigured("ISAYieldPremium", "must not be negative")
	}
	if s.CashBuffer < 0 || s.CashBuffer >= 100 {
		return misconfigured("CashBuffer", "must be in [0, 100)")
	}
	return nil
}

// Rung is one maturity-dated tranche of the ladder.
type Rung struct {
	MaturityYear int
	Amount       Money
	Account      Account
	Yield        Percent
	Income       Money   // Amount x Yield
	Weight       Percent // share of the invested total
}

// LadderResult is the outcome of a ladder computation. Rungs are
// ordered by ascending maturity year.
type LadderResult struct {
	Rungs                 []Rung
	TotalAllocated        Money
	SIPPCashReserve       Money
	ISACashReserve        Money
	ProjectedAnnualIncome Money
	Surplus               Money // projected income minus target, negative on shortfall
	EstimatedTaxDrag      Percent
	Tax                   TaxAssessment // full assessment of ladder + other pension income
}

// Shortfall reports whether the projected income misses the target.
func (r *LadderResult) Shortfall() bool { return r.Surplus.IsNegative() }

// ComputeLadder allocates the portfolio into a gilt ladder and estimates
// its income and tax outcome. It is deterministic and has no side
// effects; errors are *InvalidInputError or *ConfigurationError.
//
// Allocation policy: after reserving the cash buffer, the invested total
// is split equally across LadderYears rungs maturing in consecutive
// years (the last rung absorbs the rounding remainder). ISA funds are
// drawn first so the earliest rungs sit in the ISA; a boundary rung
// belongs to the account funding the majority of it.
func ComputeLadder(input PortfolioInput, spec LadderSpec) (*LadderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := spec.validate(input.LadderYears); err != nil {
		return nil, err
	}

	sippCash := input.SIPPValue.MulPercent(spec.CashBuffer).Round()
	isaCash := input.ISAValue.MulPercent(spec.CashBuffer).Round()
	isaInvested := input.ISAValue.Sub(isaCash)
	invested := input.SIPPValue.Sub(sippCash).Add(isaInvested)
	if !invested.IsPositive() {
		return nil, invalidInput("CashBuffer", "cash buffer reserves the entire portfolio")
	}

	each, final := invested.Split(input.LadderYears)

	result := &LadderResult{
		Rungs:           make([]Rung, 0, input.LadderYears),
		TotalAllocated:  invested,
		SIPPCashReserve: sippCash,
		ISACashReserve:  isaCash,
	}

	income := GBP(0)
	sippIncome := GBP(0)
	isaRemaining := isaInvested
	for i := 0; i < input.LadderYears; i++ {
		amount := each
		if i == input.LadderYears-1 {
			amount = final
		}

		account := SIPP
		if amount.IsPositive() && isaRemaining.GreaterThanOrEqual(amount.MulPercent(50)) {
			account = ISA
			isaRemaining = isaRemaining.Sub(amount)
		}

		yield := spec.Curve.YieldAt(i)
		if account == ISA {
			yield = yield.Add(spec.ISAYieldPremium)
		}

		rung := Rung{
			MaturityYear: input.StartYear + i + 1,
			Amount:       amount,
			Account:      account,
			Yield:        yield,
			Income:       amount.MulPercent(yield).Round(),
			Weight:       amount.PercentOf(invested),
		}
		income = income.Add(rung.Income)
		if account == SIPP {
			sippIncome = sippIncome.Add(rung.Income)
		}
		result.Rungs = append(result.Rungs, rung)
	}

	result.ProjectedAnnualIncome = income
	result.Surplus = income.Sub(input.TargetAnnualIncome)

	// SIPP withdrawals stack on top of other pension income; the drag is
	// the incremental liability caused by the ladder alone.
	baseline := spec.Tax.Assess(input.OtherPensionIncome)
	taxable := spec.Tax.Assess(input.OtherPensionIncome.Add(sippIncome))
	ladderLiability := taxable.Liability.Sub(baseline.Liability)
	if income.IsPositive() {
		result.EstimatedTaxDrag = ladderLiability.PercentOf(income)
	}

	// The snapshot covers all income, but only the taxable part of it
	// contributes to the liability: ISA income stays out of the bands.
	gross := input.OtherPensionIncome.Add(income)
	result.Tax = TaxAssessment{
		GrossIncome: gross,
		Liability:   taxable.Liability,
		NetIncome:   gross.Sub(taxable.Liability),
	}
	if gross.IsPositive() {
		result.Tax.EffectiveRate = taxable.Liability.PercentOf(gross)
	}

	return result, nil
}

func (r Rung) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("maturityYear", r.MaturityYear)
	w.Append("amount", r.Amount)
	w.Append("account", string(r.Account))
	w.Append("yield", float64(r.Yield))
	w.Append("income", r.Income)
	return w.MarshalJSON()
}

func (r *LadderResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("rungs", r.Rungs)
	w.Append("totalAllocated", r.TotalAllocated)
	if r.SIPPCashReserve.IsPositive() {
		w.Append("sippCashReserve", r.SIPPCashReserve)
	}
	if r.ISACashReserve.IsPositive() {
		w.Append("isaCashReserve", r.ISACashReserve)
	}
	w.Append("projectedAnnualIncome", r.ProjectedAnnualIncome)
	w.Append("surplus", r.Surplus)
	w.Append("estimatedTaxDrag", float64(r.EstimatedTaxDrag))
	w.Append("tax", r.Tax)
	return w.MarshalJSON()
}
