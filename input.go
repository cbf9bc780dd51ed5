package giltladder

// PortfolioInput describes the investor's capital and income target.
// All amounts are in GBP.
type PortfolioInput struct {
	SIPPValue          Money // current value of the Self-Invested Personal Pension
	ISAValue           Money // current value of the Individual Savings Account
	TargetAnnualIncome Money
	OtherPensionIncome Money // DB or state pension income, consumes tax bands first
	LadderYears        int   // number of rungs
	StartYear          int   // rungs mature in StartYear+1 .. StartYear+LadderYears
}

// Validate checks the input ranges and returns an *InvalidInputError on
// the first violation.
func (in PortfolioInput) Validate() error {
	if in.SIPPValue.IsNegative() {
		return invalidInput("SIPPValue", "must not be negative")
	}
	if in.ISAValue.IsNegative() {
		return invalidInput("ISAValue", "must not be negative")
	}
	if in.SIPPValue.Add(in.ISAValue).IsZero() {
		return invalidInput("SIPPValue+ISAValue", "portfolio must hold some capital")
	}
	if !in.TargetAnnualIncome.IsPositive() {
		return invalidInput("TargetAnnualIncome", "must be positive")
	}
	if in.OtherPensionIncome.IsNegative() {
		return invalidInput("OtherPensionIncome", "must not be negative")
	}
	if in.LadderYears < 1 {
		return invalidInput("LadderYears", "ladder needs at least one rung")
	}
	if in.StartYear < 1900 {
		return invalidInput("StartYear", "not a plausible calendar year")
	}
	return nil
}

// Total returns the combined portfolio value.
func (in PortfolioInput) Total() Money { return in.SIPPValue.Add(in.ISAValue) }
