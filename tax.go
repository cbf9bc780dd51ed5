package giltladder

// TaxBand is one slice of taxable income. Income between the previous
// band's upper bound and UpTo is taxed at Rate. The last band may have
// a zero UpTo, meaning unbounded.
type TaxBand struct {
	UpTo Money // upper bound of total income for this band, zero = unbounded
	Rate Percent
}

// TaxPolicy is a progressive income tax schedule: a tax-free personal
// allowance followed by ascending bands.
type TaxPolicy struct {
	PersonalAllowance Money
	Bands             []TaxBand
}

// UKTax2024 returns the UK income tax schedule for the 2024/25 year.
func UKTax2024() *TaxPolicy {
	return &TaxPolicy{
		PersonalAllowance: GBP(12570),
		Bands: []TaxBand{
			{UpTo: GBP(50270), Rate: 20},
			{UpTo: GBP(125140), Rate: 40},
			{Rate: 45},
		},
	}
}

// Validate returns a *ConfigurationError when the schedule is unusable.
func (p *TaxPolicy) Validate() error {
	if p == nil {
		return misconfigured("TaxPolicy", "missing tax policy")
	}
	if p.PersonalAllowance.IsNegative() {
		return misconfigured("PersonalAllowance", "must not be negative")
	}
	if len(p.Bands) == 0 {
		return misconfigured("Bands", "at least one tax band is required")
	}
	prev := p.PersonalAllowance
	for i, b := range p.Bands {
		last := i == len(p.Bands)-1
		if b.UpTo.IsZero() && !last {
			return misconfigured("Bands", "only the last band may be unbounded")
		}
		if !b.UpTo.IsZero() && b.UpTo.LessThanOrEqual(prev) {
			return misconfigured("Bands", "band thresholds must ascend")
		}
		if b.Rate < 0 || b.Rate > 100 {
			return misconfigured("Bands", "band rate outside 0-100%")
		}
		if !b.UpTo.IsZero() {
			prev = b.UpTo
		}
	}
	return nil
}

// TaxAssessment is the outcome of applying a TaxPolicy to a gross income.
type TaxAssessment struct {
	GrossIncome   Money
	Liability     Money
	NetIncome     Money
	EffectiveRate Percent
}

// Assess computes the liability on a gross annual income, filling the
// personal allowance first and then each band in order.
func (p *TaxPolicy) Assess(gross Money) TaxAssessment {
	liability := GBP(0)
	lower := p.PersonalAllowance
	for _, b := range p.Bands {
		if gross.LessThanOrEqual(lower) {
			break
		}
		upper := gross
		if !b.UpTo.IsZero() && b.UpTo.LessThan(gross) {
			upper = b.UpTo
		}
		liability = liability.Add(upper.Sub(lower).MulPercent(b.Rate))
		lower = upper
	}
	liability = liability.Round()

	a := TaxAssessment{
		GrossIncome: gross,
		Liability:   liability,
		NetIncome:   gross.Sub(liability),
	}
	if gross.IsPositive() {
		a.EffectiveRate = liability.PercentOf(gross)
	}
	return a
}

// MarginalRate returns the rate applied to the next pound of income.
func (p *TaxPolicy) MarginalRate(income Money) Percent {
	if income.LessThan(p.PersonalAllowance) {
		return 0
	}
	for _, b := range p.Bands {
		if b.UpTo.IsZero() || income.LessThan(b.UpTo) {
			return b.Rate
		}
	}
	return p.Bands[len(p.Bands)-1].Rate
}

func (a TaxAssessment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("gross", a.GrossIncome)
	w.Append("liability", a.Liability)
	w.Append("net", a.NetIncome)
	w.Append("effectiveRate", float64(a.EffectiveRate))
	return w.MarshalJSON()
}
