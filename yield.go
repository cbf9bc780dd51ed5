package giltladder

// A YieldCurve assigns an assumed gross redemption yield to each ladder
// step. Step 0 is the first (shortest) maturity.
type YieldCurve interface {
	YieldAt(step int) Percent
}

// flatCurve assumes the same yield for every maturity.
type flatCurve struct{ rate Percent }

func (c flatCurve) YieldAt(int) Percent { return c.rate }

// Flat returns a curve with the same yield at every step.
func Flat(rate Percent) YieldCurve { return flatCurve{rate: rate} }

// slopedCurve models a gently rising term structure: base at the first
// step, increasing by slope per extra year of maturity.
type slopedCurve struct {
	base  Percent
	slope Percent
}

func (c slopedCurve) YieldAt(step int) Percent {
	return c.base + Percent(float64(step))*c.slope
}

// Sloped returns a linearly rising curve starting at base.
func Sloped(base, slope Percent) YieldCurve { return slopedCurve{base: base, slope: slope} }

// pointsCurve carries one explicit yield per step.
type pointsCurve struct{ yields []Percent }

func (c pointsCurve) YieldAt(step int) Percent { return c.yields[step] }
func (c pointsCurve) len() int                 { return len(c.yields) }

// Points returns a curve with an explicit yield per ladder step. The
// ladder computation rejects a curve shorter than the ladder.
func Points(yields ...Percent) YieldCurve {
	return pointsCurve{yields: append([]Percent(nil), yields...)}
}

// YieldToMaturity approximates the gross redemption yield of a gilt
// bought at price, redeeming at face, paying coupon (percent of face)
// annually for years:
//
//	(coupon + (face-price)/years) / ((face+price)/2)
func YieldToMaturity(price, face Money, coupon Percent, years float64) (Percent, error) {
	if !price.IsPositive() {
		return 0, invalidInput("price", "must be positive")
	}
	if !face.IsPositive() {
		return 0, invalidInput("face", "must be positive")
	}
	if years <= 0 {
		return 0, invalidInput("years", "must be positive")
	}

	annualCoupon := face.MulPercent(coupon).AsFloat()
	capitalGain := face.Sub(price).AsFloat() / years
	averagePrice := face.Add(price).AsFloat() / 2
	return Percent(100 * (annualCoupon + capitalGain) / averagePrice), nil
}
