package forecast

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// maxMinor is the largest amount in minor units go-money can format.
var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Money is a portfolio value for display, in an optional currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string

	// decimals cannot hold infinities, they are kept as is.
	nonFinite bool
	raw       float64
}

// M returns value in currency cur. An empty currency is allowed.
func M(value float64, cur string) Money {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Money{cur: cur, nonFinite: true, raw: value}
	}
	return Money{value: decimal.NewFromFloat(value), cur: cur}
}

// String formats the value with the currency conventions, or with two decimals
// and no symbol when there is no currency.
//
// Infinite values print as "+Inf" or "-Inf". Amounts too large for the
// currency formatter print in plain digits followed by the currency code.
func (m Money) String() string {
	if m.nonFinite {
		return fmt.Sprintf("%.2f", m.raw)
	}
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor.
	cur := money.New(0, m.cur).Currency()
	fraction := int32(cur.Fraction)
	minor := m.value.Round(fraction).Shift(fraction)
	if minor.Abs().GreaterThan(maxMinor) {
		return m.value.StringFixed(fraction) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString is like String with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.nonFinite:
		return m.String()
	case m.value.IsZero():
		return "-"
	case m.value.IsPositive():
		return "+" + m.String()
	}
	return m.String()
}
