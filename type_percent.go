package forecast

import "fmt"

// Percent is a ratio expressed in percent: 12.5 means 12.5%.
type Percent float64

// P converts a ratio (0.125) to a Percent (12.5%).
func P(ratio float64) Percent { return Percent(ratio * 100) }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString is like String with an explicit sign, "-" when it rounds to zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
