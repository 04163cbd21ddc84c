package flightplan

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed in percent, e.g. Percent(3.5) is 3.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Rate returns the rate as an exact decimal fraction, e.g. 0.035 for 3.5%.
func (p Percent) Rate() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

// GrowthFactor returns 1 plus the rate, the factor one period of growth
// multiplies an amount by.
func (p Percent) GrowthFactor() decimal.Decimal {
	return decimal.NewFromInt(1).Add(p.Rate())
}

// Monthly returns the simple monthly fraction of an annual rate.
func (p Percent) Monthly() Percent { return p / 12 }

// IsNegative reports whether the rate is below zero.
func (p Percent) IsNegative() bool { return p < 0 }
