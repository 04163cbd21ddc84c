package flightplan

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Federal tax parameters for the 2024 tax year. Brackets are expressed as the
// upper bound of taxable income the rate applies to; the last bracket is
// unbounded.
type taxBracket struct {
	upTo decimal.Decimal // zero means no upper bound.
	rate Percent
}

var singleBrackets = []taxBracket{
	{upTo: decimal.NewFromInt(11_600), rate: 10},
	{upTo: decimal.NewFromInt(47_150), rate: 12},
	{upTo: decimal.NewFromInt(100_525), rate: 22},
	{upTo: decimal.NewFromInt(191_950), rate: 24},
	{upTo: decimal.NewFromInt(243_725), rate: 32},
	{upTo: decimal.NewFromInt(609_350), rate: 35},
	{rate: 37},
}

var marriedBrackets = []taxBracket{
	{upTo: decimal.NewFromInt(23_200), rate: 10},
	{upTo: decimal.NewFromInt(94_300), rate: 12},
	{upTo: decimal.NewFromInt(201_050), rate: 22},
	{upTo: decimal.NewFromInt(383_900), rate: 24},
	{upTo: decimal.NewFromInt(487_450), rate: 32},
	{upTo: decimal.NewFromInt(731_200), rate: 35},
	{rate: 37},
}

// 2024 standard deductions and FICA parameters. The additional Medicare rate
// kicks in at a higher threshold for joint filers.
var (
	singleDeduction  = decimal.NewFromInt(14_600)
	marriedDeduction = decimal.NewFromInt(29_200)

	socialSecurityLimit        = decimal.NewFromInt(168_600)
	socialSecurityRate         = Percent(6.2)
	medicareRate               = Percent(1.45)
	additionalMedicare         = Percent(0.9)
	additionalThresholdSingle  = decimal.NewFromInt(200_000)
	additionalThresholdMarried = decimal.NewFromInt(250_000)
)

// State income tax rates for 2024, flattened to the highest marginal rate of
// each state. States absent from the table (or an empty location) are not
// taxed.
var stateRates = map[string]Percent{
	"AL": 5, "AK": 0, "AZ": 4.59, "AR": 5.5, "CA": 13.3,
	"CO": 4.44, "CT": 6.99, "DE": 6.6, "FL": 0, "GA": 5.75,
	"HI": 11, "ID": 5.8, "IL": 4.95, "IN": 3.23, "IA": 6,
	"KS": 5.7, "KY": 4.5, "LA": 4.25, "ME": 7.15, "MD": 5.75,
	"MA": 5, "MI": 4.25, "MN": 9.85, "MS": 5, "MO": 4.95,
	"MT": 6.75, "NE": 6.64, "NV": 0, "NH": 5, "NJ": 10.75,
	"NM": 5.9, "NY": 10.9, "NC": 4.99, "ND": 2.9, "OH": 3.99,
	"OK": 4.75, "OR": 9.9, "PA": 3.07, "RI": 5.99, "SC": 7,
	"SD": 0, "TN": 0, "TX": 0, "UT": 4.85, "VT": 8.75,
	"VA": 5.75, "WA": 0, "WV": 6.5, "WI": 7.65, "WY": 0,
}

// stateOf extracts the two-letter state code from a location such as
// "Austin, TX", or from a bare "TX".
func stateOf(location string) string {
	if i := strings.LastIndex(location, ","); i >= 0 {
		location = location[i+1:]
	}
	location = strings.ToUpper(strings.TrimSpace(location))
	if len(location) != 2 {
		return ""
	}
	return location
}

// TaxBurden is the annual tax liability derived from a gross income.
type TaxBurden struct {
	Gross   Money // gross annual income taxes were computed from.
	Federal Money // federal income tax after the standard deduction.
	State   Money // flat-rate state income tax for the profile location.
	FICA    Money // Social Security and Medicare taxes.
}

// Total returns the combined annual tax liability.
func (b TaxBurden) Total() Money { return b.Federal.Add(b.State).Add(b.FICA) }

// EffectiveRate returns the total tax as a share of the gross income.
func (b TaxBurden) EffectiveRate() Percent {
	if b.Gross.IsZero() {
		return 0
	}
	return Percent(100 * b.Total().AsFloat() / b.Gross.AsFloat())
}

// ComputeTaxes derives the annual federal, state and FICA tax burden from a
// gross annual income, a filing status and a location. FilingNone returns a
// zero burden.
func ComputeTaxes(gross Money, filing FilingStatus, location string) TaxBurden {
	burden := TaxBurden{
		Gross:   gross,
		Federal: M(0, gross.Currency()),
		State:   M(0, gross.Currency()),
		FICA:    M(0, gross.Currency()),
	}
	if filing == FilingNone || !gross.IsPositive() {
		return burden
	}
	burden.Federal = federalTax(gross, filing)
	burden.State = stateTax(gross, location)
	burden.FICA = ficaTax(gross, filing)
	return burden
}

// federalTax computes the progressive federal income tax after the standard
// deduction for the filing status.
func federalTax(gross Money, filing FilingStatus) Money {
	brackets, deduction := singleBrackets, singleDeduction
	if filing == MarriedJointly {
		brackets, deduction = marriedBrackets, marriedDeduction
	}

	taxable := gross.value.Sub(deduction)
	if !taxable.IsPositive() {
		return M(0, gross.Currency())
	}

	tax := decimal.Zero
	previous := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(previous) {
			break
		}
		upper := taxable
		if !b.upTo.IsZero() && b.upTo.LessThan(taxable) {
			upper = b.upTo
		}
		tax = tax.Add(upper.Sub(previous).Mul(b.rate.Rate()))
		previous = b.upTo
	}
	return M(tax, gross.Currency())
}

// stateTax computes the flat-rate state income tax on the full gross income
// for the state of the location. Unknown locations are not taxed.
func stateTax(gross Money, location string) Money {
	rate, ok := stateRates[stateOf(location)]
	if !ok || rate == 0 {
		return M(0, gross.Currency())
	}
	return gross.Scale(rate.Rate())
}

// ficaTax computes Social Security (capped) and Medicare (uncapped, with the
// additional rate over the filing-dependent threshold) payroll taxes.
func ficaTax(gross Money, filing FilingStatus) Money {
	ssTaxable := gross.value
	if ssTaxable.GreaterThan(socialSecurityLimit) {
		ssTaxable = socialSecurityLimit
	}
	threshold := additionalThresholdSingle
	if filing == MarriedJointly {
		threshold = additionalThresholdMarried
	}
	tax := ssTaxable.Mul(socialSecurityRate.Rate())
	tax = tax.Add(gross.value.Mul(medicareRate.Rate()))
	if gross.value.GreaterThan(threshold) {
		tax = tax.Add(gross.value.Sub(threshold).Mul(additionalMedicare.Rate()))
	}
	return M(tax, gross.Currency())
}
