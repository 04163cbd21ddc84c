package flightplan

import (
	"encoding/json"

	"github.com/etnz/flightplan/timeline"
	"github.com/shopspring/decimal"
)

// FilingStatus selects the federal tax filing status of a profile.
type FilingStatus string

const (
	// FilingNone disables tax modelling entirely.
	FilingNone FilingStatus = ""
	// Single files federal taxes as a single person.
	Single FilingStatus = "single"
	// MarriedJointly files federal taxes as a married couple filing jointly.
	MarriedJointly FilingStatus = "married"
)

// ParseFilingStatus parses a string into a FilingStatus.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch s {
	case "":
		return FilingNone, nil
	case "single":
		return Single, nil
	case "married", "married-jointly":
		return MarriedJointly, nil
	default:
		return FilingNone, invalidf("unknown filing status %q (want single or married)", s)
	}
}

// ExpenseCategory is a recurring monthly expense of the profile, indexed on
// inflation year after year.
type ExpenseCategory struct {
	Name      string  // category label, e.g. "Rent" or "Groceries".
	Monthly   Money   // monthly amount during the first projection year.
	Inflation Percent // per-category override; zero falls back to the profile inflation.
}

// Profile is the starting financial state a projection departs from: salary,
// location adjustment, savings and the recurring expense categories.
type Profile struct {
	Currency         string            // reporting currency, e.g. "USD".
	Start            timeline.Month    // first month of the projection.
	Occupation       string            // free-form occupation label.
	Location         string            // city and state, e.g. "Austin, TX"; the state sets the income tax.
	AnnualSalary     Money             // gross salary before location adjustment.
	SalaryGrowth     Percent           // annual salary growth rate.
	CostOfLiving     float64           // location multiplier applied to salary; 0 means 1.0.
	Filing           FilingStatus      // tax filing status; empty disables taxes.
	StartingSavings  Money             // net worth at Start.
	InvestmentReturn Percent           // annual return on accumulated savings.
	Inflation        Percent           // default annual inflation for expenses.
	Expenses         []ExpenseCategory // recurring monthly expenses.
}

// costOfLiving returns the location multiplier as an exact decimal factor.
func (p *Profile) costOfLiving() decimal.Decimal {
	if p.CostOfLiving == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromFloat(p.CostOfLiving)
}

// Validate checks the profile for the required fields and rejects rates and
// amounts that make no sense in a projection.
func (p *Profile) Validate() error {
	if p.Currency == "" {
		return &ConfigError{Field: "currency"}
	}
	if p.Start.IsZero() {
		return &ConfigError{Field: "start"}
	}
	if p.AnnualSalary.IsZero() && p.StartingSavings.IsZero() {
		return &ConfigError{Field: "salary"}
	}
	if p.AnnualSalary.IsNegative() {
		return invalidf("annual salary must not be negative, got %s", p.AnnualSalary)
	}
	if p.StartingSavings.IsNegative() {
		return invalidf("starting savings must not be negative, got %s", p.StartingSavings)
	}
	if p.SalaryGrowth.IsNegative() {
		return invalidf("salary growth rate must not be negative, got %s", p.SalaryGrowth)
	}
	if p.Inflation.IsNegative() {
		return invalidf("inflation rate must not be negative, got %s", p.Inflation)
	}
	if p.CostOfLiving < 0 {
		return invalidf("cost of living multiplier must not be negative, got %g", p.CostOfLiving)
	}
	for _, e := range p.Expenses {
		if e.Name == "" {
			return &ConfigError{Field: "expenses.name"}
		}
		if e.Monthly.IsNegative() {
			return invalidf("expense %q must not be negative, got %s", e.Name, e.Monthly)
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Profile. The
// profile is persisted as the "profile" command of a scenario file.
func (p Profile) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdProfile)
	w.Append("start", p.Start)
	w.Append("currency", p.Currency)
	w.Optional("occupation", p.Occupation)
	w.Optional("location", p.Location)
	w.Append("salary", p.AnnualSalary.value)
	w.Optional("salaryGrowth", float64(p.SalaryGrowth))
	w.Optional("costOfLiving", p.CostOfLiving)
	w.Optional("filing", string(p.Filing))
	w.Optional("savings", p.StartingSavings.value)
	w.Optional("investmentReturn", float64(p.InvestmentReturn))
	w.Optional("inflation", float64(p.Inflation))
	if len(p.Expenses) > 0 {
		raw := make([]json.RawMessage, 0, len(p.Expenses))
		for _, e := range p.Expenses {
			var ew jsonObjectWriter
			ew.Append("name", e.Name)
			ew.Append("monthly", e.Monthly.value)
			ew.Optional("inflation", float64(e.Inflation))
			b, err := ew.MarshalJSON()
			if err != nil {
				return nil, err
			}
			raw = append(raw, b)
		}
		w.Append("expenses", raw)
	}
	return w.MarshalJSON()
}

// profileCmd is a specialized struct for decoding the profile line of a
// scenario file.
type profileCmd struct {
	Command          CommandType     `json:"command"`
	Start            timeline.Month  `json:"start"`
	Currency         string          `json:"currency"`
	Occupation       string          `json:"occupation"`
	Location         string          `json:"location"`
	Salary           decimal.Decimal `json:"salary"`
	SalaryGrowth     float64         `json:"salaryGrowth"`
	CostOfLiving     float64         `json:"costOfLiving"`
	Filing           string          `json:"filing"`
	Savings          decimal.Decimal `json:"savings"`
	InvestmentReturn float64         `json:"investmentReturn"`
	Inflation        float64         `json:"inflation"`
	Expenses         []struct {
		Name      string          `json:"name"`
		Monthly   decimal.Decimal `json:"monthly"`
		Inflation float64         `json:"inflation"`
	} `json:"expenses"`
}

// Profile converts the decoded command into a Profile.
func (c profileCmd) Profile() (*Profile, error) {
	filing, err := ParseFilingStatus(c.Filing)
	if err != nil {
		return nil, err
	}
	p := &Profile{
		Currency:         c.Currency,
		Start:            c.Start,
		Occupation:       c.Occupation,
		Location:         c.Location,
		AnnualSalary:     M(c.Salary, c.Currency),
		SalaryGrowth:     Percent(c.SalaryGrowth),
		CostOfLiving:     c.CostOfLiving,
		Filing:           filing,
		StartingSavings:  M(c.Savings, c.Currency),
		InvestmentReturn: Percent(c.InvestmentReturn),
		Inflation:        Percent(c.Inflation),
	}
	for _, e := range c.Expenses {
		p.Expenses = append(p.Expenses, ExpenseCategory{
			Name:      e.Name,
			Monthly:   M(e.Monthly, c.Currency),
			Inflation: Percent(e.Inflation),
		})
	}
	return p, nil
}
