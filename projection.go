package flightplan

import (
	"github.com/etnz/flightplan/timeline"
)

// Point is one month of a projection: the derived income, expenses, taxes,
// cash flow and balance-sheet values. It is immutable once computed.
type Point struct {
	Month       timeline.Month
	Income      Money            // gross income for the month.
	Taxes       Money            // federal and payroll taxes for the month.
	Expenses    Money            // recurring expenses for the month, taxes excluded.
	OneTime     Money            // net one-time costs hitting this month.
	CashFlow    Money            // Income - Taxes - Expenses - OneTime.
	Savings     Money            // accumulated savings after this month.
	Assets      Money            // value of non-cash assets (home, vehicle).
	Liabilities Money            // outstanding loan balances.
	NetWorth    Money            // Savings + Assets - Liabilities.
	Categories  map[string]Money // per-category expense breakdown.
}

// Result is the ordered month-by-month series a projection produces. It is
// recomputed from scratch on every parameter change and owned by the caller.
type Result struct {
	Name     string         // scenario name the result was computed from.
	Currency string         // reporting currency.
	Span     timeline.Range // months the projection covers.
	Points   []Point        // one point per month, in chronological order.
}

// Final returns the last point of the projection.
func (r *Result) Final() Point { return r.Points[len(r.Points)-1] }

// At returns the point for a given month.
func (r *Result) At(m timeline.Month) (Point, bool) {
	if !r.Span.Contains(m) {
		return Point{}, false
	}
	return r.Points[m.Sub(r.Span.From)], true
}

// Lowest returns the point with the lowest net worth, the most fragile month
// of the plan.
func (r *Result) Lowest() Point {
	low := r.Points[0]
	for _, p := range r.Points[1:] {
		if p.NetWorth.LessThan(low.NetWorth) {
			low = p
		}
	}
	return low
}

// TotalTaxes returns the taxes accumulated over the whole projection.
func (r *Result) TotalTaxes() Money {
	total := M(0, r.Currency)
	for _, p := range r.Points {
		total = total.Add(p.Taxes)
	}
	return total
}

// SavingsRate returns the share of gross income kept as positive cash flow
// over the whole projection.
func (r *Result) SavingsRate() Percent {
	income, saved := M(0, r.Currency), M(0, r.Currency)
	for _, p := range r.Points {
		income = income.Add(p.Income)
		saved = saved.Add(p.CashFlow)
	}
	if income.IsZero() {
		return 0
	}
	return Percent(100 * saved.AsFloat() / income.AsFloat())
}

// categoryState tracks one recurring expense category and its own inflation.
type categoryState struct {
	name      string
	monthly   Money
	inflation Percent
}

// loanState tracks an opened loan and the number of payments already made.
type loanState struct {
	loan Loan
	paid int
}

// assetState tracks one asset line and its annual growth rate.
type assetState struct {
	label string
	value Money
	rate  Percent
}

// streamState tracks one extra income stream, growing like the salary.
type streamState struct {
	annual Money
	label  string
}

// Project computes the month-by-month projection of the scenario over the
// given horizon. It is a pure function of the scenario: no side effects, and
// running it twice yields identical results.
//
// It fails with a ConfigError when the profile is missing or incomplete, and
// with a ValidationError when the horizon is not positive or a milestone
// falls outside of it.
func (s *Scenario) Project(months int) (*Result, error) {
	if s.profile == nil {
		return nil, &ConfigError{Field: "profile"}
	}
	if err := s.profile.Validate(); err != nil {
		return nil, err
	}
	if months <= 0 {
		return nil, invalidf("projection horizon must be positive, got %d months", months)
	}

	p := s.profile
	span := timeline.Horizon(p.Start, months)
	for _, ms := range s.milestones {
		if err := ms.Validate(); err != nil {
			return nil, err
		}
		if !span.Contains(ms.When()) {
			return nil, invalidf("%s milestone on %s is outside the projection horizon %s",
				ms.What(), ms.When(), span.Identifier())
		}
	}

	j := newJournal(s)
	cur := p.Currency

	// Mutable engine state, advanced one month at a time.
	salary := p.AnnualSalary.Scale(p.costOfLiving())
	filing := p.Filing
	savings := p.StartingSavings
	categories := make([]categoryState, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		inflation := e.Inflation
		if inflation == 0 {
			inflation = p.Inflation
		}
		categories = append(categories, categoryState{name: e.Name, monthly: e.Monthly, inflation: inflation})
	}
	var (
		flows   []recurringFlow
		streams []streamState
		loans   []*loanState
		assets  []*assetState
	)

	result := &Result{Name: s.name, Currency: cur, Span: span, Points: make([]Point, 0, months)}

	k := 0 // month index from the start of the horizon.
	for m := range span.All() {
		// Annual growth is applied at each year boundary, so month 12 is the
		// first month of the second salary year.
		if k > 0 && k%12 == 0 {
			salary = salary.GrowBy(p.SalaryGrowth)
			for i := range streams {
				streams[i].annual = streams[i].annual.GrowBy(p.SalaryGrowth)
			}
			for i := range categories {
				categories[i].monthly = categories[i].monthly.GrowBy(categories[i].inflation)
			}
			for _, a := range assets {
				a.value = a.value.GrowBy(a.rate)
			}
		}

		// Activate this month's effects.
		oneTime := M(0, cur)
		for _, e := range j.effects {
			switch v := e.(type) {
			case oneTimeCost:
				if v.on == m {
					oneTime = oneTime.Add(v.amount)
				}
			case incomeStream:
				if v.start == m {
					streams = append(streams, streamState{annual: v.annual, label: v.label})
				}
			case recurringFlow:
				if v.start == m {
					flows = append(flows, v)
				}
			case salaryBoost:
				if v.on == m {
					salary = salary.GrowBy(v.pct)
				}
			case filingChange:
				if v.on == m {
					filing = v.filing
				}
			case loanOpen:
				if v.on == m {
					loans = append(loans, &loanState{loan: v.loan})
				}
			case assetOpen:
				if v.on == m {
					assets = append(assets, &assetState{label: v.label, value: v.value, rate: v.rate})
				}
			}
		}

		// Income.
		annualGross := salary
		for _, st := range streams {
			annualGross = annualGross.Add(st.annual)
		}
		income := annualGross.DivInt(12)

		// Taxes, derived from the current annual gross income.
		taxes := ComputeTaxes(annualGross, filing, p.Location).Total().DivInt(12)

		// Expenses by category.
		pointCategories := make(map[string]Money, len(categories)+len(flows)+len(loans))
		expenses := M(0, cur)
		addExpense := func(category string, amount Money) {
			expenses = expenses.Add(amount)
			if prev, ok := pointCategories[category]; ok {
				amount = prev.Add(amount)
			}
			pointCategories[category] = amount
		}
		for _, c := range categories {
			addExpense(c.name, c.monthly)
		}
		for _, f := range flows {
			if f.active(m) {
				addExpense(f.category, f.monthly)
			}
		}
		liabilities := M(0, cur)
		for _, l := range loans {
			if l.paid < l.loan.Term {
				addExpense(l.loan.Label, l.loan.Payment())
				l.paid++
			}
			liabilities = liabilities.Add(l.loan.BalanceAfter(l.paid))
		}

		// Cash flow and balance sheet.
		cashFlow := income.Sub(taxes).Sub(expenses).Sub(oneTime)
		savings = savings.GrowBy(p.InvestmentReturn.Monthly()).Add(cashFlow)
		assetValue := M(0, cur)
		for _, a := range assets {
			assetValue = assetValue.Add(a.value)
		}

		result.Points = append(result.Points, Point{
			Month:       m,
			Income:      income,
			Taxes:       taxes,
			Expenses:    expenses,
			OneTime:     oneTime,
			CashFlow:    cashFlow,
			Savings:     savings,
			Assets:      assetValue,
			Liabilities: liabilities,
			NetWorth:    savings.Add(assetValue).Sub(liabilities),
			Categories:  pointCategories,
		})
		k++
	}
	return result, nil
}
