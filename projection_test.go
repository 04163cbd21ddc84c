package flightplan

import (
	"errors"
	"reflect"
	"testing"

	"github.com/etnz/flightplan/timeline"
)

// baseProfile returns a deliberately flat profile: no growth, no inflation,
// no investment return and no taxes, so cash accumulates linearly.
func baseProfile() *Profile {
	return &Profile{
		Currency:        "USD",
		Start:           timeline.MustParse("2026-01"),
		AnnualSalary:    USD(60000), // 5000 a month.
		StartingSavings: USD(10000),
		Expenses: []ExpenseCategory{
			{Name: "Rent", Monthly: USD(3000)},
			{Name: "Groceries", Monthly: USD(1000)},
		},
	}
}

// baseScenario builds a scenario around baseProfile.
func baseScenario(t *testing.T, milestones ...Milestone) *Scenario {
	t.Helper()
	s := NewScenario("test")
	if err := s.SetProfile(baseProfile()); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	if err := s.Append(milestones...); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	return s
}

func TestProject_LinearAccumulation(t *testing.T) {
	// With all rates at zero, savings accumulate linearly:
	// start + k * (income - expenses).
	r, err := baseScenario(t).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	if got := len(r.Points); got != 12 {
		t.Fatalf("Project() produced %d points, want 12", got)
	}
	for k, p := range r.Points {
		if !p.Income.Equal(USD(5000)) {
			t.Errorf("month %d income is %s, want %s", k, p.Income, USD(5000))
		}
		if !p.Expenses.Equal(USD(4000)) {
			t.Errorf("month %d expenses are %s, want %s", k, p.Expenses, USD(4000))
		}
		if !p.Taxes.IsZero() {
			t.Errorf("month %d taxes are %s, want zero without a filing status", k, p.Taxes)
		}
		if !p.CashFlow.Equal(USD(1000)) {
			t.Errorf("month %d cash flow is %s, want %s", k, p.CashFlow, USD(1000))
		}
		want := USD(10000).Add(USD(1000).MulInt(k + 1))
		if !p.Savings.Equal(want) {
			t.Errorf("month %d savings are %s, want %s", k, p.Savings, want)
		}
	}
	if got, want := r.Final().Savings, USD(22000); !got.Equal(want) {
		t.Errorf("final savings are %s, want %s", got, want)
	}
}

func TestProject_OneTimeCostShiftsTail(t *testing.T) {
	// A one-time cost C on month k lowers every point from k onward by
	// exactly C, and leaves earlier points untouched.
	base, err := baseScenario(t).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	on := timeline.MustParse("2026-06") // month index 5.
	bumped, err := baseScenario(t, NewOneTime(on, "Trip", USD(5000))).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	for k := range base.Points {
		got, want := bumped.Points[k].NetWorth, base.Points[k].NetWorth
		if k >= 5 {
			want = want.Sub(USD(5000))
		}
		if !got.Equal(want) {
			t.Errorf("month %d net worth is %s, want %s", k, got, want)
		}
	}
	if got := bumped.Points[5].OneTime; !got.Equal(USD(5000)) {
		t.Errorf("month 5 one-time cost is %s, want %s", got, USD(5000))
	}
}

func TestProject_RecurringWindow(t *testing.T) {
	// A recurring delta over [k, k+m) affects exactly m months.
	on := timeline.MustParse("2026-04") // month index 3.
	r, err := baseScenario(t, NewRecurring(on, "Gym", USD(200), 3)).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	for k, p := range r.Points {
		want := USD(4000)
		if k >= 3 && k < 6 {
			want = USD(4200)
		}
		if !p.Expenses.Equal(want) {
			t.Errorf("month %d expenses are %s, want %s", k, p.Expenses, want)
		}
	}
}

func TestProject_RecurringIncome(t *testing.T) {
	// A negative recurring amount is extra income: it raises the cash flow.
	on := timeline.MustParse("2026-01")
	r, err := baseScenario(t, NewRecurring(on, "Side gig", USD(-500), 0)).Project(6)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	for k, p := range r.Points {
		if !p.CashFlow.Equal(USD(1500)) {
			t.Errorf("month %d cash flow is %s, want %s", k, p.CashFlow, USD(1500))
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	s := baseScenario(t,
		NewOneTime(timeline.MustParse("2026-03"), "Laptop", USD(2000)),
		NewRecurring(timeline.MustParse("2026-02"), "Gym", USD(80), 6),
	)
	first, err := s.Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	second, err := s.Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Project() is not idempotent: two runs on the same scenario differ")
	}
}

func TestProject_SalaryGrowth(t *testing.T) {
	p := baseProfile()
	p.SalaryGrowth = 10
	s := NewScenario("growth")
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	r, err := s.Project(24)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	// The raise lands on the first month of the second year.
	if got := r.Points[11].Income; !got.Equal(USD(5000)) {
		t.Errorf("month 11 income is %s, want %s", got, USD(5000))
	}
	if got := r.Points[12].Income; !got.Equal(USD(5500)) {
		t.Errorf("month 12 income is %s, want %s", got, USD(5500))
	}
}

func TestProject_ExpenseInflation(t *testing.T) {
	p := baseProfile()
	p.Inflation = 2
	p.Expenses = []ExpenseCategory{
		{Name: "Rent", Monthly: USD(3000), Inflation: 5}, // per-category override.
		{Name: "Groceries", Monthly: USD(1000)},          // falls back to the profile rate.
	}
	s := NewScenario("inflation")
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	r, err := s.Project(13)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	p12 := r.Points[12]
	if got, want := p12.Categories["Rent"], USD(3150); !got.Equal(want) {
		t.Errorf("month 12 rent is %s, want %s", got, want)
	}
	if got, want := p12.Categories["Groceries"], USD(1020); !got.Equal(want) {
		t.Errorf("month 12 groceries are %s, want %s", got, want)
	}
}

func TestProject_CostOfLiving(t *testing.T) {
	p := baseProfile()
	p.CostOfLiving = 1.2
	s := NewScenario("col")
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	r, err := s.Project(1)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	if got, want := r.Points[0].Income, USD(6000); !got.Equal(want) {
		t.Errorf("income with location multiplier is %s, want %s", got, want)
	}
}

func TestProject_InvestmentReturnCompounds(t *testing.T) {
	p := &Profile{
		Currency:         "USD",
		Start:            timeline.MustParse("2026-01"),
		StartingSavings:  USD(120000),
		InvestmentReturn: 12, // 1% a month keeps expected values readable.
	}
	s := NewScenario("compound")
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	r, err := s.Project(2)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}
	if got, want := r.Points[0].Savings, USD(121200); !got.Equal(want) {
		t.Errorf("month 0 savings are %s, want %s", got, want)
	}
	if got, want := r.Points[1].Savings, USD(122412); !got.Equal(want) {
		t.Errorf("month 1 savings are %s, want %s", got, want)
	}
}

func TestProject_Marriage(t *testing.T) {
	on := timeline.MustParse("2026-07") // month index 6.
	wedding := NewMarriage(on, "", USD(10000), USD(24000), USD(5000), USD(300))
	r, err := baseScenario(t, wedding).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	before, after := r.Points[5], r.Points[6]
	if !before.Income.Equal(USD(5000)) {
		t.Errorf("income before the wedding is %s, want %s", before.Income, USD(5000))
	}
	// Spouse income adds 2000 a month from the wedding onward.
	if !after.Income.Equal(USD(7000)) {
		t.Errorf("income after the wedding is %s, want %s", after.Income, USD(7000))
	}
	// One-time: wedding cost minus merged spouse savings.
	if got, want := after.OneTime, USD(5000); !got.Equal(want) {
		t.Errorf("wedding month one-time is %s, want %s", got, want)
	}
	if got, want := after.Categories["Household"], USD(300); !got.Equal(want) {
		t.Errorf("household adjustment is %s, want %s", got, want)
	}
}

func TestProject_HomePurchase(t *testing.T) {
	on := timeline.MustParse("2026-07")                     // month index 6.
	home := NewHomePurchase(on, "", USD(300000), 20, 0, 30) // zero rate keeps amounts exact.
	r, err := baseScenario(t, home).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	p := r.Points[6]
	if got, want := p.OneTime, USD(60000); !got.Equal(want) {
		t.Errorf("down payment is %s, want %s", got, want)
	}
	if got, want := p.Assets, USD(300000); !got.Equal(want) {
		t.Errorf("home asset is %s, want %s", got, want)
	}
	// 240000 principal over 360 zero-rate payments is 666.67 a month; the
	// first payment is already made within the purchase month.
	payment := USD(240000).DivInt(360)
	if got, want := p.Categories["Mortgage"], payment; !got.Equal(want) {
		t.Errorf("mortgage payment is %s, want %s", got, want)
	}
	if got, want := p.Liabilities, USD(240000).Sub(payment); !got.Equal(want) {
		t.Errorf("mortgage balance is %s, want %s", got, want)
	}
}

func TestProject_ChildWindow(t *testing.T) {
	on := timeline.MustParse("2026-03") // month index 2.
	child := NewChild(on, "", USD(800), USD(200))
	child.Years = 1 // keep the window inside the horizon.
	r, err := baseScenario(t, child).Project(20)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	for k, p := range r.Points {
		want := USD(4000)
		if k >= 2 && k < 14 {
			want = USD(5000)
		}
		if !p.Expenses.Equal(want) {
			t.Errorf("month %d expenses are %s, want %s", k, p.Expenses, want)
		}
	}
}

func TestProject_EducationBoost(t *testing.T) {
	on := timeline.MustParse("2026-01")
	degree := NewEducation(on, "", USD(24000), 1, 20)
	r, err := baseScenario(t, degree).Project(24)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	// Tuition is paid out of cash flow during the program.
	if got, want := r.Points[0].Categories["Tuition"], USD(2000); !got.Equal(want) {
		t.Errorf("tuition is %s, want %s", got, want)
	}
	// Graduation raises the salary by 20%.
	if got, want := r.Points[12].Income, USD(6000); !got.Equal(want) {
		t.Errorf("post-graduation income is %s, want %s", got, want)
	}
	if _, ok := r.Points[12].Categories["Tuition"]; ok {
		t.Error("tuition is still charged after graduation")
	}
}

func TestProject_Errors(t *testing.T) {
	t.Run("missing profile", func(t *testing.T) {
		_, err := NewScenario("empty").Project(12)
		var cfg *ConfigError
		if !errors.As(err, &cfg) {
			t.Fatalf("Project() error is %v, want a ConfigError", err)
		}
	})
	t.Run("non-positive horizon", func(t *testing.T) {
		_, err := baseScenario(t).Project(0)
		var inv *ValidationError
		if !errors.As(err, &inv) {
			t.Fatalf("Project() error is %v, want a ValidationError", err)
		}
	})
	t.Run("milestone outside horizon", func(t *testing.T) {
		s := baseScenario(t, NewOneTime(timeline.MustParse("2030-01"), "", USD(100)))
		_, err := s.Project(12)
		var inv *ValidationError
		if !errors.As(err, &inv) {
			t.Fatalf("Project() error is %v, want a ValidationError", err)
		}
	})
}

func TestResult_Accessors(t *testing.T) {
	r, err := baseScenario(t, NewOneTime(timeline.MustParse("2026-06"), "", USD(50000))).Project(12)
	if err != nil {
		t.Fatalf("Project() returned an unexpected error: %v", err)
	}

	if p, ok := r.At(timeline.MustParse("2026-06")); !ok || p.Month != timeline.MustParse("2026-06") {
		t.Errorf("At() returned %v, %v", p.Month, ok)
	}
	if _, ok := r.At(timeline.MustParse("2030-01")); ok {
		t.Error("At() accepted a month outside the projection")
	}
	// The large cost makes the net worth trough right where it lands.
	if got := r.Lowest().Month; got != timeline.MustParse("2026-06") {
		t.Errorf("Lowest() month is %s, want 2026-06", got)
	}
	if got := r.TotalTaxes(); !got.IsZero() {
		t.Errorf("TotalTaxes() is %s, want zero without a filing status", got)
	}
	// 1000 kept out of 5000 earned, every month.
	if got := r.SavingsRate(); !got.Equal(Percent(100 * (12000 - 50000) / 60000.0)) {
		t.Errorf("SavingsRate() is %s", got)
	}
}

func TestComparison(t *testing.T) {
	frugal := baseScenario(t)
	spender := baseScenario(t, NewOneTime(timeline.MustParse("2026-06"), "Boat", USD(30000)))

	c, err := NewComparison(12, frugal, spender)
	if err != nil {
		t.Fatalf("NewComparison() returned an unexpected error: %v", err)
	}
	if got := c.Best(); got != c.Results[0] {
		t.Errorf("Best() picked %q, want the frugal plan", got.Name)
	}
	if got := c.Safest(); got != c.Results[0] {
		t.Errorf("Safest() picked %q, want the frugal plan", got.Name)
	}
}

func TestProject_StateTaxes(t *testing.T) {
	// Identical profiles, one in a no-income-tax state and one in
	// California: the projections differ by exactly the state tax,
	// 60000 * 13.3% / 12 = 665 a month.
	project := func(location string) *Result {
		t.Helper()
		p := baseProfile()
		p.Filing = Single
		p.Location = location
		s := NewScenario(location)
		if err := s.SetProfile(p); err != nil {
			t.Fatalf("SetProfile() returned an unexpected error: %v", err)
		}
		r, err := s.Project(12)
		if err != nil {
			t.Fatalf("Project() returned an unexpected error: %v", err)
		}
		return r
	}

	texas := project("Austin, TX")
	california := project("Sacramento, CA")

	for k := range texas.Points {
		delta := california.Points[k].Taxes.Sub(texas.Points[k].Taxes)
		if !delta.Equal(USD(665)) {
			t.Errorf("month %d state tax is %s, want %s", k, delta, USD(665))
		}
	}
	if got, want := california.TotalTaxes().Sub(texas.TotalTaxes()), USD(7980); !got.Equal(want) {
		t.Errorf("annual state tax is %s, want %s", got, want)
	}
}

func TestNewComparison_Empty(t *testing.T) {
	if _, err := NewComparison(12); err == nil {
		t.Error("NewComparison() without scenarios should fail")
	}
}
