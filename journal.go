package flightplan

import (
	"sort"

	"github.com/etnz/flightplan/timeline"
)

// Default rates applied when a milestone does not specify them.
const (
	defaultHomeAppreciation    = Percent(3)
	defaultVehicleDepreciation = Percent(10)
)

// effect represents a single, atomic consequence of a milestone on the
// projection. It is the lowest-level fact the engine iterates over.
type effect interface {
	from() timeline.Month
}

// oneTimeCost debits (or, when negative, credits) the cash flow once.
type oneTimeCost struct {
	on     timeline.Month
	amount Money
	label  string
}

func (e oneTimeCost) from() timeline.Month { return e.on }

// recurringFlow debits the cash flow every month of its window. A zero
// 'until' keeps the flow active to the end of the horizon.
type recurringFlow struct {
	start    timeline.Month
	until    timeline.Month // exclusive; zero means open-ended.
	monthly  Money
	category string
}

func (e recurringFlow) from() timeline.Month { return e.start }

// active reports whether the flow applies to the given month.
func (e recurringFlow) active(m timeline.Month) bool {
	if m.Before(e.start) {
		return false
	}
	return e.until.IsZero() || m.Before(e.until)
}

// incomeStream credits a growing annual income from its start month onward.
type incomeStream struct {
	start  timeline.Month
	annual Money
	label  string
}

func (e incomeStream) from() timeline.Month { return e.start }

// salaryBoost permanently raises the salary by a rate.
type salaryBoost struct {
	on  timeline.Month
	pct Percent
}

func (e salaryBoost) from() timeline.Month { return e.on }

// filingChange switches the tax filing status from its month onward.
type filingChange struct {
	on     timeline.Month
	filing FilingStatus
}

func (e filingChange) from() timeline.Month { return e.on }

// loanOpen starts an amortized loan: a liability plus a recurring payment
// for the duration of the term.
type loanOpen struct {
	on   timeline.Month
	loan Loan
}

func (e loanOpen) from() timeline.Month { return e.on }

// assetOpen adds an asset line growing (or shrinking) at an annual rate.
type assetOpen struct {
	on    timeline.Month
	label string
	value Money
	rate  Percent // negative for depreciating assets.
}

func (e assetOpen) from() timeline.Month { return e.on }

// journal holds the chronologically sorted list of atomic effects lowered
// from a scenario's milestones.
type journal struct {
	effects []effect
}

// newJournal lowers every milestone of the scenario into its atomic effects.
func newJournal(s *Scenario) *journal {
	j := &journal{}
	for _, ms := range s.milestones {
		on := ms.When()
		switch v := ms.(type) {
		case Marriage:
			if !v.WeddingCost.IsZero() {
				j.add(oneTimeCost{on: on, amount: v.WeddingCost, label: "Wedding"})
			}
			if !v.SpouseSavings.IsZero() {
				j.add(oneTimeCost{on: on, amount: v.SpouseSavings.Neg(), label: "Spouse savings"})
			}
			if !v.SpouseIncome.IsZero() {
				j.add(incomeStream{start: on, annual: v.SpouseIncome, label: "Spouse income"})
			}
			if !v.LifestyleMonthly.IsZero() {
				j.add(recurringFlow{start: on, monthly: v.LifestyleMonthly, category: "Household"})
			}
			// Taxes stay disabled for profiles that do not model them.
			if s.profile != nil && s.profile.Filing != FilingNone {
				j.add(filingChange{on: on, filing: MarriedJointly})
			}
		case HomePurchase:
			down := v.Price.Scale(v.DownPayment.Rate())
			if !down.IsZero() {
				j.add(oneTimeCost{on: on, amount: down, label: "Down payment"})
			}
			principal := v.Price.Sub(down)
			if principal.IsPositive() {
				j.add(loanOpen{on: on, loan: Loan{
					Label:     "Mortgage",
					Principal: principal,
					Rate:      v.Rate,
					Term:      v.TermYears * 12,
				}})
			}
			appreciation := v.Appreciation
			if appreciation == 0 {
				appreciation = defaultHomeAppreciation
			}
			j.add(assetOpen{on: on, label: "Home", value: v.Price, rate: appreciation})
			if !v.MonthlyUtilities.IsZero() {
				j.add(recurringFlow{start: on, monthly: v.MonthlyUtilities, category: "Utilities"})
			}
			if !v.MonthlyHOA.IsZero() {
				j.add(recurringFlow{start: on, monthly: v.MonthlyHOA, category: "HOA"})
			}
			if !v.AnnualRenovation.IsZero() {
				j.add(recurringFlow{start: on, monthly: v.AnnualRenovation.DivInt(12), category: "Renovation"})
			}
		case VehiclePurchase:
			down := v.Price.Scale(v.DownPayment.Rate())
			if !down.IsZero() {
				j.add(oneTimeCost{on: on, amount: down, label: "Down payment"})
			}
			principal := v.Price.Sub(down)
			if principal.IsPositive() {
				j.add(loanOpen{on: on, loan: Loan{
					Label:     "Auto loan",
					Principal: principal,
					Rate:      v.Rate,
					Term:      v.TermYears * 12,
				}})
			}
			depreciation := v.Depreciation
			if depreciation == 0 {
				depreciation = defaultVehicleDepreciation
			}
			j.add(assetOpen{on: on, label: "Vehicle", value: v.Price, rate: -depreciation})
			if !v.MonthlyInsurance.IsZero() {
				j.add(recurringFlow{start: on, monthly: v.MonthlyInsurance, category: "Insurance"})
			}
		case Child:
			until := on.Add(v.years() * 12)
			if !v.MonthlyCost.IsZero() {
				j.add(recurringFlow{start: on, until: until, monthly: v.MonthlyCost, category: "Children"})
			}
			if !v.EducationMonthly.IsZero() {
				j.add(recurringFlow{start: on, until: until, monthly: v.EducationMonthly, category: "Education savings"})
			}
		case Education:
			graduation := on.Add(v.ProgramYears * 12)
			if v.LoanTermYears > 0 {
				// Tuition is financed: the loan starts with repayment at graduation.
				j.add(loanOpen{on: graduation, loan: Loan{
					Label:     "Student loan",
					Principal: v.TotalCost,
					Rate:      v.LoanRate,
					Term:      v.LoanTermYears * 12,
				}})
			} else if !v.TotalCost.IsZero() {
				j.add(recurringFlow{
					start:    on,
					until:    graduation,
					monthly:  v.TotalCost.DivInt(v.ProgramYears * 12),
					category: "Tuition",
				})
			}
			if v.SalaryIncrease != 0 {
				j.add(salaryBoost{on: graduation, pct: v.SalaryIncrease})
			}
		case OneTime:
			j.add(oneTimeCost{on: on, amount: v.Cost, label: v.Memo})
		case Recurring:
			var until timeline.Month
			if v.Months > 0 {
				until = on.Add(v.Months)
			}
			j.add(recurringFlow{start: on, until: until, monthly: v.Monthly, category: v.category()})
		}
	}
	sort.SliceStable(j.effects, func(i, k int) bool {
		return j.effects[i].from().Before(j.effects[k].from())
	})
	return j
}

func (j *journal) add(e effect) { j.effects = append(j.effects, e) }
