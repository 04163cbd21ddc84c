package flightplan

import (
	"errors"

	"github.com/etnz/flightplan/timeline"
)

// CommandType is a typed string for identifying scenario commands.
type CommandType string

// Command types used for identifying the lines of a scenario file.
const (
	CmdProfile   CommandType = "profile"
	CmdMarriage  CommandType = "marry"
	CmdHome      CommandType = "home"
	CmdVehicle   CommandType = "car"
	CmdChild     CommandType = "child"
	CmdEducation CommandType = "education"
	CmdOneTime   CommandType = "onetime"
	CmdRecurring CommandType = "expense"
)

// Milestone defines the common interface for all dated life events that can
// be recorded in a scenario.
type Milestone interface {
	What() CommandType    // What returns the command type of the milestone (e.g., "home", "marry").
	When() timeline.Month // When returns the month the milestone takes effect.
	Rationale() string
	Equal(Milestone) bool
	Validate() error
}

type baseCmd struct {
	Command CommandType    `json:"command"`        // Command specifies the type of milestone (e.g., "home", "marry").
	Month   timeline.Month `json:"month"`          // Month is when the milestone takes effect.
	Memo    string         `json:"memo,omitempty"` // Memo provides an optional rationale for the milestone.
}

// What returns the command name for the milestone, which is used to identify its type.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the month of the milestone.
func (t baseCmd) When() timeline.Month { return t.Month }

// Rationale returns the memo associated with the milestone.
func (t baseCmd) Rationale() string { return t.Memo }

// Validate checks the base command fields.
func (t *baseCmd) Validate() error {
	if t.Month.IsZero() {
		return errors.New("milestone month is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("month", t.Month)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Marriage represents getting married: a one-time wedding cost, a spouse
// income stream, extra recurring household costs, and a switch to filing
// jointly from that month onward.
type Marriage struct {
	baseCmd
	WeddingCost      Money // one-time cost of the wedding.
	SpouseIncome     Money // spouse gross annual income, growing at the profile's salary growth.
	SpouseSavings    Money // spouse savings merged into net worth at the wedding.
	LifestyleMonthly Money // recurring household adjustment (insurance, lifestyle).
}

// NewMarriage creates a new Marriage milestone.
func NewMarriage(month timeline.Month, memo string, weddingCost, spouseIncome, spouseSavings, lifestyleMonthly Money) Marriage {
	return Marriage{
		baseCmd:          baseCmd{Command: CmdMarriage, Month: month, Memo: memo},
		WeddingCost:      weddingCost,
		SpouseIncome:     spouseIncome,
		SpouseSavings:    spouseSavings,
		LifestyleMonthly: lifestyleMonthly,
	}
}

func (t Marriage) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if t.WeddingCost.IsNegative() {
		return invalidf("wedding cost must not be negative, got %s", t.WeddingCost)
	}
	if t.SpouseIncome.IsNegative() {
		return invalidf("spouse income must not be negative, got %s", t.SpouseIncome)
	}
	if t.SpouseSavings.IsNegative() {
		return invalidf("spouse savings must not be negative, got %s", t.SpouseSavings)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Marriage.
func (t Marriage) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("weddingCost", t.WeddingCost.value)
	w.Optional("spouseIncome", t.SpouseIncome.value)
	w.Optional("spouseSavings", t.SpouseSavings.value)
	w.Optional("lifestyleMonthly", t.LifestyleMonthly.value)
	return w.MarshalJSON()
}

func (t Marriage) Equal(o Milestone) bool {
	v, ok := o.(Marriage)
	return ok && v.baseCmd == t.baseCmd &&
		v.WeddingCost.Equal(t.WeddingCost) &&
		v.SpouseIncome.Equal(t.SpouseIncome) &&
		v.SpouseSavings.Equal(t.SpouseSavings) &&
		v.LifestyleMonthly.Equal(t.LifestyleMonthly)
}

// HomePurchase represents buying a home: a one-time down payment, a mortgage
// amortized over the term, an appreciating asset, and recurring ownership
// costs.
type HomePurchase struct {
	baseCmd
	Price            Money   // purchase price of the home.
	DownPayment      Percent // down payment as a share of the price.
	Rate             Percent // annual mortgage interest rate.
	TermYears        int     // mortgage term in years.
	Appreciation     Percent // annual home appreciation rate.
	MonthlyUtilities Money   // recurring utilities.
	MonthlyHOA       Money   // recurring homeowner association dues.
	AnnualRenovation Money   // renovation budget, spread over the year.
}

// NewHomePurchase creates a new HomePurchase milestone.
func NewHomePurchase(month timeline.Month, memo string, price Money, downPayment, rate Percent, termYears int) HomePurchase {
	return HomePurchase{
		baseCmd:     baseCmd{Command: CmdHome, Month: month, Memo: memo},
		Price:       price,
		DownPayment: downPayment,
		Rate:        rate,
		TermYears:   termYears,
	}
}

func (t HomePurchase) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if !t.Price.IsPositive() {
		return invalidf("home price must be positive, got %s", t.Price)
	}
	if t.DownPayment < 0 || t.DownPayment > 100 {
		return invalidf("down payment must be between 0%% and 100%%, got %s", t.DownPayment)
	}
	if t.Rate.IsNegative() {
		return invalidf("mortgage rate must not be negative, got %s", t.Rate)
	}
	if t.TermYears <= 0 {
		return invalidf("mortgage term must be positive, got %d years", t.TermYears)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for HomePurchase.
func (t HomePurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("price", t.Price.value)
	w.Append("downPayment", float64(t.DownPayment))
	w.Append("rate", float64(t.Rate))
	w.Append("termYears", t.TermYears)
	w.Optional("appreciation", float64(t.Appreciation))
	w.Optional("monthlyUtilities", t.MonthlyUtilities.value)
	w.Optional("monthlyHOA", t.MonthlyHOA.value)
	w.Optional("annualRenovation", t.AnnualRenovation.value)
	return w.MarshalJSON()
}

func (t HomePurchase) Equal(o Milestone) bool {
	v, ok := o.(HomePurchase)
	return ok && v.baseCmd == t.baseCmd &&
		v.Price.Equal(t.Price) &&
		v.DownPayment.Equal(t.DownPayment) &&
		v.Rate.Equal(t.Rate) &&
		v.TermYears == t.TermYears &&
		v.Appreciation.Equal(t.Appreciation) &&
		v.MonthlyUtilities.Equal(t.MonthlyUtilities) &&
		v.MonthlyHOA.Equal(t.MonthlyHOA) &&
		v.AnnualRenovation.Equal(t.AnnualRenovation)
}

// VehiclePurchase represents buying a vehicle: a one-time down payment, an
// auto loan, a depreciating asset, and recurring insurance.
type VehiclePurchase struct {
	baseCmd
	Price            Money   // purchase price of the vehicle.
	DownPayment      Percent // down payment as a share of the price.
	Rate             Percent // annual loan interest rate.
	TermYears        int     // loan term in years.
	Depreciation     Percent // annual depreciation rate.
	MonthlyInsurance Money   // recurring insurance.
}

// NewVehiclePurchase creates a new VehiclePurchase milestone.
func NewVehiclePurchase(month timeline.Month, memo string, price Money, downPayment, rate Percent, termYears int) VehiclePurchase {
	return VehiclePurchase{
		baseCmd:     baseCmd{Command: CmdVehicle, Month: month, Memo: memo},
		Price:       price,
		DownPayment: downPayment,
		Rate:        rate,
		TermYears:   termYears,
	}
}

func (t VehiclePurchase) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if !t.Price.IsPositive() {
		return invalidf("vehicle price must be positive, got %s", t.Price)
	}
	if t.DownPayment < 0 || t.DownPayment > 100 {
		return invalidf("down payment must be between 0%% and 100%%, got %s", t.DownPayment)
	}
	if t.Rate.IsNegative() {
		return invalidf("loan rate must not be negative, got %s", t.Rate)
	}
	if t.TermYears <= 0 {
		return invalidf("loan term must be positive, got %d years", t.TermYears)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for VehiclePurchase.
func (t VehiclePurchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("price", t.Price.value)
	w.Append("downPayment", float64(t.DownPayment))
	w.Append("rate", float64(t.Rate))
	w.Append("termYears", t.TermYears)
	w.Optional("depreciation", float64(t.Depreciation))
	w.Optional("monthlyInsurance", t.MonthlyInsurance.value)
	return w.MarshalJSON()
}

func (t VehiclePurchase) Equal(o Milestone) bool {
	v, ok := o.(VehiclePurchase)
	return ok && v.baseCmd == t.baseCmd &&
		v.Price.Equal(t.Price) &&
		v.DownPayment.Equal(t.DownPayment) &&
		v.Rate.Equal(t.Rate) &&
		v.TermYears == t.TermYears &&
		v.Depreciation.Equal(t.Depreciation) &&
		v.MonthlyInsurance.Equal(t.MonthlyInsurance)
}

// Child represents a new child: recurring child costs and optional education
// savings over the years of support.
type Child struct {
	baseCmd
	MonthlyCost      Money // recurring cost of raising the child.
	EducationMonthly Money // recurring education savings contribution.
	Years            int   // years of support; 0 defaults to 18.
}

// NewChild creates a new Child milestone.
func NewChild(month timeline.Month, memo string, monthlyCost, educationMonthly Money) Child {
	return Child{
		baseCmd:          baseCmd{Command: CmdChild, Month: month, Memo: memo},
		MonthlyCost:      monthlyCost,
		EducationMonthly: educationMonthly,
	}
}

// years returns the support duration, defaulting to 18 years.
func (t Child) years() int {
	if t.Years == 0 {
		return 18
	}
	return t.Years
}

func (t Child) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if t.MonthlyCost.IsNegative() {
		return invalidf("child monthly cost must not be negative, got %s", t.MonthlyCost)
	}
	if t.EducationMonthly.IsNegative() {
		return invalidf("education savings must not be negative, got %s", t.EducationMonthly)
	}
	if t.Years < 0 {
		return invalidf("years of support must not be negative, got %d", t.Years)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Child.
func (t Child) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("monthlyCost", t.MonthlyCost.value)
	w.Optional("educationMonthly", t.EducationMonthly.value)
	w.Optional("years", t.Years)
	return w.MarshalJSON()
}

func (t Child) Equal(o Milestone) bool {
	v, ok := o.(Child)
	return ok && v.baseCmd == t.baseCmd &&
		v.MonthlyCost.Equal(t.MonthlyCost) &&
		v.EducationMonthly.Equal(t.EducationMonthly) &&
		v.Years == t.Years
}

// Education represents going back to school: tuition spread over the program
// (or financed by a student loan), and a salary increase upon graduation.
type Education struct {
	baseCmd
	TotalCost      Money   // total cost of the program.
	ProgramYears   int     // duration of the program in years.
	Institution    string  // optional institution name.
	SalaryIncrease Percent // salary increase applied at graduation.
	LoanRate       Percent // student loan rate; only used with LoanTermYears.
	LoanTermYears  int     // student loan term; 0 pays tuition out of cash flow.
}

// NewEducation creates a new Education milestone.
func NewEducation(month timeline.Month, memo string, totalCost Money, programYears int, salaryIncrease Percent) Education {
	return Education{
		baseCmd:        baseCmd{Command: CmdEducation, Month: month, Memo: memo},
		TotalCost:      totalCost,
		ProgramYears:   programYears,
		SalaryIncrease: salaryIncrease,
	}
}

func (t Education) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if t.TotalCost.IsNegative() {
		return invalidf("education cost must not be negative, got %s", t.TotalCost)
	}
	if t.ProgramYears <= 0 {
		return invalidf("program duration must be positive, got %d years", t.ProgramYears)
	}
	if t.LoanTermYears < 0 {
		return invalidf("loan term must not be negative, got %d years", t.LoanTermYears)
	}
	if t.LoanRate.IsNegative() {
		return invalidf("loan rate must not be negative, got %s", t.LoanRate)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Education.
func (t Education) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("totalCost", t.TotalCost.value)
	w.Append("programYears", t.ProgramYears)
	w.Optional("institution", t.Institution)
	w.Optional("salaryIncrease", float64(t.SalaryIncrease))
	w.Optional("loanRate", float64(t.LoanRate))
	w.Optional("loanTermYears", t.LoanTermYears)
	return w.MarshalJSON()
}

func (t Education) Equal(o Milestone) bool {
	v, ok := o.(Education)
	return ok && v.baseCmd == t.baseCmd &&
		v.TotalCost.Equal(t.TotalCost) &&
		v.ProgramYears == t.ProgramYears &&
		v.Institution == t.Institution &&
		v.SalaryIncrease.Equal(t.SalaryIncrease) &&
		v.LoanRate.Equal(t.LoanRate) &&
		v.LoanTermYears == t.LoanTermYears
}

// OneTime represents a single dated cost with no recurring effect.
type OneTime struct {
	baseCmd
	Cost Money // one-time cost.
}

// NewOneTime creates a new OneTime milestone.
func NewOneTime(month timeline.Month, memo string, cost Money) OneTime {
	return OneTime{
		baseCmd: baseCmd{Command: CmdOneTime, Month: month, Memo: memo},
		Cost:    cost,
	}
}

func (t OneTime) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if t.Cost.IsNegative() {
		return invalidf("one-time cost must not be negative, got %s", t.Cost)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for OneTime.
func (t OneTime) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("cost", t.Cost.value)
	return w.MarshalJSON()
}

func (t OneTime) Equal(o Milestone) bool {
	v, ok := o.(OneTime)
	return ok && v.baseCmd == t.baseCmd && v.Cost.Equal(t.Cost)
}

// Recurring represents a recurring monthly cash-flow delta active over a
// bounded window. A negative amount models extra income rather than an
// expense.
type Recurring struct {
	baseCmd
	Monthly  Money  // monthly delta; negative means extra income.
	Months   int    // duration of the window; 0 means until the end of the horizon.
	Category string // reporting category; defaults to the memo.
}

// NewRecurring creates a new Recurring milestone.
func NewRecurring(month timeline.Month, memo string, monthly Money, months int) Recurring {
	return Recurring{
		baseCmd: baseCmd{Command: CmdRecurring, Month: month, Memo: memo},
		Monthly: monthly,
		Months:  months,
	}
}

func (t Recurring) Validate() error {
	if err := t.baseCmd.Validate(); err != nil {
		return err
	}
	if t.Monthly.IsZero() {
		return invalidf("recurring amount must not be zero")
	}
	if t.Months < 0 {
		return invalidf("recurring duration must not be negative, got %d months", t.Months)
	}
	return nil
}

// category returns the reporting category, defaulting to the memo then to a
// generic label.
func (t Recurring) category() string {
	if t.Category != "" {
		return t.Category
	}
	if t.Memo != "" {
		return t.Memo
	}
	return "Other"
}

// MarshalJSON implements the json.Marshaler interface for Recurring.
func (t Recurring) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("monthly", t.Monthly.value)
	w.Optional("months", t.Months)
	w.Optional("category", t.Category)
	return w.MarshalJSON()
}

func (t Recurring) Equal(o Milestone) bool {
	v, ok := o.(Recurring)
	return ok && v.baseCmd == t.baseCmd &&
		v.Monthly.Equal(t.Monthly) &&
		v.Months == t.Months &&
		v.Category == t.Category
}
