package flightplan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/flightplan/timeline"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// milestoneCmd is the decoding half of baseCmd.
type milestoneCmd struct {
	Command CommandType    `json:"command"`
	Month   timeline.Month `json:"month"`
	Memo    string         `json:"memo"`
}

func (c milestoneCmd) base() baseCmd {
	return baseCmd{Command: c.Command, Month: c.Month, Memo: c.Memo}
}

// DecodeScenario decodes a scenario from a stream of JSONL data: a "profile"
// line and any number of milestone lines, in any order. It returns the
// scenario with milestones chronologically sorted.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	s := NewScenario("")
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		if identifier.Command == CmdProfile {
			var temp profileCmd
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			profile, err := temp.Profile()
			if err != nil {
				return nil, err
			}
			s.profile = profile
			continue
		}

		milestone, err := decodeMilestone(identifier.Command, lineBytes)
		if err != nil {
			return nil, err
		}
		s.milestones = append(s.milestones, milestone)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read scenario stream: %w", err)
	}

	s.stableSort()
	return s, nil
}

// decodeMilestone decodes a single milestone line into its typed struct.
func decodeMilestone(command CommandType, lineBytes []byte) (Milestone, error) {
	switch command {
	case CmdMarriage:
		var temp struct {
			milestoneCmd
			WeddingCost      decimal.Decimal `json:"weddingCost"`
			SpouseIncome     decimal.Decimal `json:"spouseIncome"`
			SpouseSavings    decimal.Decimal `json:"spouseSavings"`
			LifestyleMonthly decimal.Decimal `json:"lifestyleMonthly"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Marriage{
			baseCmd:          temp.base(),
			WeddingCost:      M(temp.WeddingCost, ""),
			SpouseIncome:     M(temp.SpouseIncome, ""),
			SpouseSavings:    M(temp.SpouseSavings, ""),
			LifestyleMonthly: M(temp.LifestyleMonthly, ""),
		}, nil
	case CmdHome:
		var temp struct {
			milestoneCmd
			Price            decimal.Decimal `json:"price"`
			DownPayment      float64         `json:"downPayment"`
			Rate             float64         `json:"rate"`
			TermYears        int             `json:"termYears"`
			Appreciation     float64         `json:"appreciation"`
			MonthlyUtilities decimal.Decimal `json:"monthlyUtilities"`
			MonthlyHOA       decimal.Decimal `json:"monthlyHOA"`
			AnnualRenovation decimal.Decimal `json:"annualRenovation"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return HomePurchase{
			baseCmd:          temp.base(),
			Price:            M(temp.Price, ""),
			DownPayment:      Percent(temp.DownPayment),
			Rate:             Percent(temp.Rate),
			TermYears:        temp.TermYears,
			Appreciation:     Percent(temp.Appreciation),
			MonthlyUtilities: M(temp.MonthlyUtilities, ""),
			MonthlyHOA:       M(temp.MonthlyHOA, ""),
			AnnualRenovation: M(temp.AnnualRenovation, ""),
		}, nil
	case CmdVehicle:
		var temp struct {
			milestoneCmd
			Price            decimal.Decimal `json:"price"`
			DownPayment      float64         `json:"downPayment"`
			Rate             float64         `json:"rate"`
			TermYears        int             `json:"termYears"`
			Depreciation     float64         `json:"depreciation"`
			MonthlyInsurance decimal.Decimal `json:"monthlyInsurance"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return VehiclePurchase{
			baseCmd:          temp.base(),
			Price:            M(temp.Price, ""),
			DownPayment:      Percent(temp.DownPayment),
			Rate:             Percent(temp.Rate),
			TermYears:        temp.TermYears,
			Depreciation:     Percent(temp.Depreciation),
			MonthlyInsurance: M(temp.MonthlyInsurance, ""),
		}, nil
	case CmdChild:
		var temp struct {
			milestoneCmd
			MonthlyCost      decimal.Decimal `json:"monthlyCost"`
			EducationMonthly decimal.Decimal `json:"educationMonthly"`
			Years            int             `json:"years"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Child{
			baseCmd:          temp.base(),
			MonthlyCost:      M(temp.MonthlyCost, ""),
			EducationMonthly: M(temp.EducationMonthly, ""),
			Years:            temp.Years,
		}, nil
	case CmdEducation:
		var temp struct {
			milestoneCmd
			TotalCost      decimal.Decimal `json:"totalCost"`
			ProgramYears   int             `json:"programYears"`
			Institution    string          `json:"institution"`
			SalaryIncrease float64         `json:"salaryIncrease"`
			LoanRate       float64         `json:"loanRate"`
			LoanTermYears  int             `json:"loanTermYears"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Education{
			baseCmd:        temp.base(),
			TotalCost:      M(temp.TotalCost, ""),
			ProgramYears:   temp.ProgramYears,
			Institution:    temp.Institution,
			SalaryIncrease: Percent(temp.SalaryIncrease),
			LoanRate:       Percent(temp.LoanRate),
			LoanTermYears:  temp.LoanTermYears,
		}, nil
	case CmdOneTime:
		var temp struct {
			milestoneCmd
			Cost decimal.Decimal `json:"cost"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return OneTime{baseCmd: temp.base(), Cost: M(temp.Cost, "")}, nil
	case CmdRecurring:
		var temp struct {
			milestoneCmd
			Monthly  decimal.Decimal `json:"monthly"`
			Months   int             `json:"months"`
			Category string          `json:"category"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Recurring{
			baseCmd:  temp.base(),
			Monthly:  M(temp.Monthly, ""),
			Months:   temp.Months,
			Category: temp.Category,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported command %q in scenario stream", command)
	}
}

// EncodeMilestone writes a single milestone as one canonical JSONL line.
func EncodeMilestone(w io.Writer, m Milestone) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("could not marshal %s milestone: %w", m.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeScenario writes the scenario in its canonical JSONL form: the profile
// line first, then the milestones in chronological order.
func EncodeScenario(w io.Writer, s *Scenario) error {
	if s.profile == nil {
		return &ConfigError{Field: "profile"}
	}
	data, err := json.Marshal(*s.profile)
	if err != nil {
		return fmt.Errorf("could not marshal profile: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	for _, m := range s.milestones {
		if err := EncodeMilestone(w, m); err != nil {
			return err
		}
	}
	return nil
}
