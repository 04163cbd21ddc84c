package flightplan

// Comparison evaluates several projection results side by side on the
// numbers that decide between plans.
type Comparison struct {
	Results []*Result // one result per scenario, in the order given.
}

// NewComparison projects every scenario over the same horizon and collects
// the results for side-by-side evaluation. It rejects an empty scenario
// list, so Best and Safest always have a result to return.
func NewComparison(months int, scenarios ...*Scenario) (*Comparison, error) {
	if len(scenarios) == 0 {
		return nil, invalidf("comparison needs at least one scenario")
	}
	c := &Comparison{Results: make([]*Result, 0, len(scenarios))}
	for _, s := range scenarios {
		r, err := s.Project(months)
		if err != nil {
			return nil, err
		}
		c.Results = append(c.Results, r)
	}
	return c, nil
}

// Best returns the result with the highest final net worth.
func (c *Comparison) Best() *Result {
	best := c.Results[0]
	for _, r := range c.Results[1:] {
		if best.Final().NetWorth.LessThan(r.Final().NetWorth) {
			best = r
		}
	}
	return best
}

// Safest returns the result whose lowest net worth point is the highest, the
// plan with the most comfortable worst month.
func (c *Comparison) Safest() *Result {
	safest := c.Results[0]
	for _, r := range c.Results[1:] {
		if safest.Lowest().NetWorth.LessThan(r.Lowest().NetWorth) {
			safest = r
		}
	}
	return safest
}
