package flightplan

import (
	"iter"
	"sort"
)

// Scenario is a named, self-contained plan: a profile plus an ordered set of
// milestones. Scenarios are computed independently from each other and never
// share state, so several of them can be projected and compared side by side.
type Scenario struct {
	name       string
	profile    *Profile
	milestones []Milestone // always kept in chronological order.
}

// NewScenario creates an empty scenario with the given name.
func NewScenario(name string) *Scenario {
	return &Scenario{name: name}
}

// Name returns the scenario name, its relative path in the plans directory.
func (s *Scenario) Name() string { return s.name }

// SetName renames the scenario.
func (s *Scenario) SetName(name string) { s.name = name }

// Profile returns the scenario profile, or nil when not set yet.
func (s *Scenario) Profile() *Profile { return s.profile }

// SetProfile validates and installs the scenario profile.
func (s *Scenario) SetProfile(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.profile = p
	return nil
}

// Milestones returns an iterator over the milestones in chronological order.
func (s *Scenario) Milestones() iter.Seq[Milestone] {
	return func(yield func(Milestone) bool) {
		for _, m := range s.milestones {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of milestones in the scenario.
func (s *Scenario) Len() int { return len(s.milestones) }

// Append validates and appends milestones, keeping chronological order.
// Milestones on the same month keep their insertion order. The whole batch
// is validated first, so a rejected milestone leaves the scenario untouched.
func (s *Scenario) Append(milestones ...Milestone) error {
	for _, m := range milestones {
		if err := m.Validate(); err != nil {
			return invalidf("invalid %s milestone on %s: %s", m.What(), m.When(), err)
		}
	}
	s.milestones = append(s.milestones, milestones...)
	s.stableSort()
	return nil
}

// stableSort sorts milestones chronologically, preserving the relative order
// of milestones on the same month.
func (s *Scenario) stableSort() {
	sort.SliceStable(s.milestones, func(i, j int) bool {
		return s.milestones[i].When().Before(s.milestones[j].When())
	})
}

// Fmt validates the whole scenario and returns a canonical copy: milestones
// sorted chronologically, ready to be rewritten to disk.
func (s *Scenario) Fmt() (*Scenario, error) {
	if s.profile == nil {
		return nil, &ConfigError{Field: "profile"}
	}
	if err := s.profile.Validate(); err != nil {
		return nil, err
	}
	formatted := &Scenario{name: s.name, profile: s.profile}
	if err := formatted.Append(s.milestones...); err != nil {
		return nil, err
	}
	return formatted, nil
}
