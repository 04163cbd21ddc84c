package flightplan

import (
	"errors"
	"testing"

	"github.com/etnz/flightplan/timeline"
)

func TestScenario_AppendKeepsOrder(t *testing.T) {
	s := NewScenario("order")
	m1 := NewOneTime(timeline.MustParse("2027-01"), "Late", NO(100))
	m2 := NewOneTime(timeline.MustParse("2026-01"), "Early", NO(100))
	m3 := NewOneTime(timeline.MustParse("2026-01"), "Early too", NO(100)) // same month as m2
	if err := s.Append(m1, m2, m3); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	var got []Milestone
	for m := range s.Milestones() {
		got = append(got, m)
	}
	want := []Milestone{m2, m3, m1}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("milestone %d is %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestScenario_AppendRejectsInvalid(t *testing.T) {
	s := NewScenario("invalid")
	err := s.Append(NewOneTime(timeline.Month{}, "", NO(100)))
	var inv *ValidationError
	if !errors.As(err, &inv) {
		t.Fatalf("Append() error is %v, want a ValidationError", err)
	}
}

func TestScenario_AppendIsAtomic(t *testing.T) {
	// A rejected batch must not install its valid milestones either.
	s := NewScenario("atomic")
	valid := NewOneTime(timeline.MustParse("2026-01"), "", NO(100))
	invalid := NewOneTime(timeline.Month{}, "", NO(100))
	if err := s.Append(valid, invalid); err == nil {
		t.Fatal("Append() accepted an invalid milestone")
	}
	if s.Len() != 0 {
		t.Errorf("Append() left %d milestones behind after a rejected batch", s.Len())
	}
}

func TestScenario_SetProfileValidates(t *testing.T) {
	s := NewScenario("profile")
	if err := s.SetProfile(&Profile{}); err == nil {
		t.Error("SetProfile() accepted an empty profile")
	}
	if s.Profile() != nil {
		t.Error("SetProfile() installed an invalid profile")
	}
}

func TestScenario_Fmt(t *testing.T) {
	s := NewScenario("fmt")
	if _, err := s.Fmt(); err == nil {
		t.Error("Fmt() accepted a scenario without a profile")
	}

	if err := s.SetProfile(baseProfile()); err != nil {
		t.Fatalf("SetProfile() returned an unexpected error: %v", err)
	}
	// Install milestones out of order, bypassing Append.
	s.milestones = []Milestone{
		NewOneTime(timeline.MustParse("2027-01"), "Late", NO(100)),
		NewOneTime(timeline.MustParse("2026-01"), "Early", NO(100)),
	}
	formatted, err := s.Fmt()
	if err != nil {
		t.Fatalf("Fmt() returned an unexpected error: %v", err)
	}
	var months []string
	for m := range formatted.Milestones() {
		months = append(months, m.When().String())
	}
	if months[0] != "2026-01" || months[1] != "2027-01" {
		t.Errorf("Fmt() did not sort milestones: %v", months)
	}
	// The original scenario is left untouched.
	if s.milestones[0].When().String() != "2027-01" {
		t.Error("Fmt() mutated the original scenario")
	}
}
