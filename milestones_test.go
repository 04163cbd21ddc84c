package flightplan

import (
	"testing"

	"github.com/etnz/flightplan/timeline"
)

func TestMilestone_Validate(t *testing.T) {
	on := timeline.MustParse("2026-06")

	tests := []struct {
		name    string
		m       Milestone
		wantErr bool
	}{
		{name: "valid one-time", m: NewOneTime(on, "Trip", NO(4000))},
		{name: "missing month", m: NewOneTime(timeline.Month{}, "", NO(4000)), wantErr: true},
		{name: "negative one-time cost", m: NewOneTime(on, "", NO(-1)), wantErr: true},

		{name: "valid marriage", m: NewMarriage(on, "", NO(20000), NO(60000), NO(0), NO(0))},
		{name: "negative wedding cost", m: NewMarriage(on, "", NO(-1), NO(0), NO(0), NO(0)), wantErr: true},
		{name: "negative spouse income", m: NewMarriage(on, "", NO(0), NO(-1), NO(0), NO(0)), wantErr: true},

		{name: "valid home", m: NewHomePurchase(on, "", NO(400000), 20, 6.5, 30)},
		{name: "free home", m: NewHomePurchase(on, "", NO(0), 20, 6.5, 30), wantErr: true},
		{name: "down payment above 100%", m: NewHomePurchase(on, "", NO(400000), 120, 6.5, 30), wantErr: true},
		{name: "zero mortgage term", m: NewHomePurchase(on, "", NO(400000), 20, 6.5, 0), wantErr: true},

		{name: "valid vehicle", m: NewVehiclePurchase(on, "", NO(30000), 10, 5, 5)},
		{name: "negative vehicle rate", m: NewVehiclePurchase(on, "", NO(30000), 10, -1, 5), wantErr: true},

		{name: "valid child", m: NewChild(on, "", NO(1000), NO(200))},
		{name: "negative child cost", m: NewChild(on, "", NO(-1), NO(0)), wantErr: true},

		{name: "valid education", m: NewEducation(on, "", NO(60000), 2, 15)},
		{name: "zero program years", m: NewEducation(on, "", NO(60000), 0, 15), wantErr: true},

		{name: "valid recurring", m: NewRecurring(on, "Gym", NO(80), 12)},
		{name: "zero recurring amount", m: NewRecurring(on, "Gym", NO(0), 12), wantErr: true},
		{name: "negative recurring duration", m: NewRecurring(on, "Gym", NO(80), -1), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.wantErr && err == nil {
				t.Error("Validate() accepted an invalid milestone")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() rejected a valid milestone: %v", err)
			}
		})
	}
}

func TestMilestone_Equal(t *testing.T) {
	on := timeline.MustParse("2026-06")

	a := NewOneTime(on, "Trip", NO(4000))
	if !a.Equal(NewOneTime(on, "Trip", NO(4000))) {
		t.Error("Equal() rejected an identical milestone")
	}
	if a.Equal(NewOneTime(on, "Trip", NO(4001))) {
		t.Error("Equal() accepted a different amount")
	}
	if a.Equal(NewRecurring(on, "Trip", NO(4000), 1)) {
		t.Error("Equal() accepted a different milestone type")
	}
}

func TestRecurring_Category(t *testing.T) {
	on := timeline.MustParse("2026-06")

	m := NewRecurring(on, "Gym", NO(80), 12)
	if got := m.category(); got != "Gym" {
		t.Errorf("category falls back to %q, want the memo", got)
	}
	m.Category = "Health"
	if got := m.category(); got != "Health" {
		t.Errorf("category is %q, want the explicit value", got)
	}
	if got := NewRecurring(on, "", NO(80), 12).category(); got != "Other" {
		t.Errorf("category without memo is %q, want Other", got)
	}
}

func TestChild_Years(t *testing.T) {
	on := timeline.MustParse("2026-06")
	if got := NewChild(on, "", NO(1000), NO(0)).years(); got != 18 {
		t.Errorf("default years of support is %d, want 18", got)
	}
	c := NewChild(on, "", NO(1000), NO(0))
	c.Years = 21
	if got := c.years(); got != 21 {
		t.Errorf("years of support is %d, want 21", got)
	}
}
