package contract

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", s, err)
	}
	return parsed
}

func TestContractCovers(t *testing.T) {
	validTo := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	bounded := Contract{
		ValidFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   &validTo,
	}
	open := Contract{ValidFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}

	cases := []struct {
		name     string
		contract Contract
		date     string
		want     bool
	}{
		{name: "inside window", contract: bounded, date: "2025-03-15", want: true},
		{name: "on valid_from", contract: bounded, date: "2025-01-01", want: true},
		{name: "on valid_to", contract: bounded, date: "2025-06-30", want: true},
		{name: "before valid_from", contract: bounded, date: "2024-12-31", want: false},
		{name: "after valid_to", contract: bounded, date: "2025-07-01", want: false},
		{name: "open ended far future", contract: open, date: "2030-01-01", want: true},
		{name: "open ended before start", contract: open, date: "2024-12-31", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.contract.Covers(day(t, c.date)); got != c.want {
				t.Errorf("Covers(%s) = %v, want %v", c.date, got, c.want)
			}
		})
	}
}

func TestContractCoversIgnoresTimeOfDay(t *testing.T) {
	validTo := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	c := Contract{
		ValidFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   &validTo,
	}

	lastDayEvening := time.Date(2025, 6, 30, 23, 45, 0, 0, time.UTC)
	if !c.Covers(lastDayEvening) {
		t.Error("evening of valid_to not covered")
	}
}
